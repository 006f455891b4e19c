// Package compression abstracts the codec used for post content at rest.
package compression

// Compressor compresses and decompresses post content before it reaches the
// storage layer.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// NoneCompressor stores content verbatim.
type NoneCompressor struct{}

func (NoneCompressor) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoneCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

// ForName returns the compressor for a config codec name. Unknown names fall
// back to no compression.
func ForName(name string) Compressor {
	switch name {
	case "zstd":
		return ZstdCompressor{}
	case "gzip":
		return GzipCompressor{}
	default:
		return NoneCompressor{}
	}
}
