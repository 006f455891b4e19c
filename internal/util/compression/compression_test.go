package compression

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	compressors := map[string]Compressor{
		"zstd": ZstdCompressor{},
		"gzip": GzipCompressor{},
		"none": NoneCompressor{},
	}

	payloads := [][]byte{
		[]byte("<p>Hello, <strong>world</strong>!</p>"),
		[]byte(""),
		[]byte(strings.Repeat("<p>lorem ipsum dolor sit amet</p>", 500)),
	}

	for name, c := range compressors {
		t.Run(name, func(t *testing.T) {
			for _, payload := range payloads {
				compressed, err := c.Compress(payload)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				decompressed, err := c.Decompress(compressed)
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}

				if !bytes.Equal(decompressed, payload) {
					t.Errorf("Round trip mismatch: expected %d bytes, got %d", len(payload), len(decompressed))
				}
			}
		})
	}
}

func TestZstdActuallyCompresses(t *testing.T) {
	payload := []byte(strings.Repeat("<p>repetitive rich text content</p>", 200))

	compressed, err := ZstdCompressor{}.Compress(payload)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if len(compressed) >= len(payload) {
		t.Errorf("Expected compressed size < %d, got %d", len(payload), len(compressed))
	}
}

func TestForName(t *testing.T) {
	if _, ok := ForName("zstd").(ZstdCompressor); !ok {
		t.Error("Expected zstd compressor for 'zstd'")
	}
	if _, ok := ForName("gzip").(GzipCompressor); !ok {
		t.Error("Expected gzip compressor for 'gzip'")
	}
	if _, ok := ForName("none").(NoneCompressor); !ok {
		t.Error("Expected none compressor for 'none'")
	}
	if _, ok := ForName("unknown").(NoneCompressor); !ok {
		t.Error("Expected unknown codec to fall back to none")
	}
}
