package config

const (
	HCType        = "Content-Type"
	HETag         = "ETag"
	HCacheControl = "Cache-Control"

	CTypeJSON = "application/json"
)

const (
	// EnvConfigPath names the env var pointing at the YAML config file.
	EnvConfigPath     = "INKWELL_CONFIG"
	DefaultConfigPath = "config.yaml"
)
