// Package config loads the application configuration from YAML with
// tag-declared defaults, and carries the caller-facing message constants.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var configLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	configLogger = l
}

// Config is the complete configuration structure.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type SiteConfig struct {
	Name        string `yaml:"name" default:"Inkwell"`
	Description string `yaml:"description" default:"A minimal blog publishing platform"`
}

type ServerConfig struct {
	Host string `yaml:"host" default:"0.0.0.0"`
	Port string `yaml:"port" default:"8640"`
}

type StorageConfig struct {
	// Driver selects the post store backend: "sqlite" or "memory".
	// The memory driver loses all posts on restart; it exists for
	// development and tests.
	Driver string `yaml:"driver" default:"sqlite"`
	Path   string `yaml:"path" default:"./inkwell.db"`

	// Compression codec for post content at rest: "zstd", "gzip" or "none".
	Compression string `yaml:"compression" default:"zstd"`
}

type LoggingConfig struct {
	Level string `yaml:"level" default:"info"`
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. A file that exists but fails to parse is an error.
func Load(path string) (*Config, error) {
	config := &Config{}
	applyDefaults(config)

	data, err := os.ReadFile(path)
	if err != nil {
		// Only a missing file means "run on defaults"; an unreadable one
		// is a real error and must not be silently ignored.
		if errors.Is(err, fs.ErrNotExist) {
			configLogger.Info().Str("path", path).Msg("Config file not found, using defaults")
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func applyDefaults(config interface{}) {
	v := reflect.ValueOf(config)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.IsValid() || !field.CanSet() {
			continue
		}

		// Recursively apply defaults to nested structs
		if field.Kind() == reflect.Struct {
			applyDefaults(field.Addr().Interface())
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(defaultValue)
		case reflect.Bool:
			if val, err := strconv.ParseBool(defaultValue); err == nil {
				field.SetBool(val)
			}
		case reflect.Int:
			if val, err := strconv.ParseInt(defaultValue, 10, 64); err == nil {
				field.SetInt(val)
			}
		case reflect.Slice:
			if field.Len() == 0 && field.Type().Elem().Kind() == reflect.String {
				parts := strings.Split(defaultValue, ",")
				slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
				for j, part := range parts {
					slice.Index(j).SetString(strings.TrimSpace(part))
				}
				field.Set(slice)
			}
		default:
			configLogger.Warn().
				Str("field_name", fieldType.Name).
				Str("field_type", field.Kind().String()).
				Msg("Unsupported field type for default value")
		}
	}
}
