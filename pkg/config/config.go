// Package config handles loading and managing normscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for normscope.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	Format string `yaml:"format"` // text, markdown or json
	Color  bool   `yaml:"color"`
}

// ExportConfig controls where report documents are written.
type ExportConfig struct {
	// Destination is a local directory, s3://bucket/prefix or gs://bucket/prefix.
	// Empty disables export.
	Destination string   `yaml:"destination"`
	S3          S3Config `yaml:"s3"`
}

// S3Config holds credentials for S3 and S3-compatible stores such as MinIO.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` // console or json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Export: ExportConfig{
			S3: S3Config{Region: "us-east-1"},
		},
		Log: LogConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .normscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".normscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Resolve loads the config at path, or the nearest discovered config file
// when path is empty.
func Resolve(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = FindConfigFile(wd)
		if path == "" {
			return DefaultConfig(), nil
		}
	}
	return Load(path)
}
