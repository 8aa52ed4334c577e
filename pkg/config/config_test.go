package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %q", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("expected color enabled by default")
	}
	if cfg.Export.Destination != "" {
		t.Errorf("expected export disabled by default, got %q", cfg.Export.Destination)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default log level 'warn', got %q", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		missing bool
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "non-existent file returns defaults",
			missing: true,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != "text" {
					t.Errorf("expected default format, got %q", cfg.Output.Format)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
output:
  format: markdown
  color: false
export:
  destination: s3://reports/clinic-a
  s3:
    endpoint: http://localhost:9000
    access_key: minio
    secret_key: minio123
log:
  level: debug
  encoding: json
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Output.Format != "markdown" {
					t.Errorf("expected format 'markdown', got %q", cfg.Output.Format)
				}
				if cfg.Output.Color {
					t.Error("expected color disabled")
				}
				if cfg.Export.Destination != "s3://reports/clinic-a" {
					t.Errorf("unexpected destination %q", cfg.Export.Destination)
				}
				if cfg.Export.S3.Endpoint != "http://localhost:9000" {
					t.Errorf("unexpected endpoint %q", cfg.Export.S3.Endpoint)
				}
				if cfg.Export.S3.Region != "us-east-1" {
					t.Errorf("expected default region to survive, got %q", cfg.Export.S3.Region)
				}
				if cfg.Log.Level != "debug" || cfg.Log.Encoding != "json" {
					t.Errorf("unexpected log config %+v", cfg.Log)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "{{invalid yaml",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if !tc.missing {
				if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
					t.Fatalf("write test config: %v", err)
				}
			}

			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func writeConfig(t *testing.T, root string) string {
	t.Helper()
	configDir := filepath.Join(root, ".normscope")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func TestFindConfigFile(t *testing.T) {
	t.Run("found in current directory", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeConfig(t, root)

		got := FindConfigFile(root)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeConfig(t, root)

		sub := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(sub, 0o755); err != nil {
			t.Fatalf("create sub: %v", err)
		}

		got := FindConfigFile(sub)
		if got != configPath {
			t.Errorf("FindConfigFile = %q, want %q", got, configPath)
		}
	})

	t.Run("not found", func(t *testing.T) {
		root := t.TempDir()
		got := FindConfigFile(root)
		if got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}

func TestResolveExplicitPath(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root)

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected format 'json', got %q", cfg.Output.Format)
	}
}
