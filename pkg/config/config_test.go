package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultConfig(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "debug"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected normalized level 'DEBUG', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got %q", cfg.Logging.Output)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default output format 'text', got %q", cfg.Output.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("Expected metrics disabled by default")
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// A non-existent explicit path keeps the user's ~/.config/pathattr out of the test
	nonExistentPath := filepath.Join(t.TempDir(), "nonexistent.yaml")

	cfg, err := Load(nonExistentPath)
	if err != nil {
		t.Fatalf("Expected no error with missing config file, got: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Metrics.Type != "pushgateway" {
		t.Errorf("Expected default metrics type 'pushgateway', got %q", cfg.Metrics.Type)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid.yaml", `
logging:
  level: INFO
  invalid yaml here [[[
`)

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_TOML(t *testing.T) {
	configPath := writeConfig(t, "config.toml", `
[logging]
level = "WARN"
format = "json"

[output]
format = "yaml"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected output format 'yaml', got %q", cfg.Output.Format)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "UnknownLogLevel",
			content: "logging:\n  level: verbose\n",
			wantErr: "Level",
		},
		{
			name:    "UnknownOutputFormat",
			content: "output:\n  format: xml\n",
			wantErr: "Format",
		},
		{
			name:    "UnknownMetricsType",
			content: "metrics:\n  enabled: true\n  type: statsd\n",
			wantErr: "Type",
		},
		{
			name:    "MetricsWithoutURL",
			content: "metrics:\n  enabled: true\n",
			wantErr: "url is required",
		},
		{
			name:    "MetricsWithBadURL",
			content: "metrics:\n  enabled: true\n  pushgateway:\n    url: \"localhost\"\n",
			wantErr: "invalid url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "config.yaml", tt.content))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("PATHATTR_LOGGING_LEVEL", "ERROR")
	t.Setenv("PATHATTR_OUTPUT_FORMAT", "json")

	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "INFO"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format 'json' from env var, got %q", cfg.Output.Format)
	}
}

func TestLoad_PushgatewayEnvironmentVariables(t *testing.T) {
	t.Run("OverridesFile", func(t *testing.T) {
		t.Setenv("PATHATTR_METRICS_PUSHGATEWAY_URL", "http://gateway:9091")

		configPath := writeConfig(t, "config.yaml", `
metrics:
  enabled: true
  pushgateway:
    url: "http://localhost:9091"
    job: "nightly"
`)

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Metrics.Pushgateway["url"] != "http://gateway:9091" {
			t.Errorf("Expected url from env var, got %v", cfg.Metrics.Pushgateway["url"])
		}
		if cfg.Metrics.Pushgateway["job"] != "nightly" {
			t.Errorf("Expected job from file, got %v", cfg.Metrics.Pushgateway["job"])
		}
	})

	t.Run("EnvOnly", func(t *testing.T) {
		t.Setenv("PATHATTR_METRICS_ENABLED", "true")
		t.Setenv("PATHATTR_METRICS_PUSHGATEWAY_URL", "http://gateway:9091")
		t.Setenv("PATHATTR_METRICS_PUSHGATEWAY_JOB", "cron")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		push, err := CreateMetricsPushConfig(&cfg.Metrics)
		if err != nil {
			t.Fatalf("CreateMetricsPushConfig failed: %v", err)
		}
		if push.URL != "http://gateway:9091" || push.Job != "cron" {
			t.Errorf("Expected push config from env vars, got %+v", push)
		}
	})
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected default log level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected default output format 'text', got %q", cfg.Output.Format)
	}
	if cfg.Metrics.Pushgateway["url"] != "http://localhost:9091" {
		t.Errorf("Expected default pushgateway url, got %v", cfg.Metrics.Pushgateway["url"])
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	dir := GetConfigDir()
	if filepath.Base(dir) != "pathattr" {
		t.Errorf("Expected directory name 'pathattr', got %q", filepath.Base(dir))
	}
	if filepath.Base(GetDefaultConfigPath()) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(GetDefaultConfigPath()))
	}
	if ConfigExists() {
		t.Error("Expected no config in a fresh XDG_CONFIG_HOME")
	}
}
