package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	t.Run("FillsZeroValues", func(t *testing.T) {
		cfg := &Config{}
		ApplyDefaults(cfg)

		if cfg.Logging.Level != "INFO" || cfg.Logging.Format != "text" || cfg.Logging.Output != "stderr" {
			t.Errorf("Unexpected logging defaults: %+v", cfg.Logging)
		}
		if cfg.Output.Format != "text" {
			t.Errorf("Expected output format 'text', got %q", cfg.Output.Format)
		}
		if cfg.Metrics.Type != "pushgateway" {
			t.Errorf("Expected metrics type 'pushgateway', got %q", cfg.Metrics.Type)
		}
		if cfg.Metrics.Pushgateway == nil {
			t.Error("Expected pushgateway options map to be initialized")
		}
	})

	t.Run("PreservesExplicitValues", func(t *testing.T) {
		cfg := &Config{
			Logging: LoggingConfig{Level: "warn", Format: "json", Output: "/tmp/pathattr.log"},
			Output:  OutputConfig{Format: "YAML"},
		}
		ApplyDefaults(cfg)

		if cfg.Logging.Level != "WARN" {
			t.Errorf("Expected normalized level 'WARN', got %q", cfg.Logging.Level)
		}
		if cfg.Logging.Format != "json" {
			t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
		}
		if cfg.Logging.Output != "/tmp/pathattr.log" {
			t.Errorf("Expected output path preserved, got %q", cfg.Logging.Output)
		}
		if cfg.Output.Format != "yaml" {
			t.Errorf("Expected normalized output format 'yaml', got %q", cfg.Output.Format)
		}
	})
}
