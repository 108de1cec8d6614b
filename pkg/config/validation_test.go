package config

import (
	"strings"
	"testing"
)

func TestValidate_MetricsDisabledIgnoresOptions(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Pushgateway = map[string]any{"url": "not a url"}

	if err := Validate(cfg); err != nil {
		t.Errorf("Expected disabled metrics to skip option checks, got %v", err)
	}
}

func TestValidate_MetricsEnabled(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Metrics.Enabled = true

	if err := Validate(cfg); err != nil {
		t.Fatalf("Expected default pushgateway options to be valid, got %v", err)
	}

	cfg.Metrics.Pushgateway["url"] = ""
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "url is required") {
		t.Errorf("Expected missing url error, got %v", err)
	}
}

func TestValidate_LowercaseLevelAccepted(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "debug"

	if err := Validate(cfg); err != nil {
		t.Errorf("Expected lowercase level to validate, got %v", err)
	}
}

func TestFormatValidationError(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Output.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "Config.Output.Format") || !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected namespaced oneof error, got %v", err)
	}
}
