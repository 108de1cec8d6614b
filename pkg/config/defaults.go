package config

import "strings"

// ApplyDefaults sets default values for any unspecified configuration fields.
//
// Default Strategy:
//   - Zero values (0, "", false, nil) are replaced with defaults
//   - Explicit values are preserved
//   - Type-specific metrics options are defaulted when decoded (see CreateMetricsPushConfig)
func ApplyDefaults(cfg *Config) {
	applyLoggingDefaults(&cfg.Logging)
	applyOutputDefaults(&cfg.Output)
	applyMetricsDefaults(&cfg.Metrics)
}

// applyLoggingDefaults sets logging defaults and normalizes values.
func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "INFO"
	}
	// Normalize log level to uppercase for consistent internal representation
	cfg.Level = strings.ToUpper(cfg.Level)

	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = "stderr"
	}
}

func applyOutputDefaults(cfg *OutputConfig) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	cfg.Format = strings.ToLower(cfg.Format)
}

func applyMetricsDefaults(cfg *MetricsConfig) {
	if cfg.Type == "" {
		cfg.Type = "pushgateway"
	}
	if cfg.Pushgateway == nil {
		cfg.Pushgateway = make(map[string]any)
	}
}

// GetDefaultConfig returns a Config with all default values applied.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{
			Pushgateway: map[string]any{
				"url": "http://localhost:9091",
				"job": "pathattr",
			},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}
