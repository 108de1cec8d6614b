package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/marmos91/pathattr/pkg/metrics"
	promMetrics "github.com/marmos91/pathattr/pkg/metrics/prometheus"
)

// CreateMetricsPushConfig decodes the type-specific metrics options.
//
// The Type field selects which options map is decoded; only "pushgateway"
// exists today.
func CreateMetricsPushConfig(cfg *MetricsConfig) (metrics.PushConfig, error) {
	switch cfg.Type {
	case "pushgateway":
		var pushCfg metrics.PushConfig
		if err := mapstructure.Decode(cfg.Pushgateway, &pushCfg); err != nil {
			return metrics.PushConfig{}, fmt.Errorf("failed to decode pushgateway config: %w", err)
		}
		if pushCfg.Job == "" {
			pushCfg.Job = "pathattr"
		}
		return pushCfg, nil
	default:
		return metrics.PushConfig{}, fmt.Errorf("unknown metrics type: %q", cfg.Type)
	}
}

// MetricsResult contains all metrics-related components created from configuration.
type MetricsResult struct {
	// HelperMetrics is the collector for the path attribute helper
	// (never nil, uses noop if disabled)
	HelperMetrics metrics.HelperMetrics

	// Push is the Pushgateway destination (nil if metrics are disabled)
	Push *metrics.PushConfig
}

// InitializeMetrics creates and initializes all metrics components based on configuration.
//
// If metrics are enabled in the configuration:
//   - Initializes the global Prometheus registry
//   - Creates Prometheus-backed metrics instances
//   - Decodes the Pushgateway destination
//
// If metrics are disabled:
//   - Returns no-op metrics implementations (zero overhead) and a nil Push
func InitializeMetrics(cfg *Config) (*MetricsResult, error) {
	if !cfg.Metrics.Enabled {
		return &MetricsResult{
			HelperMetrics: metrics.NewNoopHelperMetrics(),
		}, nil
	}

	pushCfg, err := CreateMetricsPushConfig(&cfg.Metrics)
	if err != nil {
		return nil, err
	}

	metrics.InitRegistry()

	return &MetricsResult{
		HelperMetrics: promMetrics.NewHelperMetrics(),
		Push:          &pushCfg,
	}, nil
}
