package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/marmos91/pathattr/internal/logger"
)

// PushConfig configures delivery of the registry to a Prometheus Pushgateway.
type PushConfig struct {
	// URL is the Pushgateway base URL (e.g., "http://localhost:9091")
	URL string `mapstructure:"url"`

	// Job is the job label attached to the pushed metrics
	// Default: "pathattr"
	Job string `mapstructure:"job"`
}

// applyDefaults fills in zero values with sensible defaults.
func (c *PushConfig) applyDefaults() {
	if c.Job == "" {
		c.Job = "pathattr"
	}
}

// Push replaces the metrics of the configured job on the Pushgateway with the
// current contents of the global registry.
//
// Returns nil without contacting the gateway if metrics are disabled.
func Push(ctx context.Context, cfg PushConfig) error {
	if !IsEnabled() {
		return nil
	}
	if cfg.URL == "" {
		return fmt.Errorf("pushgateway url is required")
	}
	cfg.applyDefaults()

	if err := push.New(cfg.URL, cfg.Job).Gatherer(GetRegistry()).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", cfg.URL, err)
	}

	logger.Debug("Pushed metrics to %s (job=%s)", cfg.URL, cfg.Job)
	return nil
}
