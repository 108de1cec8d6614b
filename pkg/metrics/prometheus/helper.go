package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/marmos91/pathattr/pkg/metrics"
	"github.com/marmos91/pathattr/pkg/xattr"
)

// helperMetrics is the Prometheus implementation of metrics.HelperMetrics.
type helperMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	attributeBytes    *prometheus.HistogramVec
	fallbacksTotal    *prometheus.CounterVec
}

// NewHelperMetrics creates a new Prometheus-backed HelperMetrics instance
// registered with the global registry.
//
// Returns a no-op implementation if metrics are not enabled (InitRegistry not called).
func NewHelperMetrics() metrics.HelperMetrics {
	if !metrics.IsEnabled() {
		return metrics.NewNoopHelperMetrics()
	}
	return NewHelperMetricsWith(metrics.GetRegistry())
}

// NewHelperMetricsWith registers the helper metrics with reg.
func NewHelperMetricsWith(reg prometheus.Registerer) metrics.HelperMetrics {
	return &helperMetrics{
		operationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathattr_operations_total",
				Help: "Total number of helper operations by operation, status, and error code",
			},
			[]string{"operation", "status", "error_code"},
		),
		operationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "pathattr_operation_duration_seconds",
				Help: "Duration of helper operations in seconds",
				Buckets: []float64{
					0.00001, // 10µs
					0.0001,  // 100µs
					0.001,   // 1ms
					0.01,    // 10ms
					0.1,     // 100ms
					1.0,     // 1s
				},
			},
			[]string{"operation"},
		),
		attributeBytes: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathattr_attribute_value_bytes",
				Help:    "Size of extended attribute values read or written",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8), // 16B .. 256KiB
			},
			[]string{"operation"},
		),
		fallbacksTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathattr_fallbacks_total",
				Help: "Total number of best-effort accessors that returned their default value",
			},
			[]string{"operation"},
		),
	}
}

func (m *helperMetrics) RecordOperation(operation string, duration time.Duration, err error) {
	status := "success"
	errorCode := ""
	if err != nil {
		status = "error"
		errorCode = "other"
		if code, ok := xattr.CodeOf(err); ok {
			errorCode = code.String()
		}
	}

	m.operationsTotal.WithLabelValues(operation, status, errorCode).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *helperMetrics) RecordAttributeBytes(operation string, size int) {
	m.attributeBytes.WithLabelValues(operation).Observe(float64(size))
}

func (m *helperMetrics) RecordFallback(operation string) {
	m.fallbacksTotal.WithLabelValues(operation).Inc()
}
