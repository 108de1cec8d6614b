package metrics

import "time"

// HelperMetrics provides observability for path attribute operations.
//
// This interface is optional - if not provided to the helper, operations
// proceed without metrics collection (zero overhead).
//
// Example usage:
//
//	// With metrics enabled
//	m := prometheus.NewHelperMetrics()
//	helper := pathattr.New(m)
//
//	// Without metrics (no-op)
//	helper := pathattr.New(nil)
type HelperMetrics interface {
	// RecordOperation records a completed operation with its name,
	// duration, and outcome.
	//
	// Parameters:
	//   - operation: Operation name (e.g., "GetAttribute", "Stat", "QueryParam")
	//   - duration: Time taken to complete the operation
	//   - err: Error if operation failed, nil if successful
	RecordOperation(operation string, duration time.Duration, err error)

	// RecordAttributeBytes records the size of an attribute value read or written.
	//
	// Parameters:
	//   - operation: "GetAttribute" or "SetAttribute"
	//   - size: Payload size in bytes
	RecordAttributeBytes(operation string, size int)

	// RecordFallback records a best-effort accessor returning its default
	// value because the underlying call failed.
	//
	// Parameters:
	//   - operation: Operation name (e.g., "Attributes", "TypeIdentifier")
	RecordFallback(operation string)
}

// NewNoopHelperMetrics returns a HelperMetrics that discards everything.
func NewNoopHelperMetrics() HelperMetrics {
	return noopHelperMetrics{}
}

// noopHelperMetrics is a no-op implementation of HelperMetrics with zero overhead.
type noopHelperMetrics struct{}

func (noopHelperMetrics) RecordOperation(operation string, duration time.Duration, err error) {}
func (noopHelperMetrics) RecordAttributeBytes(operation string, size int)                      {}
func (noopHelperMetrics) RecordFallback(operation string)                                      {}
