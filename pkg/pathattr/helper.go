// Package pathattr is the single entry point for extended attributes, file
// metadata and URL helpers on a path or file URL.
//
// Helper is stateless apart from its optional metrics sink and is safe for
// concurrent use. Concurrent calls on the same path race at the OS level
// exactly as two xattr syscalls would.
//
// Error policy per operation:
//   - GetAttribute, SetAttribute, RemoveAttribute, ListAttributes,
//     ExportAttributes, Stat: errors are returned to the caller
//   - Attributes, FileSize, TypeIdentifier, QueryParam, RemovingFragment:
//     best effort, failures produce the absent/zero/identity result
package pathattr

import (
	"time"

	"github.com/marmos91/pathattr/internal/logger"
	"github.com/marmos91/pathattr/pkg/fileinfo"
	"github.com/marmos91/pathattr/pkg/metrics"
	"github.com/marmos91/pathattr/pkg/urlutil"
	"github.com/marmos91/pathattr/pkg/xattr"
)

// Helper bundles the path attribute operations behind one value.
type Helper struct {
	metrics metrics.HelperMetrics
}

// New creates a Helper. A nil m disables metrics collection.
func New(m metrics.HelperMetrics) *Helper {
	if m == nil {
		m = metrics.NewNoopHelperMetrics()
	}
	return &Helper{metrics: m}
}

// ============================================================================
// Extended Attributes
// ============================================================================

// GetAttribute returns the value of the extended attribute name on p.
func (h *Helper) GetAttribute(p, name string) ([]byte, error) {
	start := time.Now()

	data, err := h.getAttribute(p, name)
	h.metrics.RecordOperation("GetAttribute", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	h.metrics.RecordAttributeBytes("GetAttribute", len(data))
	return data, nil
}

func (h *Helper) getAttribute(p, name string) ([]byte, error) {
	path, err := ResolvePath(p)
	if err != nil {
		return nil, err
	}
	return xattr.Get(path, name)
}

// SetAttribute stores data under name on p, replacing any existing value.
func (h *Helper) SetAttribute(p, name string, data []byte) error {
	start := time.Now()

	path, err := ResolvePath(p)
	if err == nil {
		err = xattr.Set(path, name, data)
	}
	h.metrics.RecordOperation("SetAttribute", time.Since(start), err)
	if err != nil {
		return err
	}

	h.metrics.RecordAttributeBytes("SetAttribute", len(data))
	logger.Debug("Set extended attribute %s on %s (%d bytes)", name, path, len(data))
	return nil
}

// RemoveAttribute deletes the extended attribute name from p.
func (h *Helper) RemoveAttribute(p, name string) error {
	start := time.Now()

	path, err := ResolvePath(p)
	if err == nil {
		err = xattr.Remove(path, name)
	}
	h.metrics.RecordOperation("RemoveAttribute", time.Since(start), err)
	if err != nil {
		return err
	}

	logger.Debug("Removed extended attribute %s from %s", name, path)
	return nil
}

// ListAttributes returns the names of all extended attributes on p.
func (h *Helper) ListAttributes(p string) ([]string, error) {
	start := time.Now()

	names, err := h.listAttributes(p)
	h.metrics.RecordOperation("ListAttributes", time.Since(start), err)
	return names, err
}

func (h *Helper) listAttributes(p string) ([]string, error) {
	path, err := ResolvePath(p)
	if err != nil {
		return nil, err
	}
	return xattr.List(path)
}

// ExportAttributes returns every extended attribute on p with its value.
//
// Attributes removed between the listing and the read are skipped; any other
// read failure aborts the export.
func (h *Helper) ExportAttributes(p string) (map[string][]byte, error) {
	start := time.Now()

	attrs, err := h.exportAttributes(p)
	h.metrics.RecordOperation("ExportAttributes", time.Since(start), err)
	return attrs, err
}

func (h *Helper) exportAttributes(p string) (map[string][]byte, error) {
	path, err := ResolvePath(p)
	if err != nil {
		return nil, err
	}

	names, err := xattr.List(path)
	if err != nil {
		return nil, err
	}

	attrs := make(map[string][]byte, len(names))
	for _, name := range names {
		value, err := xattr.Get(path, name)
		if err != nil {
			if xattr.IsNotFound(err) {
				logger.Debug("Extended attribute %s disappeared from %s during export", name, path)
				continue
			}
			return nil, err
		}
		attrs[name] = value
	}
	return attrs, nil
}

// ============================================================================
// File Metadata
// ============================================================================

// Stat returns the attributes of the file at p.
func (h *Helper) Stat(p string) (*fileinfo.FileAttr, error) {
	start := time.Now()

	attr, err := h.stat(p)
	h.metrics.RecordOperation("Stat", time.Since(start), err)
	return attr, err
}

func (h *Helper) stat(p string) (*fileinfo.FileAttr, error) {
	path, err := ResolvePath(p)
	if err != nil {
		return nil, err
	}
	return fileinfo.Stat(path)
}

// Attributes returns the attributes of the file at p, or nil if they cannot
// be read. The failure is logged.
func (h *Helper) Attributes(p string) *fileinfo.FileAttr {
	path, err := ResolvePath(p)
	if err != nil {
		logger.Warn("File attributes unavailable for %s: %v", p, err)
		h.metrics.RecordFallback("Attributes")
		return nil
	}

	start := time.Now()
	attr := fileinfo.Attributes(path)
	h.metrics.RecordOperation("Attributes", time.Since(start), nil)
	if attr == nil {
		h.metrics.RecordFallback("Attributes")
	}
	return attr
}

// FileSize returns the size in bytes of the file at p, or 0 when its
// attributes are unavailable.
func (h *Helper) FileSize(p string) uint64 {
	attr := h.Attributes(p)
	if attr == nil {
		return 0
	}
	return attr.Size
}

// DetectType returns the type identifier of the file at p.
func (h *Helper) DetectType(p string) (string, error) {
	start := time.Now()

	id, err := h.detectType(p)
	h.metrics.RecordOperation("DetectType", time.Since(start), err)
	return id, err
}

func (h *Helper) detectType(p string) (string, error) {
	path, err := ResolvePath(p)
	if err != nil {
		return "", err
	}
	return fileinfo.DetectType(path)
}

// TypeIdentifier returns the type identifier of the file at p, reporting
// false when it cannot be determined.
func (h *Helper) TypeIdentifier(p string) (string, bool) {
	path, err := ResolvePath(p)
	if err != nil {
		logger.Debug("Type identifier unavailable for %s: %v", p, err)
		h.metrics.RecordFallback("TypeIdentifier")
		return "", false
	}

	start := time.Now()
	id, ok := fileinfo.TypeIdentifier(path)
	h.metrics.RecordOperation("TypeIdentifier", time.Since(start), nil)
	if !ok {
		h.metrics.RecordFallback("TypeIdentifier")
	}
	return id, ok
}

// ============================================================================
// URL Helpers
// ============================================================================

// QueryParam returns the value of the first query item called name in rawURL.
func (h *Helper) QueryParam(rawURL, name string) (string, bool) {
	start := time.Now()

	value, ok := urlutil.QueryParam(rawURL, name)
	h.metrics.RecordOperation("QueryParam", time.Since(start), nil)
	return value, ok
}

// IsRemote reports whether rawURL starts with "http://" or "https://".
func (h *Helper) IsRemote(rawURL string) bool {
	return urlutil.IsRemote(rawURL)
}

// RemovingFragment returns rawURL without its query and fragment.
func (h *Helper) RemovingFragment(rawURL string) string {
	start := time.Now()

	stripped := urlutil.RemovingFragment(rawURL)
	h.metrics.RecordOperation("RemovingFragment", time.Since(start), nil)
	return stripped
}
