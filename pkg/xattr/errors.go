package xattr

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrorCode is the platform-independent category of an extended attribute error.
//
// Each supported platform carries its own table mapping errno values to an
// ErrorCode (see errno_linux.go and errno_darwin.go), so callers can branch on
// the category without importing platform errno constants.
type ErrorCode int

const (
	// ErrUnknown is used for errno values with no table entry
	ErrUnknown ErrorCode = iota

	// ErrNotFound indicates the named attribute does not exist
	// (ENODATA on Linux, ENOATTR on Darwin)
	ErrNotFound

	// ErrNoSuchFile indicates the path itself does not exist
	ErrNoSuchFile

	// ErrInvalidArgument indicates a malformed attribute name or path
	// Names containing NUL bytes are rejected with this code before any syscall
	ErrInvalidArgument

	// ErrRange indicates a buffer was too small or a value too large
	// Returned when an attribute grows between the size query and the read
	ErrRange

	// ErrNotSupported indicates the filesystem or platform has no xattr support
	ErrNotSupported

	// ErrPermissionDenied indicates the caller may not read or modify the attribute
	ErrPermissionDenied

	// ErrNoSpace indicates there is no room left to store the attribute
	ErrNoSpace

	// ErrReadOnly indicates the filesystem is mounted read-only
	ErrReadOnly

	// ErrIO indicates a low-level I/O error
	ErrIO
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNotFound:
		return "not found"
	case ErrNoSuchFile:
		return "no such file"
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrRange:
		return "out of range"
	case ErrNotSupported:
		return "not supported"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrNoSpace:
		return "no space"
	case ErrReadOnly:
		return "read-only"
	case ErrIO:
		return "i/o error"
	default:
		return "unknown"
	}
}

// Sentinels matched by *AttributeError through errors.Is, one per category a
// caller typically branches on.
var (
	ErrNoAttribute = errors.New("xattr: no such attribute")
	ErrUnsupported = errors.New("xattr: not supported")
	ErrInvalidName = errors.New("xattr: invalid attribute name")
	ErrBufferRange = errors.New("xattr: value out of range")
)

// AttributeError records a failed extended attribute operation.
//
// Errno and Message are taken verbatim from the operating system; Code is
// the translated category. The underlying syscall.Errno is kept in Err so
// that errors.Is(err, unix.ENODATA) and friends keep working.
type AttributeError struct {
	// Op is the operation that failed: "get", "set", "remove" or "list"
	Op string

	// Path is the filesystem path the operation targeted
	Path string

	// Name is the attribute name (empty for "list")
	Name string

	// Code is the platform-independent error category
	Code ErrorCode

	// Errno is the numeric platform error code (0 if none was reported)
	Errno int

	// Message is the human-readable text from the OS error-string table
	Message string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("xattr %s %s %s: %s", e.Op, e.Path, e.Name, e.Message)
	}
	return fmt.Sprintf("xattr %s %s: %s", e.Op, e.Path, e.Message)
}

// Unwrap returns the underlying OS error.
func (e *AttributeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the package sentinel for e's Code.
func (e *AttributeError) Is(target error) bool {
	switch target {
	case ErrNoAttribute:
		return e.Code == ErrNotFound
	case ErrUnsupported:
		return e.Code == ErrNotSupported
	case ErrInvalidName:
		return e.Code == ErrInvalidArgument
	case ErrBufferRange:
		return e.Code == ErrRange
	}
	return false
}

// newAttributeError converts an OS error into an *AttributeError.
func newAttributeError(op, path, name string, err error) *AttributeError {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &AttributeError{
			Op:      op,
			Path:    path,
			Name:    name,
			Code:    translateErrno(errno),
			Errno:   int(errno),
			Message: errno.Error(),
			Err:     errno,
		}
	}

	code := ErrUnknown
	if errors.Is(err, errors.ErrUnsupported) {
		code = ErrNotSupported
	}
	return &AttributeError{
		Op:      op,
		Path:    path,
		Name:    name,
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}

// CodeOf returns the ErrorCode carried by err, if err wraps an *AttributeError.
func CodeOf(err error) (ErrorCode, bool) {
	var attrErr *AttributeError
	if errors.As(err, &attrErr) {
		return attrErr.Code, true
	}
	return ErrUnknown, false
}

// IsNotFound reports whether err means the attribute does not exist.
func IsNotFound(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrNotFound
}

// IsNotSupported reports whether err means xattrs are unavailable on the
// target filesystem or platform.
func IsNotSupported(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrNotSupported
}
