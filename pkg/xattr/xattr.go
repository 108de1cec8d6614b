package xattr

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Get returns the value of the extended attribute name on path.
//
// The value is read in two phases: the size is queried first, then a buffer
// of exactly that size is allocated and filled. If either phase fails the
// returned *AttributeError carries the errno of the call that failed, so a
// value that grows between the two calls surfaces as ErrRange.
//
// A zero-length attribute yields an empty, non-nil slice.
func Get(path, name string) ([]byte, error) {
	if err := validateName("get", path, name); err != nil {
		return nil, err
	}

	data, err := readSized(func(dest []byte) (int, error) {
		return sysGet(path, name, dest)
	})
	if err != nil {
		return nil, wrapError("get", path, name, err)
	}
	return data, nil
}

// Set stores data as the value of the extended attribute name on path,
// replacing any existing value. No create/replace flags are passed.
func Set(path, name string, data []byte) error {
	if err := validateName("set", path, name); err != nil {
		return err
	}

	if err := sysSet(path, name, data); err != nil {
		return wrapError("set", path, name, err)
	}
	return nil
}

// Remove deletes the extended attribute name from path.
// Removing an attribute that does not exist fails with ErrNotFound.
func Remove(path, name string) error {
	if err := validateName("remove", path, name); err != nil {
		return err
	}

	if err := sysRemove(path, name); err != nil {
		return wrapError("remove", path, name, err)
	}
	return nil
}

// List returns the names of all extended attributes on path in the order the
// OS reports them.
//
// Segments of the OS buffer that are not valid UTF-8 are dropped silently
// rather than failing the whole call.
func List(path string) ([]string, error) {
	buf, err := readSized(func(dest []byte) (int, error) {
		return sysList(path, dest)
	})
	if err != nil {
		return nil, wrapError("list", path, "", err)
	}
	return splitNames(buf), nil
}

// readSized runs fill twice: once with a nil buffer to learn the required
// size, then with a buffer of that size. The result is trimmed to the number
// of bytes the second call reports.
func readSized(fill func(dest []byte) (int, error)) ([]byte, error) {
	size, err := fill(nil)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, errRange
	}

	buf := make([]byte, size)
	n, err := fill(buf)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(buf) {
		return nil, errRange
	}
	return buf[:n], nil
}

// splitNames splits a NUL-separated name list.
func splitNames(buf []byte) []string {
	names := make([]string, 0)
	for _, segment := range bytes.Split(buf, []byte{0}) {
		if len(segment) == 0 || !utf8.Valid(segment) {
			continue
		}
		names = append(names, string(segment))
	}
	return names
}

func validateName(op, path, name string) error {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		attrErr := newAttributeError(op, path, name, errInvalid)
		attrErr.Code = ErrInvalidArgument
		return attrErr
	}
	return nil
}

func wrapError(op, path, name string, err error) error {
	attrErr := newAttributeError(op, path, name, err)
	if err == errRange {
		attrErr.Code = ErrRange
	}
	return attrErr
}
