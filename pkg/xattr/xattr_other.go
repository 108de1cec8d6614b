//go:build !linux && !darwin

package xattr

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

var errUnsupported = fmt.Errorf("extended attributes are not supported on %s: %w", runtime.GOOS, errors.ErrUnsupported)

var (
	errInvalid error = errors.New("invalid argument")
	errRange   error = errors.New("result too large")
)

func sysGet(path, name string, dest []byte) (int, error) {
	return 0, errUnsupported
}

func sysSet(path, name string, data []byte) error {
	return errUnsupported
}

func sysRemove(path, name string) error {
	return errUnsupported
}

func sysList(path string, dest []byte) (int, error) {
	return 0, errUnsupported
}

func translateErrno(errno syscall.Errno) ErrorCode {
	return ErrUnknown
}
