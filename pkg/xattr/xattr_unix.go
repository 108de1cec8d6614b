//go:build linux || darwin

package xattr

import (
	"golang.org/x/sys/unix"
)

// errInvalid is reported for names rejected before reaching the kernel.
var errInvalid error = unix.EINVAL

// errRange is reported when the second phase of a sized read returns more
// bytes than the first phase announced.
var errRange error = unix.ERANGE

func sysGet(path, name string, dest []byte) (int, error) {
	return unix.Getxattr(path, name, dest)
}

func sysSet(path, name string, data []byte) error {
	return unix.Setxattr(path, name, data, 0)
}

func sysRemove(path, name string) error {
	return unix.Removexattr(path, name)
}

func sysList(path string, dest []byte) (int, error) {
	return unix.Listxattr(path, dest)
}
