//go:build linux

package xattr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Linux reports a missing attribute as ENODATA and aliases ENOTSUP to EOPNOTSUPP.
var errnoCodes = map[syscall.Errno]ErrorCode{
	unix.ENODATA:      ErrNotFound,
	unix.ENOENT:       ErrNoSuchFile,
	unix.ENOTDIR:      ErrNoSuchFile,
	unix.EINVAL:       ErrInvalidArgument,
	unix.ENAMETOOLONG: ErrInvalidArgument,
	unix.ERANGE:       ErrRange,
	unix.E2BIG:        ErrRange,
	unix.EOPNOTSUPP:   ErrNotSupported,
	unix.EACCES:       ErrPermissionDenied,
	unix.EPERM:        ErrPermissionDenied,
	unix.ENOSPC:       ErrNoSpace,
	unix.EDQUOT:       ErrNoSpace,
	unix.EROFS:        ErrReadOnly,
	unix.EIO:          ErrIO,
}

func translateErrno(errno syscall.Errno) ErrorCode {
	if code, ok := errnoCodes[errno]; ok {
		return code
	}
	return ErrUnknown
}
