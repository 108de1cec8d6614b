//go:build linux

package fileinfo

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func fillPlatform(path string, info os.FileInfo, attr *FileAttr) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	attr.UID = st.Uid
	attr.GID = st.Gid
	attr.Nlink = uint64(st.Nlink)
	attr.Inode = st.Ino
	attr.Device = uint64(st.Dev)
	attr.Atime = time.Unix(st.Atim.Unix())
	attr.Ctime = time.Unix(st.Ctim.Unix())

	// stat(2) has no birth time on Linux; statx reports it when the
	// filesystem records one.
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx); err == nil && stx.Mask&unix.STATX_BTIME != 0 {
		attr.Btime = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
}
