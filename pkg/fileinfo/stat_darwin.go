//go:build darwin

package fileinfo

import (
	"os"
	"syscall"
	"time"
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
	attr.Atime = time.Unix(st.Atimespec.Unix())
	attr.Ctime = time.Unix(st.Ctimespec.Unix())
	attr.Btime = time.Unix(st.Birthtimespec.Unix())
}
