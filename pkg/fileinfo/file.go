package fileinfo

import (
	"fmt"
	"io/fs"
	"time"
)

// FileAttr holds the OS-reported attributes of a file.
//
// The set of fields is fixed; fields the platform does not report are left
// at their zero value (Btime is only filled where a birth time is available).
//
// Time Semantics:
//   - Atime (access time): last read
//   - Mtime (modification time): last content change
//   - Ctime (change time): last metadata change, not creation
//   - Btime (birth time): creation, when the filesystem records it
type FileAttr struct {
	// Type is the file type (regular, directory, symlink, etc.)
	Type FileType `json:"type" yaml:"type"`

	// Mode contains permission bits plus setuid, setgid and sticky (0o7777 max)
	Mode uint32 `json:"mode" yaml:"mode"`

	// UID is the owner user ID
	UID uint32 `json:"uid" yaml:"uid"`

	// GID is the owner group ID
	GID uint32 `json:"gid" yaml:"gid"`

	// Size is the file size in bytes
	Size uint64 `json:"size" yaml:"size"`

	// Nlink is the number of hard links
	Nlink uint64 `json:"nlink" yaml:"nlink"`

	// Inode is the file serial number
	Inode uint64 `json:"inode" yaml:"inode"`

	// Device is the ID of the device containing the file
	Device uint64 `json:"device" yaml:"device"`

	Atime time.Time `json:"atime" yaml:"atime"`
	Mtime time.Time `json:"mtime" yaml:"mtime"`
	Ctime time.Time `json:"ctime" yaml:"ctime"`
	Btime time.Time `json:"btime,omitzero" yaml:"btime,omitempty"`
}

// FileType represents the type of a filesystem object.
type FileType int

const (
	// FileTypeRegular is a regular file containing data
	FileTypeRegular FileType = iota

	// FileTypeDirectory is a directory
	FileTypeDirectory

	// FileTypeSymlink is a symbolic link
	FileTypeSymlink

	// FileTypeBlockDevice is a block device (disk, partition, etc.)
	FileTypeBlockDevice

	// FileTypeCharDevice is a character device (terminal, serial port, etc.)
	FileTypeCharDevice

	// FileTypeSocket is a Unix domain socket
	FileTypeSocket

	// FileTypeFIFO is a named pipe
	FileTypeFIFO
)

var fileTypeNames = map[FileType]string{
	FileTypeRegular:     "regular",
	FileTypeDirectory:   "directory",
	FileTypeSymlink:     "symlink",
	FileTypeBlockDevice: "blockdevice",
	FileTypeCharDevice:  "chardevice",
	FileTypeSocket:      "socket",
	FileTypeFIFO:        "fifo",
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FileType(%d)", int(t))
}

// MarshalText renders the type by name in JSON and YAML output.
func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// fileTypeOf maps the type bits of an fs.FileMode to a FileType.
func fileTypeOf(mode fs.FileMode) FileType {
	switch {
	case mode.IsDir():
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice != 0:
		return FileTypeCharDevice
	case mode&fs.ModeDevice != 0:
		return FileTypeBlockDevice
	case mode&fs.ModeSocket != 0:
		return FileTypeSocket
	case mode&fs.ModeNamedPipe != 0:
		return FileTypeFIFO
	default:
		return FileTypeRegular
	}
}

// unixMode converts fs.FileMode permission and special bits to the Unix layout.
func unixMode(mode fs.FileMode) uint32 {
	m := uint32(mode.Perm())
	if mode&fs.ModeSetuid != 0 {
		m |= 0o4000
	}
	if mode&fs.ModeSetgid != 0 {
		m |= 0o2000
	}
	if mode&fs.ModeSticky != 0 {
		m |= 0o1000
	}
	return m
}
