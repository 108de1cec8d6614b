package fileinfo

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/marmos91/pathattr/internal/logger"
)

// Type identifiers for objects whose content is not sniffed.
const (
	TypeDirectory   = "inode/directory"
	TypeSymlink     = "inode/symlink"
	TypeBlockDevice = "inode/blockdevice"
	TypeCharDevice  = "inode/chardevice"
	TypeSocket      = "inode/socket"
	TypeFIFO        = "inode/fifo"
)

// DetectType returns a type identifier for the file at path.
//
// Regular files are identified by sniffing their leading bytes and yield a
// MIME type (e.g. "image/png", "text/plain; charset=utf-8"). Other objects
// are never opened and get an "inode/<kind>" identifier instead; opening a
// FIFO for sniffing would block. Symlinks are not followed.
func DetectType(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	switch fileTypeOf(info.Mode()) {
	case FileTypeDirectory:
		return TypeDirectory, nil
	case FileTypeSymlink:
		return TypeSymlink, nil
	case FileTypeBlockDevice:
		return TypeBlockDevice, nil
	case FileTypeCharDevice:
		return TypeCharDevice, nil
	case FileTypeSocket:
		return TypeSocket, nil
	case FileTypeFIFO:
		return TypeFIFO, nil
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	return mtype.String(), nil
}

// TypeIdentifier is the best-effort form of DetectType.
func TypeIdentifier(path string) (string, bool) {
	id, err := DetectType(path)
	if err != nil {
		logger.Debug("Type identifier unavailable for %s: %v", path, err)
		return "", false
	}
	return id, true
}
