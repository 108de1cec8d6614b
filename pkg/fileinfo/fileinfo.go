// Package fileinfo provides basic file metadata accessors: attributes, size
// and a content type identifier.
//
// Two error policies coexist. Stat and DetectType return errors to the
// caller. Attributes, FileSize and TypeIdentifier are best-effort accessors
// that log a diagnostic and fall back to an absent or zero result.
package fileinfo

import (
	"fmt"
	"os"

	"github.com/marmos91/pathattr/internal/logger"
)

// Stat returns the attributes of the file at path. A symlink is reported
// as itself (FileTypeSymlink, size of the link text), not its target.
//
// Returns:
//   - *FileAttr: attributes as reported by the OS
//   - error: the *fs.PathError from the underlying stat call, wrapped
func Stat(path string) (*FileAttr, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	attr := &FileAttr{
		Type:  fileTypeOf(info.Mode()),
		Mode:  unixMode(info.Mode()),
		Size:  uint64(info.Size()),
		Mtime: info.ModTime(),
	}
	fillPlatform(path, info, attr)

	return attr, nil
}

// Attributes is the best-effort form of Stat: on failure it logs a warning
// and returns nil.
func Attributes(path string) *FileAttr {
	attr, err := Stat(path)
	if err != nil {
		logger.Warn("File attributes unavailable for %s: %v", path, err)
		return nil
	}
	return attr
}

// FileSize returns the size of the file at path in bytes.
//
// Zero is returned both for empty files and when the attributes could not be
// read; callers that need to tell the two apart should use Stat.
func FileSize(path string) uint64 {
	attr := Attributes(path)
	if attr == nil {
		return 0
	}
	return attr.Size
}
