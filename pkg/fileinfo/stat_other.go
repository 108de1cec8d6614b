//go:build !linux && !darwin

package fileinfo

import "os"

// Only the portable fields from os.FileInfo are available here; the rest
// stay zero.
func fillPlatform(path string, info os.FileInfo, attr *FileAttr) {}
