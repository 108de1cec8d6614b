package fileinfo

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature followed by the start of an IHDR chunk.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// newSymlink creates a symlink to target in a fresh directory.
func newSymlink(t *testing.T, target string) string {
	t.Helper()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not available: %v", err)
	}
	return link
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0640))
	return path
}

// ============================================================================
// Stat / Attributes Tests
// ============================================================================

func TestStat(t *testing.T) {
	t.Run("RegularFile", func(t *testing.T) {
		before := time.Now().Add(-time.Minute)
		path := writeFile(t, "readme.txt", []byte("This is a README file.\n"))

		attr, err := Stat(path)
		require.NoError(t, err)
		assert.Equal(t, FileTypeRegular, attr.Type)
		assert.Equal(t, uint64(23), attr.Size)
		assert.Equal(t, uint32(0o640), attr.Mode&0o777)
		assert.True(t, attr.Mtime.After(before))
		if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
			assert.False(t, attr.Ctime.IsZero())
		} else {
			assert.True(t, attr.Ctime.IsZero(), "unreported fields stay zero")
		}
	})

	t.Run("Directory", func(t *testing.T) {
		attr, err := Stat(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, FileTypeDirectory, attr.Type)
	})

	t.Run("SymlinkReportedAsItself", func(t *testing.T) {
		target := writeFile(t, "target.md", make([]byte, 1000))
		link := newSymlink(t, target)

		attr, err := Stat(link)
		require.NoError(t, err)
		assert.Equal(t, FileTypeSymlink, attr.Type)
		assert.Equal(t, uint64(len(target)), attr.Size, "size of the link text, not the target")
	})

	t.Run("DanglingSymlink", func(t *testing.T) {
		link := newSymlink(t, filepath.Join(t.TempDir(), "gone"))

		attr, err := Stat(link)
		require.NoError(t, err)
		assert.Equal(t, FileTypeSymlink, attr.Type)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Stat(filepath.Join(t.TempDir(), "absent"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestAttributes(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("notes"))
	attr := Attributes(path)
	require.NotNil(t, attr)
	assert.Equal(t, uint64(5), attr.Size)

	assert.Nil(t, Attributes(filepath.Join(t.TempDir(), "absent")))

	dangling := newSymlink(t, filepath.Join(t.TempDir(), "gone"))
	attr = Attributes(dangling)
	require.NotNil(t, attr, "a dangling link still has attributes of its own")
	assert.Equal(t, FileTypeSymlink, attr.Type)
}

func TestFileSize(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want uint64
	}{
		{
			name: "RegularFile",
			path: func(t *testing.T) string { return writeFile(t, "a", []byte("hello world")) },
			want: 11,
		},
		{
			name: "EmptyFile",
			path: func(t *testing.T) string { return writeFile(t, "b", nil) },
			want: 0,
		},
		{
			name: "MissingFileIsZero",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent") },
			want: 0,
		},
		{
			name: "InvalidPathIsZero",
			path: func(t *testing.T) string { return "bad\x00path" },
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileSize(tt.path(t)))
		})
	}

	t.Run("SymlinkIsLinkSize", func(t *testing.T) {
		target := writeFile(t, "target.md", make([]byte, 1000))
		assert.Equal(t, uint64(len(target)), FileSize(newSymlink(t, target)))
	})
}

// ============================================================================
// Type Identifier Tests
// ============================================================================

func TestDetectType(t *testing.T) {
	t.Run("PlainText", func(t *testing.T) {
		path := writeFile(t, "readme.txt", []byte("This is a README file.\nWelcome!\n"))

		id, err := DetectType(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "text/plain"), "got %q", id)
	})

	t.Run("PNG", func(t *testing.T) {
		path := writeFile(t, "wallpaper.png", pngHeader)

		id, err := DetectType(path)
		require.NoError(t, err)
		assert.Equal(t, "image/png", id)
	})

	t.Run("Directory", func(t *testing.T) {
		id, err := DetectType(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, TypeDirectory, id)
	})

	t.Run("Symlink", func(t *testing.T) {
		link := newSymlink(t, writeFile(t, "wallpaper.png", pngHeader))

		id, err := DetectType(link)
		require.NoError(t, err)
		assert.Equal(t, TypeSymlink, id)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := DetectType(filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}

func TestTypeIdentifier(t *testing.T) {
	id, ok := TypeIdentifier(writeFile(t, "img", pngHeader))
	assert.True(t, ok)
	assert.Equal(t, "image/png", id)

	id, ok = TypeIdentifier(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, ok)
	assert.Empty(t, id)
}

// ============================================================================
// FileType Tests
// ============================================================================

func TestFileTypeOf(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want FileType
	}{
		{0o644, FileTypeRegular},
		{fs.ModeDir | 0o755, FileTypeDirectory},
		{fs.ModeSymlink | 0o777, FileTypeSymlink},
		{fs.ModeDevice | fs.ModeCharDevice, FileTypeCharDevice},
		{fs.ModeDevice, FileTypeBlockDevice},
		{fs.ModeSocket, FileTypeSocket},
		{fs.ModeNamedPipe, FileTypeFIFO},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, fileTypeOf(tt.mode))
		})
	}
}

func TestUnixMode(t *testing.T) {
	assert.Equal(t, uint32(0o755), unixMode(0o755))
	assert.Equal(t, uint32(0o4755), unixMode(fs.ModeSetuid|0o755))
	assert.Equal(t, uint32(0o3777), unixMode(fs.ModeSetgid|fs.ModeSticky|0o777))
}

func TestFileAttrJSON(t *testing.T) {
	data, err := json.Marshal(&FileAttr{Type: FileTypeDirectory, Size: 4096})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "directory", decoded["type"])
	assert.NotContains(t, decoded, "btime")
}
