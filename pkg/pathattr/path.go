package pathattr

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrNotLocal is returned by ResolvePath for URLs that do not name a local file.
var ErrNotLocal = errors.New("url does not reference a local file")

// ResolvePath converts a path or file URL into a native filesystem path.
//
// Input is only treated as a URL when it starts with "<scheme>://"; anything
// else, including absolute paths that contain "://" further in, is returned
// unchanged. "file://" URLs are percent-decoded and must have an empty or
// "localhost" host. Any other scheme fails with ErrNotLocal.
//
//	ResolvePath("file:///tmp/a%20b") // "/tmp/a b"
func ResolvePath(p string) (string, error) {
	if !hasSchemePrefix(p) {
		return p, nil
	}

	u, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("invalid path url %q: %w", p, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %s", ErrNotLocal, p)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", fmt.Errorf("%w: remote host %q", ErrNotLocal, u.Host)
	}
	if u.Path == "" {
		return "", fmt.Errorf("%w: empty path in %s", ErrNotLocal, p)
	}

	return filepath.FromSlash(u.Path), nil
}

// hasSchemePrefix reports whether p begins with a URL scheme followed by
// "://". Schemes are ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func hasSchemePrefix(p string) bool {
	scheme, _, found := strings.Cut(p, "://")
	if !found || scheme == "" {
		return false
	}
	for i, c := range scheme {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
