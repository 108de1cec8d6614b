// Package urlutil holds small string helpers for note and attachment URLs.
//
// All helpers are best effort: a URL that cannot be parsed produces a
// "not found" or identity result instead of an error.
package urlutil

import (
	"net/url"
	"strings"
)

// QueryParam returns the value of the first query item called name.
//
// Items are visited in the order they appear in the raw query. Names and
// values are percent-decoded but '+' is kept literally. An item without '='
// has no value and is reported as not found, as is any URL net/url rejects
// or whose query holds an invalid percent-escape in any item.
//
//	QueryParam("nv://make?title=blah&txt=body", "title") // "blah", true
func QueryParam(rawURL, name string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	var (
		value string
		found bool
		seen  bool
	)
	for _, item := range strings.Split(u.RawQuery, "&") {
		if item == "" {
			continue
		}

		rawKey, rawValue, hasValue := strings.Cut(item, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return "", false
		}
		decoded, err := url.PathUnescape(rawValue)
		if err != nil {
			return "", false
		}

		if seen || key != name {
			continue
		}
		seen = true
		value, found = decoded, hasValue
	}

	if !found {
		return "", false
	}
	return value, true
}

// IsRemote reports whether rawURL starts with "http://" or "https://".
// The test is a case-sensitive prefix match: "HTTP://x" is not remote.
func IsRemote(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}

// RemovingFragment strips the query and fragment components from rawURL.
//
// The literal substrings "?<query>" and "#<fragment>" are deleted from the
// string, in that order. If the input does not parse, or the result no
// longer parses, rawURL is returned unchanged.
func RemovingFragment(rawURL string) string {
	if _, err := url.Parse(rawURL); err != nil {
		return rawURL
	}

	query, hasQuery, fragment, hasFragment := splitComponents(rawURL)

	result := rawURL
	if hasQuery {
		result = strings.ReplaceAll(result, "?"+query, "")
	}
	if hasFragment {
		result = strings.ReplaceAll(result, "#"+fragment, "")
	}

	if _, err := url.Parse(result); err != nil {
		return rawURL
	}
	return result
}

// splitComponents returns the raw query and fragment text of rawURL,
// following the same split rules as net/url: the fragment starts at the
// first '#', the query at the first '?' before it.
func splitComponents(rawURL string) (query string, hasQuery bool, fragment string, hasFragment bool) {
	rest := rawURL
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		fragment, hasFragment = rest[i+1:], true
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		query, hasQuery = rest[i+1:], true
	}
	return query, hasQuery, fragment, hasFragment
}
