// Package origin compares request origins structurally (scheme+host+port)
// rather than by raw string equality, so a trailing slash or path never
// produces a false negative.
package origin

import (
	"net/url"
	"strings"
)

// Normalize reduces raw to "scheme://host[:port]" in lower case. The second
// return is false for anything that does not parse into scheme and host;
// callers treat that as a non-match, not an error.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), true
}

// Same reports whether two URLs share a structural origin.
func Same(a, b string) bool {
	na, ok := Normalize(a)
	if !ok {
		return false
	}
	nb, ok := Normalize(b)
	if !ok {
		return false
	}
	return na == nb
}

// Match reports whether candidate's origin matches any entry in allowed.
// Malformed entries on either side never match.
func Match(candidate string, allowed []string) bool {
	nc, ok := Normalize(candidate)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if na, ok := Normalize(a); ok && na == nc {
			return true
		}
	}
	return false
}
