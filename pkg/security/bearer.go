package security

import (
	"crypto/subtle"
	"strings"
)

// BearerPrefix precedes the token in an Authorization header.
const BearerPrefix = "Bearer "

// MatchBearer reports whether header is exactly "Bearer <token>".
// The comparison is case-sensitive and runs in constant time for equal-length input.
// An empty token never matches.
func MatchBearer(header, token string) bool {
	if token == "" || !strings.HasPrefix(header, BearerPrefix) {
		return false
	}
	presented := header[len(BearerPrefix):]
	return subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1
}

// HasAnyPrefix reports whether path starts with one of prefixes.
func HasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
