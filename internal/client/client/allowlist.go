package client

import (
	"path"
	"strings"
)

// DefaultPublicEndpoints are the paths that never carry a bearer token.
var DefaultPublicEndpoints = PublicEndpointsFor(DefaultAuthBasePath)

// PublicEndpointsFor returns the login, register and refresh paths under
// the auth base path.
func PublicEndpointsFor(authBasePath string) []string {
	base := strings.TrimRight(authBasePath, "/")
	return []string{base + "/login", base + "/register", base + "/refresh"}
}

// Allowlist matches request paths (or gRPC method names) that bypass
// authentication. A pattern containing glob characters is matched with
// path.Match, any other pattern is a prefix.
type Allowlist struct {
	patterns []string
}

func NewAllowlist(patterns ...string) Allowlist {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return Allowlist{patterns: out}
}

func (l Allowlist) Match(p string) bool {
	for _, pattern := range l.patterns {
		if strings.ContainsAny(pattern, "*?[") {
			if ok, _ := path.Match(pattern, p); ok {
				return true
			}
			continue
		}
		if strings.HasPrefix(p, pattern) {
			return true
		}
	}
	return false
}

// Patterns returns a copy of the configured patterns.
func (l Allowlist) Patterns() []string {
	return append([]string(nil), l.patterns...)
}
