// Package strings holds the few string helpers the platform shares
package strings

import std "strings"

// IfEmpty returns def when in has no elements, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Contains reports whether sub is within s
func Contains(s, sub string) bool { return std.Contains(s, sub) }

// MustString returns s unless it is blank, in which case it panics with name
// so misconfigured modules fail loudly at startup
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /topics or /reasons to a single
// leading slash with no trailing slash. Panics on a blank path
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
