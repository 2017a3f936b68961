// Package domain contains the core domain models for the rewrite cache.
package domain

import "strings"

// RewriteMode controls whether local references in a served document receive
// a lastModified parameter. It is parsed once at the serving boundary and
// carried as part of the cache key, never re-interpreted as raw header text.
type RewriteMode int

const (
	// ModeDefault applies when the client expressed no preference.
	// Rewriting proceeds as if enabled.
	ModeDefault RewriteMode = iota
	// ModeEnabled is an explicit opt-in to rewriting.
	ModeEnabled
	// ModeDisabled suppresses the lastModified parameter and dependency
	// tracking for the request.
	ModeDisabled
)

// ParseRewriteMode maps a rewrite header value to a RewriteMode. Only the
// exact values "true" and "false" (case-insensitive) are significant; any
// other value, including an absent header, yields ModeDefault.
func ParseRewriteMode(value string) RewriteMode {
	switch {
	case strings.EqualFold(value, "true"):
		return ModeEnabled
	case strings.EqualFold(value, "false"):
		return ModeDisabled
	default:
		return ModeDefault
	}
}

// Rewrite reports whether documents parsed under this mode should carry
// lastModified parameters.
func (m RewriteMode) Rewrite() bool {
	return m != ModeDisabled
}

func (m RewriteMode) String() string {
	switch m {
	case ModeEnabled:
		return "enabled"
	case ModeDisabled:
		return "disabled"
	default:
		return "default"
	}
}
