package rewrite

import (
	"net/url"
	"path"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Reference is a raw url(...) token split into its parts and resolved
// against the enclosing document's context-relative path.
type Reference struct {
	// Path is the resolved context-relative resource path. Empty for
	// external references.
	Path string

	// HasQuery reports whether the reference already carries a query
	// string, which selects '&' over '?' for the freshness parameter.
	HasQuery bool

	// Fragment is the original fragment text without the leading '#'.
	// HasFragment distinguishes an empty fragment from an absent one.
	Fragment    string
	HasFragment bool

	// External is true when the reference does not resolve to a path
	// rooted at the document root. External references are never
	// stamped and contribute no dependency.
	External bool
}

// Resolve splits the raw reference into path, query, and fragment, and
// resolves the path component relative to docPath. References with a scheme
// or authority, and relative references from outside the root, classify as
// external. Invalid URL structure yields domain.ErrMalformedReference.
func Resolve(docPath, raw string) (Reference, error) {
	var ref Reference
	rest := raw
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		ref.HasFragment = true
		ref.Fragment = raw[i+1:]
		rest = raw[:i]
	}

	u, err := url.Parse(rest)
	if err != nil {
		return Reference{}, zerr.With(zerr.Wrap(domain.ErrMalformedReference, err.Error()), "reference", raw)
	}
	if u.Scheme != "" || u.Host != "" {
		ref.External = true
		return ref, nil
	}
	ref.HasQuery = u.ForceQuery || u.RawQuery != ""

	p := u.Path
	switch {
	case p == "":
		ref.External = true
		return ref, nil
	case strings.HasPrefix(p, "/"):
		p = path.Clean(p)
	default:
		// path.Join cleans, collapsing . and .. segments. Joining onto
		// the document's directory clamps .. at the root.
		p = path.Join(path.Dir(docPath), p)
	}
	if !strings.HasPrefix(p, "/") {
		ref.External = true
		return ref, nil
	}
	ref.Path = p
	return ref, nil
}
