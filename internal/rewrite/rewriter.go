package rewrite

import (
	"bytes"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
)

// Rewriter reassembles documents, appending freshness parameters to local
// references.
type Rewriter struct {
	meta ports.MetadataProvider
}

// NewRewriter creates a new Rewriter.
func NewRewriter(meta ports.MetadataProvider) *Rewriter {
	return &Rewriter{meta: meta}
}

// Result carries a rewritten document and the dependency snapshot captured
// while rewriting.
type Result struct {
	Bytes        []byte
	Dependencies map[string]int64
}

// Rewrite reassembles the document at docPath. All content outside matched
// references is preserved byte for byte, as is any reference component not
// explicitly rewritten. When mode allows rewriting, each local reference
// with a known modification time gains a lastModified parameter and is
// recorded as a dependency; a modification time of 0 means the resource is
// unknown and the reference is left alone.
func (r *Rewriter) Rewrite(docPath string, content []byte, mode domain.RewriteMode) (*Result, error) {
	matches := scan(content)
	out := bytes.NewBuffer(make([]byte, 0, len(content)))
	deps := make(map[string]int64)

	last := 0
	for _, m := range matches {
		out.Write(content[last:m.tokenStart])

		raw := string(content[m.tokenStart:m.tokenEnd])
		ref, err := Resolve(docPath, raw)
		if err != nil {
			return nil, err
		}

		// The reference text minus its fragment, emitted unchanged.
		noFragment := raw
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			noFragment = raw[:i]
		}
		out.WriteString(noFragment)

		if mode.Rewrite() && !ref.External {
			if modTime := r.meta.LastModified(ref.Path); modTime != 0 {
				deps[ref.Path] = modTime
				if ref.HasQuery {
					out.WriteByte('&')
				} else {
					out.WriteByte('?')
				}
				out.WriteString(domain.ParamName)
				out.WriteByte('=')
				out.WriteString(domain.EncodeModTime(modTime))
			}
		}

		if ref.HasFragment {
			out.WriteByte('#')
			out.WriteString(ref.Fragment)
		}

		out.Write(content[m.tokenEnd:m.end])
		last = m.end
	}
	out.Write(content[last:])

	return &Result{Bytes: out.Bytes(), Dependencies: deps}, nil
}
