package domain

// Key identifies a cached artifact. Distinct rewrite modes for the same path
// are distinct entries: a disabled-rewrite request must never be served a
// rewritten body, or vice versa.
type Key struct {
	Mode RewriteMode
	Path string
}

// Artifact is the immutable result of parsing and rewriting one document.
// It is replaced, never mutated, when the source or a dependency changes.
type Artifact struct {
	// SourceModTime is the document's modification time at parse time,
	// in milliseconds.
	SourceModTime int64

	// Bytes is the fully reassembled document.
	Bytes []byte

	// Dependencies maps each resolved local reference path to the
	// modification time captured when the document was parsed.
	Dependencies map[string]int64

	// NewestModTime is the greatest of SourceModTime and every captured
	// dependency modification time.
	NewestModTime int64
}

// NewArtifact builds an artifact from a parse result. NewestModTime is
// computed from the same dependency snapshot used for staleness checks, so
// the reported freshness always agrees with the bytes it describes.
func NewArtifact(sourceModTime int64, bytes []byte, deps map[string]int64) *Artifact {
	newest := sourceModTime
	for _, modTime := range deps {
		if modTime > newest {
			newest = modTime
		}
	}
	return &Artifact{
		SourceModTime: sourceModTime,
		Bytes:         bytes,
		Dependencies:  deps,
		NewestModTime: newest,
	}
}
