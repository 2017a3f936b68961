// Package cache implements the dependency-aware artifact cache for rewritten
// documents.
package cache

import (
	"io"
	"sync"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/stamp/internal/rewrite"
	"go.trai.ch/zerr"
)

// Cache memoizes parsed artifacts keyed by (rewrite mode, path). An entry is
// valid while the source document and every captured dependency still report
// the modification times snapshotted at parse time. The cache is unbounded
// for the lifetime of the owning process.
type Cache struct {
	meta     ports.MetadataProvider
	reader   ports.ResourceReader
	rewriter *rewrite.Rewriter

	entries sync.Map // domain.Key -> *domain.Artifact
}

// New creates a new Cache.
func New(meta ports.MetadataProvider, reader ports.ResourceReader) *Cache {
	return &Cache{
		meta:     meta,
		reader:   reader,
		rewriter: rewrite.NewRewriter(meta),
	}
}

// Get returns a valid artifact for key, reparsing the document when no entry
// exists or the stored entry is stale. hit reports whether the stored entry
// was reused. Failures are surfaced to the caller and never cached.
func (c *Cache) Get(key domain.Key) (artifact *domain.Artifact, hit bool, err error) {
	sourceModTime := c.meta.LastModified(key.Path)
	if v, ok := c.entries.Load(key); ok {
		a := v.(*domain.Artifact)
		if a.SourceModTime == sourceModTime && c.dependenciesUnchanged(a) {
			return a, true, nil
		}
	}

	artifact, err = c.parse(key, sourceModTime)
	if err != nil {
		return nil, false, err
	}

	// Concurrent reparses of the same key may race; the last write wins.
	// An artifact is a pure re-derivation of current file state, so a
	// lost write only costs a redundant reparse, never a wrong result.
	c.entries.Store(key, artifact)
	return artifact, false, nil
}

// RewrittenBytes returns the rewritten document for key.
func (c *Cache) RewrittenBytes(key domain.Key) ([]byte, error) {
	artifact, _, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	return artifact.Bytes, nil
}

// NewestModified returns the modification time of the document and all of its
// dependencies, whichever is newest, or 0 when the document cannot be read.
func (c *Cache) NewestModified(key domain.Key) int64 {
	artifact, _, err := c.Get(key)
	if err != nil {
		return 0
	}
	return artifact.NewestModTime
}

func (c *Cache) dependenciesUnchanged(a *domain.Artifact) bool {
	for p, modTime := range a.Dependencies {
		if c.meta.LastModified(p) != modTime {
			return false
		}
	}
	return true
}

func (c *Cache) parse(key domain.Key, sourceModTime int64) (*domain.Artifact, error) {
	rc, err := c.reader.Open(key.Path)
	if err != nil {
		return nil, zerr.With(err, "path", key.Path)
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read document"), "path", key.Path)
	}

	result, err := c.rewriter.Rewrite(key.Path, content, key.Mode)
	if err != nil {
		return nil, err
	}
	return domain.NewArtifact(sourceModTime, result.Bytes, result.Dependencies), nil
}
