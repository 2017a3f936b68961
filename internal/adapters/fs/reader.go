package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResourceReader = (*Reader)(nil)

// Reader implements ports.ResourceReader against the document root.
type Reader struct {
	root string
}

// NewReader creates a new Reader for the given root directory.
func NewReader(root string) *Reader {
	return &Reader{root: root}
}

// Open returns the resource's byte stream. Absence maps to
// domain.ErrNotFound; any other failure is surfaced as an I/O error, never
// conflated with absence.
func (r *Reader) Open(p string) (io.ReadCloser, error) {
	f, err := os.Open(resolve(r.root, p)) //nolint:gosec // Path is rooted by resolve
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrNotFound, "path", p)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open resource"), "path", p)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to stat resource"), "path", p)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, zerr.With(domain.ErrNotFound, "path", p)
	}
	return f, nil
}
