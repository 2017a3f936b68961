package fs

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Walker = (*Walker)(nil)

// Walker enumerates resources beneath the document root.
type Walker struct {
	root string
}

// NewWalker creates a new Walker for the given root directory.
func NewWalker(root string) *Walker {
	return &Walker{root: filepath.Clean(root)}
}

// List returns the context-relative paths of all regular files under the
// root with the given extension (without the dot), sorted.
func (w *Walker) List(ext string) ([]string, error) {
	var paths []string
	suffix := "." + strings.ToLower(ext)

	err := filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), suffix) {
			return nil
		}
		rel, err := filepath.Rel(w.root, p)
		if err != nil {
			return err
		}
		paths = append(paths, "/"+filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk document root"), "root", w.root)
	}

	sort.Strings(paths)
	return paths, nil
}
