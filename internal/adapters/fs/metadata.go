// Package fs implements the filesystem-backed resource adapters rooted at
// the configured document root.
package fs

import (
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/stamp/internal/core/ports"
)

var _ ports.MetadataProvider = (*Metadata)(nil)

// Metadata implements ports.MetadataProvider against the document root.
type Metadata struct {
	root string
}

// NewMetadata creates a new Metadata provider for the given root directory.
func NewMetadata(root string) *Metadata {
	return &Metadata{root: filepath.Clean(root)}
}

// LastModified returns the resource's modification time in milliseconds, or
// 0 when the resource does not exist, is a directory, or cannot be examined.
func (m *Metadata) LastModified(p string) int64 {
	info, err := os.Stat(resolve(m.root, p))
	if err != nil || info.IsDir() {
		return 0
	}
	return info.ModTime().UnixMilli()
}

// resolve maps a context-relative path onto the root directory. Cleaning the
// rooted path first keeps the result beneath root.
func resolve(root, p string) string {
	return filepath.Join(root, filepath.FromSlash(path.Clean("/"+p)))
}
