package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/fs"
	"go.trai.ch/stamp/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestMetadata_LastModified(t *testing.T) {
	root := t.TempDir()
	p := writeFile(t, root, "images/x.png", "png")

	modTime := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	require.NoError(t, os.Chtimes(p, modTime, modTime))

	meta := fs.NewMetadata(root)
	assert.Equal(t, modTime.UnixMilli(), meta.LastModified("/images/x.png"))
}

func TestMetadata_UnknownIsZero(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "images/x.png", "png")

	meta := fs.NewMetadata(root)
	assert.Equal(t, int64(0), meta.LastModified("/missing.png"))
	// Directories report no modification time
	assert.Equal(t, int64(0), meta.LastModified("/images"))
}

func TestMetadata_PathStaysBeneathRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x.png", "png")

	meta := fs.NewMetadata(root)
	assert.Equal(t, meta.LastModified("/x.png"), meta.LastModified("/../../x.png"))
}

func TestReader_Open(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "css/site.css", ".a {}")

	reader := fs.NewReader(root)
	rc, err := reader.Open("/css/site.css")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, ".a {}", string(body))
}

func TestReader_NotFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "css/site.css", ".a {}")

	reader := fs.NewReader(root)
	_, err := reader.Open("/css/missing.css")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// A directory is not a readable resource either.
	_, err = reader.Open("/css")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWalker_List(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "css/site.css", "")
	writeFile(t, root, "css/theme/dark.css", "")
	writeFile(t, root, "images/x.png", "")

	walker := fs.NewWalker(root)
	paths, err := walker.List("css")
	require.NoError(t, err)
	assert.Equal(t, []string{"/css/site.css", "/css/theme/dark.css"}, paths)
}
