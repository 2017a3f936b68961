package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/engine/cache"
)

func TestIsRewritable(t *testing.T) {
	assert.True(t, cache.IsRewritable("/css/site.css"))
	assert.True(t, cache.IsRewritable("/css/SITE.CSS"))
	assert.False(t, cache.IsRewritable("/images/x.png"))
	assert.False(t, cache.IsRewritable("/css/site.css.map"))
	assert.False(t, cache.IsRewritable("/plain"))
}

func TestAddLastModified_StaticResource(t *testing.T) {
	f := newFixture(t)
	f.modTimes["/images/x.png"] = 1700000000000

	got, err := f.cache.AddLastModified("/page.html", "/images/x.png", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "/images/x.png?lastModified=1il7s80", got)
}

func TestAddLastModified_RelativeWithFragment(t *testing.T) {
	f := newFixture(t)
	f.modTimes["/images/x.png"] = 1700000000000

	got, err := f.cache.AddLastModified("/docs/page.html", "../images/x.png#top", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "../images/x.png?lastModified=1il7s80#top", got)
}

func TestAddLastModified_RewritableUsesNewestTime(t *testing.T) {
	f := newFixture(t)
	f.modTimes["/css/site.css"] = 1000
	f.modTimes["/images/x.png"] = 1700000000000
	f.content["/css/site.css"] = `url(/images/x.png)`

	// The stylesheet's stamp reflects its newest dependency, not its own
	// modification time.
	got, err := f.cache.AddLastModified("/page.html", "/css/site.css", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "/css/site.css?lastModified=1il7s80", got)
}

func TestAddLastModified_PolicyTable(t *testing.T) {
	f := newFixture(t)
	f.modTimes["/a.bin"] = 1700000000000
	f.modTimes["/m.css.map"] = 1700000000000

	// Unlisted extension: untouched under ModeDefault, stamped under
	// ModeEnabled.
	got, err := f.cache.AddLastModified("/page.html", "/a.bin", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "/a.bin", got)

	got, err = f.cache.AddLastModified("/page.html", "/a.bin", domain.ModeEnabled)
	require.NoError(t, err)
	assert.Equal(t, "/a.bin?lastModified=1il7s80", got)

	// Double extension is matched by the table.
	got, err = f.cache.AddLastModified("/page.html", "/m.css.map", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "/m.css.map?lastModified=1il7s80", got)
}

func TestAddLastModified_Untouchable(t *testing.T) {
	f := newFixture(t)

	// Disabled mode, external URLs, and unknown resources all pass
	// through unchanged.
	for _, tc := range []struct {
		url  string
		mode domain.RewriteMode
	}{
		{"/images/x.png", domain.ModeDisabled},
		{"http://example.com/x.png", domain.ModeDefault},
		{"/nowhere.png", domain.ModeDefault},
	} {
		got, err := f.cache.AddLastModified("/page.html", tc.url, tc.mode)
		require.NoError(t, err)
		assert.Equal(t, tc.url, got)
	}
}

func TestAddLastModified_ExistingQuery(t *testing.T) {
	f := newFixture(t)
	f.modTimes["/images/x.png"] = 1700000000000

	got, err := f.cache.AddLastModified("/page.html", "/images/x.png?v=2", domain.ModeDefault)
	require.NoError(t, err)
	assert.Equal(t, "/images/x.png?v=2&lastModified=1il7s80", got)
}
