package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stamp/internal/core/domain"
)

func TestParseRewriteMode(t *testing.T) {
	cases := map[string]domain.RewriteMode{
		"true":  domain.ModeEnabled,
		"TRUE":  domain.ModeEnabled,
		"false": domain.ModeDisabled,
		"False": domain.ModeDisabled,
		"":      domain.ModeDefault,
		"auto":  domain.ModeDefault,
		"1":     domain.ModeDefault,
	}
	for value, want := range cases {
		assert.Equal(t, want, domain.ParseRewriteMode(value), "value %q", value)
	}
}

func TestRewriteMode_Rewrite(t *testing.T) {
	assert.True(t, domain.ModeDefault.Rewrite())
	assert.True(t, domain.ModeEnabled.Rewrite())
	assert.False(t, domain.ModeDisabled.Rewrite())
}

func TestEncodeModTime(t *testing.T) {
	// 1700000000000 ms -> 1700000000 s -> base 32
	assert.Equal(t, "1il7s80", domain.EncodeModTime(1700000000000))
	// Truncation, not rounding
	assert.Equal(t, "1il7s80", domain.EncodeModTime(1700000000999))
	assert.Equal(t, "0", domain.EncodeModTime(0))
}

func TestNewArtifact_NewestModTime(t *testing.T) {
	a := domain.NewArtifact(100, []byte("body"), map[string]int64{
		"/images/a.png": 300,
		"/images/b.png": 200,
	})
	assert.Equal(t, int64(300), a.NewestModTime)

	// Source newer than every dependency
	b := domain.NewArtifact(500, nil, map[string]int64{"/x": 400})
	assert.Equal(t, int64(500), b.NewestModTime)

	// No dependencies
	c := domain.NewArtifact(42, nil, nil)
	assert.Equal(t, int64(42), c.NewestModTime)
}

func TestKey_Identity(t *testing.T) {
	enabled := domain.Key{Mode: domain.ModeEnabled, Path: "/css/site.css"}
	disabled := domain.Key{Mode: domain.ModeDisabled, Path: "/css/site.css"}
	assert.NotEqual(t, enabled, disabled)
	assert.Equal(t, enabled, domain.Key{Mode: domain.ModeEnabled, Path: "/css/site.css"})
}
