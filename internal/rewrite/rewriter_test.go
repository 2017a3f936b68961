package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.trai.ch/stamp/internal/rewrite"
	"go.uber.org/mock/gomock"
)

// 1700000000000 ms encodes to "1il7s80" (seconds in base 32).
const encoded = "1il7s80"

func TestRewrite_AppendsParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().LastModified("/images/x.png").Return(int64(1700000000000))

	r := rewrite.NewRewriter(meta)
	res, err := r.Rewrite("/css/site.css", []byte(`.a { background: url(/images/x.png); }`), domain.ModeDefault)
	require.NoError(t, err)

	assert.Equal(t, `.a { background: url(/images/x.png?lastModified=`+encoded+`); }`, string(res.Bytes))
	assert.Equal(t, map[string]int64{"/images/x.png": 1700000000000}, res.Dependencies)
}

func TestRewrite_ExistingQueryUsesAmpersand(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().LastModified("/images/x.png").Return(int64(1700000000000))

	r := rewrite.NewRewriter(meta)
	res, err := r.Rewrite("/css/site.css", []byte(`url('/images/x.png?v=2')`), domain.ModeDefault)
	require.NoError(t, err)

	// Quotes are outside the rewritten token and survive verbatim.
	assert.Equal(t, `url('/images/x.png?v=2&lastModified=`+encoded+`')`, string(res.Bytes))
}

func TestRewrite_ExternalReferenceUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)

	r := rewrite.NewRewriter(meta)
	input := `url(http://example.com/x.png)`
	res, err := r.Rewrite("/css/site.css", []byte(input), domain.ModeDefault)
	require.NoError(t, err)

	assert.Equal(t, input, string(res.Bytes))
	assert.Empty(t, res.Dependencies)
}

func TestRewrite_UnknownResourceUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().LastModified("/missing.png").Return(int64(0))

	r := rewrite.NewRewriter(meta)
	input := `url(/missing.png)`
	res, err := r.Rewrite("/css/site.css", []byte(input), domain.ModeDefault)
	require.NoError(t, err)

	assert.Equal(t, input, string(res.Bytes))
	assert.Empty(t, res.Dependencies)
}

func TestRewrite_FragmentAfterParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().LastModified("/shared/x.png").Return(int64(1700000000000))

	r := rewrite.NewRewriter(meta)
	res, err := r.Rewrite("/css/site.css", []byte(`url(../shared/x.png#frag)`), domain.ModeDefault)
	require.NoError(t, err)

	assert.Equal(t, `url(../shared/x.png?lastModified=`+encoded+`#frag)`, string(res.Bytes))
	assert.Equal(t, map[string]int64{"/shared/x.png": 1700000000000}, res.Dependencies)
}

func TestRewrite_NoReferencesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)

	r := rewrite.NewRewriter(meta)
	input := ".a { color: red; }\n\n/* url-free */\n"
	res, err := r.Rewrite("/css/site.css", []byte(input), domain.ModeDefault)
	require.NoError(t, err)

	assert.Equal(t, input, string(res.Bytes))
	assert.Empty(t, res.Dependencies)
}

func TestRewrite_DisabledModeNormalizesOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	// No LastModified calls expected when rewriting is disabled.

	r := rewrite.NewRewriter(meta)
	res, err := r.Rewrite("/css/site.css", []byte(`url(/images/x.png)`), domain.ModeDisabled)
	require.NoError(t, err)

	assert.Equal(t, `url(/images/x.png)`, string(res.Bytes))
	assert.Empty(t, res.Dependencies)
}

func TestRewrite_PreservesSurroundingContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)
	meta.EXPECT().LastModified("/a.png").Return(int64(1700000000000))
	meta.EXPECT().LastModified("/b.png").Return(int64(0))

	r := rewrite.NewRewriter(meta)
	input := "/* head */\n.a { background: url(/a.png); }\n.b { background: url(/b.png); }\n/* tail */\n"
	res, err := r.Rewrite("/css/site.css", []byte(input), domain.ModeDefault)
	require.NoError(t, err)

	want := "/* head */\n.a { background: url(/a.png?lastModified=" + encoded + "); }\n.b { background: url(/b.png); }\n/* tail */\n"
	assert.Equal(t, want, string(res.Bytes))
	assert.Equal(t, map[string]int64{"/a.png": 1700000000000}, res.Dependencies)
}

func TestRewrite_MalformedReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	meta := mocks.NewMockMetadataProvider(ctrl)

	r := rewrite.NewRewriter(meta)
	_, err := r.Rewrite("/css/site.css", []byte(`url(/x%zz.png)`), domain.ModeDefault)
	require.ErrorIs(t, err, domain.ErrMalformedReference)
}
