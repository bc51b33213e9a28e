package pep503_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencollector/wheelindex/pkg/python/pep503"
	"github.com/opencollector/wheelindex/pkg/testutil"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "tantivy-oc-fork", pep503.Normalize("tantivy_oc_fork"))
	assert.Equal(t, "friendly-bard", pep503.Normalize("Friendly-_.Bard"))
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()
	links := []pep503.Link{
		{
			Text: "tantivy_oc_fork-0.14.0-cp39-cp39-manylinux_2_28_x86_64.whl",
			HRef: "https://github.com/opencollector/tantivy-py/releases/download/oc-v0.14.0/tantivy_oc_fork-0.14.0-cp39-cp39-manylinux_2_28_x86_64.whl#sha256=0123abc",
		},
		{
			Text: "tantivy_oc_fork-0.22.0.dev0-cp311-cp311-macosx_11_0_arm64.whl",
			HRef: "https://github.com/opencollector/tantivy-py/releases/download/oc-v0.22.0-dev0/tantivy_oc_fork-0.22.0.dev0-cp311-cp311-macosx_11_0_arm64.whl#sha256=4567def",
		},
	}

	var out strings.Builder
	require.NoError(t, pep503.RenderIndex(&out, "tantivy_oc_fork", links))

	//nolint:lll // golden document
	expected := `<!DOCTYPE html>
<html>
  <head>
    <meta name="pypi:repository-version" content="1.0">
    <title>Links for tantivy_oc_fork</title>
  </head>
  <body>
    <h1>Links for tantivy_oc_fork</h1>
    <a href="https://github.com/opencollector/tantivy-py/releases/download/oc-v0.14.0/tantivy_oc_fork-0.14.0-cp39-cp39-manylinux_2_28_x86_64.whl#sha256=0123abc">tantivy_oc_fork-0.14.0-cp39-cp39-manylinux_2_28_x86_64.whl</a>
    <a href="https://github.com/opencollector/tantivy-py/releases/download/oc-v0.22.0-dev0/tantivy_oc_fork-0.22.0.dev0-cp311-cp311-macosx_11_0_arm64.whl#sha256=4567def">tantivy_oc_fork-0.22.0.dev0-cp311-cp311-macosx_11_0_arm64.whl</a>
  </body>
</html>
`
	testutil.AssertEqualText(t, expected, out.String())
}

func TestRenderIndexEmpty(t *testing.T) {
	t.Parallel()
	var out strings.Builder
	require.NoError(t, pep503.RenderIndex(&out, "tantivy_oc_fork", nil))

	expected := `<!DOCTYPE html>
<html>
  <head>
    <meta name="pypi:repository-version" content="1.0">
    <title>Links for tantivy_oc_fork</title>
  </head>
  <body>
    <h1>Links for tantivy_oc_fork</h1>
  </body>
</html>
`
	testutil.AssertEqualText(t, expected, out.String())
}

// Link text and hrefs with HTML-special characters must be escaped on the
// way out, and must read back unharmed.
func TestRenderIndexEscaping(t *testing.T) {
	t.Parallel()
	links := []pep503.Link{
		{
			Text: `nasty & <odd> "name".whl`,
			HRef: "https://example.com/releases/download/v1/nasty%20%26%20name.whl#sha256=0123abc",
		},
	}

	var out strings.Builder
	require.NoError(t, pep503.RenderIndex(&out, `proj & <sons>`, links))
	rendered := out.String()

	assert.Contains(t, rendered, "Links for proj &amp; &lt;sons&gt;")
	assert.Contains(t, rendered, "nasty &amp; &lt;odd&gt; &#34;name&#34;.whl")

	idx, err := pep503.ParseIndex(strings.NewReader(rendered))
	require.NoError(t, err)
	assert.Equal(t, `proj & <sons>`, idx.Project)
	require.Len(t, idx.Links, 1)
	assert.Equal(t, links[0], idx.Links[0])
}

func TestParseIndexRoundTrip(t *testing.T) {
	t.Parallel()
	links := []pep503.Link{
		{Text: "a-1.0-py3-none-any.whl", HRef: "https://example.com/a#sha256=aa"},
		{Text: "b-2.0-py3-none-any.whl", HRef: "https://example.com/b#sha256=bb"},
	}

	var out strings.Builder
	require.NoError(t, pep503.RenderIndex(&out, "proj", links))

	idx, err := pep503.ParseIndex(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, pep503.RepositoryVersion, idx.RepositoryVersion)
	assert.Equal(t, "proj", idx.Project)
	testutil.AssertEqualValues(t, links, idx.Links)
}

func TestParseIndexNotIndex(t *testing.T) {
	t.Parallel()
	_, err := pep503.ParseIndex(strings.NewReader("<!DOCTYPE html><html><body>hi</body></html>"))
	assert.ErrorIs(t, err, pep503.ErrNotIndex)
}
