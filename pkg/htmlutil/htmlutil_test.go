package htmlutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/opencollector/wheelindex/pkg/htmlutil"
)

func TestVisitHTML(t *testing.T) {
	t.Parallel()
	doc, err := html.Parse(strings.NewReader(
		`<html><body><a href="x">one</a><a href="y" data-extra="z">two</a></body></html>`))
	require.NoError(t, err)

	var hrefs []string
	var texts []string
	require.NoError(t, htmlutil.VisitHTML(doc, nil, func(node *html.Node) error {
		if node.Type != html.ElementNode || node.Data != "a" {
			return nil
		}
		if href, ok := htmlutil.GetAttr(node, "", "href"); ok {
			hrefs = append(hrefs, href)
		}
		texts = append(texts, htmlutil.Text(node))
		return nil
	}))

	assert.Equal(t, []string{"x", "y"}, hrefs)
	assert.Equal(t, []string{"one", "two"}, texts)
}

func TestGetAttr(t *testing.T) {
	t.Parallel()
	val, ok := htmlutil.GetAttr(nil, "", "href")
	assert.False(t, ok)
	assert.Empty(t, val)
}
