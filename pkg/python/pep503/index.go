// Package pep503 implements the producer side of PEP 503 -- Simple
// Repository API.
//
// https://www.python.org/dev/peps/pep-0503/
package pep503

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/opencollector/wheelindex/pkg/htmlutil"
	"github.com/opencollector/wheelindex/pkg/python/pep629"
)

// RepositoryVersion is the API version advertised in the
// "pypi:repository-version" meta tag (PEP 629).
const RepositoryVersion = pep629.SupportedVersion

// Link is one anchor element on an index page: the displayed filename and
// the (already percent-encoded) download URL it points at.
type Link struct {
	Text string
	HRef string
}

// Index is a parsed index page.
type Index struct {
	RepositoryVersion string
	Project           string
	Links             []Link
}

var reNormalize = regexp.MustCompile("[-_.]+")

// Normalize performs PEP 503 project-name normalization.
func Normalize(str string) string {
	return strings.ToLower(reNormalize.ReplaceAllLiteralString(str, "-"))
}

// The anchors are emitted one per line in input order; html/template takes
// care of the attribute and text escaping that installers rely on.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta name="pypi:repository-version" content="{{ .RepositoryVersion }}">
    <title>Links for {{ .Project }}</title>
  </head>
  <body>
    <h1>Links for {{ .Project }}</h1>
{{- range .Links }}
    <a href="{{ .HRef }}">{{ .Text }}</a>
{{- end }}
  </body>
</html>
`))

// RenderIndex writes a complete index page for project to w.
//
// The page is rendered to a buffer first; on error nothing is written to w,
// so a failed render never leaves a truncated page behind.
func RenderIndex(w io.Writer, project string, links []Link) error {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, Index{
		RepositoryVersion: RepositoryVersion,
		Project:           project,
		Links:             links,
	})
	if err != nil {
		return fmt.Errorf("pep503.RenderIndex: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("pep503.RenderIndex: %w", err)
	}
	return nil
}

// ErrNotIndex is the error returned by ParseIndex for HTML that carries no
// "pypi:repository-version" meta tag.
var ErrNotIndex = errors.New("not a PEP 503 index page: no pypi:repository-version meta tag")

// ParseIndex reads an index page back in to structured form.  Anchors are
// returned in document order; hrefs are kept verbatim (still
// percent-encoded), matching what an installer would see.
func ParseIndex(r io.Reader) (*Index, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("pep503.ParseIndex: %w", err)
	}

	var idx Index
	if err := htmlutil.VisitHTML(doc, nil, func(node *html.Node) error {
		if node.Type != html.ElementNode {
			return nil
		}
		switch node.Data {
		case "meta":
			if name, _ := htmlutil.GetAttr(node, "", "name"); name == "pypi:repository-version" {
				idx.RepositoryVersion, _ = htmlutil.GetAttr(node, "", "content")
			}
		case "title":
			idx.Project = strings.TrimPrefix(htmlutil.Text(node), "Links for ")
		case "a":
			link := Link{
				Text: htmlutil.Text(node),
			}
			link.HRef, _ = htmlutil.GetAttr(node, "", "href")
			idx.Links = append(idx.Links, link)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("pep503.ParseIndex: %w", err)
	}

	if idx.RepositoryVersion == "" {
		return nil, ErrNotIndex
	}
	return &idx, nil
}
