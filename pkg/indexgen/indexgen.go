// Package indexgen drives the pipeline that turns a directory of wheel
// files in to a PEP 503 index page: discover, match, checksum, link, render.
package indexgen

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/afero"

	"github.com/opencollector/wheelindex/pkg/python"
	"github.com/opencollector/wheelindex/pkg/python/bdist"
	"github.com/opencollector/wheelindex/pkg/python/pep503"
	"github.com/opencollector/wheelindex/pkg/python/pep629"
	"github.com/opencollector/wheelindex/pkg/releases"
)

// DefaultHash is the digest algorithm embedded in download URLs unless the
// caller picks another one.
const DefaultHash = "sha256"

// Generator holds everything the pipeline needs.  The zero values of FS and
// Hash mean "the host filesystem" and "sha256"; Config has no usable zero
// value and must be set.
type Generator struct {
	Config releases.Config

	// FS is the filesystem that wheel files are read from.
	FS afero.Fs

	// Hash is the hashlib algorithm name for the digest embedded in each
	// download URL.
	Hash string
}

func (gen *Generator) fillDefaults() {
	if gen.FS == nil {
		gen.FS = afero.NewOsFs()
	}
	if gen.Hash == "" {
		gen.Hash = DefaultHash
	}
}

// Scan lists the wheel files directly inside dir (no recursion), sorted
// lexicographically by name.  The directory must exist; its absence is an
// I/O error, not an empty listing.
func (gen Generator) Scan(dir string) ([]string, error) {
	gen.fillDefaults()
	infos, err := afero.ReadDir(gen.FS, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, info := range infos {
		if info.Mode().IsRegular() && strings.HasSuffix(info.Name(), ".whl") {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (gen Generator) checksum(filename string) (string, error) {
	hasher, err := python.NewHash(gen.Hash)
	if err != nil {
		return "", err
	}
	content, err := afero.ReadFile(gen.FS, filename)
	if err != nil {
		return "", err
	}
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// DownloadURL builds the release-asset URL for a wheel file, with the
// content digest in the URL fragment where installers expect it:
//
//	{base}/releases/download/{tag}/{file}#{alg}={digest}
//
// The tag and filename are percent-encoded as path segments; the fragment
// is escaped per RFC 3986.
func (gen Generator) DownloadURL(tag, filename, digest string) (string, error) {
	gen.fillDefaults()
	u, err := url.Parse(gen.Config.DownloadBase)
	if err != nil {
		return "", fmt.Errorf("downloadBase: %w", err)
	}
	u.Path = path.Join(u.Path, "releases", "download", tag, filename)
	u.Fragment = gen.Hash + "=" + digest
	return u.String(), nil
}

// Links builds one link per wheel file in dir, in Scan order.  The first
// unmatched file aborts the build; there is no partial result.
func (gen Generator) Links(ctx context.Context, dir string) ([]pep503.Link, error) {
	gen.fillDefaults()
	names, err := gen.Scan(dir)
	if err != nil {
		return nil, err
	}
	links := make([]pep503.Link, 0, len(names))
	for _, name := range names {
		entry, err := gen.Config.Releases.Match(name)
		if err != nil {
			return nil, err
		}
		if data, err := bdist.ParseFilename(name); err != nil {
			dlog.Debugf(ctx, "%s: not a well-formed wheel filename: %v", name, err)
		} else {
			dlog.Debugf(ctx, "%s: distribution=%s version=%s: release %s",
				name, data.Distribution, data.Version, entry.Tag)
		}
		digest, err := gen.checksum(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		href, err := gen.DownloadURL(entry.Tag, name, digest)
		if err != nil {
			return nil, err
		}
		links = append(links, pep503.Link{
			Text: name,
			HRef: href,
		})
	}
	return links, nil
}

// Generate renders the complete index page for dir to w.  Rendering is
// all-or-nothing: on error nothing has been written to w.
func (gen Generator) Generate(ctx context.Context, dir string, w io.Writer) error {
	links, err := gen.Links(ctx, dir)
	if err != nil {
		return err
	}
	return pep503.RenderIndex(w, gen.Config.Project, links)
}

// Verify re-hashes the wheel files in dir against the digests embedded in
// an existing index page, accumulating every mismatch rather than stopping
// at the first.
func (gen Generator) Verify(ctx context.Context, indexFile, dir string) error {
	gen.fillDefaults()
	file, err := gen.FS.Open(indexFile)
	if err != nil {
		return err
	}
	idx, err := pep503.ParseIndex(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", indexFile, err)
	}
	if err := pep629.Check(ctx, idx.RepositoryVersion); err != nil {
		return fmt.Errorf("%s: %w", indexFile, err)
	}

	var errs derror.MultiError
	for _, link := range idx.Links {
		if err := gen.verifyLink(dir, link); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", link.Text, err))
			continue
		}
		dlog.Debugf(ctx, "%s: ok", link.Text)
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (gen Generator) verifyLink(dir string, link pep503.Link) error {
	u, err := url.Parse(link.HRef)
	if err != nil {
		return err
	}
	if u.Fragment == "" {
		return errors.New("no digest fragment in URL")
	}
	alg, expected, ok := strings.Cut(u.Fragment, "=")
	if !ok {
		return fmt.Errorf("malformed digest fragment %q", u.Fragment)
	}
	hasher, err := python.NewHash(alg)
	if err != nil {
		return err
	}
	content, err := afero.ReadFile(gen.FS, filepath.Join(dir, link.Text))
	if err != nil {
		return err
	}
	hasher.Write(content)
	actual := hex.EncodeToString(hasher.Sum(nil))
	if actual != expected {
		return fmt.Errorf("checksum mismatch: %s: expected=%s actual=%s", alg, expected, actual)
	}
	return nil
}
