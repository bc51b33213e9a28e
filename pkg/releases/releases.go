// Package releases models the static table that maps source-control release
// tags to the version strings that identify their wheel files.
package releases

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// Entry is one row of the release table.
type Entry struct {
	// Tag is the source-control release identifier that the wheel files
	// are attached to, e.g. "oc-v0.14.0".
	Tag string `json:"tag"`
	// Version is the substring that a wheel filename must contain in
	// order to belong to this release, e.g. "0.14.0".
	Version string `json:"version"`
}

// Table is an ordered release table.
//
// Order is significant: when version strings overlap (say "0.14.0" and
// "0.14.0.dev0"), Match resolves to whichever entry comes first in the
// table.  Put the more specific entry first.
type Table []Entry

// ErrNoRelease is the error returned by Match when no entry's version
// string occurs in the filename.
var ErrNoRelease = errors.New("no matching release")

// Match returns the first entry whose Version occurs anywhere in filename.
//
// If no entry matches, the returned error wraps ErrNoRelease and names the
// offending file.
func (tbl Table) Match(filename string) (Entry, error) {
	for _, entry := range tbl {
		if strings.Contains(filename, entry.Version) {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("%w for file %q", ErrNoRelease, filename)
}

// Config is the full static configuration for an index page.  It is
// read-only once constructed; everything downstream takes it by value.
type Config struct {
	// Project is the package name that the index page is titled after.
	Project string `json:"project"`
	// DownloadBase is the URL of the repository whose release assets
	// host the wheel files.
	DownloadBase string `json:"downloadBase"`
	// Releases is the ordered release table.
	Releases Table `json:"releases"`
}

func (cfg Config) validate() error {
	if cfg.Project == "" {
		return errors.New("project must not be empty")
	}
	if cfg.DownloadBase == "" {
		return errors.New("downloadBase must not be empty")
	}
	if len(cfg.Releases) == 0 {
		return errors.New("release table must not be empty")
	}
	for i, entry := range cfg.Releases {
		if entry.Tag == "" {
			return fmt.Errorf("releases[%d]: tag must not be empty", i)
		}
		if entry.Version == "" {
			// An empty version string would match every filename.
			return fmt.Errorf("releases[%d] (tag %q): version must not be empty", i, entry.Tag)
		}
	}
	return nil
}

// Load reads a Config from a YAML file, rejecting unknown fields.
func Load(filename string) (*Config, error) {
	yamlBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(yamlBytes, &cfg, yaml.DisallowUnknownFields); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Default returns the compiled-in configuration for the tantivy_oc_fork
// wheels.
func Default() Config {
	return Config{
		Project:      "tantivy_oc_fork",
		DownloadBase: "https://github.com/opencollector/tantivy-py",
		Releases: Table{
			{Tag: "oc-v0.16.0-dev0", Version: "0.16.0.dev0"},
			{Tag: "oc-v0.22.0-dev0", Version: "0.22.0.dev0"},
			{Tag: "oc-v0.14.0", Version: "0.14.0"},
		},
	}
}
