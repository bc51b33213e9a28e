// Package bdist deals with the binary distribution ("wheel") filename
// convention.
//
// https://packaging.python.org/en/latest/specifications/binary-distribution-format/
package bdist

import (
	"fmt"
	"regexp"
)

// FileNameData is the decomposition of a wheel filename
// `{distribution}-{version}(-{build tag})?-{python tag}-{abi tag}-{platform tag}.whl`.
//
// Version is kept as the literal string from the filename; release matching
// is substring-based and never compares versions.
type FileNameData struct {
	Distribution string
	Version      string
	BuildTag     string
	Python       string
	ABI          string
	Platform     string
}

var reFilename = regexp.MustCompile(regexp.MustCompile(`\s+`).ReplaceAllString(`
		^(?P<distribution>[^-]+)
		-(?P<version>[^-]+)
		(?:-(?P<build>[0-9][^-]*))?
		-(?P<python>[^-]+)
		-(?P<abi>[^-]+)
		-(?P<platform>[^-]+)
		\.whl$`, ``))

// ParseFilename decomposes a wheel filename.
func ParseFilename(filename string) (*FileNameData, error) {
	match := reFilename.FindStringSubmatch(filename)
	if match == nil {
		return nil, fmt.Errorf("invalid wheel filename: %q", filename)
	}
	return &FileNameData{
		Distribution: match[reFilename.SubexpIndex("distribution")],
		Version:      match[reFilename.SubexpIndex("version")],
		BuildTag:     match[reFilename.SubexpIndex("build")],
		Python:       match[reFilename.SubexpIndex("python")],
		ABI:          match[reFilename.SubexpIndex("abi")],
		Platform:     match[reFilename.SubexpIndex("platform")],
	}, nil
}
