// Package pep629 implements PEP 629 -- Versioning PyPI's Simple API.
//
// https://www.python.org/dev/peps/pep-0629/
package pep629

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/datawire/dlib/dlog"
)

// SupportedVersion is the repository API version that this tool emits and
// understands.
const SupportedVersion = "1.0"

func parse(version string) (major, minor int, err error) {
	majorStr, minorStr, ok := strings.Cut(version, ".")
	if ok {
		major, err = strconv.Atoi(majorStr)
	}
	if ok && err == nil {
		minor, err = strconv.Atoi(minorStr)
	}
	if !ok || err != nil {
		return 0, 0, fmt.Errorf("malformed repository version %q", version)
	}
	return major, minor, nil
}

// Check compares a page's declared repository version against
// SupportedVersion; per PEP 629, a newer major version is an error while a
// newer minor version is only a warning.
func Check(ctx context.Context, version string) error {
	major, minor, err := parse(version)
	if err != nil {
		return err
	}
	supMajor, supMinor, err := parse(SupportedVersion)
	if err != nil {
		return err
	}
	if major > supMajor {
		return fmt.Errorf("pypi:repository-version %s is not compatible with this tool (supports %s)",
			version, SupportedVersion)
	}
	if major == supMajor && minor > supMinor {
		dlog.Warnf(ctx, "pypi:repository-version %s is newer than this tool (supports %s)",
			version, SupportedVersion)
	}
	return nil
}
