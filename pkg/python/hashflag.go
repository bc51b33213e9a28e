package python

import (
	"github.com/spf13/pflag"
)

// HashFlag is a pflag.Value that only accepts hashlib algorithm names, so
// that a bad --hash is rejected at parse time instead of after the wheel
// files have already been read.
type HashFlag string

var _ pflag.Value = (*HashFlag)(nil)

func (f HashFlag) String() string { return string(f) }

func (f *HashFlag) Set(val string) error {
	if _, err := NewHash(val); err != nil {
		return err
	}
	*f = HashFlag(val)
	return nil
}

func (f HashFlag) Type() string { return "algorithm" }
