// Package python implements Python-isms that the other packages lean on.
package python

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// HashlibAlgorithmsGuaranteed is Python `hashlib.algorithms_guaranteed`,
// keyed by the names that appear in PEP 503 URL fragments.
//
//nolint:gochecknoglobals // Would be 'const'.
var HashlibAlgorithmsGuaranteed = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha224": sha256.New224,
	"sha256": sha256.New,
	"sha384": sha512.New384,
	"sha512": sha512.New,
}

// NewHash returns a fresh hash.Hash for a Python hashlib algorithm name.
func NewHash(name string) (hash.Hash, error) {
	newHash, ok := HashlibAlgorithmsGuaranteed[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash algorithm %q", name)
	}
	return newHash(), nil
}
