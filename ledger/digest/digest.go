// Package digest provides the 32 byte hash functions a chain can bind its
// blocks with.
package digest

import (
	"crypto/sha256"
	"hash"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

//Size of every digest produced by the functions in this package
const Size = 32

//ErrUnknownAlgorithm is returned when looking up a function by a name that
//isn't registered
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

//Func returns a fresh hash that writes Size bytes on Sum
type Func func() hash.Hash

var (
	//SHA256 is the default
	SHA256 Func = sha256.New

	//SHA3 is the fixed-output Keccak variant with a 256 bit output
	SHA3 Func = sha3.New256

	//BLAKE2b is unkeyed blake2b with a 256 bit output
	BLAKE2b Func = func() hash.Hash {
		h, err := blake2b.New256(nil)
		if err != nil {
			panic("digest: failed to create blake2b hash: " + err.Error())
		}

		return h
	}
)

var algorithms = map[string]Func{
	"sha256":      SHA256,
	"sha3-256":    SHA3,
	"blake2b-256": BLAKE2b,
}

//Lookup a digest function by its name
func Lookup(name string) (f Func, err error) {
	f, ok := algorithms[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "digest: %q", name)
	}

	return f, nil
}

//Names returns the registered algorithm names in sorted order
func Names() (names []string) {
	for name := range algorithms {
		names = append(names, name)
	}

	sort.Strings(names)
	return
}

//Sum hashes the concatenation of all parts with a fresh hash from f
func Sum(f Func, parts ...[]byte) (d [Size]byte) {
	h := f()
	for _, p := range parts {
		h.Write(p) //hash writes never return an error
	}

	copy(d[:], h.Sum(nil))
	return
}
