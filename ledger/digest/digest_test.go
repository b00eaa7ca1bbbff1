package digest_test

import (
	"encoding/hex"
	"testing"

	"github.com/advanderveer/hashchain/ledger/digest"
	"github.com/advanderveer/go-test"
	"github.com/pkg/errors"
)

func TestKnownDigests(t *testing.T) {
	for _, c := range []struct {
		name string
		exp  string
	}{
		{"sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha3-256", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"blake2b-256", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
	} {
		t.Run(c.name, func(t *testing.T) {
			f, err := digest.Lookup(c.name)
			test.Ok(t, err)

			d := digest.Sum(f, []byte("a"), []byte("bc"))
			test.Equals(t, c.exp, hex.EncodeToString(d[:]))
			test.Equals(t, digest.Size, f().Size())
		})
	}
}

func TestSumIsConcatenation(t *testing.T) {
	test.Equals(t, digest.Sum(digest.SHA256, []byte("abc")), digest.Sum(digest.SHA256, []byte("ab"), []byte("c")))
	test.Assert(t, digest.Sum(digest.SHA256, []byte("abc")) != digest.Sum(digest.SHA3, []byte("abc")), "algorithms should differ")
}

func TestLookupUnknown(t *testing.T) {
	_, err := digest.Lookup("md5")
	test.Equals(t, digest.ErrUnknownAlgorithm, errors.Cause(err))
	test.Equals(t, []string{"blake2b-256", "sha256", "sha3-256"}, digest.Names())
}
