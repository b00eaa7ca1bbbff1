package ledger_test

import (
	"strings"
	"testing"

	"github.com/advanderveer/hashchain/ledger"
	"github.com/advanderveer/go-test"
	"github.com/pkg/errors"
)

func TestFindByDigest(t *testing.T) {
	c1 := threeBlockChain(memConf())

	for i := 0; i < c1.Len(); i++ {
		b, err := c1.Find(c1.At(i).Digest)
		test.Ok(t, err)
		test.Equals(t, c1.At(i), b)
	}

	_, err := c1.Find(ledger.NilDigest)
	test.Equals(t, ledger.ErrBlockNotExist, err)

	t.Run("index keeps the append-time digest", func(t *testing.T) {
		b2 := c1.At(2)
		d2 := b2.Digest
		b2.Digest = ledger.NilDigest

		b, err := c1.Find(d2)
		test.Ok(t, err)
		test.Equals(t, b2, b)

		b2.Digest = d2
	})
}

func TestFindByPrefix(t *testing.T) {
	c1 := threeBlockChain(memConf())
	tail := c1.Tail()

	b, err := c1.FindPrefix(tail.Digest.String())
	test.Ok(t, err)
	test.Equals(t, tail, b)

	b, err = c1.FindPrefix(strings.ToUpper(tail.Digest.String()[:16]))
	test.Ok(t, err)
	test.Equals(t, tail, b)

	_, err = c1.FindPrefix("null")
	test.Equals(t, ledger.ErrBlockNotExist, err)

	_, err = c1.FindPrefix("")
	test.Equals(t, ledger.ErrAmbiguousPrefix, errors.Cause(err))

	t.Run("empty prefix on genesis only chain", func(t *testing.T) {
		c2 := ledger.NewChain(memConf())
		b, err := c2.FindPrefix("")
		test.Ok(t, err)
		test.Equals(t, c2.Head(), b)
	})
}
