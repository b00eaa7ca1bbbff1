package ledger

import (
	"strings"

	"github.com/pkg/errors"
)

//Find the block that was appended with digest d. Blocks are indexed by the
//digest they had when they were appended, changing a block's Digest field
//afterwards doesn't move it in the index.
func (c *Chain) Find(d Digest) (b *Block, err error) {
	v, ok := c.index.Get([]byte(d.String()))
	if !ok {
		return nil, ErrBlockNotExist
	}

	return c.blocks[v.(int)], nil
}

//FindPrefix finds the block whose hex digest starts with prefix, it fails if
//more then one block matches
func (c *Chain) FindPrefix(prefix string) (b *Block, err error) {
	var matches []int
	c.index.Root().WalkPrefix([]byte(strings.ToLower(prefix)), func(k []byte, v interface{}) bool {
		matches = append(matches, v.(int))
		return len(matches) > 1 //two is enough to know it's ambiguous
	})

	switch len(matches) {
	case 0:
		return nil, ErrBlockNotExist
	case 1:
		return c.blocks[matches[0]], nil
	default:
		return nil, errors.Wrapf(ErrAmbiguousPrefix, "prefix %q", prefix)
	}
}
