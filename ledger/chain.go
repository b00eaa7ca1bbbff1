package ledger

import (
	"strings"
	"time"

	iradix "github.com/hashicorp/go-immutable-radix"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//Chain is an arena of blocks where each block commits to the digest of the
//block before it. Blocks are only ever appended.
type Chain struct {
	conf   *Conf
	logs   *zap.Logger
	blocks []*Block
	tail   int

	//hex digest at append time to arena position
	index *iradix.Tree
}

//NewChain creates a chain holding just the genesis block. A nil conf uses the
//defaults, zero fields are filled in from DefaultConf.
func NewChain(conf *Conf) (c *Chain) {
	conf = conf.withDefaults()
	c = &Chain{
		conf:  conf,
		logs:  conf.Logger,
		index: iradix.New(),
	}

	c.link(NewBlock(conf.Hash, conf.Clock.Now(), nil, NilDigest))
	return
}

//Head returns the genesis block
func (c *Chain) Head() *Block { return c.blocks[0] }

//Tail returns the most recently appended block
func (c *Chain) Tail() *Block { return c.blocks[c.tail] }

//Len returns the number of blocks, including the genesis
func (c *Chain) Len() int { return len(c.blocks) }

//At returns the block at position i, the genesis is at 0. Returns nil if there
//is no such block
func (c *Chain) At(i int) *Block {
	if i < 0 || i >= len(c.blocks) {
		return nil
	}

	return c.blocks[i]
}

//Next returns the block after b or nil if b is the tail
func (c *Chain) Next(b *Block) *Block { return c.At(b.next) }

//Prev returns the block before b or nil if b is the genesis
func (c *Chain) Prev(b *Block) *Block { return c.At(b.prev) }

//Append a block carrying the payload to the chain. The new block commits to
//the digest that is currently stored in the tail.
func (c *Chain) Append(payload string) (b *Block) {
	b = NewBlock(c.conf.Hash, c.conf.Clock.Now(), &payload, c.Tail().Digest)
	c.link(b)

	c.logs.Debug("appended block",
		zap.Int("position", b.pos),
		zap.Stringer("digest", b.Digest),
		zap.Int("payload_len", len(payload)))
	c.conf.Observer.ObserveAppend(len(c.blocks))
	return
}

//link the block after the current tail and make it the new tail
func (c *Chain) link(b *Block) {
	b.pos = len(c.blocks)
	if b.pos > 0 {
		c.blocks[c.tail].next = b.pos
		b.prev = c.tail
	}

	c.blocks = append(c.blocks, b)
	c.tail = b.pos
	c.index, _, _ = c.index.Insert([]byte(b.Digest.String()), b.pos)
}

//Validate returns whether every block's stored digest matches its fields and
//every block commits to the actual digest of its predecessor
func (c *Chain) Validate() bool { return c.Verify() == nil }

//IsValid is an alias for Validate
func (c *Chain) IsValid() bool { return c.Validate() }

//Verify walks from the tail to the genesis and returns the first inconsistency
//it finds, wrapped with the position of the offending block. It returns nil if
//the chain is intact. The chain is never modified.
func (c *Chain) Verify() (err error) {
	started := time.Now()
	defer func() { c.conf.Observer.ObserveValidate(err, started) }()

	h := c.conf.Hash
	curr := c.blocks[c.tail]
	actual := curr.ComputeDigest(h)
	for {
		if actual != curr.Digest {
			return c.invalid(ErrDigestMismatch, curr)
		}

		if curr.prev < 0 {
			return nil //reached the genesis
		}

		//the predecessor's digest is recomputed once, it is re-used when
		//checking the predecessor itself
		prev := c.blocks[curr.prev]
		pactual := prev.ComputeDigest(h)
		if curr.PrevDigest != pactual {
			return c.invalid(ErrLinkMismatch, curr)
		}

		curr, actual = prev, pactual
	}
}

func (c *Chain) invalid(cause error, b *Block) error {
	c.logs.Debug("chain is invalid",
		zap.Int("position", b.pos),
		zap.Stringer("digest", b.Digest),
		zap.NamedError("reason", cause))
	return errors.Wrapf(cause, "block %d", b.pos)
}

//Walk the chain from the tail towards the genesis, stops at the first error
//returned by f
func (c *Chain) Walk(f func(i int, b *Block) error) (err error) {
	for i := c.tail; i >= 0; i = c.blocks[i].prev {
		err = f(i, c.blocks[i])
		if err != nil {
			return err
		}
	}

	return
}

//String dumps every block from the genesis to the tail
func (c *Chain) String() string {
	var sb strings.Builder
	for b := c.Head(); b != nil; b = c.Next(b) {
		sb.WriteString(b.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
