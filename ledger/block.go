package ledger

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/advanderveer/hashchain/ledger/digest"
)

//absent is written into the hash input for a missing payload or predecessor
const absent = "null"

//Digest identifies a block's content and lineage
type Digest [digest.Size]byte

//NilDigest is the zero value digest, it marks the missing predecessor of the genesis
var NilDigest = Digest{}

//Bytes returns the underlying bytes as a slice
func (d Digest) Bytes() []byte { return d[:] }

//IsNil returns whether this is the nil digest
func (d Digest) IsNil() bool { return d == NilDigest }

func (d Digest) String() string {
	if d.IsNil() {
		return absent
	}

	return hex.EncodeToString(d[:])
}

//Block is a single record in the chain. All fields can be changed after the
//block was created, the stored Digest will then no longer match.
type Block struct {

	// Moment the block was created, always in UTC
	Timestamp time.Time

	// Opaque data carried by the block, nil only for the genesis block
	Payload *string

	// Digest of the block before this one, NilDigest for the genesis block
	PrevDigest Digest

	// Digest computed over the three fields above when the block was created
	Digest Digest

	//arena positions of this block and its neighbours, -1 if there is none
	pos, prev, next int
}

//NewBlock creates a block and computes its digest with h
func NewBlock(h digest.Func, ts time.Time, payload *string, prev Digest) (b *Block) {
	b = &Block{
		Timestamp:  ts.UTC(),
		Payload:    payload,
		PrevDigest: prev,
		pos:        -1,
		prev:       -1,
		next:       -1,
	}

	b.Digest = b.ComputeDigest(h)
	return
}

//ComputeDigest hashes the current field values, it ignores the stored Digest
func (b *Block) ComputeDigest(h digest.Func) Digest {
	return Digest(digest.Sum(h, b.hashInput()))
}

//SetPayload replaces the payload without updating the digest
func (b *Block) SetPayload(s string) { b.Payload = &s }

func (b *Block) hashInput() []byte {
	var sb strings.Builder
	sb.WriteString(b.Timestamp.UTC().Format(time.RFC3339Nano))
	if b.Payload == nil {
		sb.WriteString(absent)
	} else {
		sb.WriteString(strconv.Quote(*b.Payload))
	}

	sb.WriteString(b.PrevDigest.String())
	return []byte(sb.String())
}

func (b *Block) String() string {
	payload := absent
	if b.Payload != nil {
		payload = *b.Payload
	}

	return fmt.Sprintf("Block(\n  Timestamp: %s,\n  Payload: %s,\n  Previous Digest: %s,\n  Digest: %s\n)\n",
		b.Timestamp.Format(time.RFC3339Nano), payload, b.PrevDigest, b.Digest)
}
