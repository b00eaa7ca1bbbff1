package ledger

import "github.com/pkg/errors"

var (
	ErrDigestMismatch  = errors.New("stored digest doesn't match recomputed digest")
	ErrLinkMismatch    = errors.New("previous digest doesn't match predecessor's recomputed digest")
	ErrBlockNotExist   = errors.New("block doesn't exist")
	ErrAmbiguousPrefix = errors.New("digest prefix matches more then one block")
)
