// Package ledger implements an in-memory, append-only chain of blocks where
// every block commits to the digest of its predecessor. Block fields are
// exported and can be changed freely after the fact; Validate re-derives every
// digest from the current field values and reports whether the chain still
// holds together.
//
// The hash input of a block is the concatenation of its timestamp in
// RFC3339Nano (UTC), its quoted payload and the lowercase hex digest of its
// predecessor. An absent payload or predecessor is written as the bare token
// "null", which can't be confused with a quoted payload or a 64 character hex
// digest.
//
// A Chain is not safe for concurrent use.
package ledger
