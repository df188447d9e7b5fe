// Package storage defines digest-keyed persistence collaborators for
// canonical encodings.
//
// The hashing core itself persists nothing; when callers want a cache keyed
// by consistent-hash digests (memoized results, encoding archives), these
// adapters provide it. Objects are canonical encodings stored immutably and
// addressed by CIDv1 (raw + sha2-256) — the same sha2-256 the full-mode
// digest carries, so cidutil.FromHexDigest(digest) names exactly the entry
// Put(encoding) creates.
package storage

import "github.com/ipfs/go-cid"

// CAS is a minimal content-addressable storage interface.
//
// Contract:
// - Put MUST be idempotent.
// - Stored objects MUST be immutable.
// - CIDs MUST be derived from the bytes written (callers supply canonical encodings).
// - Get MUST return ErrNotFound when the CID is absent.
type CAS interface {
	Put(bytes []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
