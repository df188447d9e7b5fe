// Package dhash computes consistent hashes: deterministic, identity-
// independent digests of a value's semantic content.
//
// The pipeline is canonicalize-then-digest: values are reduced to the
// canonical byte encoding (package canonical) and the digest is computed
// over those bytes alone (package digest). Objects opt into hashing by
// implementing hashable.Hashable; a typical implementation hashes a mapping
// of its semantic fields and deliberately leaves out volatile ones:
//
//	type Model struct {
//		Seed    int64
//		started time.Time
//	}
//
//	func (m *Model) ConsistentHash(useApproximation bool) (string, error) {
//		// started is excluded: two models configured identically must
//		// hash identically no matter when they were created.
//		if useApproximation {
//			return dhash.ApproximateHash(map[string]any{"seed": m.Seed})
//		}
//		return dhash.Hash(map[string]any{"seed": m.Seed})
//	}
package dhash

import (
	"xdao.co/dhash/canonical"
	"xdao.co/dhash/digest"
)

// Hash returns the full-mode consistent hash of v: 64 lowercase hex
// characters of sha2-256 over v's canonical encoding. See canonical.FromGo
// for the supported value union.
func Hash(v any) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return digest.Sum(b), nil
}

// ApproximateHash returns the approximate-mode consistent hash of v:
// a 16-character deterministic short digest of the same canonical encoding.
func ApproximateHash(v any) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return digest.Approximate(b), nil
}

// HashWith is Hash under an explicit full-mode algorithm.
func HashWith(alg digest.Algorithm, v any) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return digest.SumWith(alg, b)
}

// Encode returns v's canonical encoding. Storage collaborators persist these
// bytes keyed by the digest's CID (see cidutil and storage).
func Encode(v any) ([]byte, error) {
	val, err := canonical.FromGo(v)
	if err != nil {
		return nil, err
	}
	return canonical.Encode(val)
}
