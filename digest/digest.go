// Package digest maps canonical encodings to digest text.
//
// Digests are pure functions of the canonical bytes: same bytes, same
// digest, on any machine at any time. Full-mode digests are lowercase hex of
// a standard cryptographic hash; approximate-mode digests are a short
// deterministic XOF read over the same bytes, for contexts where full-length
// hashes are impractical (directory names, display).
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/sha3"
)

// Algorithm selects the full-mode hash function.
type Algorithm string

const (
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	SHA3256 Algorithm = "sha3-256"
)

const (
	// FullLength is the hex length of a default (sha256) full-mode digest.
	FullLength = 2 * sha256.Size

	// ApproximateLength is the hex length of an approximate-mode digest.
	// Strictly shorter than any full-mode digest, so the two modes can never
	// collide in format when stored together.
	ApproximateLength = 2 * approximateBytes

	approximateBytes = 8
)

// Sum returns the default full-mode digest of canonical bytes: 64 lowercase
// hex characters of sha2-256. This is the digest the rest of the repository
// assumes (cidutil maps it to a CIDv1 without re-hashing).
func Sum(canonical []byte) string {
	s := sha256.Sum256(canonical)
	return hex.EncodeToString(s[:])
}

// SumWith returns the full-mode digest of canonical bytes under alg.
func SumWith(alg Algorithm, canonical []byte) (string, error) {
	switch alg {
	case SHA256:
		return Sum(canonical), nil
	case SHA512:
		s := sha512.Sum512(canonical)
		return hex.EncodeToString(s[:]), nil
	case SHA3256:
		s := sha3.Sum256(canonical)
		return hex.EncodeToString(s[:]), nil
	default:
		return "", fmt.Errorf("digest: unsupported algorithm %q", alg)
	}
}

// Approximate returns the approximate-mode digest of canonical bytes:
// 16 lowercase hex characters from a SHAKE256 read.
//
// An XOF gives a principled short digest at any length rather than an ad hoc
// truncation of a fixed-width hash; the result is still deterministic and a
// function of the canonical bytes alone. Approximate digests trade collision
// probability for length.
func Approximate(canonical []byte) string {
	x := xof.SHAKE256.New()
	_, _ = x.Write(canonical)
	out := make([]byte, approximateBytes)
	_, _ = x.Read(out)
	return hex.EncodeToString(out)
}
