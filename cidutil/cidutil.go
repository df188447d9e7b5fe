// Package cidutil derives IPFS-compatible content identifiers for canonical
// encodings.
//
// The full-mode consistent-hash digest is the sha2-256 of the canonical
// bytes, so a digest maps to the CID of its canonical encoding without ever
// re-reading those bytes (FromHexDigest). Storing an encoding in a CAS and
// addressing it by digest therefore agree by construction.
package cidutil

import (
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns a CIDv1 (raw + sha2-256) derived from canonical bytes.
func Sum(canonical []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(canonical, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// SumString is Sum rendered as the canonical CIDv1 string.
func SumString(canonical []byte) string {
	id, err := Sum(canonical)
	if err != nil {
		// multihash.Sum with SHA2_256 and default length cannot fail;
		// keep the string form total for callers that key maps with it.
		return ""
	}
	return id.String()
}

// FromHexDigest wraps an existing full-mode digest (64 lowercase hex
// characters of sha2-256) into the CIDv1 its canonical encoding would be
// stored under. No hashing happens here: the digest bytes are re-encoded as
// a sha2-256 multihash.
func FromHexDigest(digest string) (cid.Cid, error) {
	raw, err := hex.DecodeString(digest)
	if err != nil {
		return cid.Undef, fmt.Errorf("cidutil: invalid hex digest: %w", err)
	}
	if len(raw) != 32 {
		return cid.Undef, fmt.Errorf("cidutil: digest is %d bytes, want 32", len(raw))
	}
	mh, err := multihash.Encode(raw, multihash.SHA2_256)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(mh)), nil
}
