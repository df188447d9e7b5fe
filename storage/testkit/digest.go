package testkit

import (
	"crypto/sha256"
	"encoding/hex"
)

// sha256Hex mirrors the full-mode digest definition without importing the
// digest package, keeping the conformance suite's expectations independent.
func sha256Hex(b []byte) string {
	s := sha256.Sum256(b)
	return hex.EncodeToString(s[:])
}
