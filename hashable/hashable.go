// Package hashable defines the consistent-hash capability contract.
//
// A consistent hash is a deterministic digest of an object's semantic
// content: stable across processes, machines and time. This is deliberately
// NOT the runtime's identity hash — identity hashes are allowed to vary
// between runs, while a consistent hash must not.
package hashable

import "errors"

// ErrUnimplemented is returned when a type claims the Hashable capability
// without supplying a working ConsistentHash. Callers must treat this as a
// contract violation: the call fails, it never yields a default digest.
var ErrUnimplemented = errors.New("hashable: ConsistentHash must be implemented")

// Hashable is implemented by objects that can produce a consistent hash of
// their semantic content.
//
// Contract:
//   - Deterministic: repeated calls on an unchanged logical state return the
//     identical digest, across processes and machines.
//   - Identity-independent: the digest must not depend on memory addresses,
//     creation timestamps or any other incidental property. Implementers are
//     expected to exclude volatile fields (e.g. a creation time) from the
//     hashed content.
//   - Equality-consistent: two objects the domain considers equal must
//     produce equal digests. The runtime cannot enforce this; it is the
//     implementer's obligation.
//   - Pure: no side effects, reads only the object's logical fields.
//
// With useApproximation set, the returned digest is a shorter deterministic
// derivation of the same canonical content (see package digest). Approximate
// digests trade collision resistance for length; callers needing strong
// collision resistance must pass false.
type Hashable interface {
	ConsistentHash(useApproximation bool) (string, error)
}

// Unimplemented can be embedded by types that declare the capability before
// providing a real implementation. Its ConsistentHash fails with
// ErrUnimplemented so the violation surfaces at the first call.
type Unimplemented struct{}

var _ Hashable = Unimplemented{}

func (Unimplemented) ConsistentHash(bool) (string, error) {
	return "", ErrUnimplemented
}

// IsUnimplemented reports whether err is (or wraps) ErrUnimplemented.
func IsUnimplemented(err error) bool { return errors.Is(err, ErrUnimplemented) }
