// Package localfs stores canonical encodings on the local filesystem.
package localfs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/ipfs/go-cid"

	"xdao.co/dhash/cidutil"
	"xdao.co/dhash/storage"
)

// CAS is a filesystem-backed content-addressable store.
//
// Objects are immutable, keyed strictly by CID, and fanned out under a
// two-character prefix directory. The store is offline and deterministic: no
// network, no wall-clock dependence. Get re-derives the CID from the bytes
// read, so on-disk corruption surfaces as ErrCIDMismatch instead of silently
// serving wrong content.
type CAS struct {
	root string
}

var _ storage.CAS = (*CAS)(nil)

// New constructs a filesystem CAS rooted at root, creating it if needed.
func New(root string) (*CAS, error) {
	if root == "" {
		return nil, errors.New("localfs: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &CAS{root: root}, nil
}

func (c *CAS) Put(encoding []byte) (cid.Cid, error) {
	id, err := cidutil.Sum(encoding)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, storage.ErrInvalidCID
	}
	if err := c.writeImmutable(id, encoding); err != nil {
		return cid.Undef, err
	}
	return id, nil
}

// writeImmutable creates the object file exactly once (O_EXCL). A second Put
// of the same CID verifies the existing bytes instead of writing: identical
// bytes make Put idempotent, anything else is an immutability violation.
func (c *CAS) writeImmutable(id cid.Cid, encoding []byte) error {
	path := c.pathFor(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if os.IsExist(err) {
			existing, rerr := c.Get(id)
			if rerr != nil || !bytes.Equal(existing, encoding) {
				return storage.ErrImmutable
			}
			return nil
		}
		return err
	}

	if _, err := f.Write(encoding); err == nil {
		err = f.Sync()
	}
	if err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

func (c *CAS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	b, err := os.ReadFile(c.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	got, err := cidutil.Sum(b)
	if err != nil {
		return nil, err
	}
	if got != id {
		return nil, storage.ErrCIDMismatch
	}
	return b, nil
}

func (c *CAS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	_, err := os.Stat(c.pathFor(id))
	return err == nil
}

func (c *CAS) pathFor(id cid.Cid) string {
	s := id.String()
	if len(s) < 2 {
		return filepath.Join(c.root, s)
	}
	return filepath.Join(c.root, s[:2], s)
}
