// Package memory provides an in-memory CAS, the natural backing for a
// process-local digest cache.
package memory

import (
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/dhash/cidutil"
	"xdao.co/dhash/storage"
)

// CAS is an in-memory content-addressable store.
//
// Safe for concurrent use. Stored bytes are copied on Put and on Get so no
// caller can mutate an object after the fact.
type CAS struct {
	mu      sync.RWMutex
	objects map[cid.Cid][]byte
}

func New() *CAS {
	return &CAS{objects: make(map[cid.Cid][]byte)}
}

var _ storage.CAS = (*CAS)(nil)

func (c *CAS) Put(bytes []byte) (cid.Cid, error) {
	id, err := cidutil.Sum(bytes)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, storage.ErrInvalidCID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.objects[id]; !ok {
		c.objects[id] = append([]byte(nil), bytes...)
	}
	return id, nil
}

func (c *CAS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	c.mu.RLock()
	b, ok := c.objects[id]
	c.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (c *CAS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	c.mu.RLock()
	_, ok := c.objects[id]
	c.mu.RUnlock()
	return ok
}

// Len returns the number of stored objects.
func (c *CAS) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.objects)
}
