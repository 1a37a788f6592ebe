package enumstore

import (
	"context"
	"sync"
)

// MemStore keeps enumerations in process memory. State is lost on restart,
// which is fine for development and tests and wrong for anything else.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]*Enumeration
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]*Enumeration)}
}

// Get retrieves an enumeration by ID.
func (s *MemStore) Get(ctx context.Context, id string) (*Enumeration, error) {
	s.mu.RLock()
	e, ok := s.data[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if e.IsExpired() {
		return nil, ErrExpired
	}
	return clone(e), nil
}

// Put stores a copy of the enumeration.
func (s *MemStore) Put(ctx context.Context, e *Enumeration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[e.ID] = clone(e)
	return nil
}

// Delete removes an enumeration.
func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// Cleanup removes expired enumerations.
func (s *MemStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.data {
		if e.IsExpired() {
			delete(s.data, id)
		}
	}
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemStore) Close(ctx context.Context) error {
	return nil
}

// clone copies an enumeration so callers and the store never share the
// cursor slice.
func clone(e *Enumeration) *Enumeration {
	c := *e
	c.Elements = append([]string(nil), e.Elements...)
	return &c
}

// Ensure MemStore implements Store.
var _ Store = (*MemStore)(nil)
