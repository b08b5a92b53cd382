package record

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory. Used in tests and as a fallback when
// no durable store is configured.
type MemoryStore struct {
	mu      sync.Mutex
	records []Complaint

	// FailWith, when set, makes Append return the error without storing.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(ctx context.Context, c Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	s.records = append(s.records, c)
	return nil
}

// Records returns a snapshot of everything appended so far.
func (s *MemoryStore) Records() []Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Complaint(nil), s.records...)
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
