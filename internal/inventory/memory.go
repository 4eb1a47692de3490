package inventory

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps capacities in process memory, seeded with defaults.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewMemoryStore(defaults map[string]int) *MemoryStore {
	counts := make(map[string]int, len(defaults))
	for k, v := range defaults {
		counts[k] = v
	}
	return &MemoryStore{counts: counts}
}

func (s *MemoryStore) Get(_ context.Context, roomType string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.counts[roomType]
	if !ok {
		return 0, fmt.Errorf("unknown room type %q", roomType)
	}
	return n, nil
}

func (s *MemoryStore) Set(_ context.Context, roomType string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[roomType] = count
	return nil
}

func (s *MemoryStore) All(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
