package archive

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory LogStore for tests and local development.
// Safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	logs map[string]*OrderLog
}

var _ LogStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory cold store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{logs: make(map[string]*OrderLog)}
}

// Save stores a copy of the document keyed by order_id.
func (s *MemoryStore) Save(_ context.Context, log *OrderLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *log
	s.logs[log.OrderID] = &copied
	return nil
}

// Get returns one archived order.
func (s *MemoryStore) Get(_ context.Context, orderID string) (*OrderLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log, ok := s.logs[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *log
	return &copied, nil
}

// ListForBusiness returns a tenant's archived orders, newest first.
func (s *MemoryStore) ListForBusiness(_ context.Context, businessID string, limit, offset int) ([]*OrderLog, error) {
	if limit <= 0 {
		limit = 50
	}
	s.mu.RLock()
	matched := make([]*OrderLog, 0)
	for _, log := range s.logs {
		if log.BusinessID == businessID {
			copied := *log
			matched = append(matched, &copied)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ArchivedAt.After(matched[j].ArchivedAt)
	})
	if offset >= len(matched) {
		return []*OrderLog{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Len reports how many documents the store holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}
