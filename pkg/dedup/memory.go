package dedup

import (
	"context"
	"sync"
	"time"
)

// sweepEvery bounds how often the expired-key sweep runs.
const sweepEvery = 256

// MemoryDeduper is a process-local Deduper for tests and single-replica
// deployments without redis. Safe for concurrent use.
type MemoryDeduper struct {
	mu     sync.Mutex
	window time.Duration
	expiry map[string]time.Time
	marks  int
}

var _ Deduper = (*MemoryDeduper)(nil)

// NewMemoryDeduper creates an empty deduper. window <= 0 uses DefaultWindow.
func NewMemoryDeduper(window time.Duration) *MemoryDeduper {
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryDeduper{window: window, expiry: make(map[string]time.Time)}
}

// Seen atomically marks the key and reports whether it already existed.
func (d *MemoryDeduper) Seen(_ context.Context, key string) (bool, error) {
	now := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()

	if exp, ok := d.expiry[key]; ok && now.Before(exp) {
		return true, nil
	}
	d.expiry[key] = now.Add(d.window)

	d.marks++
	if d.marks%sweepEvery == 0 {
		for k, exp := range d.expiry {
			if !now.Before(exp) {
				delete(d.expiry, k)
			}
		}
	}
	return false, nil
}
