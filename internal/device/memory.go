package device

import "sync"

// MemoryStats represents accelerator memory usage in bytes.
//
// Total is 0 when the runtime cannot report device capacity.
type MemoryStats struct {
	Total         uint64
	Allocated     uint64
	PeakAllocated uint64
	Cached        uint64
	PeakCached    uint64
}

// Tracker accounts for memory placed on one accelerator.
// It is safe for concurrent use.
type Tracker struct {
	mu        sync.RWMutex
	total     uint64
	allocated uint64
	peakAlloc uint64
	cached    uint64
	peakCache uint64
}

// NewTracker creates a tracker for a device with the given capacity.
func NewTracker(total uint64) *Tracker {
	return &Tracker{total: total}
}

// Allocate records an allocation of size bytes.
func (t *Tracker) Allocate(size uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.allocated += size
	if t.allocated > t.peakAlloc {
		t.peakAlloc = t.allocated
	}
}

// Free records the release of size bytes previously allocated.
func (t *Tracker) Free(size uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.allocated >= size {
		t.allocated -= size
	} else {
		t.allocated = 0
	}
}

// Cache records size bytes moving into the reuse pool.
func (t *Tracker) Cache(size uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cached += size
	if t.cached > t.peakCache {
		t.peakCache = t.cached
	}
}

// Uncache records size bytes leaving the reuse pool.
func (t *Tracker) Uncache(size uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cached >= size {
		t.cached -= size
	} else {
		t.cached = 0
	}
}

// Stats returns a snapshot of the tracked counters.
func (t *Tracker) Stats() MemoryStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return MemoryStats{
		Total:         t.total,
		Allocated:     t.allocated,
		PeakAllocated: t.peakAlloc,
		Cached:        t.cached,
		PeakCached:    t.peakCache,
	}
}
