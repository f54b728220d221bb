package device

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerPeaks(t *testing.T) {
	tr := NewTracker(8 << 30)

	tr.Allocate(100)
	tr.Allocate(50)
	tr.Free(120)
	tr.Cache(40)
	tr.Uncache(10)

	s := tr.Stats()
	assert.Equal(t, uint64(8<<30), s.Total)
	assert.Equal(t, uint64(30), s.Allocated)
	assert.Equal(t, uint64(150), s.PeakAllocated)
	assert.Equal(t, uint64(30), s.Cached)
	assert.Equal(t, uint64(40), s.PeakCached)
}

func TestTrackerFreeDoesNotUnderflow(t *testing.T) {
	tr := NewTracker(0)
	tr.Allocate(10)
	tr.Free(20)
	tr.Uncache(5)

	s := tr.Stats()
	assert.Zero(t, s.Allocated)
	assert.Zero(t, s.Cached)
	assert.Equal(t, uint64(10), s.PeakAllocated)
}

func TestTrackerConcurrent(t *testing.T) {
	tr := NewTracker(0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Allocate(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1600), tr.Stats().Allocated)
}
