// Package parallel runs index-range work across goroutines in contiguous
// chunks.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution. The zero Config runs everything on
// the calling goroutine.
type Config struct {
	Enabled      bool // Whether to use more than one goroutine.
	NumWorkers   int  // Upper bound on goroutines.
	MinChunkSize int  // Fewest indices handed to one goroutine.
}

// DefaultConfig uses one worker per CPU.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// chunk returns the number of indices per goroutine for n items, or n when
// the work should stay on the caller.
func (c Config) chunk(n int) int {
	if !c.Enabled || c.NumWorkers < 2 || n < 2*max(c.MinChunkSize, 1) {
		return n
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize, 1)
}

// For calls f(i) for every i in [0, n) and returns when all calls are done.
// Calls within one chunk run in index order.
func For(n int, f func(i int), cfg Config) {
	size := cfg.chunk(n)
	if size >= n {
		for i := range n {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}

// ForCells visits every (column, row) cell of a cols×rows grid. Cells of one
// column are visited in contiguous chunks.
func ForCells(cols, rows int, f func(col, row int), cfg Config) {
	if cols <= 0 || rows <= 0 {
		return
	}
	For(cols*rows, func(k int) {
		f(k/rows, k%rows)
	}, cfg)
}
