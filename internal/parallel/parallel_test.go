package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4

	n := 5000
	seen := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, Config{})

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_SmallChunk(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestFor_Empty(t *testing.T) {
	called := false
	For(0, func(int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func TestForCells(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}

	cols, rows := 4, 7
	grid := make([][]int32, cols)
	for c := range grid {
		grid[c] = make([]int32, rows)
	}

	ForCells(cols, rows, func(c, r int) {
		atomic.AddInt32(&grid[c][r], 1)
	}, cfg)

	for c := range grid {
		for r := range grid[c] {
			assert.Equal(t, int32(1), grid[c][r], "cell [%d][%d]", c, r)
		}
	}
}

func TestForCells_NoRows(t *testing.T) {
	called := false
	ForCells(3, 0, func(int, int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, Config{})
		}
	})
}

func TestConfigChunk(t *testing.T) {
	assert.Equal(t, 100, Config{}.chunk(100))
	assert.Equal(t, 100, Config{Enabled: true, NumWorkers: 1, MinChunkSize: 1}.chunk(100))

	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}
	assert.Equal(t, 25, cfg.chunk(100))
	assert.Equal(t, 15, cfg.chunk(15))
	assert.Equal(t, 10, cfg.chunk(21))
}
