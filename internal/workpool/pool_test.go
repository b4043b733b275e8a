package workpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fhestr/fhestr/internal/workpool"
)

func TestParallelForRunsEveryIndex(t *testing.T) {
	pool := workpool.New(4)
	const n = 50
	var seen [n]int32
	workpool.ParallelFor(pool, n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.EqualValuesf(t, 1, v, "index %d ran %d times", i, v)
	}
}

func TestReduceMatchesSequentialFold(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	sum := workpool.Reduce(items, 0, func(a, b int) int { return a + b })
	require.Equal(t, 28, sum)
}

func TestReduceEmptyReturnsZero(t *testing.T) {
	got := workpool.Reduce([]int(nil), 99, func(a, b int) int { return a + b })
	require.Equal(t, 99, got)
}

func TestReduceParallelMatchesReduce(t *testing.T) {
	pool := workpool.New(0)
	items := make([]int, 37)
	for i := range items {
		items[i] = i + 1
	}
	want := workpool.Reduce(items, 0, func(a, b int) int { return a + b })
	got := workpool.ReduceParallel(pool, items, 0, func(a, b int) int { return a + b })
	require.Equal(t, want, got)
}

func TestNilPoolIsUsable(t *testing.T) {
	var pool *workpool.Pool
	var total int32
	workpool.ParallelFor(pool, 10, func(i int) {
		atomic.AddInt32(&total, 1)
	})
	require.EqualValues(t, 10, total)
}
