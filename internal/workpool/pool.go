// Package workpool is the data-parallel work-stealing pool spec.md §5
// describes: independent homomorphic sub-circuits (per-alignment compares,
// per-character masks, left/right split halves) are dispatched as tasks
// and joined, with no cooperative suspension, because the work is purely
// compute-bound. It is built on golang.org/x/sync/errgroup and
// golang.org/x/sync/semaphore rather than a hand-rolled scheduler.
package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many sub-circuits run concurrently. Build one with New.
// A nil *Pool is also accepted: each ParallelFor or ReduceParallel call on
// it runs on a fresh pool sized to GOMAXPROCS. The zero Pool value has no
// semaphore and cannot be used.
type Pool struct {
	limit int64
	sem   *semaphore.Weighted
}

// New returns a Pool that runs at most limit tasks concurrently. A limit
// of 0 sizes the pool to runtime.GOMAXPROCS(0).
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Pool{limit: int64(limit), sem: semaphore.NewWeighted(int64(limit))}
}

func (p *Pool) ensure() *Pool {
	if p == nil {
		return New(0)
	}
	return p
}

// Group returns an errgroup.Group and its derived context for the tasks of
// one logical operation. The Group itself does not bound concurrency;
// tasks take a pool slot with Acquire/Release for that.
func (p *Pool) Group(ctx context.Context) (*errgroup.Group, context.Context) {
	p = p.ensure()
	g, gctx := errgroup.WithContext(ctx)
	return g, gctx
}

// Acquire/Release bound the number of in-flight sub-circuits to the pool's
// limit, independent of how many tasks a caller submits to a Group.
func (p *Pool) Acquire(ctx context.Context) error {
	p = p.ensure()
	return p.sem.Acquire(ctx, 1)
}

func (p *Pool) Release() {
	p = p.ensure()
	p.sem.Release(1)
}

// ParallelFor runs fn(0), fn(1), ..., fn(n-1) and waits for all of them.
// Each call runs as its own task while the pool has a free slot, and on
// the calling goroutine when it has none, so a ParallelFor nested inside
// another on the same pool never waits on slots its caller holds. fn must
// not return an error; homomorphic gate evaluation over a well-formed
// circuit cannot fail observably (spec.md §7), so ParallelFor has no error
// return, unlike a general-purpose errgroup caller.
func ParallelFor(p *Pool, n int, fn func(i int)) {
	p = p.ensure()
	g, _ := p.Group(context.Background())
	for i := 0; i < n; i++ {
		i := i
		if !p.sem.TryAcquire(1) {
			fn(i)
			continue
		}
		g.Go(func() error {
			defer p.Release()
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// Reduce folds items pairwise in a balanced binary tree via op, so that
// the association order - and therefore the resulting ciphertext bit
// sequence for deterministic HE operators - never depends on goroutine
// scheduling (spec.md §5's ordering requirement). zero is returned for an
// empty slice and is the left identity used to pad an odd-sized level.
func Reduce[T any](items []T, zero T, op func(a, b T) T) T {
	if len(items) == 0 {
		return zero
	}
	level := make([]T, len(items))
	copy(level, items)
	for len(level) > 1 {
		next := make([]T, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, op(level[i], level[i+1]))
			} else {
				next = append(next, op(level[i], zero))
			}
		}
		level = next
	}
	return level[0]
}

// ReduceParallel is Reduce, but each pairwise op at a given tree level runs
// concurrently, bounded by the pool. Levels remain sequential (a level's
// inputs depend on the previous level's outputs); only the same-level
// folds are independent.
func ReduceParallel[T any](p *Pool, items []T, zero T, op func(a, b T) T) T {
	if len(items) == 0 {
		return zero
	}
	level := make([]T, len(items))
	copy(level, items)
	for len(level) > 1 {
		pairs := (len(level) + 1) / 2
		next := make([]T, pairs)
		ParallelFor(p, pairs, func(i int) {
			lo := i * 2
			if lo+1 < len(level) {
				next[i] = op(level[lo], level[lo+1])
			} else {
				next[i] = op(level[lo], zero)
			}
		})
		level = next
	}
	return level[0]
}
