package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of concurrently executing tasks submitted via
// Run. A Pool is safe for concurrent use by multiple callers, though
// in practice mckp.Fit creates one Pool for its frontier-reduction
// phase, for the duration of one Fit call.
type Pool struct {
	n   int
	sem *semaphore.Weighted
}

// New returns a Pool capped at nThreads concurrent tasks. nThreads ==
// 0 is resolved to runtime.GOMAXPROCS(0) (all available hardware
// threads); nThreads == 1 marks the pool as fully serial, so Run
// never spawns a goroutine.
func New(nThreads int) *Pool {
	n := nThreads
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}
	return &Pool{n: n, sem: semaphore.NewWeighted(int64(n))}
}

// N reports the effective concurrency cap this Pool was constructed
// with (after resolving the n_threads == 0 "auto" case).
func (p *Pool) N() int { return p.n }

// Run submits count independent tasks, invoking fn(i) for each index
// in [0, count). Tasks run concurrently up to the pool's cap; Run
// blocks until every task has completed (or one has failed) and
// returns the first error encountered, mirroring errgroup.Group's
// fail-fast join.
//
// If the pool was constructed with nThreads == 1, tasks run serially
// on the calling goroutine and no goroutine is ever spawned — this
// trivially preserves submission order for any caller-visible
// side effects, satisfying the FIFO-within-a-submitter guarantee in
// the degenerate single-worker case.
func (p *Pool) Run(ctx context.Context, count int, fn func(i int) error) error {
	if p.n == 1 {
		for i := 0; i < count; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < count; i++ {
		i := i
		if err := p.sem.Acquire(gctx, 1); err != nil {
			// Context was cancelled while waiting for a slot; stop
			// submitting further work and fall through to g.Wait(),
			// which returns the first real error (if any) or this
			// cancellation.
			break
		}
		g.Go(func() error {
			defer p.sem.Release(1)
			return fn(i)
		})
	}

	return g.Wait()
}
