// Package workerpool provides the bounded worker pool used by the
// per-unit Pareto filter (frontier). The path solver does not use it:
// its heap fill and main loop run on the calling goroutine.
//
// The pool accepts an n_threads knob with the conventional meaning
// used throughout the solver:
//
//	0  — use all available hardware threads (runtime.GOMAXPROCS(0)).
//	1  — fully serial; no goroutine is spawned at all.
//	N  — cap concurrency at N workers.
//
// Tasks submitted to a Pool carry no shared mutable state between
// them; each writes to a disjoint, pre-sized output slot, so the pool
// itself needs no result-aggregation machinery beyond running the
// tasks to completion and propagating the first error.
//
// Implementation: golang.org/x/sync/errgroup bounded by
// golang.org/x/sync/semaphore.Weighted, rather than a hand-rolled
// channel-based dispatcher — this is the ecosystem pattern for
// bounded fan-out seen across the retrieved corpus wherever
// concurrent work needs a first-error-wins join.
package workerpool
