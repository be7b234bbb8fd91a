package pathsolver

import (
	"container/heap"
	"sync/atomic"

	"github.com/sparsemaq/mckp/diagnostics"
)

// Options configures one Run. Run takes Options as a plain struct, by
// value, rather than a long positional argument list.
type Options struct {
	// Budget caps total spend. Zero or negative means uncapped: the
	// walk runs to exhaustion.
	Budget float64
	// Sink receives InternalConsistency diagnostics for dropped
	// zero-delta-cost candidates. Defaults to diagnostics.Discard.
	Sink diagnostics.Sink
	// Cancel, if non-nil, is polled once per popped candidate (not once
	// per arm); when it reads true the walk stops as if cancelled,
	// keeping whatever path was built so far.
	Cancel *atomic.Bool
}

// DefaultOptions returns the zero-configuration Options: no budget cap,
// a discarding sink, and no cancellation.
func DefaultOptions() Options {
	return Options{
		Budget: 0,
		Sink:   diagnostics.Discard,
	}
}

// Run executes the greedy path-following algorithm over frontiers, one
// per unit, indexed by unit number. Frontiers with fewer than two
// entries (control only) never contribute a candidate and are
// otherwise ignored.
//
// Run is always single-threaded: the heap-driven main loop has serial
// dependence on spend, gain, and per-unit cursors, so it is never
// parallelized regardless of the n_threads the caller configured
// elsewhere in the pipeline.
func Run(frontiers []Frontier, opts Options) *Path {
	sink := opts.Sink
	if sink == nil {
		sink = diagnostics.Discard
	}

	n := len(frontiers)
	cursors := make([]int, n)

	maxSteps := 0
	for _, f := range frontiers {
		if f.Len() >= 2 {
			maxSteps += f.Len() - 1
		}
	}

	path := &Path{
		Spend: make([]float64, 0, maxSteps),
		Gain:  make([]float64, 0, maxSteps),
		IPath: make([]int32, 0, maxSteps),
		KPath: make([]int32, 0, maxSteps),
		State: StateInit,
	}

	q := make(candidateHeap, 0, n)
	for u := 0; u < n; u++ {
		f := frontiers[u]
		if f.Len() < 2 {
			continue
		}
		cursors[u] = 1
		pushCandidate(&q, f, u, 1, sink)
	}
	heap.Init(&q)

	path.State = StateRunning

	var spend, gain float64
	for {
		if q.Len() == 0 {
			path.State = StateExhausted
			break
		}

		if opts.Cancel != nil && opts.Cancel.Load() {
			path.State = StateRunning // partial path, not a terminal solver state
			break
		}

		c := heap.Pop(&q).(candidate)

		if opts.Budget > 0 && spend+c.deltaCost > opts.Budget {
			path.State = StateBudgetBound
			break
		}

		spend += c.deltaCost
		gain += c.deltaReward
		path.Spend = append(path.Spend, spend)
		path.Gain = append(path.Gain, gain)
		path.IPath = append(path.IPath, c.unit)
		path.KPath = append(path.KPath, c.arm)

		u := int(c.unit)
		cursors[u] = c.nextPosition + 1
		if cursors[u] < frontiers[u].Len() {
			pushCandidate(&q, frontiers[u], u, cursors[u], sink)
		}
	}

	return path
}

// pushCandidate computes the candidate upgrade moving unit u from
// position pos-1 to position pos on its frontier, and pushes it onto q.
// A zero-delta-cost candidate can only arise if the caller bypassed
// frontier.Reduce's strict-cost-increase guarantee; rather
// than divide by zero, it is dropped and reported through sink as an
// InternalConsistency diagnostic, and the unit's cursor effectively
// stalls at that position for this call (the caller is responsible for
// upstream correctness; Run only defends against the crash).
func pushCandidate(q *candidateHeap, f Frontier, unit, pos int, sink diagnostics.Sink) {
	deltaReward := f.Rewards[pos] - f.Rewards[pos-1]
	deltaCost := f.Costs[pos] - f.Costs[pos-1]

	if deltaCost == 0 {
		sink(diagnostics.Event{
			Level:   diagnostics.LevelWarn,
			Phase:   "pathsolver",
			Message: "dropped candidate with zero delta-cost (InternalConsistency)",
			Unit:    int32(unit),
			Arm:     f.Arms[pos],
		})
		return
	}

	heap.Push(q, candidate{
		ratio:        deltaReward / deltaCost,
		deltaReward:  deltaReward,
		deltaCost:    deltaCost,
		unit:         int32(unit),
		arm:          f.Arms[pos],
		nextPosition: pos,
	})
}
