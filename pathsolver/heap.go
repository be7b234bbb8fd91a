package pathsolver

import "gonum.org/v1/gonum/floats"

// tieTolerance is the relative tolerance used for
// treating two marginal-efficiency ratios as tied.
const tieTolerance = 1e-12

// candidate is one unit's next pending upgrade: moving from its current
// frontier position to the next one. ratio is precomputed at push time
// so Less never recomputes a division on the hot path.
type candidate struct {
	ratio        float64 // deltaReward / deltaCost
	deltaReward  float64
	deltaCost    float64
	unit         int32
	arm          int32 // the arm this upgrade would move the unit to
	nextPosition int    // the frontier position this candidate targets
}

// candidateHeap is a container/heap max-heap of candidate, ordered by
// (ratio desc, deltaCost asc, unit asc) — the total tie-break order.
// Comparison is inlined directly in Less rather than behind an
// interface, to avoid the extra virtual-call indirection of abstracting
// the priority queue: the compare function is the single hottest call
// in the solver's main loop.
//
// This follows dijkstra.nodePQ's shape (slice-backed, heap.Interface,
// no decrease-key) with one structural difference: dijkstra lazily
// re-pushes stale entries and filters them on pop via a visited set,
// because one vertex can be relaxed many times. Here each unit has at
// most one live candidate at a time by construction (Run never pushes a
// second candidate for a unit before the first is popped), so there is
// nothing to invalidate.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if !floats.EqualWithinRel(a.ratio, b.ratio, tieTolerance) {
		return a.ratio > b.ratio
	}
	if a.deltaCost != b.deltaCost {
		return a.deltaCost < b.deltaCost
	}
	return a.unit < b.unit
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
