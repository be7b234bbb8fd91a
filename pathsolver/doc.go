// Package pathsolver implements the priority-queue-driven greedy walk that
// turns per-unit Pareto frontiers (see package frontier) into a single
// globally-ordered allocation path.
//
// Each unit with two or more frontier entries contributes exactly one
// "candidate upgrade" to a max-heap at a time: the step that would move it
// from its current arm to the next one on its frontier. The solver
// repeatedly pops the candidate with the highest marginal efficiency
// (Δreward/Δcost), appends it to the path, and — if the unit has further
// frontier entries — pushes that unit's next candidate back onto the heap.
// Because frontier.Reduce guarantees strictly decreasing marginal slopes
// within each unit, and the heap always pops the global maximum, the
// resulting path has non-increasing efficiency end to end: the classic
// greedy argument for fractional/mutually-exclusive knapsack problems whose
// per-item value curves are concave.
//
// The heap itself follows the container/heap "lazy" pattern used throughout
// this corpus's graph search code (see dijkstra.nodePQ): a slice-backed
// heap.Interface implementation with the comparison inlined rather than
// hidden behind virtual dispatch, since the compare function sits on the
// hottest path in the whole solver. Unlike dijkstra's lazy decrease-key,
// pathsolver never re-pushes a stale entry for the same unit: each unit has
// at most one live candidate in the heap at any time, so there is nothing
// to invalidate.
package pathsolver
