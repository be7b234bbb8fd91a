// Package frontier reduces one unit's sparse (arm, reward, cost)
// entries to its upper-left Pareto frontier in (cost, reward) space:
// a cost-ascending sequence whose marginal efficiency strictly
// decreases, which is exactly the precondition pathsolver's greedy
// path-following step requires.
//
// The reduction is a sort followed by a single monotone-stack pass —
// structurally the one-dimensional specialization of a dominance
// archive (compare PathParetoArchive's "dominates + prune" shape
// found elsewhere in this corpus's multi-objective path search code),
// but here an O(n log n) sort plus O(n) stack walk suffices because
// candidates are pre-sorted by cost and dominance is checked only
// against the current stack top and its predecessor.
//
// Each unit is reduced independently with no shared state, so
// ReduceAll fans the work out across workerpool.Pool with each
// goroutine writing to its own pre-assigned slot — no locking
// required, the same "disjoint slot per worker" discipline used by
// ingest.Build's two-pass CSR construction.
package frontier
