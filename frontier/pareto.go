package frontier

import (
	"context"
	"sort"

	"github.com/sparsemaq/mckp/ingest"
	"github.com/sparsemaq/mckp/workerpool"
)

// control is the synthetic zero-reward, zero-cost entry every unit
// implicitly owns at arm index 0.
var control = Entry{Arm: 0, Reward: 0, Cost: 0}

// Reduce filters and sorts one unit's raw entries down to its Pareto
// frontier, via a monotone stack:
//
//  1. Prepend the synthetic control (0, 0) if not already present.
//  2. Drop entries with cost <= 0 (excluding control) or reward <= 0.
//  3. Sort by cost ascending, breaking ties by reward descending.
//  4. Walk left to right maintaining a stack of kept entries: drop any
//     entry not strictly better than the current top, and pop the top
//     whenever the slope from (top) to (candidate) is >= the slope
//     from (the entry below top) to (top) — a concavity violation
//     meaning the popped entry is dominated by the convex combination
//     of its neighbors.
func Reduce(raw []Entry) Frontier {
	kept := make([]Entry, 0, len(raw)+1)
	for _, e := range raw {
		if e.Arm == 0 {
			continue // control is always re-synthesized below
		}
		if e.Cost <= 0 {
			continue // dominated: zero/negative cost, non-control
		}
		if e.Reward <= 0 {
			continue // dominated: non-positive reward
		}
		kept = append(kept, e)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Cost != kept[j].Cost {
			return kept[i].Cost < kept[j].Cost
		}
		return kept[i].Reward > kept[j].Reward
	})

	stack := make(Frontier, 0, len(kept)+1)
	stack = append(stack, control)

	for _, e := range kept {
		top := stack[len(stack)-1]
		if e.Reward <= top.Reward {
			continue // strictly dominated by the current top
		}
		for len(stack) >= 2 {
			prev := stack[len(stack)-2]
			slopeTopToE := slope(top, e)
			slopePrevToTop := slope(prev, top)
			if slopeTopToE >= slopePrevToTop {
				// top is dominated by the chord from prev to e: pop it.
				stack = stack[:len(stack)-1]
				top = stack[len(stack)-1]
				continue
			}
			break
		}
		stack = append(stack, e)
	}

	return stack
}

// slope computes the marginal efficiency (Δreward/Δcost) from a to b.
// Callers only ever invoke this with a.Cost < b.Cost, guaranteed by
// the ascending sort in Reduce.
func slope(a, b Entry) float64 {
	return (b.Reward - a.Reward) / (b.Cost - a.Cost)
}

// ReduceAll runs Reduce independently for every unit in sp, fanning
// the work out across pool. The returned slice has one Frontier per
// unit index, in unit-index order, regardless of scheduling order.
func ReduceAll(ctx context.Context, sp *ingest.Sparse, pool *workerpool.Pool) ([]Frontier, error) {
	n := sp.N()
	out := make([]Frontier, n)

	err := pool.Run(ctx, n, func(u int) error {
		lo, hi := sp.Entries(u)
		raw := make([]Entry, hi-lo)
		for i := lo; i < hi; i++ {
			raw[i-lo] = Entry{Arm: sp.Arms[i], Reward: sp.Rewards[i], Cost: sp.Costs[i]}
		}
		out[u] = Reduce(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
