package frontier

// Entry is one (arm, reward, cost) candidate for a single unit, prior
// to Pareto reduction.
type Entry struct {
	Arm    int32
	Reward float64
	Cost   float64
}

// Frontier is one unit's reduced, cost-ascending arm sequence.
// Frontier[0] is always the control entry (Arm == 0, Reward == 0,
// Cost == 0); every subsequent entry has strictly greater cost and
// reward than its predecessor, and strictly decreasing marginal
// efficiency across the whole sequence (see Reduce).
type Frontier []Entry

// Len reports how many arms (including control) survive on the
// frontier.
func (f Frontier) Len() int { return len(f) }

// HasUpgrades reports whether this unit has any non-control arm at
// all, i.e. whether it can contribute candidates to the path solver.
func (f Frontier) HasUpgrades() bool { return len(f) >= 2 }
