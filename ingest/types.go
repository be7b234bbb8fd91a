package ingest

// Record is one unit's ragged eligibility list: parallel slices of arm
// identifiers, rewards, and costs, all the same length. ArmIDs are
// resolved against the arm vocabulary interned by the caller (see
// intern.InternArms); UnitID identifies which unit this record
// belongs to and must already have been interned.
type Record struct {
	UnitID  string
	ArmIDs  []string
	Rewards []float64
	Costs   []float64
}

// Input is the full ragged population: one Record per unit. Records
// may be supplied in any order; output buffers are laid out by the
// unit's interned dense index, not by input order.
type Input struct {
	Records []Record
}

// Sparse is the dense CSR representation produced by Build: for unit
// index u, its entries occupy Arms[Offsets[u]:Offsets[u+1]] (and the
// same range into Rewards and Costs). Offsets has length N+1, with
// Offsets[N] == len(Arms) == E.
//
// All three flat buffers and Offsets are allocated exactly once, at
// their final size, by Build; they are read-only to every downstream
// component.
type Sparse struct {
	Offsets []int
	Arms    []int32
	Rewards []float64
	Costs   []float64
}

// N returns the number of units this Sparse buffer covers.
func (s *Sparse) N() int { return len(s.Offsets) - 1 }

// E returns the total number of (unit, arm) entries across the whole
// population.
func (s *Sparse) E() int { return len(s.Arms) }

// Entries returns the half-open slice range [lo, hi) into Arms,
// Rewards, and Costs that belongs to unit index u.
func (s *Sparse) Entries(u int) (lo, hi int) { return s.Offsets[u], s.Offsets[u+1] }
