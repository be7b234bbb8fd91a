package ingest

import (
	"fmt"
	"math"

	"github.com/sparsemaq/mckp/intern"
)

// Build validates input and materializes it into a Sparse CSR buffer
// indexed by the dense unit indices in units. Arm ids in each record
// are resolved against arms.
//
// Validation order, per record:
//  1. the three per-record lists share a length;
//
// then, for each entry in turn:
//  2. no duplicate arm id within the record;
//  3. the arm id resolves in the arm vocabulary;
//  4. reward and cost are not NaN/Inf;
//  5. cost is >= 0;
//  6. a control-arm entry has zero reward and zero cost.
//
// Violations return ErrInvalidInput naming the offending unit.
func Build(in Input, units, arms *intern.Table) (*Sparse, error) {
	byUnit := make([]*Record, units.Len())
	for i := range in.Records {
		rec := &in.Records[i]
		uidx, ok := units.IndexOf(rec.UnitID)
		if !ok {
			return nil, &FieldError{
				Unit:    rec.UnitID,
				Message: fmt.Sprintf("ingest: invalid input: unit %q is not in the interned unit vocabulary", rec.UnitID),
				Cause:   ErrInvalidInput,
			}
		}
		byUnit[uidx] = rec
	}

	if err := validateRecords(byUnit, arms); err != nil {
		return nil, err
	}

	return allocateAndCopy(byUnit, arms)
}

// validateRecords performs the full validation pass described on Build
// without allocating any CSR storage, so a caller never pays for
// buffers it cannot use.
func validateRecords(byUnit []*Record, arms *intern.Table) error {
	for _, rec := range byUnit {
		if rec == nil {
			// A unit with no record at all is equivalent to a unit whose
			// only eligible arm is the implicit control; nothing to
			// validate.
			continue
		}
		n := len(rec.ArmIDs)
		if len(rec.Rewards) != n || len(rec.Costs) != n {
			return &FieldError{
				Unit: rec.UnitID,
				Message: fmt.Sprintf("ingest: invalid input: unit %q has mismatched arm/reward/cost list lengths (%d/%d/%d)",
					rec.UnitID, n, len(rec.Rewards), len(rec.Costs)),
				Cause: ErrInvalidInput,
			}
		}

		seen := make(map[string]struct{}, n)
		for j := 0; j < n; j++ {
			armID := rec.ArmIDs[j]
			if _, dup := seen[armID]; dup {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q has duplicate arm %q", rec.UnitID, armID),
					Cause:   ErrInvalidInput,
				}
			}
			seen[armID] = struct{}{}

			aidx, ok := arms.IndexOf(armID)
			if !ok {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q references unknown arm %q", rec.UnitID, armID),
					Cause:   ErrInvalidInput,
				}
			}

			r := rec.Rewards[j]
			c := rec.Costs[j]
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q arm %q has non-finite reward", rec.UnitID, armID),
					Cause:   ErrInvalidInput,
				}
			}
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q arm %q has non-finite cost", rec.UnitID, armID),
					Cause:   ErrInvalidInput,
				}
			}
			if c < 0 {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q arm %q has negative cost %g", rec.UnitID, armID, c),
					Cause:   ErrInvalidInput,
				}
			}
			if aidx == 0 && (r != 0 || c != 0) {
				return &FieldError{
					Unit:    rec.UnitID,
					Arm:     armID,
					Message: fmt.Sprintf("ingest: invalid input: unit %q control arm %q must have zero reward and zero cost, or be omitted", rec.UnitID, armID),
					Cause:   ErrInvalidInput,
				}
			}
		}
	}
	return nil
}

// allocateAndCopy sizes the CSR buffers exactly once (a single pass to
// accumulate list lengths) and then copies each unit's entries into
// its pre-computed slot. A runtime allocation failure is recovered and
// surfaced as ErrResourceExhaustion rather than crashing the process.
func allocateAndCopy(byUnit []*Record, arms *intern.Table) (s *Sparse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %v", ErrResourceExhaustion, r)
		}
	}()

	n := len(byUnit)
	offsets := make([]int, n+1)
	total := 0
	for i, rec := range byUnit {
		offsets[i] = total
		if rec != nil {
			total += len(rec.ArmIDs)
		}
	}
	offsets[n] = total

	out := &Sparse{
		Offsets: offsets,
		Arms:    make([]int32, total),
		Rewards: make([]float64, total),
		Costs:   make([]float64, total),
	}

	for i, rec := range byUnit {
		if rec == nil {
			continue
		}
		lo := offsets[i]
		for j, armID := range rec.ArmIDs {
			aidx, _ := arms.IndexOf(armID) // already validated
			out.Arms[lo+j] = int32(aidx)
			out.Rewards[lo+j] = rec.Rewards[j]
			out.Costs[lo+j] = rec.Costs[j]
		}
	}

	return out, nil
}
