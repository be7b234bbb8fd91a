package mckp

// Predict reproduces the reference post-processing join:
// for each unit, the assignment is the last arm reached by budget on
// the path, or control (arm 0) if the unit never appears in that
// prefix. It is pure: out is never mutated.
//
// Errors with a BudgetBeyondPath *Error if budget exceeds the final
// spend of a truncated (CompletePath=false) path — the caller should
// re-fit with a larger budget rather than retry Predict.
func Predict(out *SolverOutput, budget float64) (Assignment, error) {
	L := out.Len()
	lastSpend := 0.0
	if L > 0 {
		lastSpend = out.Spend[L-1]
	}
	if !out.CompletePath && budget > lastSpend {
		return Assignment{}, newError(BudgetBeyondPath,
			"requested budget exceeds the truncated path's final spend", nil)
	}

	lastArm := make(map[int32]int32, len(out.UnitIDMapping))
	for i := 0; i < L; i++ {
		if out.Spend[i] > budget {
			break
		}
		lastArm[out.IPath[i]] = out.KPath[i]
	}

	armByUnit := make([]int32, len(out.UnitIDMapping))
	for u := range armByUnit {
		if a, ok := lastArm[int32(u)]; ok {
			armByUnit[u] = a
		}
		// zero value (control, arm index 0) is the correct default.
	}

	return Assignment{ArmByUnit: armByUnit}, nil
}
