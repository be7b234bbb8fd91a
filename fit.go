package mckp

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sparsemaq/mckp/diagnostics"
	"github.com/sparsemaq/mckp/frontier"
	"github.com/sparsemaq/mckp/ingest"
	"github.com/sparsemaq/mckp/intern"
	"github.com/sparsemaq/mckp/pathsolver"
	"github.com/sparsemaq/mckp/workerpool"
)

// Fit runs the full C1→C5 pipeline once over input and returns the
// assembled SolverOutput. budget <= 0 means no cap; nThreads follows
// workerpool.New's "0 = auto, 1 = serial, N = capped" contract.
//
// Cancellation (via WithCancel) is checked inside pathsolver.Run at
// step granularity; a cancelled run returns a non-nil SolverOutput with
// CompletePath=false and a nil error — cancellation is not treated as
// a failure.
func Fit(input ingest.Input, budget float64, nThreads int, opts ...FitOption) (*SolverOutput, error) {
	cfg := defaultFitConfig()
	for _, o := range opts {
		o(&cfg)
	}

	profiling := diagnostics.ProfileEnabled()

	unitIDs := deriveUnitIDs(input)
	armIDs := cfg.armVocab
	if armIDs == nil {
		armIDs = deriveArmIDs(input)
	}

	internTimer := diagnostics.Begin(cfg.sink, profiling, "intern")
	units, err := intern.InternUnits(unitIDs)
	if err != nil {
		return nil, wrapInternError(err, false)
	}
	arms, err := intern.InternArms(armIDs)
	if err != nil {
		return nil, wrapInternError(err, true)
	}
	internTimer.End()

	ingestTimer := diagnostics.Begin(cfg.sink, profiling, "ingest")
	sp, err := ingest.Build(input, units, arms)
	if err != nil {
		return nil, wrapIngestError(err)
	}
	ingestTimer.End()

	frontierTimer := diagnostics.Begin(cfg.sink, profiling, "frontier")
	pool := workerpool.New(nThreads)
	frontiers, err := frontier.ReduceAll(context.Background(), sp, pool)
	if err != nil {
		return nil, newError(InvalidInput, "frontier reduction failed", err)
	}
	frontierTimer.End()

	psFrontiers := make([]pathsolver.Frontier, len(frontiers))
	for i, f := range frontiers {
		psFrontiers[i] = toPathsolverFrontier(f)
	}

	pathTimer := diagnostics.Begin(cfg.sink, profiling, "pathsolver")
	psOpts := pathsolver.DefaultOptions()
	psOpts.Budget = budget
	psOpts.Sink = cfg.sink
	psOpts.Cancel = cfg.cancel
	path := pathsolver.Run(psFrontiers, psOpts)
	pathTimer.End()

	out := &SolverOutput{
		Spend:         path.Spend,
		Gain:          path.Gain,
		IPath:         path.IPath,
		KPath:         path.KPath,
		CompletePath:  path.Complete(),
		ArmIDMapping:  arms.IDs(),
		UnitIDMapping: units.IDs(),
		RunID:         uuid.New(),
	}
	return out, nil
}

func toPathsolverFrontier(f frontier.Frontier) pathsolver.Frontier {
	arms := make([]int32, f.Len())
	rewards := make([]float64, f.Len())
	costs := make([]float64, f.Len())
	for i, e := range f {
		arms[i], rewards[i], costs[i] = e.Arm, e.Reward, e.Cost
	}
	return pathsolver.Frontier{Arms: arms, Rewards: rewards, Costs: costs}
}

// deriveUnitIDs preserves first-seen record order, matching
// intern.InternUnits' "stable ordering of the input" contract.
func deriveUnitIDs(input ingest.Input) []string {
	ids := make([]string, len(input.Records))
	for i, rec := range input.Records {
		ids[i] = rec.UnitID
	}
	return ids
}

// deriveArmIDs collects the union of arm ids referenced anywhere in
// input, in first-seen order across records, when the caller did not
// supply an explicit vocabulary via WithArmVocabulary.
func deriveArmIDs(input ingest.Input) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, rec := range input.Records {
		for _, a := range rec.ArmIDs {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			ids = append(ids, a)
		}
	}
	return ids
}

// wrapInternError surfaces intern.FieldError's offending id in the
// structured Error, tagging it as an arm id when the failure came from
// InternArms rather than InternUnits (the FieldError itself doesn't
// distinguish the two).
func wrapInternError(err error, isArm bool) *Error {
	var fe *intern.FieldError
	if errors.As(err, &fe) {
		e := newError(InvalidInput, err.Error(), err)
		if isArm {
			e.Arm = fe.ID
		} else {
			e.Unit = fe.ID
		}
		return e
	}
	return newError(InvalidInput, err.Error(), err)
}

func wrapIngestError(err error) *Error {
	kind := InvalidInput
	if errors.Is(err, ingest.ErrResourceExhaustion) {
		kind = ResourceExhaustion
	}

	var fe *ingest.FieldError
	if errors.As(err, &fe) {
		e := newUnitError(kind, err.Error(), fe.Unit, err)
		e.Arm = fe.Arm
		return e
	}
	return newError(kind, err.Error(), err)
}
