package mckp

import (
	"os"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/sparsemaq/mckp/diagnostics"
)

// SolverOutput is the assembled result of one Fit call.
// All slices share length L, the number of steps emitted. It is safe to
// read concurrently from multiple goroutines after Fit returns: nothing
// about it is ever mutated again.
type SolverOutput struct {
	Spend []float64
	Gain  []float64
	IPath []int32
	KPath []int32

	CompletePath bool

	ArmIDMapping  []string
	UnitIDMapping []string

	// RunID correlates this call's diagnostic events across the sink;
	// pure ambient plumbing with no effect on solver semantics.
	RunID uuid.UUID
}

// Len reports the number of steps L in the path.
func (o *SolverOutput) Len() int { return len(o.Spend) }

// Assignment is the result of Predict: for each unit index, the arm
// index it is assigned at the requested budget (0 meaning control if
// the unit never appears in the path prefix).
type Assignment struct {
	// ArmByUnit[i] is the assigned arm index for unit i.
	ArmByUnit []int32
}

// FitOption configures Fit, via the functional-options
// convention (dijkstra.Option, bfs.Option) rather than a positional
// argument list.
type FitOption func(*fitConfig)

type fitConfig struct {
	sink     diagnostics.Sink
	cancel   *atomic.Bool
	armVocab []string
}

// WithSink overrides the default zerolog-backed diagnostic sink.
func WithSink(sink diagnostics.Sink) FitOption {
	return func(c *fitConfig) { c.sink = sink }
}

// WithCancel supplies a cooperative cancellation flag, polled once per
// path-solver step. When it reads true mid-run, Fit returns a
// SolverOutput with CompletePath=false and no error — cancellation is
// not treated as a failure: the path returned so far is still valid.
func WithCancel(flag *atomic.Bool) FitOption {
	return func(c *fitConfig) { c.cancel = flag }
}

// WithArmVocabulary supplies an explicit, ordered enumeration of known
// arm ids instead of deriving it from the records (the default, when
// this option is not used).
func WithArmVocabulary(ids []string) FitOption {
	return func(c *fitConfig) { c.armVocab = ids }
}

func defaultFitConfig() fitConfig {
	return fitConfig{sink: diagnostics.NewZerologSink(os.Stderr)}
}
