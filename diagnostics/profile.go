package diagnostics

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// ProfileEnabled reports the truthiness of SPARSE_MAQ_PROFILE. Callers
// (mckp.Fit) must call this exactly once per run and thread the result
// through, not re-read the environment mid-call.
func ProfileEnabled() bool {
	v := strings.TrimSpace(os.Getenv("SPARSE_MAQ_PROFILE"))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Any non-empty, non-boolean value is still treated as truthy,
		// matching a shell-style "set means on" toggle.
		return true
	}
	return b
}

// PhaseTimer wraps a Sink so every call to End emits a LevelInfo event
// carrying wall-clock duration, the heap-allocation delta, and the heap
// in use when the phase ends (runtime.MemStats.HeapAlloc) for one named
// phase (intern, ingest, frontier, pathsolver). The peak heap reached
// during the phase is not sampled. When profiling is disabled, Begin
// returns a timer whose End is a no-op and never calls the sink, so the
// cost of profiling is paid only when SPARSE_MAQ_PROFILE is truthy.
type PhaseTimer struct {
	sink      Sink
	enabled   bool
	phase     string
	started   time.Time
	startHeap uint64
}

// Begin starts timing phase under sink. If enabled is false, the
// returned timer's End call degenerates to nothing; callers can
// unconditionally defer t.End() regardless of the profiling toggle.
func Begin(sink Sink, enabled bool, phase string) *PhaseTimer {
	t := &PhaseTimer{sink: sink, enabled: enabled, phase: phase}
	if !enabled {
		return t
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	t.started = time.Now()
	t.startHeap = ms.HeapAlloc
	return t
}

// End emits the phase-complete diagnostic event, if profiling was
// enabled at Begin time.
func (t *PhaseTimer) End() {
	if !t.enabled || t.sink == nil {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	elapsed := time.Since(t.started)

	t.sink(Event{
		Level: LevelInfo,
		Phase: t.phase,
		Unit:  NoUnit,
		Arm:   NoArm,
		Message: fmt.Sprintf("phase=%s elapsed=%s heap_alloc_delta=%d bytes heap_alloc_end=%d bytes",
			t.phase, elapsed, int64(ms.HeapAlloc)-int64(t.startHeap), ms.HeapAlloc),
	})
}
