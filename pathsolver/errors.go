package pathsolver

import "errors"

var (
	// ErrCancelled names a run stopped by the caller's cancellation flag.
	// Run itself does not return it: a cancelled Run returns the path
	// built so far with State left at StateRunning.
	ErrCancelled = errors.New("pathsolver: run cancelled")
)
