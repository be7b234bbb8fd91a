// Package diagnostics carries the solver's one piece of global state (the
// SPARSE_MAQ_PROFILE environment toggle) and the pluggable diagnostic sink
// that pathsolver and mckp.Fit's phase timers report through.
//
// No logging framework is assumed by the core algorithm packages; Sink
// is the plain function type a pluggable backend implements.
// NewZerologSink wires it to github.com/rs/zerolog and is the default
// production backend mckp.Fit uses when the caller supplies none.
package diagnostics
