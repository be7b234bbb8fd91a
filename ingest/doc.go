// Package ingest converts ragged per-unit (arm ids, rewards, costs)
// records into the solver's dense compressed-sparse-row (CSR)
// representation: three contiguous flat buffers (Arms, Rewards,
// Costs) plus an Offsets array such that unit u's entries occupy
// Offsets[u]:Offsets[u+1].
//
// This package does not know about any particular columnar runtime
// (Arrow, Polars, or otherwise) — it accepts plain Go slices-of-slices
// and produces CSR buffers directly, leaving any columnar-to-ragged
// transformation to the caller.
//
// Construction is two passes over the input, mirroring the
// general avoidance of amortized append-growth on hot paths (e.g.
// prim_kruskal pre-sizing its MST slice to n-1): pass one sums
// per-record list lengths to size the flat buffers exactly once;
// pass two copies each record into its pre-computed slot. No buffer
// is ever grown after its initial allocation.
package ingest
