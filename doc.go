// Package mckp is the facade for the Multi-choice Knapsack Path solver:
// it wires intern → ingest → frontier → pathsolver into the two entry
// points external callers use, Fit and Predict, much the way a single
// exported Dijkstra function wraps an internal runner in a classic
// shortest-path library.
//
// Fit is synchronous and single-shot: it consumes one ragged population
// of units and arms, builds the dense CSR representation, reduces each
// unit's arms to its Pareto frontier, and walks the global greedy path,
// returning a SolverOutput whose buffers are never mutated again. Predict
// is a pure post-processing step over that output — reference semantics,
// carrying no state of its own.
//
// mckp.Solver is a thin stateful wrapper recovered from the original
// Python implementation's object-oriented Solver class (original_source/
// sparse_maq/mckp.py): it holds the result of the last Fit call and
// exposes getter-style accessors, for callers that prefer that shape
// over holding the stateless SolverOutput themselves.
package mckp
