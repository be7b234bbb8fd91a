// Package intern maps opaque unit and arm identifiers onto the dense,
// zero-based integer indices the rest of the solver operates on.
//
// Two independent vocabularies are interned: units (patients) and arms
// (treatments). Unit indices run over [0, N); arm indices run over
// [0, K) with index 0 always reserved for the control arm. When the
// literal identifier "dns" ("do not serve", case-insensitive) is
// present among the arm ids, it is coerced to index 0 regardless of
// its position in the input; every other arm receives a dense rank in
// first-seen order.
//
// Interning is a single exclusive pass, the same shape as
// core.NewGraph building its vertices map in one pass: every id is
// visited once, a forward map (id -> index) and an inverse slice
// (index -> id) are built together, and duplicates or empty ids fail
// the whole call with ErrInvalidInput rather than being silently
// merged or skipped.
package intern
