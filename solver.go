package mckp

import (
	"sync"

	"github.com/sparsemaq/mckp/ingest"
)

// Solver is a stateful convenience wrapper recovered from the original
// Python implementation's object-oriented Solver class
// (original_source/sparse_maq/mckp.py): it holds the last Fit result
// and exposes it through accessor methods, the same shape as the
// original's path_/path_spend_/path_gain_/path_allocated_unit_/
// path_allocated_arm_ properties (guarded there by an "is fit"
// assertion, here by ErrNotFit). The original's path_std_err_ is
// deliberately not carried forward
// since it was never populated.
//
// Solver adds no behavior beyond Fit/Predict; callers who prefer the
// stateless functions directly are free to use them instead.
type Solver struct {
	mu  sync.RWMutex
	out *SolverOutput
}

// NewSolver returns an unfit Solver. Every accessor returns ErrNotFit
// until Fit succeeds.
func NewSolver() *Solver { return &Solver{} }

// Fit runs mckp.Fit and stores the result on success, replacing any
// previous result. On error, the Solver's previous state (if any) is
// left untouched.
func (s *Solver) Fit(input ingest.Input, budget float64, nThreads int, opts ...FitOption) error {
	out, err := Fit(input, budget, nThreads, opts...)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.out = out
	s.mu.Unlock()
	return nil
}

// Predict runs mckp.Predict against the last Fit result.
func (s *Solver) Predict(budget float64) (Assignment, error) {
	s.mu.RLock()
	out := s.out
	s.mu.RUnlock()
	if out == nil {
		return Assignment{}, ErrNotFit
	}
	return Predict(out, budget)
}

// Output returns the raw SolverOutput from the last Fit call.
func (s *Solver) Output() (*SolverOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, ErrNotFit
	}
	return s.out, nil
}

// Path returns the (spend, gain, ipath, kpath) arrays from the last
// Fit call, mirroring the original's path_ accessor.
func (s *Solver) Path() (spend, gain []float64, ipath, kpath []int32, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, nil, nil, nil, ErrNotFit
	}
	return s.out.Spend, s.out.Gain, s.out.IPath, s.out.KPath, nil
}

// Spend returns the cumulative spend array, mirroring path_spend_.
func (s *Solver) Spend() ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, ErrNotFit
	}
	return s.out.Spend, nil
}

// Gain returns the cumulative gain array, mirroring path_gain_.
func (s *Solver) Gain() ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, ErrNotFit
	}
	return s.out.Gain, nil
}

// AllocatedUnit returns the ipath array, mirroring path_allocated_unit_.
func (s *Solver) AllocatedUnit() ([]int32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, ErrNotFit
	}
	return s.out.IPath, nil
}

// AllocatedArm returns the kpath array, mirroring path_allocated_arm_.
func (s *Solver) AllocatedArm() ([]int32, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.out == nil {
		return nil, ErrNotFit
	}
	return s.out.KPath, nil
}
