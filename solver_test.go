package mckp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsemaq/mckp"
	"github.com/sparsemaq/mckp/ingest"
)

func TestSolver_AccessorsErrorBeforeFit(t *testing.T) {
	s := mckp.NewSolver()

	_, err := s.Output()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, _, _, _, err = s.Path()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, err = s.Spend()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, err = s.Gain()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, err = s.AllocatedUnit()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, err = s.AllocatedArm()
	require.ErrorIs(t, err, mckp.ErrNotFit)

	_, err = s.Predict(10)
	require.ErrorIs(t, err, mckp.ErrNotFit)
}

func TestSolver_FitThenAccessorsSucceed(t *testing.T) {
	s := mckp.NewSolver()
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"x"}, Rewards: []float64{10}, Costs: []float64{5}},
	}}

	require.NoError(t, s.Fit(input, 0, 1))

	spend, err := s.Spend()
	require.NoError(t, err)
	require.Equal(t, []float64{5}, spend)

	gain, err := s.Gain()
	require.NoError(t, err)
	require.Equal(t, []float64{10}, gain)

	unit, err := s.AllocatedUnit()
	require.NoError(t, err)
	require.Equal(t, []int32{0}, unit)

	arm, err := s.AllocatedArm()
	require.NoError(t, err)
	require.Equal(t, []int32{1}, arm)

	assign, err := s.Predict(10)
	require.NoError(t, err)
	require.Equal(t, int32(1), assign.ArmByUnit[0])
}
