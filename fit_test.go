package mckp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsemaq/mckp"
	"github.com/sparsemaq/mckp/ingest"
)

func TestFit_S2_AllControl(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1"},
		{UnitID: "p2"},
		{UnitID: "p3"},
	}}

	out, err := mckp.Fit(input, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())
	require.True(t, out.CompletePath)

	assign, err := mckp.Predict(out, 100)
	require.NoError(t, err)
	for _, a := range assign.ArmByUnit {
		require.Equal(t, int32(0), a)
	}
}

func TestFit_S3_SingleUnitOneUpgrade(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"treatment"}, Rewards: []float64{10}, Costs: []float64{5}},
	}}

	t.Run("no budget cap exhausts", func(t *testing.T) {
		out, err := mckp.Fit(input, 0, 1)
		require.NoError(t, err)
		require.Equal(t, 1, out.Len())
		require.True(t, out.CompletePath)
		require.InDelta(t, 5, out.Spend[0], 1e-9)
		require.InDelta(t, 10, out.Gain[0], 1e-9)
		require.Equal(t, int32(0), out.IPath[0])
		require.Equal(t, int32(1), out.KPath[0])
	})

	t.Run("budget 3 truncates to empty path", func(t *testing.T) {
		out, err := mckp.Fit(input, 3, 1)
		require.NoError(t, err)
		require.Equal(t, 0, out.Len())
		require.False(t, out.CompletePath)
	})
}

func TestFit_S5_TieBreakStableAcrossThreadCounts(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"x"}, Rewards: []float64{10}, Costs: []float64{5}},
		{UnitID: "p2", ArmIDs: []string{"x"}, Rewards: []float64{10}, Costs: []float64{5}},
	}}

	for _, n := range []int{1, 4} {
		out, err := mckp.Fit(input, 0, n)
		require.NoError(t, err)
		require.Equal(t, 2, out.Len())
		require.Equal(t, int32(0), out.IPath[0], "lower unit index wins ties at n_threads=%d", n)
		require.Equal(t, int32(1), out.IPath[1])
	}
}

func TestFit_S6_DNSFolding(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"x", "y"}, Rewards: []float64{5, 9}, Costs: []float64{3, 6}},
	}}

	out, err := mckp.Fit(input, 0, 1, mckp.WithArmVocabulary([]string{"DNS", "x", "y"}))
	require.NoError(t, err)
	require.Equal(t, []string{"DNS", "x", "y"}, out.ArmIDMapping)
}

func TestFit_S6_DNSWithNonZeroRewardIsInvalidInput(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"dns"}, Rewards: []float64{3}, Costs: []float64{2}},
	}}

	_, err := mckp.Fit(input, 0, 1, mckp.WithArmVocabulary([]string{"DNS", "x", "y"}))
	require.Error(t, err)
	require.ErrorIs(t, err, mckp.ErrInvalidInput)

	var me *mckp.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, "p1", me.Unit)
	require.Equal(t, "dns", me.Arm)
}

func TestFit_DuplicateUnitID_FieldErrorNamesUnit(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1"},
		{UnitID: "p1"},
	}}

	_, err := mckp.Fit(input, 0, 1)
	require.Error(t, err)
	require.ErrorIs(t, err, mckp.ErrInvalidInput)

	var me *mckp.Error
	require.ErrorAs(t, err, &me)
	require.Equal(t, "p1", me.Unit)
	require.Empty(t, me.Arm)
}

func TestFit_Determinism_AcrossThreadCounts(t *testing.T) {
	input := fiveUnitPopulation()

	var baseline *mckp.SolverOutput
	for _, n := range []int{0, 1, 4} {
		out, err := mckp.Fit(input, 50, n)
		require.NoError(t, err)
		if baseline == nil {
			baseline = out
			continue
		}
		require.Equal(t, baseline.Spend, out.Spend)
		require.Equal(t, baseline.Gain, out.Gain)
		require.Equal(t, baseline.IPath, out.IPath)
		require.Equal(t, baseline.KPath, out.KPath)
		require.Equal(t, baseline.CompletePath, out.CompletePath)
	}
}

func TestPredict_Idempotence_LowerBudgetIndependentOfFitBudget(t *testing.T) {
	input := fiveUnitPopulation()

	outB1, err := mckp.Fit(input, 1000, 1) // B1: generous budget
	require.NoError(t, err)
	assignFromB1, err := mckp.Predict(outB1, 20)
	require.NoError(t, err)

	outSmaller, err := mckp.Fit(input, 50, 1) // smaller B1, still >= B2; re-predict at same B2
	require.NoError(t, err)
	assignFromSmaller, err := mckp.Predict(outSmaller, 20)
	require.NoError(t, err)

	require.Equal(t, assignFromB1.ArmByUnit, assignFromSmaller.ArmByUnit)
}

func TestPredict_BudgetBeyondPath(t *testing.T) {
	input := ingest.Input{Records: []ingest.Record{
		{UnitID: "p1", ArmIDs: []string{"x"}, Rewards: []float64{10}, Costs: []float64{5}},
	}}
	out, err := mckp.Fit(input, 3, 1)
	require.NoError(t, err)
	require.False(t, out.CompletePath)

	_, err = mckp.Predict(out, 100)
	require.Error(t, err)
	require.ErrorIs(t, err, mckp.ErrBudgetBeyondPath)
}

func fiveUnitPopulation() ingest.Input {
	return ingest.Input{Records: []ingest.Record{
		{UnitID: "a", ArmIDs: []string{"t1", "t2", "t3"}, Rewards: []float64{15, 22, 30}, Costs: []float64{10, 20, 21}},
		{UnitID: "b", ArmIDs: []string{"t1", "t2"}, Rewards: []float64{18, 32}, Costs: []float64{15, 25}},
		{UnitID: "c", ArmIDs: []string{"t1", "t2"}, Rewards: []float64{10, 19}, Costs: []float64{8, 16}},
		{UnitID: "d", ArmIDs: []string{"t1", "t2"}, Rewards: []float64{17, 28}, Costs: []float64{12, 22}},
		{UnitID: "e", ArmIDs: []string{"t1", "t2"}, Rewards: []float64{8, 18}, Costs: []float64{7, 14}},
	}}
}
