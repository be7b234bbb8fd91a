package pathsolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsemaq/mckp/frontier"
	"github.com/sparsemaq/mckp/pathsolver"
)

// toPathsolverFrontier converts a Pareto-reduced frontier.Frontier into the
// narrow view pathsolver.Run consumes, mirroring the conversion the mckp
// facade performs between C3 and C4.
func toPathsolverFrontier(f frontier.Frontier) pathsolver.Frontier {
	arms := make([]int32, f.Len())
	rewards := make([]float64, f.Len())
	costs := make([]float64, f.Len())
	for i, e := range f {
		arms[i], rewards[i], costs[i] = e.Arm, e.Reward, e.Cost
	}
	return pathsolver.Frontier{Arms: arms, Rewards: rewards, Costs: costs}
}

// TestS1_RawArmsThroughFrontierReduceThenPathsolver reproduces the worked S1
// scenario from its raw, pre-reduction numbers: five units' literal
// (reward, cost) lists are first folded through frontier.Reduce (which
// drops each unit's non-concave arm, exactly as C3 is specified to), then
// walked by pathsolver.Run under budget=50. The reference implementation's
// checkpoint values spend=47, gain=65 must appear together at some step.
func TestS1_RawArmsThroughFrontierReduceThenPathsolver(t *testing.T) {
	raw := [][]frontier.Entry{
		{ // a
			{Arm: 1, Reward: 15, Cost: 10},
			{Arm: 2, Reward: 22, Cost: 20},
			{Arm: 3, Reward: 30, Cost: 21},
		},
		{ // b
			{Arm: 1, Reward: 18, Cost: 15},
			{Arm: 2, Reward: 32, Cost: 25},
		},
		{ // c
			{Arm: 1, Reward: 10, Cost: 8},
			{Arm: 2, Reward: 19, Cost: 16},
		},
		{ // d
			{Arm: 1, Reward: 17, Cost: 12},
			{Arm: 2, Reward: 28, Cost: 22},
		},
		{ // e
			{Arm: 1, Reward: 8, Cost: 7},
			{Arm: 2, Reward: 18, Cost: 14},
		},
	}

	frontiers := make([]pathsolver.Frontier, len(raw))
	for i, entries := range raw {
		frontiers[i] = toPathsolverFrontier(frontier.Reduce(entries))
	}

	// a's middle arm (22,20) and b's/e's first upgrades are all dominated
	// by the direct chord to their respective last arms — mirroring S4's
	// dominance check, just across five units instead of one.
	require.Equal(t, 3, frontiers[0].Len(), "unit a keeps control + two upgrades")
	require.Equal(t, 2, frontiers[1].Len(), "unit b's (18,15) is dominated by the chord to (32,25)")
	require.Equal(t, 3, frontiers[2].Len(), "unit c's frontier is already concave")
	require.Equal(t, 3, frontiers[3].Len(), "unit d's frontier is already concave")
	require.Equal(t, 2, frontiers[4].Len(), "unit e's (8,7) is dominated by the chord to (18,14)")

	opts := pathsolver.DefaultOptions()
	opts.Budget = 50
	path := pathsolver.Run(frontiers, opts)

	require.False(t, path.Complete(), "budget 50 must truncate this population's full path")

	foundCheckpoint := false
	for i := 0; i < path.Len(); i++ {
		if path.Spend[i] == 47 && path.Gain[i] == 65 {
			foundCheckpoint = true
			break
		}
	}
	require.True(t, foundCheckpoint, "the reference checkpoint spend=47, gain=65 must appear on the path")

	for i := 1; i < path.Len(); i++ {
		require.GreaterOrEqual(t, path.Spend[i], path.Spend[i-1])
		require.GreaterOrEqual(t, path.Gain[i], path.Gain[i-1])
	}
}
