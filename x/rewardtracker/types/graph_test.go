package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestStakingGraph(t *testing.T) {
	tests := []struct {
		name  string
		graph types.StakingGraph
		err   error
		order []string
	}{
		{
			name: "production chain",
			graph: types.StakingGraph{
				"snsc":  nil,
				"sbnsc": {"snsc"},
				"sbfn":  {"sbnsc"},
				"fnlp":  nil,
				"fsnlp": {"fnlp"},
			},
			order: []string{"fnlp", "fsnlp", "snsc", "sbnsc", "sbfn"},
		},
		{
			name:  "two node cycle",
			graph: types.StakingGraph{"a": {"b"}, "b": {"a"}},
			err:   types.ErrStakingCycle,
		},
		{
			name:  "long cycle",
			graph: types.StakingGraph{"a": {"b"}, "b": {"c"}, "c": {"a"}, "d": nil},
			err:   types.ErrStakingCycle,
		},
		{
			name:  "unknown child",
			graph: types.StakingGraph{"a": {"missing"}},
			err:   types.ErrTrackerNotFound,
		},
		{
			name:  "diamond",
			graph: types.StakingGraph{"top": {"l", "r"}, "l": {"base"}, "r": {"base"}, "base": nil},
			order: []string{"base", "l", "r", "top"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order, err := tc.graph.TopologicalOrder()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.ErrorIs(t, tc.graph.Validate(), tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.order, order)
		})
	}
}

func TestNewStakingGraphFollowsReceiptDenoms(t *testing.T) {
	staked := types.NewTracker("snsc", "Staked NSC", "sNSC", "")
	staked.DepositDenoms = []string{"ansc", "aesnsc"}
	bonus := types.NewTracker("sbnsc", "Staked + Bonus NSC", "sbNSC", "")
	bonus.DepositDenoms = []string{types.ReceiptDenom("snsc")}

	g := types.NewStakingGraph([]types.Tracker{staked, bonus})
	require.Empty(t, g["snsc"])
	require.Equal(t, []string{"snsc"}, g["sbnsc"])
	require.NoError(t, g.Validate())
}
