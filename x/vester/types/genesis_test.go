package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/sample"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

func vesterParams(id string) types.VesterParams {
	return types.VesterParams{
		ID:              id,
		Name:            "Vested NSC",
		Symbol:          "vNSC",
		VestingDuration: 365 * 24 * 60 * 60,
		EsDenom:         appparams.EsNscDenom,
		ClaimableDenom:  appparams.NscDenom,
		PairDenom:       rttypes.ReceiptDenom("snsc"),
		RewardTrackerID: "snsc",
	}
}

func TestVesterValidate(t *testing.T) {
	gov := appparams.AccGov.String()

	v := types.NewVester(vesterParams("vnsc"), gov)
	require.NoError(t, v.Validate())
	require.True(t, v.HasMaxVestableAmount)
	require.True(t, v.HasPairToken())
	require.True(t, v.HasRewardTracker())
	require.NotEqual(t, types.VesterAddress("vnsc"), types.VesterAddress("vnlp"))

	plain := vesterParams("vnsc")
	plain.PairDenom = ""
	plain.RewardTrackerID = ""
	v = types.NewVester(plain, gov)
	require.NoError(t, v.Validate())
	require.False(t, v.HasMaxVestableAmount)

	tcs := []struct {
		name   string
		mutate func(*types.VesterParams)
	}{
		{"bad id", func(p *types.VesterParams) { p.ID = "Vester" }},
		{"zero duration", func(p *types.VesterParams) { p.VestingDuration = 0 }},
		{"receipt escrow", func(p *types.VesterParams) { p.EsDenom = rttypes.ReceiptDenom("snsc") }},
		{"self vesting", func(p *types.VesterParams) { p.ClaimableDenom = p.EsDenom }},
		{"bad pair", func(p *types.VesterParams) { p.PairDenom = "rt/X" }},
		{"bad tracker", func(p *types.VesterParams) { p.RewardTrackerID = "-" }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := vesterParams("vnsc")
			tc.mutate(&p)
			require.Error(t, types.NewVester(p, gov).Validate())
		})
	}

	v = types.NewVester(vesterParams("vnsc"), gov)
	v.TotalSupply = math.NewInt(-1)
	require.ErrorIs(t, v.Validate(), types.ErrInvalidVester)
}

func TestGenesisState_Validate(t *testing.T) {
	gov := appparams.AccGov.String()
	entry := func(vesterID string) types.AccountEntry {
		return types.AccountEntry{VesterID: vesterID, Address: sample.AccAddress().String(), Account: types.NewVestingAccount()}
	}

	tcs := []struct {
		name     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			name:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			name: "valid genesis state",
			genState: &types.GenesisState{
				Vesters:  []types.Vester{types.NewVester(vesterParams("vnsc"), gov), types.NewVester(vesterParams("vnlp"), gov)},
				Handlers: []types.HandlerEntry{{VesterID: "vnsc", Handler: sample.AccAddress().String()}},
				Accounts: []types.AccountEntry{entry("vnsc"), entry("vnlp")},
			},
			valid: true,
		},
		{
			name: "duplicate vester",
			genState: &types.GenesisState{
				Vesters: []types.Vester{types.NewVester(vesterParams("vnsc"), gov), types.NewVester(vesterParams("vnsc"), gov)},
			},
		},
		{
			name: "handler of unknown vester",
			genState: &types.GenesisState{
				Vesters:  []types.Vester{types.NewVester(vesterParams("vnsc"), gov)},
				Handlers: []types.HandlerEntry{{VesterID: "vnlp", Handler: sample.AccAddress().String()}},
			},
		},
		{
			name: "account of unknown vester",
			genState: &types.GenesisState{
				Vesters:  []types.Vester{types.NewVester(vesterParams("vnsc"), gov)},
				Accounts: []types.AccountEntry{entry("vnlp")},
			},
		},
		{
			name: "account without address",
			genState: &types.GenesisState{
				Vesters:  []types.Vester{types.NewVester(vesterParams("vnsc"), gov)},
				Accounts: []types.AccountEntry{{VesterID: "vnsc", Account: types.NewVestingAccount()}},
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
