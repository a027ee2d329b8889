package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

func TestGenesisState_Validate(t *testing.T) {
	sender, receiver := sample.AccAddress().String(), sample.AccAddress().String()

	tests := []struct {
		desc     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			desc: "valid pending transfer",
			genState: &types.GenesisState{
				Route:            types.DefaultRoute(),
				PendingTransfers: []types.PendingTransfer{{Sender: sender, Receiver: receiver}},
			},
			valid: true,
		},
		{
			desc:     "empty route",
			genState: &types.GenesisState{},
			valid:    false,
		},
		{
			desc: "duplicate sender",
			genState: &types.GenesisState{
				Route: types.DefaultRoute(),
				PendingTransfers: []types.PendingTransfer{
					{Sender: sender, Receiver: receiver},
					{Sender: sender, Receiver: sample.AccAddress().String()},
				},
			},
			valid: false,
		},
		{
			desc: "transfer to itself",
			genState: &types.GenesisState{
				Route:            types.DefaultRoute(),
				PendingTransfers: []types.PendingTransfer{{Sender: sender, Receiver: sender}},
			},
			valid: false,
		},
		{
			desc: "invalid receiver",
			genState: &types.GenesisState{
				Route:            types.DefaultRoute(),
				PendingTransfers: []types.PendingTransfer{{Sender: sender, Receiver: "bad"}},
			},
			valid: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
