package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/x/vester/types"
)

func TestNextVested(t *testing.T) {
	const duration = int64(1000)

	acc := types.NewVestingAccount()
	require.True(t, acc.NextVested(500, duration).IsZero())

	acc.Balance = math.NewInt(600)
	acc.CumulativeClaimAmount = math.NewInt(400)
	acc.ClaimedAmount = math.NewInt(100)
	acc.LastVestingTime = 100

	tcs := []struct {
		name string
		now  int64
		want int64
	}{
		{"same second", 100, 0},
		{"clock behind", 50, 0},
		{"rate follows total vested", 200, 100},
		{"rounds down", 101, 1},
		{"capped at balance", 900, 600},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, math.NewInt(tc.want), acc.NextVested(tc.now, duration))
		})
	}

	require.Equal(t, math.NewInt(400), acc.Claimable(200, duration))
	require.Equal(t, math.NewInt(1000), acc.TotalVested())
}

func TestVestingAccountValidate(t *testing.T) {
	require.NoError(t, types.NewVestingAccount().Validate())

	acc := types.NewVestingAccount()
	acc.ClaimedAmount = math.OneInt()
	require.Error(t, acc.Validate())

	acc = types.NewVestingAccount()
	acc.BonusReward = math.NewInt(-1)
	require.Error(t, acc.Validate())

	acc = types.NewVestingAccount()
	acc.PairAmount = math.Int{}
	require.Error(t, acc.Validate())

	acc = types.NewVestingAccount()
	acc.LastVestingTime = -1
	require.Error(t, acc.Validate())
}

func TestHasTransferHistory(t *testing.T) {
	acc := types.NewVestingAccount()
	require.False(t, acc.HasTransferHistory())

	acc.CumulativeRewardDeduction = math.NewInt(5)
	acc.BonusReward = math.NewInt(5)
	require.False(t, acc.HasTransferHistory())

	for _, set := range []func(*types.VestingAccount){
		func(a *types.VestingAccount) { a.TransferredAverageStakedAmount = math.OneInt() },
		func(a *types.VestingAccount) { a.TransferredCumulativeReward = math.OneInt() },
		func(a *types.VestingAccount) { a.Balance = math.OneInt() },
	} {
		a := types.NewVestingAccount()
		set(&a)
		require.True(t, a.HasTransferHistory())
	}
}
