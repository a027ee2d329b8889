package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestMovePosition(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom, appparams.EsNscDenom)
	f.startLinear(stakedTracker, tokens(50000), math.NewInt(1e18))

	from, to, handler := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	f.fund(from, appparams.NscDenom, tokens(70))
	f.fund(from, appparams.EsNscDenom, tokens(30))
	p := f.principal(stakedTracker, from)
	require.NoError(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(70)))
	require.NoError(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.EsNscDenom, tokens(30)))
	f.advance(100 * time.Second)

	require.ErrorIs(t, f.k.MovePosition(f.ctx, p, stakedTracker, from, to), types.ErrForbidden)
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, handler, true))
	hp := f.principal(stakedTracker, handler)
	require.ErrorIs(t, f.k.MovePosition(f.ctx, hp, stakedTracker, from, from), types.ErrInvalidAddress)
	require.NoError(t, f.k.MovePosition(f.ctx, hp, stakedTracker, from, to))

	fromAcc, err := f.k.GetStakeAccount(f.ctx, stakedTracker, from)
	require.NoError(t, err)
	toAcc, err := f.k.GetStakeAccount(f.ctx, stakedTracker, to)
	require.NoError(t, err)

	require.True(t, fromAcc.StakedAmount.IsZero())
	require.Equal(t, tokens(100), toAcc.StakedAmount)
	// reward history stays with its owner
	require.Equal(t, tokens(100), fromAcc.ClaimableReward)
	require.Equal(t, tokens(100), fromAcc.CumulativeReward)
	require.Equal(t, tokens(100), fromAcc.CurrentAverageStakedAmount())
	require.True(t, toAcc.IsFresh())

	for denom, want := range map[string]math.Int{appparams.NscDenom: tokens(70), appparams.EsNscDenom: tokens(30)} {
		got, err := f.k.DepositBalance(f.ctx, stakedTracker, to, denom)
		require.NoError(t, err)
		require.Equal(t, want, got)
		got, err = f.k.DepositBalance(f.ctx, stakedTracker, from, denom)
		require.NoError(t, err)
		require.True(t, got.IsZero())
	}
	receipts, err := f.k.ReceiptBalance(f.ctx, stakedTracker, to)
	require.NoError(t, err)
	require.Equal(t, tokens(100), receipts)

	// new rewards accrue to the receiver only
	f.advance(100 * time.Second)
	require.Equal(t, tokens(100), f.claimable(stakedTracker, from))
	require.Equal(t, tokens(100), f.claimable(stakedTracker, to))

	require.NoError(t, f.k.Unstake(f.ctx, f.principal(stakedTracker, to), stakedTracker, appparams.EsNscDenom, tokens(30), to))
	require.Equal(t, tokens(30), f.balance(to, appparams.EsNscDenom))
	f.requireInvariants()
}
