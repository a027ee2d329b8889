package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/sample"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

func trackedVester(pairDenom string) types.VesterParams {
	p := plainVester()
	p.RewardTrackerID = stakedTracker
	p.PairDenom = pairDenom
	return p
}

func TestMaxVestableAmount(t *testing.T) {
	f := newFixture(t)
	user, operator := sample.AccAddress(), sample.AccAddress()
	f.stakeForReward(user, tokens(100), 100)
	f.createVester(trackedVester(""))
	h := f.handler(operator)
	p := f.principal(user)

	v, err := f.k.GetVester(f.ctx, vesterID)
	require.NoError(t, err)
	require.True(t, v.HasMaxVestableAmount)

	maxVestable, err := f.k.MaxVestableAmount(f.ctx, vesterID, user)
	require.NoError(t, err)
	require.Equal(t, tokens(100), maxVestable)
	combined, err := f.k.CombinedAverageStakedAmount(f.ctx, vesterID, user)
	require.NoError(t, err)
	require.Equal(t, tokens(100), combined)

	f.fund(user, appparams.EsNscDenom, tokens(100))
	cacheCtx, _ := f.ctx.CacheContext()
	require.ErrorIs(t, f.k.Deposit(cacheCtx, p, vesterID, tokens(101)), types.ErrMaxVestableAmountExceeded)
	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(100)))

	require.ErrorIs(t, f.k.SetBonusRewards(f.ctx, p, vesterID, user, tokens(50)), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetBonusRewards(f.ctx, h, vesterID, user, math.NewInt(-1)), types.ErrInvalidAmount)
	require.NoError(t, f.k.SetBonusRewards(f.ctx, h, vesterID, user, tokens(50)))
	maxVestable, err = f.k.MaxVestableAmount(f.ctx, vesterID, user)
	require.NoError(t, err)
	require.Equal(t, tokens(150), maxVestable)

	require.NoError(t, f.k.SetCumulativeRewardDeductions(f.ctx, h, vesterID, user, tokens(30)))
	maxVestable, err = f.k.MaxVestableAmount(f.ctx, vesterID, user)
	require.NoError(t, err)
	require.Equal(t, tokens(120), maxVestable)

	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(20)))
	f.advance(10 * day)
	// vesting moves balance into the cumulative claim, the total stays capped
	cacheCtx, _ = f.ctx.CacheContext()
	require.ErrorIs(t, f.k.Deposit(cacheCtx, p, vesterID, tokens(1)), types.ErrMaxVestableAmountExceeded)

	require.NoError(t, f.k.SetCumulativeRewardDeductions(f.ctx, h, vesterID, user, tokens(500)))
	maxVestable, err = f.k.MaxVestableAmount(f.ctx, vesterID, user)
	require.NoError(t, err)
	require.True(t, maxVestable.IsZero())

	require.NoError(t, f.k.SetHasMaxVestableAmount(f.ctx, f.gov(), vesterID, false))
	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(1)))
	require.Equal(t, tokens(121), f.account(user).TotalVested())
	f.requireInvariants()
}

func TestPairCollateral(t *testing.T) {
	f := newFixture(t)
	user, operator := sample.AccAddress(), sample.AccAddress()
	pairDenom := rttypes.ReceiptDenom(stakedTracker)
	f.stakeForReward(user, tokens(100), 100)
	f.createVester(trackedVester(pairDenom))
	h := f.handler(operator)
	p := f.principal(user)
	custody := types.VesterAddress(vesterID)

	receipts := func(addr []byte) math.Int {
		bal, err := f.rt.ReceiptBalance(f.ctx, stakedTracker, addr)
		require.NoError(t, err)
		return bal
	}

	// the custody cannot move receipts until the tracker lists it as a handler
	cacheCtx, _ := f.ctx.CacheContext()
	require.Error(t, f.k.Deposit(cacheCtx, p, vesterID, tokens(50)))

	require.NoError(t, f.rt.SetHandler(f.ctx, f.trackerPrincipal(appparams.AccGov), stakedTracker, custody, true))

	pair, err := f.k.PairAmount(f.ctx, vesterID, user, tokens(50))
	require.NoError(t, err)
	require.Equal(t, tokens(50), pair)

	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(50)))
	require.Equal(t, tokens(50), f.account(user).PairAmount)
	require.Equal(t, tokens(50), receipts(user))
	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(50)))
	require.Equal(t, tokens(100), f.account(user).PairAmount)
	require.True(t, receipts(user).IsZero())
	require.Equal(t, tokens(100), receipts(custody))
	f.requireInvariants()

	// a higher cap halves the required collateral
	require.NoError(t, f.k.SetBonusRewards(f.ctx, h, vesterID, user, tokens(100)))
	paid, err := f.k.Claim(f.ctx, p, vesterID, user)
	require.NoError(t, err)
	require.True(t, paid.IsZero())
	require.Equal(t, tokens(50), f.account(user).PairAmount)
	require.Equal(t, tokens(50), receipts(user))
	f.requireInvariants()

	require.NoError(t, f.k.Withdraw(f.ctx, p, vesterID))
	require.Equal(t, tokens(100), receipts(user))
	require.True(t, receipts(custody).IsZero())
	require.Equal(t, tokens(100), f.balance(user, appparams.EsNscDenom))

	v, err := f.k.GetVester(f.ctx, vesterID)
	require.NoError(t, err)
	require.True(t, v.TotalSupply.IsZero())
	require.True(t, v.PairSupply.IsZero())
	f.requireInvariants()
}

func TestTransferStakeValues(t *testing.T) {
	f := newFixture(t)
	sender, receiver, operator := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	f.stakeForReward(sender, tokens(100), 100)
	f.createVester(trackedVester(""))
	h := f.handler(operator)

	require.NoError(t, f.k.SetTransferredAverageStakedAmounts(f.ctx, h, vesterID, sender, tokens(10)))
	require.NoError(t, f.k.SetTransferredCumulativeRewards(f.ctx, h, vesterID, sender, tokens(20)))
	require.NoError(t, f.k.SetBonusRewards(f.ctx, h, vesterID, sender, tokens(5)))

	require.ErrorIs(t, f.k.TransferStakeValues(f.ctx, f.principal(sender), vesterID, sender, receiver), types.ErrForbidden)
	require.ErrorIs(t, f.k.TransferStakeValues(f.ctx, h, vesterID, sender, sender), types.ErrInvalidAddress)

	require.NoError(t, f.k.TransferStakeValues(f.ctx, h, vesterID, sender, receiver))

	to := f.account(receiver)
	require.Equal(t, tokens(110), to.TransferredAverageStakedAmount)
	require.Equal(t, tokens(120), to.TransferredCumulativeReward)
	require.Equal(t, tokens(5), to.BonusReward)
	require.True(t, to.CumulativeRewardDeduction.IsZero())

	from := f.account(sender)
	require.Equal(t, tokens(100), from.CumulativeRewardDeduction)
	require.True(t, from.TransferredAverageStakedAmount.IsZero())
	require.True(t, from.TransferredCumulativeReward.IsZero())
	require.True(t, from.BonusReward.IsZero())

	maxVestable, err := f.k.MaxVestableAmount(f.ctx, vesterID, sender)
	require.NoError(t, err)
	require.True(t, maxVestable.IsZero())
	maxVestable, err = f.k.MaxVestableAmount(f.ctx, vesterID, receiver)
	require.NoError(t, err)
	require.Equal(t, tokens(125), maxVestable)
	combined, err := f.k.CombinedAverageStakedAmount(f.ctx, vesterID, receiver)
	require.NoError(t, err)
	require.Equal(t, tokens(110), combined)

	history, err := f.k.HasTransferHistory(f.ctx, vesterID, receiver)
	require.NoError(t, err)
	require.True(t, history)
	history, err = f.k.HasTransferHistory(f.ctx, vesterID, sample.AccAddress())
	require.NoError(t, err)
	require.False(t, history)
}

func TestClaimKeepsPairCollateral(t *testing.T) {
	f := newFixture(t)
	user := sample.AccAddress()
	f.stakeForReward(user, tokens(100), 100)
	f.createVester(trackedVester(rttypes.ReceiptDenom(stakedTracker)))
	custody := types.VesterAddress(vesterID)
	require.NoError(t, f.rt.SetHandler(f.ctx, f.trackerPrincipal(appparams.AccGov), stakedTracker, custody, true))
	f.fund(custody, appparams.NscDenom, tokens(50))
	p := f.principal(user)

	require.NoError(t, f.k.Deposit(f.ctx, p, vesterID, tokens(50)))
	require.Equal(t, tokens(50), f.account(user).PairAmount)

	// vesting moves deposit into the claim total, so the collateral
	// requirement only drops when the cap or the average stake changes
	f.advance(30 * day)
	paid, err := f.k.Claim(f.ctx, p, vesterID, user)
	require.NoError(t, err)
	require.True(t, paid.IsPositive())
	require.Equal(t, paid, f.balance(user, appparams.NscDenom))

	require.Equal(t, tokens(50), f.account(user).PairAmount)
	v, err := f.k.GetVester(f.ctx, vesterID)
	require.NoError(t, err)
	require.Equal(t, tokens(50), v.PairSupply)
	bal, err := f.rt.ReceiptBalance(f.ctx, stakedTracker, custody)
	require.NoError(t, err)
	require.Equal(t, tokens(50), bal)
	f.requireInvariants()
}
