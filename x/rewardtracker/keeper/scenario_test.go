package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	testcoins "github.com/nsc-protocol/nsc/testutil/coins"
	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestLinearEmissionTwoStakers(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom, appparams.EsNscDenom)
	f.startLinear(stakedTracker, tokens(50000), tokensPerInterval)

	user0, user1 := sample.AccAddress(), sample.AccAddress()
	f.fund(user0, appparams.NscDenom, tokens(1500))
	f.fund(user1, appparams.EsNscDenom, tokens(500))

	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user0), stakedTracker, appparams.NscDenom, tokens(1000)))
	require.Equal(t, tokens(500), f.balance(user0, appparams.NscDenom))

	f.advance(24 * time.Hour)
	testcoins.RequireInRange(t, f.claimable(stakedTracker, user0), tokens(1785), tokens(1786))

	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user1), stakedTracker, appparams.EsNscDenom, tokens(500)))
	f.advance(24 * time.Hour)
	testcoins.RequireInRange(t, f.claimable(stakedTracker, user0), tokens(2975), tokens(2977))
	testcoins.RequireInRange(t, f.claimable(stakedTracker, user1), tokens(595), tokens(596))

	staked, err := f.k.StakedAmount(f.ctx, stakedTracker, user1)
	require.NoError(t, err)
	require.Equal(t, tokens(500), staked)
	supply, err := f.k.TotalDepositSupply(f.ctx, stakedTracker, appparams.EsNscDenom)
	require.NoError(t, err)
	require.Equal(t, tokens(500), supply)

	receiver := sample.AccAddress()
	expected := f.claimable(stakedTracker, user0)
	paid, err := f.k.Claim(f.ctx, f.principal(stakedTracker, user0), stakedTracker, receiver)
	require.NoError(t, err)
	require.Equal(t, expected, paid)
	require.Equal(t, expected, f.balance(receiver, appparams.EsNscDenom))
	require.True(t, f.claimable(stakedTracker, user0).IsZero())

	cum, err := f.k.CumulativeReward(f.ctx, stakedTracker, user0)
	require.NoError(t, err)
	require.Equal(t, paid, cum)

	f.requireInvariants()
}

func TestBonusEmission(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.createTracker(bonusTracker, types.DistributorKindBonus, appparams.BnNscDenom, types.ReceiptDenom(stakedTracker))
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, types.TrackerAddress(bonusTracker), true))

	gov := f.distributorGov(bonusTracker)
	require.ErrorIs(t, f.k.SetBonusMultiplier(f.ctx, gov, bonusTracker, math.NewInt(10000)), types.ErrInvalidLastDistributionTime)
	require.NoError(t, f.k.UpdateLastDistributionTime(f.ctx, gov, bonusTracker))
	require.NoError(t, f.k.SetBonusMultiplier(f.ctx, gov, bonusTracker, math.NewInt(10000)))
	require.ErrorIs(t, f.k.SetTokensPerInterval(f.ctx, gov, bonusTracker, math.OneInt()), types.ErrInvalidDistributor)

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(1000))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(1000)))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(bonusTracker, user), bonusTracker, types.ReceiptDenom(stakedTracker), tokens(1000)))

	// the receipts now sit in the custody of the bonus tracker
	wallet, err := f.k.ReceiptBalance(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.True(t, wallet.IsZero())
	custody, err := f.k.ReceiptBalance(f.ctx, stakedTracker, types.TrackerAddress(bonusTracker))
	require.NoError(t, err)
	require.Equal(t, tokens(1000), custody)

	f.advance(24 * time.Hour)
	testcoins.RequireInRange(t, f.claimable(bonusTracker, user), testcoins.MilliTokens(2730), testcoins.MilliTokens(2750))

	paid, err := f.k.Claim(f.ctx, f.principal(bonusTracker, user), bonusTracker, user)
	require.NoError(t, err)
	require.Equal(t, paid, f.balance(user, appparams.BnNscDenom))

	require.NoError(t, f.k.Unstake(f.ctx, f.principal(bonusTracker, user), bonusTracker, types.ReceiptDenom(stakedTracker), tokens(400), user))
	wallet, err = f.k.ReceiptBalance(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, tokens(400), wallet)

	f.requireInvariants()
}

func TestUnderfundedDistributorIsCapped(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.startLinear(stakedTracker, tokens(100), tokensPerInterval)

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(10)))

	f.advance(24 * time.Hour)
	pending, err := f.k.PendingRewards(f.ctx, stakedTracker)
	require.NoError(t, err)
	require.Equal(t, tokens(100), pending)

	claimable := f.claimable(stakedTracker, user)
	testcoins.RequireInMargin(t, claimable, tokens(100), math.NewInt(1e6))

	paid, err := f.k.Claim(f.ctx, f.principal(stakedTracker, user), stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, claimable, paid)

	// emission resumes once the distributor is refilled
	f.advance(time.Hour)
	require.True(t, f.claimable(stakedTracker, user).IsZero())
	d, err := f.k.GetDistributor(f.ctx, stakedTracker)
	require.NoError(t, err)
	f.fund(d.Address(), appparams.EsNscDenom, tokens(1000))
	f.advance(time.Hour)
	require.True(t, f.claimable(stakedTracker, user).IsPositive())

	f.requireInvariants()
}

func TestRateChangeSettlesAtOldRate(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.startLinear(stakedTracker, tokens(50000), math.NewInt(1e18))

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(10)))

	f.advance(100 * time.Second)
	require.NoError(t, f.k.SetTokensPerInterval(f.ctx, f.distributorGov(stakedTracker), stakedTracker, math.NewInt(2e18)))
	testcoins.RequireInMargin(t, f.claimable(stakedTracker, user), tokens(100), math.NewInt(1e6))

	f.advance(100 * time.Second)
	testcoins.RequireInMargin(t, f.claimable(stakedTracker, user), tokens(300), math.NewInt(1e6))
}

func TestNoEmissionBeforeBootstrap(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(10)))
	f.advance(24 * time.Hour)

	pending, err := f.k.PendingRewards(f.ctx, stakedTracker)
	require.NoError(t, err)
	require.True(t, pending.IsZero())
	require.True(t, f.claimable(stakedTracker, user).IsZero())
}

func TestAverageStakedAmount(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.startLinear(stakedTracker, tokens(50000), math.NewInt(1e18))

	user, other := sample.AccAddress(), sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(300))
	f.fund(other, appparams.NscDenom, tokens(100))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, other), stakedTracker, appparams.NscDenom, tokens(100)))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(100)))

	f.advance(1000 * time.Second)
	// claims never move the average
	_, err := f.k.Claim(f.ctx, f.principal(stakedTracker, user), stakedTracker, user)
	require.NoError(t, err)
	avg, err := f.k.AverageStakedAmount(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, tokens(100), avg)

	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(200)))
	f.advance(1000 * time.Second)
	// 500 tokens earned at 100 staked, then 750 at 300 staked
	require.NoError(t, f.k.SettleAccount(f.ctx, stakedTracker, user))
	avg, err = f.k.AverageStakedAmount(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	testcoins.RequireInMargin(t, avg, tokens(220), math.NewInt(1e6))

	// a full unstake keeps the last average
	require.NoError(t, f.k.Unstake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(300), user))
	f.advance(1000 * time.Second)
	after, err := f.k.AverageStakedAmount(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, avg, after)
}
