package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestStakingGraphRejectsCycles(t *testing.T) {
	f := newFixture(t)
	f.createTracker("a", types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.createTracker("b", types.DistributorKindBonus, appparams.BnNscDenom, types.ReceiptDenom("a"))
	f.createTracker("c", types.DistributorKindLinear, appparams.FeeDenom, types.ReceiptDenom("b"))

	require.ErrorIs(t, f.k.SetDepositToken(f.ctx, f.gov("a"), "a", types.ReceiptDenom("c"), true), types.ErrStakingCycle)
	require.ErrorIs(t, f.k.SetDepositToken(f.ctx, f.gov("a"), "a", types.ReceiptDenom("a"), true), types.ErrStakingCycle)
	require.ErrorIs(t, f.k.SetDepositToken(f.ctx, f.gov("a"), "a", types.ReceiptDenom("zzz"), true), types.ErrTrackerNotFound)

	// a diamond is fine
	require.NoError(t, f.k.SetDepositToken(f.ctx, f.gov("c"), "c", types.ReceiptDenom("a"), true))

	g, err := f.k.StakingGraph(f.ctx)
	require.NoError(t, err)
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, order)

	require.NoError(t, f.k.SetDepositToken(f.ctx, f.gov("c"), "c", types.ReceiptDenom("a"), false))
	tr, err := f.k.GetTracker(f.ctx, "c")
	require.NoError(t, err)
	require.Equal(t, []string{types.ReceiptDenom("b")}, tr.DepositDenoms)
}

func TestInitializeChecksDistributorBinding(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.k.CreateTracker(f.ctx, "a", "A", "A"))
	require.NoError(t, f.k.CreateTracker(f.ctx, "b", "B", "B"))
	require.NoError(t, f.k.CreateDistributor(f.ctx, "da", types.DistributorKindLinear, appparams.EsNscDenom, "a"))

	require.ErrorIs(t, f.k.CreateTracker(f.ctx, "a", "A", "A"), types.ErrInstanceExists)
	require.ErrorIs(t, f.k.CreateTracker(f.ctx, "Bad-ID", "A", "A"), types.ErrInvalidInstanceID)
	require.ErrorIs(t, f.k.CreateDistributor(f.ctx, "db", types.DistributorKindLinear, appparams.EsNscDenom, "missing"), types.ErrTrackerNotFound)
	require.ErrorIs(t, f.k.CreateDistributor(f.ctx, "db", types.DistributorKindLinear, types.ReceiptDenom("a"), "b"), types.ErrInvalidDistributor)

	require.ErrorIs(t, f.k.Initialize(f.ctx, f.gov("b"), "b", []string{appparams.NscDenom}, "da"), types.ErrInvalidDistributor)
	require.ErrorIs(t, f.k.Initialize(f.ctx, f.gov("b"), "b", []string{appparams.NscDenom}, "missing"), types.ErrDistributorNotFound)

	// an uninitialized tracker accepts nothing
	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(1))
	require.ErrorIs(t, f.k.Stake(f.ctx, f.principal("b", user), "b", appparams.NscDenom, tokens(1)), types.ErrInvalidDepositToken)
}

func TestChainedUnstakeRequiresHandler(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	f.createTracker(bonusTracker, types.DistributorKindBonus, appparams.BnNscDenom, types.ReceiptDenom(stakedTracker))

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	require.NoError(t, f.k.Stake(f.ctx, f.principal(stakedTracker, user), stakedTracker, appparams.NscDenom, tokens(10)))

	// without the handler role the parent needs an allowance
	bp := f.principal(bonusTracker, user)
	require.ErrorIs(t, f.k.Stake(f.ctx, bp, bonusTracker, types.ReceiptDenom(stakedTracker), tokens(10)), types.ErrAmountExceedsAllowance)
	require.NoError(t, f.k.Approve(f.ctx, f.principal(stakedTracker, user), stakedTracker, types.TrackerAddress(bonusTracker), tokens(10)))
	require.NoError(t, f.k.Stake(f.ctx, bp, bonusTracker, types.ReceiptDenom(stakedTracker), tokens(10)))

	// in private transfer mode the parent can only return receipts as a handler
	require.NoError(t, f.k.SetInPrivateTransferMode(f.ctx, f.gov(stakedTracker), stakedTracker, true))
	f.advance(time.Minute)
	require.ErrorIs(t, f.k.Unstake(f.ctx, bp, bonusTracker, types.ReceiptDenom(stakedTracker), tokens(10), user), types.ErrForbidden)
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, types.TrackerAddress(bonusTracker), true))
	require.NoError(t, f.k.Unstake(f.ctx, bp, bonusTracker, types.ReceiptDenom(stakedTracker), tokens(10), user))

	bal, err := f.k.ReceiptBalance(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, tokens(10), bal)
	f.requireInvariants()
}
