package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	testcoins "github.com/nsc-protocol/nsc/testutil/coins"
	testkeeper "github.com/nsc-protocol/nsc/testutil/keeper"
	teststore "github.com/nsc-protocol/nsc/testutil/store"
	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/keeper"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

const (
	stakedTracker = "snsc"
	bonusTracker  = "sbnsc"
)

// tokensPerInterval emits 50000 tokens over ~28 days.
var tokensPerInterval = math.NewInt(20667989410000000)

type fixture struct {
	t   *testing.T
	env *testkeeper.BankEnv
	k   *keeper.Keeper
	ctx sdk.Context
}

func newFixture(t *testing.T) *fixture {
	env := testkeeper.NewBankEnv(t)
	k, ctx := testkeeper.RewardTrackerKeeperWithStore(t, env.DB, env.StateStore, env.BankKeeper)
	return &fixture{t: t, env: env, k: k, ctx: ctx}
}

func (f *fixture) gov(trackerID string) nsctypes.Principal {
	p, err := f.k.Principal(f.ctx, trackerID, appparams.AccGov)
	require.NoError(f.t, err)
	require.True(f.t, p.IsGov)
	return p
}

func (f *fixture) distributorGov(distributorID string) nsctypes.Principal {
	p, err := f.k.DistributorPrincipal(f.ctx, distributorID, appparams.AccGov)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) principal(trackerID string, addr sdk.AccAddress) nsctypes.Principal {
	p, err := f.k.Principal(f.ctx, trackerID, addr)
	require.NoError(f.t, err)
	return p
}

// createTracker creates and initializes a tracker with a distributor of the
// same id.
func (f *fixture) createTracker(id string, kind types.DistributorKind, rewardDenom string, depositDenoms ...string) {
	require.NoError(f.t, f.k.CreateTracker(f.ctx, id, "Staked "+id, "s"+id))
	require.NoError(f.t, f.k.CreateDistributor(f.ctx, id, kind, rewardDenom, id))
	require.NoError(f.t, f.k.Initialize(f.ctx, f.gov(id), id, depositDenoms, id))
}

// startLinear funds the distributor and starts emission at rate.
func (f *fixture) startLinear(id string, funding, rate math.Int) {
	d, err := f.k.GetDistributor(f.ctx, id)
	require.NoError(f.t, err)
	f.env.Fund(f.t, f.ctx, d.Address(), sdk.NewCoin(d.RewardDenom, funding))
	require.NoError(f.t, f.k.UpdateLastDistributionTime(f.ctx, f.distributorGov(id), id))
	require.NoError(f.t, f.k.SetTokensPerInterval(f.ctx, f.distributorGov(id), id, rate))
}

func (f *fixture) fund(addr sdk.AccAddress, denom string, amount math.Int) {
	f.env.Fund(f.t, f.ctx, addr, sdk.NewCoin(denom, amount))
}

func (f *fixture) advance(d time.Duration) {
	f.ctx = teststore.AdvanceTime(f.ctx, d)
}

func (f *fixture) balance(addr sdk.AccAddress, denom string) math.Int {
	return f.env.BankKeeper.GetBalance(f.ctx, addr, denom).Amount
}

func (f *fixture) claimable(trackerID string, addr sdk.AccAddress) math.Int {
	v, err := f.k.Claimable(f.ctx, trackerID, addr)
	require.NoError(f.t, err)
	return v
}

func (f *fixture) requireInvariants() {
	msg, broken := keeper.AllInvariants(*f.k)(f.ctx)
	require.False(f.t, broken, msg)
}

func tokens(n int64) math.Int {
	return testcoins.Tokens(n)
}
