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
	rtkeeper "github.com/nsc-protocol/nsc/x/rewardtracker/keeper"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester/keeper"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

const (
	vesterID      = "vnsc"
	stakedTracker = "snsc"

	secondsPerYear = int64(365 * 24 * 60 * 60)
	day            = 24 * time.Hour
)

type fixture struct {
	t   *testing.T
	env *testkeeper.BankEnv
	rt  *rtkeeper.Keeper
	k   *keeper.Keeper
	ctx sdk.Context
}

func newFixture(t *testing.T) *fixture {
	env := testkeeper.NewBankEnv(t)
	rt, _ := testkeeper.RewardTrackerKeeperWithStore(t, env.DB, env.StateStore, env.BankKeeper)
	k, ctx := testkeeper.VesterKeeperWithStore(t, env.DB, env.StateStore, env.BankKeeper, rt)
	return &fixture{t: t, env: env, rt: rt, k: k, ctx: ctx}
}

func plainVester() types.VesterParams {
	return types.VesterParams{
		ID:              vesterID,
		Name:            "Vested NSC",
		Symbol:          "vNSC",
		VestingDuration: secondsPerYear,
		EsDenom:         appparams.EsNscDenom,
		ClaimableDenom:  appparams.NscDenom,
	}
}

func (f *fixture) createVester(params types.VesterParams) {
	require.NoError(f.t, f.k.CreateVester(f.ctx, params))
}

func (f *fixture) principal(addr sdk.AccAddress) nsctypes.Principal {
	p, err := f.k.Principal(f.ctx, vesterID, addr)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) gov() nsctypes.Principal {
	return f.principal(appparams.AccGov)
}

// handler registers addr as a handler of the vester and returns its principal.
func (f *fixture) handler(addr sdk.AccAddress) nsctypes.Principal {
	require.NoError(f.t, f.k.SetHandler(f.ctx, f.gov(), vesterID, addr, true))
	p := f.principal(addr)
	require.True(f.t, p.IsHandler)
	return p
}

func (f *fixture) trackerPrincipal(addr sdk.AccAddress) nsctypes.Principal {
	p, err := f.rt.Principal(f.ctx, stakedTracker, addr)
	require.NoError(f.t, err)
	return p
}

// stakeForReward creates the staked tracker, stakes amount NSC for user and
// lets one esNSC per second accrue for seconds, then claims it to user.
// The user ends with cumulative reward and average stake both known.
func (f *fixture) stakeForReward(user sdk.AccAddress, amount math.Int, seconds int64) {
	require.NoError(f.t, f.rt.CreateTracker(f.ctx, stakedTracker, "Staked NSC", "sNSC"))
	require.NoError(f.t, f.rt.CreateDistributor(f.ctx, stakedTracker, rttypes.DistributorKindLinear, appparams.EsNscDenom, stakedTracker))
	gov := f.trackerPrincipal(appparams.AccGov)
	require.NoError(f.t, f.rt.Initialize(f.ctx, gov, stakedTracker, []string{appparams.NscDenom}, stakedTracker))

	d, err := f.rt.GetDistributor(f.ctx, stakedTracker)
	require.NoError(f.t, err)
	f.fund(d.Address(), appparams.EsNscDenom, tokens(1_000_000))
	dgov, err := f.rt.DistributorPrincipal(f.ctx, stakedTracker, appparams.AccGov)
	require.NoError(f.t, err)
	require.NoError(f.t, f.rt.UpdateLastDistributionTime(f.ctx, dgov, stakedTracker))
	require.NoError(f.t, f.rt.SetTokensPerInterval(f.ctx, dgov, stakedTracker, tokens(1)))

	f.fund(user, appparams.NscDenom, amount)
	require.NoError(f.t, f.rt.Stake(f.ctx, f.trackerPrincipal(user), stakedTracker, appparams.NscDenom, amount))
	f.advance(time.Duration(seconds) * time.Second)
	_, err = f.rt.Claim(f.ctx, f.trackerPrincipal(user), stakedTracker, user)
	require.NoError(f.t, err)
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

func (f *fixture) account(addr sdk.AccAddress) types.VestingAccount {
	acc, err := f.k.GetVestingAccount(f.ctx, vesterID, addr)
	require.NoError(f.t, err)
	return acc
}

func (f *fixture) claimable(addr sdk.AccAddress) math.Int {
	v, err := f.k.Claimable(f.ctx, vesterID, addr)
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
