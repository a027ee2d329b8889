package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	testcoins "github.com/nsc-protocol/nsc/testutil/coins"
	testkeeper "github.com/nsc-protocol/nsc/testutil/keeper"
	"github.com/nsc-protocol/nsc/testutil/sample"
	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/keeper"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

type fixture struct {
	t   *testing.T
	env *testkeeper.BankEnv
	k   *keeper.Keeper
	ctx sdk.Context
}

func newFixture(t *testing.T) *fixture {
	env := testkeeper.NewBankEnv(t)
	k, ctx := testkeeper.RewardClaimerKeeperWithStore(t, env.DB, env.StateStore, env.BankKeeper)
	return &fixture{t: t, env: env, k: k, ctx: ctx}
}

func (f *fixture) principal(addr sdk.AccAddress) nsctypes.Principal {
	p, err := f.k.Principal(f.ctx, addr)
	require.NoError(f.t, err)
	return p
}

func (f *fixture) gov() nsctypes.Principal {
	return f.principal(appparams.AccGov)
}

func (f *fixture) handler(addr sdk.AccAddress) nsctypes.Principal {
	require.NoError(f.t, f.k.SetHandler(f.ctx, f.gov(), addr, true))
	p := f.principal(addr)
	require.True(f.t, p.IsHandler)
	return p
}

func (f *fixture) fund(addr sdk.AccAddress, denom string, amount math.Int) {
	f.env.Fund(f.t, f.ctx, addr, sdk.NewCoin(denom, amount))
}

func (f *fixture) balance(addr sdk.AccAddress, denom string) math.Int {
	return f.env.BankKeeper.GetBalance(f.ctx, addr, denom).Amount
}

func (f *fixture) claimable(addr sdk.AccAddress, denom string) math.Int {
	v, err := f.k.ClaimableAmount(f.ctx, addr, denom)
	require.NoError(f.t, err)
	return v
}

func (f *fixture) withdrawable(denom string) math.Int {
	v, err := f.k.WithdrawableAmount(f.ctx, denom)
	require.NoError(f.t, err)
	return v
}

func (f *fixture) requireInvariants() {
	msg, broken := keeper.TotalClaimableInvariant(*f.k)(f.ctx)
	require.False(f.t, broken, msg)
}

func tokens(n int64) math.Int {
	return testcoins.Tokens(n)
}

func amounts(ns ...int64) []math.Int {
	out := make([]math.Int, 0, len(ns))
	for _, n := range ns {
		out = append(out, tokens(n))
	}
	return out
}

func TestGovDefaultsToAuthority(t *testing.T) {
	f := newFixture(t)
	gov, err := f.k.GetGov(f.ctx)
	require.NoError(t, err)
	require.Equal(t, appparams.AccGov.String(), gov)
	require.True(t, f.gov().IsGov)

	user, next := sample.AccAddress(), sample.AccAddress()
	require.ErrorIs(t, f.k.SetGov(f.ctx, f.principal(user), next), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetGov(f.ctx, f.gov(), nil), types.ErrInvalidAddress)
	require.NoError(t, f.k.SetGov(f.ctx, f.gov(), next))
	require.False(t, f.principal(appparams.AccGov).IsGov)
	require.True(t, f.principal(next).IsGov)
}

func TestSetClaimableTokenAndHandler(t *testing.T) {
	f := newFixture(t)
	user := sample.AccAddress()

	require.ErrorIs(t, f.k.SetClaimableToken(f.ctx, f.principal(user), appparams.EsNscDenom, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetClaimableToken(f.ctx, f.gov(), "!", true), types.ErrInvalidParam)
	require.NoError(t, f.k.SetClaimableToken(f.ctx, f.gov(), appparams.EsNscDenom, true))
	ok, err := f.k.IsClaimableToken(f.ctx, appparams.EsNscDenom)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.k.SetClaimableToken(f.ctx, f.gov(), appparams.EsNscDenom, false))
	ok, err = f.k.IsClaimableToken(f.ctx, appparams.EsNscDenom)
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, f.k.SetHandler(f.ctx, f.principal(user), user, true), types.ErrForbidden)
	f.handler(user)
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(), user, false))
	require.False(t, f.principal(user).IsHandler)
}

func TestClaimableLifecycle(t *testing.T) {
	f := newFixture(t)
	handlerAddr, user0, user1, receiver := sample.AccAddress(), sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	denom := appparams.EsNscDenom
	f.fund(types.ClaimerAddress(), denom, tokens(1000))
	require.Equal(t, tokens(1000), f.withdrawable(denom))

	accounts := []sdk.AccAddress{user0, user1}

	// a length mismatch is reported before the caller is checked
	err := f.k.IncreaseClaimableAmounts(f.ctx, f.principal(user0), denom, accounts, amounts(1))
	require.ErrorIs(t, err, types.ErrInvalidParam)
	err = f.k.IncreaseClaimableAmounts(f.ctx, f.principal(user0), denom, accounts, amounts(1, 2))
	require.ErrorIs(t, err, types.ErrForbidden)

	h := f.handler(handlerAddr)
	err = f.k.IncreaseClaimableAmounts(f.ctx, h, denom, accounts, amounts(1, 2))
	require.ErrorIs(t, err, types.ErrTokenNotClaimable)
	require.NoError(t, f.k.SetClaimableToken(f.ctx, f.gov(), denom, true))

	require.NoError(t, f.k.IncreaseClaimableAmounts(f.ctx, h, denom, accounts, amounts(1, 2)))
	require.Equal(t, tokens(1), f.claimable(user0, denom))
	require.Equal(t, tokens(2), f.claimable(user1, denom))
	require.Equal(t, tokens(997), f.withdrawable(denom))
	f.requireInvariants()

	require.NoError(t, f.k.DecreaseClaimableAmounts(f.ctx, h, denom, accounts, amounts(1, 1)))
	require.True(t, f.claimable(user0, denom).IsZero())
	require.Equal(t, tokens(1), f.claimable(user1, denom))
	require.Equal(t, tokens(999), f.withdrawable(denom))

	cacheCtx, _ := f.ctx.CacheContext()
	err = f.k.DecreaseClaimableAmounts(cacheCtx, h, denom, []sdk.AccAddress{user1}, amounts(2))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	paid, err := f.k.Claim(f.ctx, f.principal(user1), receiver, []string{denom})
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin(denom, tokens(1))), paid)
	require.Equal(t, tokens(1), f.balance(receiver, denom))
	require.True(t, f.claimable(user1, denom).IsZero())
	require.Equal(t, tokens(999), f.withdrawable(denom))
	f.requireInvariants()

	// nothing left to claim
	paid, err = f.k.Claim(f.ctx, f.principal(user1), receiver, []string{denom})
	require.NoError(t, err)
	require.True(t, paid.IsZero())

	_, err = f.k.Claim(f.ctx, f.principal(user1), receiver, []string{appparams.NscDenom})
	require.ErrorIs(t, err, types.ErrTokenNotClaimable)
	_, err = f.k.Claim(f.ctx, f.principal(user1), receiver, []string{denom, denom})
	require.ErrorIs(t, err, types.ErrInvalidParam)
}

func TestClaimForAccount(t *testing.T) {
	f := newFixture(t)
	handlerAddr, user, receiver := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	denom := appparams.EsNscDenom
	f.fund(types.ClaimerAddress(), denom, tokens(100))
	require.NoError(t, f.k.SetClaimableToken(f.ctx, f.gov(), denom, true))
	h := f.handler(handlerAddr)
	require.NoError(t, f.k.IncreaseClaimableAmounts(f.ctx, h, denom, []sdk.AccAddress{user}, amounts(5)))

	_, err := f.k.ClaimForAccount(f.ctx, f.principal(user), user, receiver, []string{denom})
	require.ErrorIs(t, err, types.ErrForbidden)

	paid, err := f.k.ClaimForAccount(f.ctx, h, user, receiver, []string{denom})
	require.NoError(t, err)
	require.Equal(t, tokens(5), paid.AmountOf(denom))
	require.Equal(t, tokens(5), f.balance(receiver, denom))
	require.True(t, f.balance(user, denom).IsZero())
	require.Equal(t, tokens(95), f.withdrawable(denom))
	f.requireInvariants()
}

func TestWithdrawToken(t *testing.T) {
	f := newFixture(t)
	handlerAddr, user, receiver := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	denom := appparams.EsNscDenom
	f.fund(types.ClaimerAddress(), denom, tokens(10))
	require.NoError(t, f.k.SetClaimableToken(f.ctx, f.gov(), denom, true))
	require.NoError(t, f.k.IncreaseClaimableAmounts(f.ctx, f.handler(handlerAddr), denom, []sdk.AccAddress{user}, amounts(8)))

	err := f.k.WithdrawToken(f.ctx, f.principal(user), denom, receiver, tokens(1))
	require.ErrorIs(t, err, types.ErrForbidden)
	err = f.k.WithdrawToken(f.ctx, f.gov(), denom, receiver, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// governance may drain claimable reserves
	require.NoError(t, f.k.WithdrawToken(f.ctx, f.gov(), denom, receiver, tokens(10)))
	require.Equal(t, tokens(10), f.balance(receiver, denom))
	require.True(t, f.withdrawable(denom).IsZero())

	cacheCtx, _ := f.ctx.CacheContext()
	_, err = f.k.Claim(cacheCtx, f.principal(user), user, []string{denom})
	require.Error(t, err)
}
