package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestStakeValidation(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)

	user, handler := sample.AccAddress(), sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	p := f.principal(stakedTracker, user)

	// private staking blocks the public path before any other check
	require.NoError(t, f.k.SetInPrivateStakingMode(f.ctx, f.gov(stakedTracker), stakedTracker, true))
	require.ErrorIs(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.FeeDenom, math.ZeroInt()), types.ErrActionDisabled)
	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(1), user), types.ErrActionDisabled)

	// the handler path ignores the flag but requires the capability
	require.ErrorIs(t, f.k.StakeForAccount(f.ctx, p, stakedTracker, user, user, appparams.NscDenom, tokens(1)), types.ErrForbidden)
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, handler, true))
	hp := f.principal(stakedTracker, handler)
	require.ErrorIs(t, f.k.StakeForAccount(f.ctx, hp, stakedTracker, user, user, appparams.NscDenom, math.ZeroInt()), types.ErrInvalidAmount)
	require.ErrorIs(t, f.k.StakeForAccount(f.ctx, hp, stakedTracker, user, user, appparams.FeeDenom, tokens(1)), types.ErrInvalidDepositToken)
	require.ErrorIs(t, f.k.StakeForAccount(f.ctx, hp, stakedTracker, user, user, appparams.NscDenom, tokens(11)), sdkerrors.ErrInsufficientFunds)
	require.NoError(t, f.k.StakeForAccount(f.ctx, hp, stakedTracker, user, user, appparams.NscDenom, tokens(10)))

	require.NoError(t, f.k.SetInPrivateStakingMode(f.ctx, f.gov(stakedTracker), stakedTracker, false))
	require.ErrorIs(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.NscDenom, math.ZeroInt()), types.ErrInvalidAmount)
	require.ErrorIs(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.FeeDenom, tokens(1)), types.ErrInvalidDepositToken)

	f.requireInvariants()
}

func TestUnstakeValidation(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom, appparams.EsNscDenom)

	user := sample.AccAddress()
	f.fund(user, appparams.NscDenom, tokens(10))
	f.fund(user, appparams.EsNscDenom, tokens(5))
	p := f.principal(stakedTracker, user)
	require.NoError(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(10)))
	require.NoError(t, f.k.Stake(f.ctx, p, stakedTracker, appparams.EsNscDenom, tokens(5)))

	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.NscDenom, math.ZeroInt(), user), types.ErrInvalidAmount)
	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.FeeDenom, tokens(1), user), types.ErrInvalidDepositToken)
	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(16), user), types.ErrAmountExceedsStakedAmount)
	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.EsNscDenom, tokens(6), user), types.ErrAmountExceedsDepositBalance)

	// receipts moved away can no longer be burned
	other := sample.AccAddress()
	require.NoError(t, f.k.Transfer(f.ctx, p, stakedTracker, other, tokens(14)))
	require.ErrorIs(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(2), user), types.ErrBurnExceedsBalance)
	require.NoError(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.NscDenom, tokens(1), user))

	receiver := sample.AccAddress()
	require.NoError(t, f.k.Transfer(f.ctx, f.principal(stakedTracker, other), stakedTracker, user, tokens(14)))
	require.NoError(t, f.k.Unstake(f.ctx, p, stakedTracker, appparams.EsNscDenom, tokens(5), receiver))
	require.Equal(t, tokens(5), f.balance(receiver, appparams.EsNscDenom))
	require.Equal(t, tokens(1), f.balance(user, appparams.NscDenom))

	staked, err := f.k.StakedAmount(f.ctx, stakedTracker, user)
	require.NoError(t, err)
	require.Equal(t, tokens(9), staked)

	f.requireInvariants()
}

func TestGovernanceGates(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)

	stranger := sample.AccAddress()
	p := f.principal(stakedTracker, stranger)
	require.False(t, p.IsGov)

	require.ErrorIs(t, f.k.SetGov(f.ctx, p, stakedTracker, stranger), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetDepositToken(f.ctx, p, stakedTracker, appparams.FeeDenom, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetInPrivateTransferMode(f.ctx, p, stakedTracker, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetInPrivateStakingMode(f.ctx, p, stakedTracker, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetInPrivateClaimingMode(f.ctx, p, stakedTracker, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetHandler(f.ctx, p, stakedTracker, stranger, true), types.ErrForbidden)
	require.ErrorIs(t, f.k.WithdrawToken(f.ctx, p, stakedTracker, appparams.NscDenom, stranger, tokens(1)), types.ErrForbidden)
	require.ErrorIs(t, f.k.Initialize(f.ctx, f.gov(stakedTracker), stakedTracker, nil, stakedTracker), types.ErrAlreadyInitialized)

	dp, err := f.k.DistributorPrincipal(f.ctx, stakedTracker, stranger)
	require.NoError(t, err)
	require.ErrorIs(t, f.k.UpdateLastDistributionTime(f.ctx, dp, stakedTracker), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetTokensPerInterval(f.ctx, dp, stakedTracker, math.OneInt()), types.ErrForbidden)
	require.ErrorIs(t, f.k.SetDistributorGov(f.ctx, dp, stakedTracker, stranger), types.ErrForbidden)

	// a new gov takes over
	require.NoError(t, f.k.SetGov(f.ctx, f.gov(stakedTracker), stakedTracker, stranger))
	require.True(t, f.principal(stakedTracker, stranger).IsGov)
	require.False(t, f.principal(stakedTracker, appparams.AccGov).IsGov)

	// gov may recover tokens sent to the custody
	tr, err := f.k.GetTracker(f.ctx, stakedTracker)
	require.NoError(t, err)
	f.fund(tr.Address(), appparams.FeeDenom, tokens(3))
	require.NoError(t, f.k.WithdrawToken(f.ctx, f.principal(stakedTracker, stranger), stakedTracker, appparams.FeeDenom, stranger, tokens(3)))
	require.Equal(t, tokens(3), f.balance(stranger, appparams.FeeDenom))
}

func TestClaimPrivateMode(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)
	require.NoError(t, f.k.SetInPrivateClaimingMode(f.ctx, f.gov(stakedTracker), stakedTracker, true))

	user, handler := sample.AccAddress(), sample.AccAddress()
	_, err := f.k.Claim(f.ctx, f.principal(stakedTracker, user), stakedTracker, user)
	require.ErrorIs(t, err, types.ErrActionDisabled)
	_, err = f.k.ClaimForAccount(f.ctx, f.principal(stakedTracker, user), stakedTracker, user, user)
	require.ErrorIs(t, err, types.ErrForbidden)

	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, handler, true))
	paid, err := f.k.ClaimForAccount(f.ctx, f.principal(stakedTracker, handler), stakedTracker, user, user)
	require.NoError(t, err)
	require.True(t, paid.IsZero())
}

func TestStakeForAccountFunder(t *testing.T) {
	f := newFixture(t)
	f.createTracker(stakedTracker, types.DistributorKindLinear, appparams.EsNscDenom, appparams.NscDenom)

	funder, account, handler := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	f.fund(funder, appparams.NscDenom, tokens(10))
	require.NoError(t, f.k.SetHandler(f.ctx, f.gov(stakedTracker), stakedTracker, handler, true))

	// only a handler can spend a third party's balance
	p := f.principal(stakedTracker, account)
	require.ErrorIs(t, f.k.StakeForAccount(f.ctx, p, stakedTracker, funder, account, appparams.NscDenom, tokens(4)), types.ErrForbidden)
	require.Equal(t, tokens(10), f.balance(funder, appparams.NscDenom))

	hp := f.principal(stakedTracker, handler)
	require.NoError(t, f.k.StakeForAccount(f.ctx, hp, stakedTracker, funder, account, appparams.NscDenom, tokens(4)))
	require.Equal(t, tokens(6), f.balance(funder, appparams.NscDenom))

	staked, err := f.k.StakedAmount(f.ctx, stakedTracker, account)
	require.NoError(t, err)
	require.Equal(t, tokens(4), staked)
	staked, err = f.k.StakedAmount(f.ctx, stakedTracker, funder)
	require.NoError(t, err)
	require.True(t, staked.IsZero())

	f.requireInvariants()
}
