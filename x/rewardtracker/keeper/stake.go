package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// Stake deposits amount of denom from the principal into a tracker.
func (k Keeper) Stake(ctx context.Context, p nsctypes.Principal, trackerID, denom string, amount math.Int) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if t.InPrivateStakingMode {
		return types.ErrActionDisabled.Wrapf("tracker %s is in private staking mode", trackerID)
	}
	return k.stake(ctx, t, p.Address, p.Address, denom, amount)
}

// StakeForAccount deposits funder's tokens into the position of account.
// funder does not sign: handlers are trusted to debit only accounts that
// authorized the move.
func (k Keeper) StakeForAccount(
	ctx context.Context,
	p nsctypes.Principal,
	trackerID string,
	funder, account sdk.AccAddress,
	denom string,
	amount math.Int,
) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if err := requireHandler(p, trackerID); err != nil {
		return err
	}
	return k.stake(ctx, t, funder, account, denom, amount)
}

func (k Keeper) stake(ctx context.Context, t *types.Tracker, funder, account sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("stake amount %s", amount)
	}
	if !t.IsDepositDenom(denom) {
		return types.ErrInvalidDepositToken.Wrapf("%s is not accepted by tracker %s", denom, t.ID)
	}
	if err := k.pullToken(ctx, t, funder, denom, amount); err != nil {
		return err
	}

	acc, err := k.settle(ctx, t, account)
	if err != nil {
		return err
	}
	acc.FoldAverage()
	acc.StakedAmount = acc.StakedAmount.Add(amount)
	if err := k.setStakeAccount(ctx, t.ID, account, acc); err != nil {
		return err
	}
	if err := k.addDeposit(ctx, t.ID, account, denom, amount); err != nil {
		return err
	}
	if err := k.mintReceipt(ctx, t, account, amount); err != nil {
		return err
	}
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStake,
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Unstake withdraws amount of denom of the principal's position to receiver.
func (k Keeper) Unstake(ctx context.Context, p nsctypes.Principal, trackerID, denom string, amount math.Int, receiver sdk.AccAddress) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if t.InPrivateStakingMode {
		return types.ErrActionDisabled.Wrapf("tracker %s is in private staking mode", trackerID)
	}
	return k.unstake(ctx, t, p.Address, denom, amount, receiver)
}

func (k Keeper) UnstakeForAccount(
	ctx context.Context,
	p nsctypes.Principal,
	trackerID string,
	account sdk.AccAddress,
	denom string,
	amount math.Int,
	receiver sdk.AccAddress,
) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if err := requireHandler(p, trackerID); err != nil {
		return err
	}
	return k.unstake(ctx, t, account, denom, amount, receiver)
}

func (k Keeper) unstake(ctx context.Context, t *types.Tracker, account sdk.AccAddress, denom string, amount math.Int, receiver sdk.AccAddress) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("unstake amount %s", amount)
	}
	if !t.IsDepositDenom(denom) {
		return types.ErrInvalidDepositToken.Wrapf("%s is not accepted by tracker %s", denom, t.ID)
	}

	acc, err := k.settle(ctx, t, account)
	if err != nil {
		return err
	}
	if acc.StakedAmount.LT(amount) {
		return types.ErrAmountExceedsStakedAmount.Wrapf("staked %s, amount %s", acc.StakedAmount, amount)
	}
	deposit, err := k.DepositBalance(ctx, t.ID, account, denom)
	if err != nil {
		return err
	}
	if deposit.LT(amount) {
		return types.ErrAmountExceedsDepositBalance.Wrapf("deposit %s, amount %s", deposit, amount)
	}

	acc.FoldAverage()
	acc.StakedAmount = acc.StakedAmount.Sub(amount)
	if err := k.setStakeAccount(ctx, t.ID, account, acc); err != nil {
		return err
	}
	if err := k.addDeposit(ctx, t.ID, account, denom, amount.Neg()); err != nil {
		return err
	}
	if err := k.burnReceipt(ctx, t, account, amount); err != nil {
		return err
	}
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}
	if err := k.pushToken(ctx, t, receiver, denom, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnstake,
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// addDeposit adds delta to both the account's deposit balance and the
// tracker's total deposit supply of denom.
func (k Keeper) addDeposit(ctx context.Context, trackerID string, account sdk.AccAddress, denom string, delta math.Int) error {
	balanceKey := collections.Join3(trackerID, account, denom)
	balance, err := intOrZero(ctx, k.depositBalances, balanceKey)
	if err != nil {
		return err
	}
	if err := setIntOrRemove(ctx, k.depositBalances, balanceKey, balance.Add(delta)); err != nil {
		return err
	}

	supplyKey := collections.Join(trackerID, denom)
	supply, err := intOrZero(ctx, k.totalDepositSupply, supplyKey)
	if err != nil {
		return err
	}
	return setIntOrRemove(ctx, k.totalDepositSupply, supplyKey, supply.Add(delta))
}
