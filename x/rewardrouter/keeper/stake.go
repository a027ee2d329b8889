package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func (k Keeper) StakeNsc(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.stakeNsc(ctx, route, p.Address, p.Address, route.NscDenom, amount)
}

// StakeNscForAccount stakes the principal's NSC into the position of
// account. Governance only.
func (k Keeper) StakeNscForAccount(ctx context.Context, p nsctypes.Principal, account sdk.AccAddress, amount math.Int) error {
	if err := requireGov(p); err != nil {
		return err
	}
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.stakeNsc(ctx, route, p.Address, account, route.NscDenom, amount)
}

func (k Keeper) StakeEsNsc(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.stakeNsc(ctx, route, p.Address, p.Address, route.EsNscDenom, amount)
}

// stakeNsc stakes denom (NSC or esNSC) through the whole NSC chain. Each
// parent tracker pulls the receipts its child just minted.
func (k Keeper) stakeNsc(ctx context.Context, route types.Route, funder, account sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("stake amount %v", amount)
	}
	if err := k.stakeFor(ctx, route.StakedNscTracker, funder, account, denom, amount); err != nil {
		return err
	}
	if err := k.stakeFor(ctx, route.BonusNscTracker, account, account, rttypes.ReceiptDenom(route.StakedNscTracker), amount); err != nil {
		return err
	}
	if err := k.stakeFor(ctx, route.FeeNscTracker, account, account, rttypes.ReceiptDenom(route.BonusNscTracker), amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStakeNsc,
		sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) UnstakeNsc(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.unstakeNsc(ctx, route, p.Address, route.NscDenom, amount, true)
}

// UnstakeEsNsc unstakes esNSC and burns the share of bonus points the
// unstaked amount earned.
func (k Keeper) UnstakeEsNsc(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.unstakeNsc(ctx, route, p.Address, route.EsNscDenom, amount, true)
}

// unstakeNsc unwinds the NSC chain top down. With reduceBonus the accrued
// bonus points are staked first and then the fraction amount/staked of
// the staked bonus points is unstaked and burnt.
func (k Keeper) unstakeNsc(ctx context.Context, route types.Route, account sdk.AccAddress, denom string, amount math.Int, reduceBonus bool) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("unstake amount %v", amount)
	}
	staked, err := k.trackerK.StakedAmount(ctx, route.StakedNscTracker, account)
	if err != nil {
		return err
	}

	if err := k.unstakeFor(ctx, route.FeeNscTracker, account, rttypes.ReceiptDenom(route.BonusNscTracker), amount); err != nil {
		return err
	}
	if err := k.unstakeFor(ctx, route.BonusNscTracker, account, rttypes.ReceiptDenom(route.StakedNscTracker), amount); err != nil {
		return err
	}
	if err := k.unstakeFor(ctx, route.StakedNscTracker, account, denom, amount); err != nil {
		return err
	}

	if reduceBonus {
		if err := k.reduceBonusPoints(ctx, route, account, amount, staked); err != nil {
			return err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnstakeNsc,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) reduceBonusPoints(ctx context.Context, route types.Route, account sdk.AccAddress, amount, staked math.Int) error {
	bn, err := k.claimFor(ctx, route.BonusNscTracker, account)
	if err != nil {
		return err
	}
	if bn.IsPositive() {
		if err := k.stakeFor(ctx, route.FeeNscTracker, account, account, route.BnNscDenom, bn); err != nil {
			return err
		}
	}

	stakedBn, err := k.trackerK.DepositBalance(ctx, route.FeeNscTracker, account, route.BnNscDenom)
	if err != nil {
		return err
	}
	if stakedBn.IsZero() || staked.IsZero() {
		return nil
	}
	reduction, err := nsctypes.MulDiv(stakedBn, amount, staked)
	if err != nil {
		return err
	}
	if reduction.IsZero() {
		return nil
	}
	if err := k.unstakeFor(ctx, route.FeeNscTracker, account, route.BnNscDenom, reduction); err != nil {
		return err
	}
	return k.burn(ctx, account, route.BnNscDenom, reduction)
}

// burn destroys tokens of account through the module account.
func (k Keeper) burn(ctx context.Context, account sdk.AccAddress, denom string, amount math.Int) error {
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return err
	}
	if err := k.bankK.SendCoinsFromAccountToModule(ctx, account, types.ModuleName, coins); err != nil {
		return err
	}
	if err := k.bankK.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}

	types.RecordBurntBonusPoints(amount)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBurnBonus,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) StakeNlp(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("stake amount %v", amount)
	}
	account := p.Address
	if err := k.stakeFor(ctx, route.FeeNlpTracker, account, account, route.NlpDenom, amount); err != nil {
		return err
	}
	if err := k.stakeFor(ctx, route.StakedNlpTracker, account, account, rttypes.ReceiptDenom(route.FeeNlpTracker), amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeStakeNlp,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) UnstakeNlp(ctx context.Context, p nsctypes.Principal, amount math.Int) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("unstake amount %v", amount)
	}
	account := p.Address
	if err := k.unstakeFor(ctx, route.StakedNlpTracker, account, rttypes.ReceiptDenom(route.FeeNlpTracker), amount); err != nil {
		return err
	}
	if err := k.unstakeFor(ctx, route.FeeNlpTracker, account, route.NlpDenom, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnstakeNlp,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
