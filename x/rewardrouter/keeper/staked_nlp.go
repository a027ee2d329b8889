package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// StakedNlpBalance returns the NLP account has staked through the whole NLP
// chain, which is what a staked NLP transfer can move.
func (k Keeper) StakedNlpBalance(ctx context.Context, account sdk.AccAddress) (math.Int, error) {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return k.trackerK.DepositBalance(ctx, route.StakedNlpTracker, account, rttypes.ReceiptDenom(route.FeeNlpTracker))
}

func (k Keeper) StakedNlpAllowance(ctx context.Context, owner, spender sdk.AccAddress) (math.Int, error) {
	amount, err := k.stakedNlpAllowances.Get(ctx, collections.Join(owner, spender))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

// ApproveStakedNlp sets the amount of the principal's staked NLP spender may
// move. A zero amount revokes the allowance.
func (k Keeper) ApproveStakedNlp(ctx context.Context, p nsctypes.Principal, spender sdk.AccAddress, amount math.Int) error {
	if spender.Empty() {
		return types.ErrInvalidAddress.Wrap("approve to the empty address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("allowance %v", amount)
	}
	if err := k.setStakedNlpAllowance(ctx, p.Address, spender, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeApproveNlp,
		sdk.NewAttribute(types.AttributeKeyOwner, p.Address.String()),
		sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) setStakedNlpAllowance(ctx context.Context, owner, spender sdk.AccAddress, amount math.Int) error {
	key := collections.Join(owner, spender)
	if amount.IsZero() {
		return k.stakedNlpAllowances.Remove(ctx, key)
	}
	return k.stakedNlpAllowances.Set(ctx, key, amount)
}

// TransferStakedNlp moves amount of the principal's staked NLP position to
// recipient.
func (k Keeper) TransferStakedNlp(ctx context.Context, p nsctypes.Principal, recipient sdk.AccAddress, amount math.Int) error {
	return k.transferStakedNlp(ctx, p.Address, recipient, amount)
}

// TransferStakedNlpFrom moves amount of owner's staked NLP position to
// recipient and spends the allowance owner gave the principal.
func (k Keeper) TransferStakedNlpFrom(ctx context.Context, p nsctypes.Principal, owner, recipient sdk.AccAddress, amount math.Int) error {
	allowance, err := k.StakedNlpAllowance(ctx, owner, p.Address)
	if err != nil {
		return err
	}
	if amount.IsNil() || allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("%s may move %s of %s, requested %v", p.Address, allowance, owner, amount)
	}
	if err := k.setStakedNlpAllowance(ctx, owner, p.Address, allowance.Sub(amount)); err != nil {
		return err
	}
	return k.transferStakedNlp(ctx, owner, recipient, amount)
}

// transferStakedNlp unwinds amount of sender's NLP chain and restakes the
// released NLP for recipient. Both legs act as StakedNlpAddress, so the
// trackers reject the move unless it is one of their handlers.
func (k Keeper) transferStakedNlp(ctx context.Context, sender, recipient sdk.AccAddress, amount math.Int) error {
	if sender.Empty() || recipient.Empty() {
		return types.ErrInvalidAddress.Wrapf("cannot transfer staked NLP from %s to %s", sender, recipient)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("transfer amount %v", amount)
	}
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	feeReceipt := rttypes.ReceiptDenom(route.FeeNlpTracker)

	stakedP, err := k.trackerK.Principal(ctx, route.StakedNlpTracker, types.StakedNlpAddress())
	if err != nil {
		return err
	}
	feeP, err := k.trackerK.Principal(ctx, route.FeeNlpTracker, types.StakedNlpAddress())
	if err != nil {
		return err
	}

	if err := k.trackerK.UnstakeForAccount(ctx, stakedP, route.StakedNlpTracker, sender, feeReceipt, amount, sender); err != nil {
		return err
	}
	if err := k.trackerK.UnstakeForAccount(ctx, feeP, route.FeeNlpTracker, sender, route.NlpDenom, amount, sender); err != nil {
		return err
	}
	if err := k.trackerK.StakeForAccount(ctx, feeP, route.FeeNlpTracker, sender, recipient, route.NlpDenom, amount); err != nil {
		return err
	}
	if err := k.trackerK.StakeForAccount(ctx, stakedP, route.StakedNlpTracker, recipient, recipient, feeReceipt, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransferNlp,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, recipient.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
