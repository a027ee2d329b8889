package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

// GetGov returns the claimer gov, falling back to the module authority.
func (k Keeper) GetGov(ctx context.Context) (string, error) {
	gov, err := k.gov.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return k.authority, nil
	}
	return gov, err
}

// Principal resolves the capabilities of addr on the claimer.
func (k Keeper) Principal(ctx context.Context, addr sdk.AccAddress) (nsctypes.Principal, error) {
	p := nsctypes.NewPrincipal(addr)
	gov, err := k.GetGov(ctx)
	if err != nil {
		return p, err
	}
	p.IsGov = addr.String() == gov
	p.IsHandler, err = k.handlers.Has(ctx, addr)
	return p, err
}

func requireGov(p nsctypes.Principal) error {
	if !p.IsGov {
		return types.ErrForbidden.Wrapf("%s is not the claimer gov", p.Address)
	}
	return nil
}

func requireHandler(p nsctypes.Principal) error {
	if !p.IsHandler {
		return types.ErrForbidden.Wrapf("%s is not a claimer handler", p.Address)
	}
	return nil
}

func (k Keeper) SetGov(ctx context.Context, p nsctypes.Principal, gov sdk.AccAddress) error {
	if err := requireGov(p); err != nil {
		return err
	}
	if gov.Empty() {
		return types.ErrInvalidAddress.Wrap("empty gov")
	}
	if err := k.gov.Set(ctx, gov.String()); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetGov,
		sdk.NewAttribute(types.AttributeKeyGov, gov.String()),
	))
	return nil
}

func (k Keeper) SetClaimableToken(ctx context.Context, p nsctypes.Principal, denom string, isClaimable bool) error {
	if err := requireGov(p); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidParam.Wrap(err.Error())
	}
	if err := k.setClaimableToken(ctx, denom, isClaimable); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetClaimableToken,
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyIsClaimable, strconv.FormatBool(isClaimable)),
	))
	return nil
}

func (k Keeper) setClaimableToken(ctx context.Context, denom string, isClaimable bool) error {
	if isClaimable {
		return k.claimableTokens.Set(ctx, denom)
	}
	return k.claimableTokens.Remove(ctx, denom)
}

func (k Keeper) IsClaimableToken(ctx context.Context, denom string) (bool, error) {
	return k.claimableTokens.Has(ctx, denom)
}

func (k Keeper) SetHandler(ctx context.Context, p nsctypes.Principal, handler sdk.AccAddress, isActive bool) error {
	if err := requireGov(p); err != nil {
		return err
	}
	if handler.Empty() {
		return types.ErrInvalidAddress.Wrap("empty handler")
	}
	if err := k.setHandler(ctx, handler, isActive); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetHandler,
		sdk.NewAttribute(types.AttributeKeyHandler, handler.String()),
		sdk.NewAttribute(types.AttributeKeyIsActive, strconv.FormatBool(isActive)),
	))
	return nil
}

func (k Keeper) setHandler(ctx context.Context, handler sdk.AccAddress, isActive bool) error {
	if isActive {
		return k.handlers.Set(ctx, handler)
	}
	return k.handlers.Remove(ctx, handler)
}

// WithdrawToken sends tokens held by the claimer to receiver. Claimable
// amounts are not reserved against it.
func (k Keeper) WithdrawToken(ctx context.Context, p nsctypes.Principal, denom string, receiver sdk.AccAddress, amount math.Int) error {
	if err := requireGov(p); err != nil {
		return err
	}
	if receiver.Empty() {
		return types.ErrInvalidAddress.Wrap("empty receiver")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("withdraw amount %s", amount)
	}
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return types.ErrInvalidParam.Wrap(err.Error())
	}
	if err := k.bankK.SendCoins(ctx, types.ClaimerAddress(), receiver, coins); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawToken,
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
