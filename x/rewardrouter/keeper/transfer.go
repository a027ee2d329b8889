package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

// SignalTransfer records that the principal wants to hand its staking
// position to receiver. A later signal replaces an earlier one.
func (k Keeper) SignalTransfer(ctx context.Context, p nsctypes.Principal, receiver sdk.AccAddress) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	sender := p.Address
	if receiver.Empty() || sender.Equals(receiver) {
		return types.ErrInvalidAddress.Wrapf("cannot transfer from %s to %s", sender, receiver)
	}
	if err := k.requireNoVestedTokens(ctx, route, sender); err != nil {
		return err
	}
	if err := k.validateReceiver(ctx, route, receiver); err != nil {
		return err
	}
	if err := k.pendingReceivers.Set(ctx, sender, receiver.String()); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSignalTransfer,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
	))
	return nil
}

// AcceptTransfer moves the whole position of sender to the principal, which
// sender must have signalled. Pending rewards are compounded first, then
// every route tracker position, the wallet esNSC and the vesting
// eligibility move.
func (k Keeper) AcceptTransfer(ctx context.Context, p nsctypes.Principal, sender sdk.AccAddress) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	receiver := p.Address

	if err := k.requireNoVestedTokens(ctx, route, sender); err != nil {
		return err
	}
	pending, err := k.PendingReceiver(ctx, sender)
	if err != nil {
		return err
	}
	if pending == nil || !pending.Equals(receiver) {
		return types.ErrTransferNotSignalled.Wrapf("%s has not signalled a transfer to %s", sender, receiver)
	}
	if err := k.pendingReceivers.Remove(ctx, sender); err != nil {
		return err
	}
	if err := k.validateReceiver(ctx, route, receiver); err != nil {
		return err
	}

	if err := k.compound(ctx, route, sender); err != nil {
		return err
	}
	for _, id := range route.Trackers() {
		tp, err := k.trackerPrincipal(ctx, id)
		if err != nil {
			return err
		}
		if err := k.trackerK.MovePosition(ctx, tp, id, sender, receiver); err != nil {
			return err
		}
	}

	esBalance := k.bankK.GetBalance(ctx, sender, route.EsNscDenom)
	if esBalance.IsPositive() {
		if err := k.bankK.SendCoins(ctx, sender, receiver, sdk.NewCoins(esBalance)); err != nil {
			return err
		}
	}

	for _, id := range route.Vesters() {
		vp, err := k.vesterPrincipal(ctx, id)
		if err != nil {
			return err
		}
		if err := k.vesterK.TransferStakeValues(ctx, vp, id, sender, receiver); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("accepted position transfer", "sender", sender.String(), "receiver", receiver.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAcceptTransfer,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
	))
	return nil
}

// PendingReceiver returns the receiver sender signalled, or nil.
func (k Keeper) PendingReceiver(ctx context.Context, sender sdk.AccAddress) (sdk.AccAddress, error) {
	receiver, err := k.pendingReceivers.Get(ctx, sender)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return sdk.AccAddressFromBech32(receiver)
}

func (k Keeper) requireNoVestedTokens(ctx context.Context, route types.Route, sender sdk.AccAddress) error {
	for _, id := range route.Vesters() {
		balance, err := k.vesterK.BalanceOf(ctx, id, sender)
		if err != nil {
			return err
		}
		if !balance.IsZero() {
			return types.ErrSenderHasVestedTokens.Wrapf("%s vests %s in %s", sender, balance, id)
		}
	}
	return nil
}

// validateReceiver requires receiver to have no reward history on any route
// tracker and no transferred values or escrow on any vester.
func (k Keeper) validateReceiver(ctx context.Context, route types.Route, receiver sdk.AccAddress) error {
	for _, id := range route.Trackers() {
		fresh, err := k.trackerK.IsFresh(ctx, id, receiver)
		if err != nil {
			return err
		}
		if !fresh {
			return types.ErrAverageStakedAmountNonZero.Wrapf("receiver %s has staked in %s", receiver, id)
		}
	}
	for _, id := range route.Vesters() {
		history, err := k.vesterK.HasTransferHistory(ctx, id, receiver)
		if err != nil {
			return err
		}
		if history {
			return types.ErrAverageStakedAmountNonZero.Wrapf("receiver %s has vesting history in %s", receiver, id)
		}
	}
	return nil
}
