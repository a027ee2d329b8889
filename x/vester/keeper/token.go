package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

// pullToken moves amount of denom from an account into the vester custody.
// Receipts go through the tracker, which must list the custody as a handler.
func (k Keeper) pullToken(ctx context.Context, v *types.Vester, from sdk.AccAddress, denom string, amount math.Int) error {
	if trackerID, ok := rttypes.TrackerIDFromDenom(denom); ok {
		p, err := k.trackerK.Principal(ctx, trackerID, v.Address())
		if err != nil {
			return err
		}
		return k.trackerK.TransferFrom(ctx, p, trackerID, from, v.Address(), amount)
	}
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return err
	}
	return k.bankK.SendCoins(ctx, from, v.Address(), coins)
}

// pushToken moves amount of denom out of the vester custody.
func (k Keeper) pushToken(ctx context.Context, v *types.Vester, to sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsZero() {
		return nil
	}
	if trackerID, ok := rttypes.TrackerIDFromDenom(denom); ok {
		p, err := k.trackerK.Principal(ctx, trackerID, v.Address())
		if err != nil {
			return err
		}
		return k.trackerK.Transfer(ctx, p, trackerID, to, amount)
	}
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return err
	}
	return k.bankK.SendCoins(ctx, v.Address(), to, coins)
}

// burnEscrow destroys vested escrow held in custody.
func (k Keeper) burnEscrow(ctx context.Context, v *types.Vester, amount math.Int) error {
	coins, err := nsctypes.SingleCoins(v.EsDenom, amount)
	if err != nil {
		return err
	}
	if err := k.bankK.SendCoinsFromAccountToModule(ctx, v.Address(), types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankK.BurnCoins(ctx, types.ModuleName, coins)
}

// custodyBalance returns how much of denom the vester custody holds.
func (k Keeper) custodyBalance(ctx context.Context, v *types.Vester, denom string) (math.Int, error) {
	if trackerID, ok := rttypes.TrackerIDFromDenom(denom); ok {
		return k.trackerK.ReceiptBalance(ctx, trackerID, v.Address())
	}
	return k.bankK.GetBalance(ctx, v.Address(), denom).Amount, nil
}
