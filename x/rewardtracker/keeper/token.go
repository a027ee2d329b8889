package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// pullToken moves amount of denom from an account into the custody of t.
// Receipts of a child tracker are moved with t's custody acting on the
// child, so t must be a handler there or hold an allowance.
func (k Keeper) pullToken(ctx context.Context, t *types.Tracker, from sdk.AccAddress, denom string, amount math.Int) error {
	if childID, ok := types.TrackerIDFromDenom(denom); ok {
		p, err := k.Principal(ctx, childID, t.Address())
		if err != nil {
			return err
		}
		return k.TransferFrom(ctx, p, childID, from, t.Address(), amount)
	}

	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrap(err.Error())
	}
	return k.bankK.SendCoins(ctx, from, t.Address(), coins)
}

// pushToken moves amount of denom out of the custody of t.
func (k Keeper) pushToken(ctx context.Context, t *types.Tracker, to sdk.AccAddress, denom string, amount math.Int) error {
	if childID, ok := types.TrackerIDFromDenom(denom); ok {
		p, err := k.Principal(ctx, childID, t.Address())
		if err != nil {
			return err
		}
		return k.Transfer(ctx, p, childID, to, amount)
	}

	if amount.IsZero() {
		return nil
	}
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrap(err.Error())
	}
	return k.bankK.SendCoins(ctx, t.Address(), to, coins)
}
