package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

// Claimable returns what an immediate claim would pay.
func (k Keeper) Claimable(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error) {
	v, acc, err := k.vesterAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return acc.Claimable(nsctypes.BlockTime(ctx), v.VestingDuration), nil
}

// GetVestingAccount returns the stored account, zero-valued if account
// never interacted with the vester.
func (k Keeper) GetVestingAccount(ctx context.Context, id string, account sdk.AccAddress) (types.VestingAccount, error) {
	_, acc, err := k.vesterAccount(ctx, id, account)
	return acc, err
}

// BalanceOf is the escrow of account still vesting.
func (k Keeper) BalanceOf(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error) {
	acc, err := k.GetVestingAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return acc.Balance, nil
}

func (k Keeper) TotalVested(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error) {
	acc, err := k.GetVestingAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return acc.TotalVested(), nil
}

// HasTransferHistory reports whether account cannot receive a position
// transfer in this vester.
func (k Keeper) HasTransferHistory(ctx context.Context, id string, account sdk.AccAddress) (bool, error) {
	acc, err := k.GetVestingAccount(ctx, id, account)
	if err != nil {
		return false, err
	}
	return acc.HasTransferHistory(), nil
}
