package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// Claimable returns what an immediate claim would pay to addr.
func (k Keeper) Claimable(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error) {
	acc, err := k.projectedAccount(ctx, trackerID, addr)
	if err != nil {
		return math.Int{}, err
	}
	return acc.ClaimableReward, nil
}

// AverageStakedAmount returns the reward weighted average stake of addr.
func (k Keeper) AverageStakedAmount(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error) {
	acc, err := k.GetStakeAccount(ctx, trackerID, addr)
	if err != nil {
		return math.Int{}, err
	}
	return acc.CurrentAverageStakedAmount(), nil
}

// CumulativeReward returns the total reward ever settled to addr.
func (k Keeper) CumulativeReward(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error) {
	acc, err := k.GetStakeAccount(ctx, trackerID, addr)
	if err != nil {
		return math.Int{}, err
	}
	return acc.CumulativeReward, nil
}

func (k Keeper) StakedAmount(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error) {
	acc, err := k.GetStakeAccount(ctx, trackerID, addr)
	if err != nil {
		return math.Int{}, err
	}
	return acc.StakedAmount, nil
}

func (k Keeper) DepositBalance(ctx context.Context, trackerID string, addr sdk.AccAddress, denom string) (math.Int, error) {
	return intOrZero(ctx, k.depositBalances, collections.Join3(trackerID, addr, denom))
}

func (k Keeper) TotalDepositSupply(ctx context.Context, trackerID, denom string) (math.Int, error) {
	return intOrZero(ctx, k.totalDepositSupply, collections.Join(trackerID, denom))
}

// TotalSupply returns the receipt supply of a tracker.
func (k Keeper) TotalSupply(ctx context.Context, trackerID string) (math.Int, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return math.Int{}, err
	}
	return t.TotalSupply, nil
}

// GetStakeAccount returns the stored account of addr. Accounts that never
// interacted with the tracker are returned zeroed.
func (k Keeper) GetStakeAccount(ctx context.Context, trackerID string, addr sdk.AccAddress) (types.StakeAccount, error) {
	if _, err := k.GetTracker(ctx, trackerID); err != nil {
		return types.StakeAccount{}, err
	}
	return k.getStakeAccount(ctx, trackerID, addr)
}

// IsFresh reports whether addr has no reward history on the tracker.
func (k Keeper) IsFresh(ctx context.Context, trackerID string, addr sdk.AccAddress) (bool, error) {
	acc, err := k.GetStakeAccount(ctx, trackerID, addr)
	if err != nil {
		return false, err
	}
	return acc.IsFresh(), nil
}
