package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

func (k Keeper) stakeFor(ctx context.Context, trackerID string, funder, account sdk.AccAddress, denom string, amount math.Int) error {
	p, err := k.trackerPrincipal(ctx, trackerID)
	if err != nil {
		return err
	}
	return k.trackerK.StakeForAccount(ctx, p, trackerID, funder, account, denom, amount)
}

func (k Keeper) unstakeFor(ctx context.Context, trackerID string, account sdk.AccAddress, denom string, amount math.Int) error {
	p, err := k.trackerPrincipal(ctx, trackerID)
	if err != nil {
		return err
	}
	return k.trackerK.UnstakeForAccount(ctx, p, trackerID, account, denom, amount, account)
}

// claimFor claims the tracker reward of account into its own wallet.
func (k Keeper) claimFor(ctx context.Context, trackerID string, account sdk.AccAddress) (math.Int, error) {
	p, err := k.trackerPrincipal(ctx, trackerID)
	if err != nil {
		return math.Int{}, err
	}
	return k.trackerK.ClaimForAccount(ctx, p, trackerID, account, account)
}

// claimAll claims account's reward from each tracker and returns the sum.
func (k Keeper) claimAll(ctx context.Context, account sdk.AccAddress, trackerIDs ...string) (math.Int, error) {
	total := math.ZeroInt()
	for _, id := range trackerIDs {
		amount, err := k.claimFor(ctx, id, account)
		if err != nil {
			return math.Int{}, err
		}
		total = total.Add(amount)
	}
	return total, nil
}
