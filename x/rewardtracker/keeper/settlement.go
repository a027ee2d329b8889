package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func (k Keeper) getStakeAccount(ctx context.Context, trackerID string, addr sdk.AccAddress) (types.StakeAccount, error) {
	acc, err := k.stakeAccounts.Get(ctx, collections.Join(trackerID, addr))
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewStakeAccount(), nil
	}
	return acc, err
}

func (k Keeper) setStakeAccount(ctx context.Context, trackerID string, addr sdk.AccAddress, acc types.StakeAccount) error {
	return k.stakeAccounts.Set(ctx, collections.Join(trackerID, addr), acc)
}

// nextCumulativeRewardPerToken returns the accumulator of t once reward is
// spread over its supply. Rewards reaching an empty tracker are not spread.
func nextCumulativeRewardPerToken(t *types.Tracker, reward math.Int) (math.Int, error) {
	if t.TotalSupply.IsZero() || reward.IsZero() {
		return t.CumulativeRewardPerToken, nil
	}
	inc, err := nsctypes.MulDiv(reward, nsctypes.Precision, t.TotalSupply)
	if err != nil {
		return math.Int{}, err
	}
	return t.CumulativeRewardPerToken.Add(inc), nil
}

// accrue credits acc with its share of the accumulator growth since its
// last checkpoint.
func accrue(cumulativeRewardPerToken math.Int, acc *types.StakeAccount) error {
	if cumulativeRewardPerToken.IsZero() {
		return nil
	}

	delta, err := nsctypes.MulDiv(
		acc.StakedAmount,
		cumulativeRewardPerToken.Sub(acc.PreviousCumulatedRewardPerToken),
		nsctypes.Precision,
	)
	if err != nil {
		return err
	}
	acc.ClaimableReward = acc.ClaimableReward.Add(delta)
	acc.PreviousCumulatedRewardPerToken = cumulativeRewardPerToken
	if acc.StakedAmount.IsPositive() && delta.IsPositive() {
		acc.CumulativeReward = acc.CumulativeReward.Add(delta)
	}
	return nil
}

// updateRewards pulls the distributor emission into t and advances its
// accumulator. t is persisted.
func (k Keeper) updateRewards(ctx context.Context, t *types.Tracker) error {
	reward, err := k.distribute(ctx, t)
	if err != nil {
		return err
	}
	cum, err := nextCumulativeRewardPerToken(t, reward)
	if err != nil {
		return err
	}

	t.CumulativeRewardPerToken = cum
	t.TotalDistributed = t.TotalDistributed.Add(reward)
	return k.setTracker(ctx, *t)
}

// UpdateRewards settles the global accumulator of a tracker.
func (k Keeper) UpdateRewards(ctx context.Context, trackerID string) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	return k.updateRewards(ctx, t)
}

// settle runs updateRewards and returns the account of addr accrued up to
// the new accumulator. The caller persists the account.
func (k Keeper) settle(ctx context.Context, t *types.Tracker, addr sdk.AccAddress) (types.StakeAccount, error) {
	if err := k.updateRewards(ctx, t); err != nil {
		return types.StakeAccount{}, err
	}
	acc, err := k.getStakeAccount(ctx, t.ID, addr)
	if err != nil {
		return types.StakeAccount{}, err
	}
	if err := accrue(t.CumulativeRewardPerToken, &acc); err != nil {
		return types.StakeAccount{}, err
	}
	return acc, nil
}

// SettleAccount settles addr on a tracker without any other change.
func (k Keeper) SettleAccount(ctx context.Context, trackerID string, addr sdk.AccAddress) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	acc, err := k.settle(ctx, t, addr)
	if err != nil {
		return err
	}
	return k.setStakeAccount(ctx, trackerID, addr, acc)
}

// projectedAccount returns the account of addr as the next settlement would
// leave it, without writing anything.
func (k Keeper) projectedAccount(ctx context.Context, trackerID string, addr sdk.AccAddress) (types.StakeAccount, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return types.StakeAccount{}, err
	}
	acc, err := k.getStakeAccount(ctx, trackerID, addr)
	if err != nil {
		return types.StakeAccount{}, err
	}

	pending := math.ZeroInt()
	if t.DistributorID != "" {
		d, err := k.GetDistributor(ctx, t.DistributorID)
		if err != nil {
			return types.StakeAccount{}, err
		}
		if _, pending, err = k.pendingRewards(ctx, d, t); err != nil {
			return types.StakeAccount{}, err
		}
	}

	cum, err := nextCumulativeRewardPerToken(t, pending)
	if err != nil {
		return types.StakeAccount{}, err
	}
	if err := accrue(cum, &acc); err != nil {
		return types.StakeAccount{}, err
	}
	return acc, nil
}
