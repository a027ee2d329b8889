package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// Claim pays the principal's claimable reward to receiver.
func (k Keeper) Claim(ctx context.Context, p nsctypes.Principal, trackerID string, receiver sdk.AccAddress) (math.Int, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return math.Int{}, err
	}
	if t.InPrivateClaimingMode {
		return math.Int{}, types.ErrActionDisabled.Wrapf("tracker %s is in private claiming mode", trackerID)
	}
	return k.claim(ctx, t, p.Address, receiver)
}

func (k Keeper) ClaimForAccount(ctx context.Context, p nsctypes.Principal, trackerID string, account, receiver sdk.AccAddress) (math.Int, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return math.Int{}, err
	}
	if err := requireHandler(p, trackerID); err != nil {
		return math.Int{}, err
	}
	return k.claim(ctx, t, account, receiver)
}

func (k Keeper) claim(ctx context.Context, t *types.Tracker, account, receiver sdk.AccAddress) (math.Int, error) {
	if receiver.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("empty receiver")
	}

	acc, err := k.settle(ctx, t, account)
	if err != nil {
		return math.Int{}, err
	}
	amount := acc.ClaimableReward
	acc.ClaimableReward = math.ZeroInt()
	if err := k.setStakeAccount(ctx, t.ID, account, acc); err != nil {
		return math.Int{}, err
	}
	if amount.IsZero() {
		return amount, nil
	}

	rewardDenom, err := k.RewardDenom(ctx, t.ID)
	if err != nil {
		return math.Int{}, err
	}
	coins, err := nsctypes.SingleCoins(rewardDenom, amount)
	if err != nil {
		return math.Int{}, err
	}
	if err := k.bankK.SendCoins(ctx, t.Address(), receiver, coins); err != nil {
		return math.Int{}, err
	}

	t.TotalClaimed = t.TotalClaimed.Add(amount)
	if err := k.setTracker(ctx, *t); err != nil {
		return math.Int{}, err
	}

	types.RecordClaimed(t.ID, amount)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaim,
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, rewardDenom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return amount, nil
}

// RewardDenom returns the denom a tracker pays rewards in.
func (k Keeper) RewardDenom(ctx context.Context, trackerID string) (string, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return "", err
	}
	if t.DistributorID == "" {
		return "", types.ErrTrackerNotInitialized.Wrapf("tracker %s", trackerID)
	}
	d, err := k.GetDistributor(ctx, t.DistributorID)
	if err != nil {
		return "", err
	}
	return d.RewardDenom, nil
}
