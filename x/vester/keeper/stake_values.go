package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

// trackerValues returns the cumulative reward and average staked amount of
// account in the vester's reward tracker, both zero without a tracker.
func (k Keeper) trackerValues(ctx context.Context, v *types.Vester, account sdk.AccAddress) (cumulativeReward, averageStaked math.Int, err error) {
	if !v.HasRewardTracker() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}
	cumulativeReward, err = k.trackerK.CumulativeReward(ctx, v.RewardTrackerID, account)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	averageStaked, err = k.trackerK.AverageStakedAmount(ctx, v.RewardTrackerID, account)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return cumulativeReward, averageStaked, nil
}

func (k Keeper) maxVestableAmount(ctx context.Context, v *types.Vester, account sdk.AccAddress, acc *types.VestingAccount) (math.Int, error) {
	if !v.HasRewardTracker() {
		return math.ZeroInt(), nil
	}
	cumulativeReward, _, err := k.trackerValues(ctx, v, account)
	if err != nil {
		return math.Int{}, err
	}
	maxVestable := cumulativeReward.Add(acc.TransferredCumulativeReward).Add(acc.BonusReward)
	if maxVestable.LT(acc.CumulativeRewardDeduction) {
		return math.ZeroInt(), nil
	}
	return maxVestable.Sub(acc.CumulativeRewardDeduction), nil
}

func (k Keeper) combinedAverageStakedAmount(ctx context.Context, v *types.Vester, account sdk.AccAddress, acc *types.VestingAccount) (math.Int, error) {
	_, averageStaked, err := k.trackerValues(ctx, v, account)
	if err != nil {
		return math.Int{}, err
	}
	return averageStaked.Add(acc.TransferredAverageStakedAmount), nil
}

func (k Keeper) pairAmount(ctx context.Context, v *types.Vester, account sdk.AccAddress, acc *types.VestingAccount, esAmount math.Int) (math.Int, error) {
	if esAmount.IsZero() {
		return math.ZeroInt(), nil
	}
	combined, err := k.combinedAverageStakedAmount(ctx, v, account, acc)
	if err != nil {
		return math.Int{}, err
	}
	if combined.IsZero() {
		return math.ZeroInt(), nil
	}
	maxVestable, err := k.maxVestableAmount(ctx, v, account, acc)
	if err != nil {
		return math.Int{}, err
	}
	if maxVestable.IsZero() {
		return math.ZeroInt(), nil
	}
	return nsctypes.MulDiv(esAmount, combined, maxVestable)
}

// MaxVestableAmount is the vesting cap of account: its tracker cumulative
// reward plus transferred and bonus rewards, minus the deduction left by a
// position transfer.
func (k Keeper) MaxVestableAmount(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error) {
	v, acc, err := k.vesterAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return k.maxVestableAmount(ctx, v, account, &acc)
}

func (k Keeper) CombinedAverageStakedAmount(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error) {
	v, acc, err := k.vesterAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return k.combinedAverageStakedAmount(ctx, v, account, &acc)
}

// PairAmount is the pair collateral required to vest esAmount.
func (k Keeper) PairAmount(ctx context.Context, id string, account sdk.AccAddress, esAmount math.Int) (math.Int, error) {
	v, acc, err := k.vesterAccount(ctx, id, account)
	if err != nil {
		return math.Int{}, err
	}
	return k.pairAmount(ctx, v, account, &acc, esAmount)
}

func (k Keeper) vesterAccount(ctx context.Context, id string, account sdk.AccAddress) (*types.Vester, types.VestingAccount, error) {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return nil, types.VestingAccount{}, err
	}
	acc, err := k.getAccount(ctx, id, account)
	if err != nil {
		return nil, types.VestingAccount{}, err
	}
	return v, acc, nil
}

// SetAccountValue overwrites one of the handler-settable fields of account.
func (k Keeper) SetAccountValue(ctx context.Context, p nsctypes.Principal, id string, field types.AccountField, account sdk.AccAddress, amount math.Int) error {
	v, acc, err := k.vesterAccount(ctx, id, account)
	if err != nil {
		return err
	}
	if err := requireHandler(p, v); err != nil {
		return err
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("%s %v", field, amount)
	}

	switch field {
	case types.FieldTransferredAverageStakedAmount:
		acc.TransferredAverageStakedAmount = amount
	case types.FieldTransferredCumulativeReward:
		acc.TransferredCumulativeReward = amount
	case types.FieldCumulativeRewardDeduction:
		acc.CumulativeRewardDeduction = amount
	case types.FieldBonusReward:
		acc.BonusReward = amount
	default:
		return types.ErrInvalidAmount.Wrapf("unknown account field %q", string(field))
	}
	if err := k.setAccount(ctx, id, account, acc); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetAccountValue,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeyField, string(field)),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) SetTransferredAverageStakedAmounts(ctx context.Context, p nsctypes.Principal, id string, account sdk.AccAddress, amount math.Int) error {
	return k.SetAccountValue(ctx, p, id, types.FieldTransferredAverageStakedAmount, account, amount)
}

func (k Keeper) SetTransferredCumulativeRewards(ctx context.Context, p nsctypes.Principal, id string, account sdk.AccAddress, amount math.Int) error {
	return k.SetAccountValue(ctx, p, id, types.FieldTransferredCumulativeReward, account, amount)
}

func (k Keeper) SetCumulativeRewardDeductions(ctx context.Context, p nsctypes.Principal, id string, account sdk.AccAddress, amount math.Int) error {
	return k.SetAccountValue(ctx, p, id, types.FieldCumulativeRewardDeduction, account, amount)
}

func (k Keeper) SetBonusRewards(ctx context.Context, p nsctypes.Principal, id string, account sdk.AccAddress, amount math.Int) error {
	return k.SetAccountValue(ctx, p, id, types.FieldBonusReward, account, amount)
}

// TransferStakeValues hands the vesting eligibility of sender to receiver
// after their tracker positions moved. The sender keeps a deduction equal to
// its tracker cumulative reward so the moved history is not counted twice.
func (k Keeper) TransferStakeValues(ctx context.Context, p nsctypes.Principal, id string, sender, receiver sdk.AccAddress) error {
	v, from, err := k.vesterAccount(ctx, id, sender)
	if err != nil {
		return err
	}
	if err := requireHandler(p, v); err != nil {
		return err
	}
	if sender.Equals(receiver) {
		return types.ErrInvalidAddress.Wrap("sender equals receiver")
	}
	to, err := k.getAccount(ctx, id, receiver)
	if err != nil {
		return err
	}

	cumulativeReward, averageStaked, err := k.trackerValues(ctx, v, sender)
	if err != nil {
		return err
	}

	to.TransferredAverageStakedAmount = to.TransferredAverageStakedAmount.
		Add(averageStaked).Add(from.TransferredAverageStakedAmount)
	to.TransferredCumulativeReward = to.TransferredCumulativeReward.
		Add(cumulativeReward).Add(from.TransferredCumulativeReward)
	to.BonusReward = to.BonusReward.Add(from.BonusReward)

	from.CumulativeRewardDeduction = cumulativeReward
	from.TransferredAverageStakedAmount = math.ZeroInt()
	from.TransferredCumulativeReward = math.ZeroInt()
	from.BonusReward = math.ZeroInt()

	if err := k.setAccount(ctx, id, sender, from); err != nil {
		return err
	}
	if err := k.setAccount(ctx, id, receiver, to); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransferStakeValue,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
	))
	return nil
}
