package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// MovePosition moves the deposits, stake and wallet receipts of from to to.
// Both accounts are settled and their averages folded first; reward history
// stays with its owner.
func (k Keeper) MovePosition(ctx context.Context, p nsctypes.Principal, trackerID string, from, to sdk.AccAddress) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if err := requireHandler(p, trackerID); err != nil {
		return err
	}
	if from.Empty() || to.Empty() || from.Equals(to) {
		return types.ErrInvalidAddress.Wrapf("move position from %s to %s", from, to)
	}

	fromAcc, err := k.settle(ctx, t, from)
	if err != nil {
		return err
	}
	toAcc, err := k.getStakeAccount(ctx, t.ID, to)
	if err != nil {
		return err
	}
	if err := accrue(t.CumulativeRewardPerToken, &toAcc); err != nil {
		return err
	}
	fromAcc.FoldAverage()
	toAcc.FoldAverage()

	moved := fromAcc.StakedAmount
	toAcc.StakedAmount = toAcc.StakedAmount.Add(moved)
	fromAcc.StakedAmount = math.ZeroInt()
	if err := k.setStakeAccount(ctx, t.ID, from, fromAcc); err != nil {
		return err
	}
	if err := k.setStakeAccount(ctx, t.ID, to, toAcc); err != nil {
		return err
	}

	deposits, err := k.DepositBalances(ctx, t.ID, from)
	if err != nil {
		return err
	}
	for _, coin := range deposits {
		if err := k.addDeposit(ctx, t.ID, from, coin.Denom, coin.Amount.Neg()); err != nil {
			return err
		}
		if err := k.addDeposit(ctx, t.ID, to, coin.Denom, coin.Amount); err != nil {
			return err
		}
	}

	receipts, err := k.ReceiptBalance(ctx, t.ID, from)
	if err != nil {
		return err
	}
	if receipts.IsPositive() {
		if err := k.transferReceipt(ctx, p, t, from, to, receipts); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("moved staking position",
		"tracker", t.ID,
		"from", from.String(),
		"to", to.String(),
		"staked", moved.String(),
	)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMovePosition,
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyAccount, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, to.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, moved.String()),
	))
	return nil
}

// DepositBalances returns every non-zero deposit balance of addr, ordered
// by denom. Deposit denoms may be receipt denoms, so they are not validated
// as bank coins.
func (k Keeper) DepositBalances(ctx context.Context, trackerID string, addr sdk.AccAddress) ([]sdk.Coin, error) {
	var balances []sdk.Coin
	rng := collections.NewSuperPrefixedTripleRange[string, sdk.AccAddress, string](trackerID, addr)
	err := k.depositBalances.Walk(ctx, rng, func(key collections.Triple[string, sdk.AccAddress, string], amount math.Int) (bool, error) {
		balances = append(balances, sdk.Coin{Denom: key.K3(), Amount: amount})
		return false, nil
	})
	return balances, err
}
