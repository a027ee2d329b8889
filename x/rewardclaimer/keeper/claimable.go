package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

func (k Keeper) ClaimableAmount(ctx context.Context, account sdk.AccAddress, denom string) (math.Int, error) {
	amount, err := k.claimable.Get(ctx, collections.Join(account, denom))
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

func (k Keeper) TotalClaimableAmount(ctx context.Context, denom string) (math.Int, error) {
	amount, err := k.totalClaimable.Get(ctx, denom)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return amount, err
}

// WithdrawableAmount is the part of the claimer balance of denom that is not
// owed to any account.
func (k Keeper) WithdrawableAmount(ctx context.Context, denom string) (math.Int, error) {
	total, err := k.TotalClaimableAmount(ctx, denom)
	if err != nil {
		return math.Int{}, err
	}
	balance := k.bankK.GetBalance(ctx, types.ClaimerAddress(), denom).Amount
	if balance.LT(total) {
		return math.ZeroInt(), nil
	}
	return balance.Sub(total), nil
}

func (k Keeper) setClaimable(ctx context.Context, account sdk.AccAddress, denom string, amount math.Int) error {
	key := collections.Join(account, denom)
	if amount.IsZero() {
		return k.claimable.Remove(ctx, key)
	}
	return k.claimable.Set(ctx, key, amount)
}

func (k Keeper) setTotalClaimable(ctx context.Context, denom string, amount math.Int) error {
	if amount.IsZero() {
		return k.totalClaimable.Remove(ctx, denom)
	}
	return k.totalClaimable.Set(ctx, denom, amount)
}

// checkBatch validates a batch of claimable updates. A length mismatch is
// reported before the caller is checked.
func (k Keeper) checkBatch(ctx context.Context, p nsctypes.Principal, denom string, accounts []sdk.AccAddress, amounts []math.Int) error {
	if len(accounts) != len(amounts) {
		return types.ErrInvalidParam.Wrapf("%d accounts but %d amounts", len(accounts), len(amounts))
	}
	if err := requireHandler(p); err != nil {
		return err
	}
	ok, err := k.IsClaimableToken(ctx, denom)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrTokenNotClaimable.Wrap(denom)
	}
	for i, amount := range amounts {
		if amount.IsNil() || amount.IsNegative() {
			return types.ErrInvalidAmount.Wrapf("amount %d is %s", i, amount)
		}
		if accounts[i].Empty() {
			return types.ErrInvalidAddress.Wrapf("account %d is empty", i)
		}
	}
	return nil
}

// IncreaseClaimableAmounts credits amounts[i] of denom to accounts[i]. Only
// handlers may call it.
func (k Keeper) IncreaseClaimableAmounts(ctx context.Context, p nsctypes.Principal, denom string, accounts []sdk.AccAddress, amounts []math.Int) error {
	if err := k.checkBatch(ctx, p, denom, accounts, amounts); err != nil {
		return err
	}
	total, err := k.TotalClaimableAmount(ctx, denom)
	if err != nil {
		return err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	for i, account := range accounts {
		current, err := k.ClaimableAmount(ctx, account, denom)
		if err != nil {
			return err
		}
		if err := k.setClaimable(ctx, account, denom, current.Add(amounts[i])); err != nil {
			return err
		}
		total = total.Add(amounts[i])

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeIncreaseClaimable,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amounts[i].String()),
		))
	}
	return k.setTotalClaimable(ctx, denom, total)
}

// DecreaseClaimableAmounts removes amounts[i] of denom from the claimable of
// accounts[i]. Only handlers may call it.
func (k Keeper) DecreaseClaimableAmounts(ctx context.Context, p nsctypes.Principal, denom string, accounts []sdk.AccAddress, amounts []math.Int) error {
	if err := k.checkBatch(ctx, p, denom, accounts, amounts); err != nil {
		return err
	}
	total, err := k.TotalClaimableAmount(ctx, denom)
	if err != nil {
		return err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	for i, account := range accounts {
		current, err := k.ClaimableAmount(ctx, account, denom)
		if err != nil {
			return err
		}
		if current.LT(amounts[i]) {
			return types.ErrInvalidAmount.Wrapf("%s claimable by %s is below %s", denom, account, amounts[i])
		}
		if err := k.setClaimable(ctx, account, denom, current.Sub(amounts[i])); err != nil {
			return err
		}
		total = total.Sub(amounts[i])

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeDecreaseClaimable,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amounts[i].String()),
		))
	}
	return k.setTotalClaimable(ctx, denom, total)
}

// Claim pays everything the caller may claim of each denom to receiver.
func (k Keeper) Claim(ctx context.Context, p nsctypes.Principal, receiver sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	return k.claim(ctx, p.Address, receiver, denoms)
}

// ClaimForAccount pays everything account may claim of each denom to
// receiver. Only handlers may call it.
func (k Keeper) ClaimForAccount(ctx context.Context, p nsctypes.Principal, account, receiver sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	if err := requireHandler(p); err != nil {
		return nil, err
	}
	return k.claim(ctx, account, receiver, denoms)
}

func (k Keeper) claim(ctx context.Context, account, receiver sdk.AccAddress, denoms []string) (sdk.Coins, error) {
	if receiver.Empty() {
		return nil, types.ErrInvalidAddress.Wrap("empty receiver")
	}
	if err := nsctypes.CheckForDuplicatesAndEmptyStrings(denoms); err != nil {
		return nil, types.ErrInvalidParam.Wrap(err.Error())
	}
	paid := sdk.NewCoins()
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	for _, denom := range denoms {
		ok, err := k.IsClaimableToken(ctx, denom)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, types.ErrTokenNotClaimable.Wrap(denom)
		}
		amount, err := k.ClaimableAmount(ctx, account, denom)
		if err != nil {
			return nil, err
		}
		if amount.IsZero() {
			continue
		}
		total, err := k.TotalClaimableAmount(ctx, denom)
		if err != nil {
			return nil, err
		}
		coin := sdk.NewCoin(denom, amount)
		if err := k.bankK.SendCoins(ctx, types.ClaimerAddress(), receiver, sdk.NewCoins(coin)); err != nil {
			return nil, err
		}
		if err := k.setClaimable(ctx, account, denom, math.ZeroInt()); err != nil {
			return nil, err
		}
		if err := k.setTotalClaimable(ctx, denom, total.Sub(amount)); err != nil {
			return nil, err
		}
		paid = paid.Add(coin)
		types.RecordClaimed(denom, amount)

		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
	}
	return paid, nil
}
