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

// ReceiptBalance returns the wallet balance of a tracker's receipt token.
func (k Keeper) ReceiptBalance(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error) {
	return intOrZero(ctx, k.receiptBalances, collections.Join(trackerID, addr))
}

// Allowance returns how much of owner's receipts spender may move.
func (k Keeper) Allowance(ctx context.Context, trackerID string, owner, spender sdk.AccAddress) (math.Int, error) {
	return intOrZero(ctx, k.allowances, collections.Join3(trackerID, owner, spender))
}

func intOrZero[K any](ctx context.Context, m collections.Map[K, math.Int], key K) (math.Int, error) {
	v, err := m.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		return math.ZeroInt(), nil
	}
	return v, err
}

// setIntOrRemove keeps zero balances out of the store.
func setIntOrRemove[K any](ctx context.Context, m collections.Map[K, math.Int], key K, v math.Int) error {
	if v.IsZero() {
		return m.Remove(ctx, key)
	}
	return m.Set(ctx, key, v)
}

// Transfer moves receipts from the principal to recipient.
func (k Keeper) Transfer(ctx context.Context, p nsctypes.Principal, trackerID string, recipient sdk.AccAddress, amount math.Int) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	return k.transferReceipt(ctx, p, t, p.Address, recipient, amount)
}

// Approve sets the allowance of spender over the principal's receipts.
func (k Keeper) Approve(ctx context.Context, p nsctypes.Principal, trackerID string, spender sdk.AccAddress, amount math.Int) error {
	if _, err := k.GetTracker(ctx, trackerID); err != nil {
		return err
	}
	if p.Address.Empty() || spender.Empty() {
		return types.ErrInvalidAddress.Wrap("approve from or to the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("allowance %s", amount)
	}
	if err := setIntOrRemove(ctx, k.allowances, collections.Join3(trackerID, p.Address, spender), amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReceiptApproval,
		sdk.NewAttribute(types.AttributeKeyTracker, trackerID),
		sdk.NewAttribute(types.AttributeKeyAccount, p.Address.String()),
		sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// TransferFrom moves owner's receipts on behalf of the principal. Handlers
// bypass the allowance.
func (k Keeper) TransferFrom(ctx context.Context, p nsctypes.Principal, trackerID string, owner, recipient sdk.AccAddress, amount math.Int) error {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return err
	}
	if p.IsHandler {
		return k.transferReceipt(ctx, p, t, owner, recipient, amount)
	}

	key := collections.Join3(trackerID, owner, p.Address)
	allowance, err := intOrZero(ctx, k.allowances, key)
	if err != nil {
		return err
	}
	if amount.IsNil() || allowance.LT(amount) {
		return types.ErrAmountExceedsAllowance.Wrapf("allowance %s, amount %s", allowance, amount)
	}
	if err := setIntOrRemove(ctx, k.allowances, key, allowance.Sub(amount)); err != nil {
		return err
	}
	return k.transferReceipt(ctx, p, t, owner, recipient, amount)
}

func (k Keeper) transferReceipt(ctx context.Context, p nsctypes.Principal, t *types.Tracker, from, to sdk.AccAddress, amount math.Int) error {
	if from.Empty() || to.Empty() {
		return types.ErrInvalidAddress.Wrap("transfer from or to the zero address")
	}
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("transfer amount %s", amount)
	}
	if t.InPrivateTransferMode {
		if err := requireHandler(p, t.ID); err != nil {
			return err
		}
	}

	fromKey := collections.Join(t.ID, from)
	fromBalance, err := intOrZero(ctx, k.receiptBalances, fromKey)
	if err != nil {
		return err
	}
	if fromBalance.LT(amount) {
		return types.ErrTransferExceedsBalance.Wrapf("balance %s, amount %s", fromBalance, amount)
	}
	if err := setIntOrRemove(ctx, k.receiptBalances, fromKey, fromBalance.Sub(amount)); err != nil {
		return err
	}

	toKey := collections.Join(t.ID, to)
	toBalance, err := intOrZero(ctx, k.receiptBalances, toKey)
	if err != nil {
		return err
	}
	if err := setIntOrRemove(ctx, k.receiptBalances, toKey, toBalance.Add(amount)); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReceiptTransfer,
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyAccount, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, to.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// mintReceipt credits receipts to addr and grows t.TotalSupply. The caller
// persists t.
func (k Keeper) mintReceipt(ctx context.Context, t *types.Tracker, addr sdk.AccAddress, amount math.Int) error {
	key := collections.Join(t.ID, addr)
	balance, err := intOrZero(ctx, k.receiptBalances, key)
	if err != nil {
		return err
	}
	t.TotalSupply = t.TotalSupply.Add(amount)
	return setIntOrRemove(ctx, k.receiptBalances, key, balance.Add(amount))
}

// burnReceipt debits receipts from addr and shrinks t.TotalSupply. The
// caller persists t.
func (k Keeper) burnReceipt(ctx context.Context, t *types.Tracker, addr sdk.AccAddress, amount math.Int) error {
	key := collections.Join(t.ID, addr)
	balance, err := intOrZero(ctx, k.receiptBalances, key)
	if err != nil {
		return err
	}
	if balance.LT(amount) {
		return types.ErrBurnExceedsBalance.Wrapf("balance %s, amount %s", balance, amount)
	}
	t.TotalSupply = t.TotalSupply.Sub(amount)
	return setIntOrRemove(ctx, k.receiptBalances, key, balance.Sub(amount))
}
