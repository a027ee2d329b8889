package keeper

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

func (k Keeper) getAccount(ctx context.Context, id string, addr sdk.AccAddress) (types.VestingAccount, error) {
	acc, err := k.accounts.Get(ctx, collections.Join(id, addr))
	if errors.Is(err, collections.ErrNotFound) {
		return types.NewVestingAccount(), nil
	}
	return acc, err
}

func (k Keeper) setAccount(ctx context.Context, id string, addr sdk.AccAddress, acc types.VestingAccount) error {
	return k.accounts.Set(ctx, collections.Join(id, addr), acc)
}

// updateVesting moves the escrow released since the last vesting time from
// Balance to CumulativeClaimAmount and burns it. Payment happens on claim.
// The caller persists acc and v.
func (k Keeper) updateVesting(ctx context.Context, v *types.Vester, acc *types.VestingAccount) error {
	now := nsctypes.BlockTime(ctx)
	amount := acc.NextVested(now, v.VestingDuration)
	acc.LastVestingTime = now
	if amount.IsZero() {
		return nil
	}

	acc.Balance = acc.Balance.Sub(amount)
	acc.CumulativeClaimAmount = acc.CumulativeClaimAmount.Add(amount)
	v.TotalSupply = v.TotalSupply.Sub(amount)
	if err := k.burnEscrow(ctx, v, amount); err != nil {
		return err
	}
	types.RecordVested(v.ID, amount)
	return nil
}

func (k Keeper) Deposit(ctx context.Context, p nsctypes.Principal, id string, amount math.Int) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	return k.deposit(ctx, v, p.Address, amount)
}

// DepositForAccount deposits escrow held by account on its behalf.
func (k Keeper) DepositForAccount(ctx context.Context, p nsctypes.Principal, id string, account sdk.AccAddress, amount math.Int) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	if err := requireHandler(p, v); err != nil {
		return err
	}
	return k.deposit(ctx, v, account, amount)
}

func (k Keeper) deposit(ctx context.Context, v *types.Vester, account sdk.AccAddress, amount math.Int) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyDeposit)

	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("deposit amount %v", amount)
	}

	acc, err := k.getAccount(ctx, v.ID, account)
	if err != nil {
		return err
	}
	if err := k.updateVesting(ctx, v, &acc); err != nil {
		return err
	}

	if err := k.pullToken(ctx, v, account, v.EsDenom, amount); err != nil {
		return err
	}
	acc.Balance = acc.Balance.Add(amount)
	v.TotalSupply = v.TotalSupply.Add(amount)

	if v.HasPairToken() {
		next, err := k.pairAmount(ctx, v, account, &acc, acc.TotalVested())
		if err != nil {
			return err
		}
		if next.GT(acc.PairAmount) {
			diff := next.Sub(acc.PairAmount)
			if err := k.pullToken(ctx, v, account, v.PairDenom, diff); err != nil {
				return err
			}
			acc.PairAmount = next
			v.PairSupply = v.PairSupply.Add(diff)
			k.emitPairTransfer(ctx, v, account, v.Address(), diff)
		}
	}

	if v.HasMaxVestableAmount {
		maxVestable, err := k.maxVestableAmount(ctx, v, account, &acc)
		if err != nil {
			return err
		}
		if acc.TotalVested().GT(maxVestable) {
			return types.ErrMaxVestableAmountExceeded.Wrapf("total vested %s, max vestable %s", acc.TotalVested(), maxVestable)
		}
	}

	if err := k.setAccount(ctx, v.ID, account, acc); err != nil {
		return err
	}
	if err := k.setVester(ctx, *v); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDeposit,
		sdk.NewAttribute(types.AttributeKeyVester, v.ID),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k Keeper) Claim(ctx context.Context, p nsctypes.Principal, id string, receiver sdk.AccAddress) (math.Int, error) {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return math.Int{}, err
	}
	return k.claim(ctx, v, p.Address, receiver)
}

// ClaimForAccount pays the vested amount of account to receiver.
func (k Keeper) ClaimForAccount(ctx context.Context, p nsctypes.Principal, id string, account, receiver sdk.AccAddress) (math.Int, error) {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return math.Int{}, err
	}
	if err := requireHandler(p, v); err != nil {
		return math.Int{}, err
	}
	return k.claim(ctx, v, account, receiver)
}

func (k Keeper) claim(ctx context.Context, v *types.Vester, account, receiver sdk.AccAddress) (math.Int, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	if receiver.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("empty receiver")
	}

	acc, err := k.getAccount(ctx, v.ID, account)
	if err != nil {
		return math.Int{}, err
	}
	amount, err := k.settleClaim(ctx, v, account, receiver, &acc)
	if err != nil {
		return math.Int{}, err
	}

	if err := k.setAccount(ctx, v.ID, account, acc); err != nil {
		return math.Int{}, err
	}
	if err := k.setVester(ctx, *v); err != nil {
		return math.Int{}, err
	}
	return amount, nil
}

// settleClaim vests, pays the unclaimed vested amount to receiver and
// releases pair collateral that is no longer required.
func (k Keeper) settleClaim(ctx context.Context, v *types.Vester, account, receiver sdk.AccAddress, acc *types.VestingAccount) (math.Int, error) {
	if err := k.updateVesting(ctx, v, acc); err != nil {
		return math.Int{}, err
	}

	amount := acc.CumulativeClaimAmount.Sub(acc.ClaimedAmount)
	acc.ClaimedAmount = acc.CumulativeClaimAmount
	if err := k.pushToken(ctx, v, receiver, v.ClaimableDenom, amount); err != nil {
		return math.Int{}, err
	}

	if v.HasPairToken() && acc.PairAmount.IsPositive() {
		next, err := k.pairAmount(ctx, v, account, acc, acc.TotalVested())
		if err != nil {
			return math.Int{}, err
		}
		if next.LT(acc.PairAmount) {
			diff := acc.PairAmount.Sub(next)
			if err := k.pushToken(ctx, v, account, v.PairDenom, diff); err != nil {
				return math.Int{}, err
			}
			acc.PairAmount = next
			v.PairSupply = v.PairSupply.Sub(diff)
			k.emitPairTransfer(ctx, v, v.Address(), account, diff)
		}
	}

	if amount.IsPositive() {
		sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeyVester, v.ID),
			sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
	}
	return amount, nil
}

// Withdraw claims, then returns the remaining escrow and all pair
// collateral to the caller and resets its vesting cycle.
func (k Keeper) Withdraw(ctx context.Context, p nsctypes.Principal, id string) error {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyWithdraw)

	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	account := p.Address
	acc, err := k.getAccount(ctx, id, account)
	if err != nil {
		return err
	}
	if acc.TotalVested().IsZero() {
		return types.ErrVestedAmountZero.Wrapf("account %s", account)
	}

	if _, err := k.settleClaim(ctx, v, account, account, &acc); err != nil {
		return err
	}

	if v.HasPairToken() {
		if err := k.pushToken(ctx, v, account, v.PairDenom, acc.PairAmount); err != nil {
			return err
		}
		v.PairSupply = v.PairSupply.Sub(acc.PairAmount)
	}
	if err := k.pushToken(ctx, v, account, v.EsDenom, acc.Balance); err != nil {
		return err
	}
	v.TotalSupply = v.TotalSupply.Sub(acc.Balance)

	returned := acc.Balance
	acc.Balance = math.ZeroInt()
	acc.CumulativeClaimAmount = math.ZeroInt()
	acc.ClaimedAmount = math.ZeroInt()
	acc.PairAmount = math.ZeroInt()
	acc.LastVestingTime = 0

	if err := k.setAccount(ctx, id, account, acc); err != nil {
		return err
	}
	if err := k.setVester(ctx, *v); err != nil {
		return err
	}

	k.Logger(ctx).Debug("withdrew from vester", "vester", id, "account", account.String(), "escrow", returned.String())
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdraw,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, returned.String()),
	))
	return nil
}

func (k Keeper) emitPairTransfer(ctx context.Context, v *types.Vester, from, to sdk.AccAddress, amount math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePairTransfer,
		sdk.NewAttribute(types.AttributeKeyVester, v.ID),
		sdk.NewAttribute(types.AttributeKeySender, from.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, to.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, v.PairDenom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
}
