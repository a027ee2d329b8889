package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// CreateDistributor registers a distributor bound to an existing tracker.
func (k Keeper) CreateDistributor(ctx context.Context, id string, kind types.DistributorKind, rewardDenom, trackerID string) error {
	if err := types.ValidateInstanceID(id); err != nil {
		return err
	}
	found, err := k.distributors.Has(ctx, id)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInstanceExists.Wrapf("distributor %s", id)
	}
	if _, err := k.GetTracker(ctx, trackerID); err != nil {
		return err
	}

	d := types.NewDistributor(id, kind, rewardDenom, trackerID, k.authority)
	if err := d.Validate(); err != nil {
		return types.ErrInvalidDistributor.Wrap(err.Error())
	}
	return k.distributors.Set(ctx, id, d)
}

// GetDistributor returns the distributor or ErrDistributorNotFound.
func (k Keeper) GetDistributor(ctx context.Context, id string) (*types.Distributor, error) {
	d, err := k.distributors.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrDistributorNotFound.Wrapf("distributor %s", id)
		}
		return nil, err
	}
	return &d, nil
}

func (k Keeper) GetAllDistributors(ctx context.Context) ([]types.Distributor, error) {
	var distributors []types.Distributor
	err := k.distributors.Walk(ctx, nil, func(_ string, d types.Distributor) (bool, error) {
		distributors = append(distributors, d)
		return false, nil
	})
	return distributors, err
}

// DistributorPrincipal resolves the capabilities addr holds on a
// distributor. Distributors only know a gov.
func (k Keeper) DistributorPrincipal(ctx context.Context, id string, addr sdk.AccAddress) (nsctypes.Principal, error) {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return nsctypes.Principal{Address: addr, IsGov: d.IsGov(addr)}, nil
}

func requireDistributorGov(p nsctypes.Principal, d *types.Distributor) error {
	if !p.IsGov {
		return types.ErrForbidden.Wrapf("%s is not the gov of distributor %s", p.Address, d.ID)
	}
	return nil
}

// PendingRewards returns what Distribute would move to the tracker now.
func (k Keeper) PendingRewards(ctx context.Context, id string) (math.Int, error) {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return math.Int{}, err
	}
	t, err := k.GetTracker(ctx, d.TrackerID)
	if err != nil {
		return math.Int{}, err
	}
	_, capped, err := k.pendingRewards(ctx, d, t)
	return capped, err
}

// pendingRewards returns the emission since the last distribution, before
// and after capping it at what the distributor can pay.
func (k Keeper) pendingRewards(ctx context.Context, d *types.Distributor, t *types.Tracker) (pending, capped math.Int, err error) {
	elapsed := d.ElapsedSince(nsctypes.BlockTime(ctx))
	if d.LastDistributionTime == 0 || elapsed == 0 {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	switch d.Kind {
	case types.DistributorKindLinear:
		pending = d.TokensPerInterval.MulRaw(elapsed)
		balance := k.bankK.GetBalance(ctx, d.Address(), d.RewardDenom)
		return pending, nsctypes.MinInt(pending, balance.Amount), nil
	case types.DistributorKindBonus:
		pending, err = nsctypes.MulDiv(
			t.TotalSupply,
			d.BonusMultiplierBasisPoints.MulRaw(elapsed),
			nsctypes.BasisPointsDivisor.MulRaw(types.BonusDuration),
		)
		if err != nil {
			return math.Int{}, math.Int{}, err
		}
		return pending, pending, nil
	default:
		return math.Int{}, math.Int{}, types.ErrInvalidDistributor.Wrapf("kind %q", string(d.Kind))
	}
}

// distribute moves the pending emission of the tracker's distributor into
// the tracker custody and returns the amount moved. It never fails on an
// underfunded distributor.
func (k Keeper) distribute(ctx context.Context, t *types.Tracker) (math.Int, error) {
	if t.DistributorID == "" {
		return math.ZeroInt(), nil
	}
	d, err := k.GetDistributor(ctx, t.DistributorID)
	if err != nil {
		return math.Int{}, err
	}

	pending, amount, err := k.pendingRewards(ctx, d, t)
	if err != nil {
		return math.Int{}, err
	}
	if pending.IsZero() {
		return math.ZeroInt(), nil
	}

	d.LastDistributionTime = nsctypes.BlockTime(ctx)
	if err := k.distributors.Set(ctx, d.ID, *d); err != nil {
		return math.Int{}, err
	}
	if amount.IsZero() {
		return amount, nil
	}

	coins, err := nsctypes.SingleCoins(d.RewardDenom, amount)
	if err != nil {
		return math.Int{}, err
	}
	switch d.Kind {
	case types.DistributorKindLinear:
		err = k.bankK.SendCoins(ctx, d.Address(), t.Address(), coins)
	case types.DistributorKindBonus:
		if err = k.bankK.MintCoins(ctx, types.ModuleName, coins); err == nil {
			err = k.bankK.SendCoinsFromModuleToAccount(ctx, types.ModuleName, t.Address(), coins)
		}
	}
	if err != nil {
		return math.Int{}, err
	}

	types.RecordDistributed(t.ID, amount)
	k.Logger(ctx).Debug("distributed rewards",
		"distributor", d.ID,
		"tracker", t.ID,
		"amount", amount.String(),
	)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDistribute,
		sdk.NewAttribute(types.AttributeKeyDistributor, d.ID),
		sdk.NewAttribute(types.AttributeKeyTracker, t.ID),
		sdk.NewAttribute(types.AttributeKeyDenom, d.RewardDenom),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return amount, nil
}

// UpdateLastDistributionTime starts (or restarts) emission from now.
func (k Keeper) UpdateLastDistributionTime(ctx context.Context, p nsctypes.Principal, id string) error {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return err
	}
	if err := requireDistributorGov(p, d); err != nil {
		return err
	}

	d.LastDistributionTime = nsctypes.BlockTime(ctx)
	if err := k.distributors.Set(ctx, id, *d); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDistributionBootup,
		sdk.NewAttribute(types.AttributeKeyDistributor, id),
		sdk.NewAttribute(types.AttributeKeyTime, strconv.FormatInt(d.LastDistributionTime, 10)),
	))
	return nil
}

// SetTokensPerInterval changes the emission rate of a linear distributor.
// Rewards up to now are settled at the previous rate.
func (k Keeper) SetTokensPerInterval(ctx context.Context, p nsctypes.Principal, id string, amount math.Int) error {
	d, err := k.distributorForRateChange(ctx, p, id, types.DistributorKindLinear, amount)
	if err != nil {
		return err
	}

	d.TokensPerInterval = amount
	if err := k.distributors.Set(ctx, id, *d); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTokensPerInterval,
		sdk.NewAttribute(types.AttributeKeyDistributor, id),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// SetBonusMultiplier changes the yearly multiplier rate of a bonus
// distributor, in basis points of the tracker supply.
func (k Keeper) SetBonusMultiplier(ctx context.Context, p nsctypes.Principal, id string, basisPoints math.Int) error {
	d, err := k.distributorForRateChange(ctx, p, id, types.DistributorKindBonus, basisPoints)
	if err != nil {
		return err
	}

	d.BonusMultiplierBasisPoints = basisPoints
	if err := k.distributors.Set(ctx, id, *d); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBonusMultiplier,
		sdk.NewAttribute(types.AttributeKeyDistributor, id),
		sdk.NewAttribute(types.AttributeKeyAmount, basisPoints.String()),
	))
	return nil
}

// distributorForRateChange authorizes a rate change and settles the bound
// tracker. It returns the distributor as stored after settlement.
func (k Keeper) distributorForRateChange(
	ctx context.Context,
	p nsctypes.Principal,
	id string,
	kind types.DistributorKind,
	rate math.Int,
) (*types.Distributor, error) {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireDistributorGov(p, d); err != nil {
		return nil, err
	}
	if d.Kind != kind {
		return nil, types.ErrInvalidDistributor.Wrapf("distributor %s is %s", id, d.Kind)
	}
	if d.LastDistributionTime == 0 {
		return nil, types.ErrInvalidLastDistributionTime.Wrapf("distributor %s was never started", id)
	}
	if rate.IsNil() || rate.IsNegative() {
		return nil, types.ErrInvalidAmount.Wrapf("rate %s", rate)
	}

	if err := k.UpdateRewards(ctx, d.TrackerID); err != nil {
		return nil, err
	}
	return k.GetDistributor(ctx, id)
}

func (k Keeper) SetDistributorGov(ctx context.Context, p nsctypes.Principal, id string, gov sdk.AccAddress) error {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return err
	}
	if err := requireDistributorGov(p, d); err != nil {
		return err
	}
	if gov.Empty() {
		return types.ErrInvalidAddress.Wrap("empty gov")
	}

	d.Gov = gov.String()
	if err := k.distributors.Set(ctx, id, *d); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetGov,
		sdk.NewAttribute(types.AttributeKeyDistributor, id),
		sdk.NewAttribute(types.AttributeKeyGov, d.Gov),
	))
	return nil
}

// WithdrawDistributorToken sends tokens out of the distributor custody.
func (k Keeper) WithdrawDistributorToken(ctx context.Context, p nsctypes.Principal, id, denom string, receiver sdk.AccAddress, amount math.Int) error {
	d, err := k.GetDistributor(ctx, id)
	if err != nil {
		return err
	}
	if err := requireDistributorGov(p, d); err != nil {
		return err
	}
	coins, err := nsctypes.SingleCoins(denom, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrap(err.Error())
	}
	if err := k.bankK.SendCoins(ctx, d.Address(), receiver, coins); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawToken,
		sdk.NewAttribute(types.AttributeKeyDistributor, id),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
