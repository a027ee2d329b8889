package keeper

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// CreateTracker registers a new, uninitialized tracker governed by the
// module authority.
func (k Keeper) CreateTracker(ctx context.Context, id, name, symbol string) error {
	if err := types.ValidateInstanceID(id); err != nil {
		return err
	}
	found, err := k.trackers.Has(ctx, id)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInstanceExists.Wrapf("tracker %s", id)
	}

	return k.setTracker(ctx, types.NewTracker(id, name, symbol, k.authority))
}

// GetTracker returns the tracker or ErrTrackerNotFound.
func (k Keeper) GetTracker(ctx context.Context, id string) (*types.Tracker, error) {
	t, err := k.trackers.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrTrackerNotFound.Wrapf("tracker %s", id)
		}
		return nil, err
	}
	return &t, nil
}

func (k Keeper) setTracker(ctx context.Context, t types.Tracker) error {
	return k.trackers.Set(ctx, t.ID, t)
}

// GetAllTrackers returns every tracker ordered by id.
func (k Keeper) GetAllTrackers(ctx context.Context) ([]types.Tracker, error) {
	var trackers []types.Tracker
	err := k.trackers.Walk(ctx, nil, func(_ string, t types.Tracker) (bool, error) {
		trackers = append(trackers, t)
		return false, nil
	})
	return trackers, err
}

// Principal resolves the capabilities addr holds on a tracker.
func (k Keeper) Principal(ctx context.Context, trackerID string, addr sdk.AccAddress) (nsctypes.Principal, error) {
	t, err := k.GetTracker(ctx, trackerID)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	isHandler, err := k.IsHandler(ctx, trackerID, addr)
	if err != nil {
		return nsctypes.Principal{}, err
	}

	return nsctypes.Principal{
		Address:   addr,
		IsGov:     t.IsGov(addr),
		IsHandler: isHandler,
	}, nil
}

// IsHandler reports whether addr may act on behalf of accounts of a tracker.
func (k Keeper) IsHandler(ctx context.Context, trackerID string, addr sdk.AccAddress) (bool, error) {
	return k.handlers.Has(ctx, collections.Join(trackerID, addr))
}

func requireGov(p nsctypes.Principal, t *types.Tracker) error {
	if !p.IsGov {
		return types.ErrForbidden.Wrapf("%s is not the gov of tracker %s", p.Address, t.ID)
	}
	return nil
}

func requireHandler(p nsctypes.Principal, trackerID string) error {
	if !p.IsHandler {
		return types.ErrForbidden.Wrapf("%s is not a handler of tracker %s", p.Address, trackerID)
	}
	return nil
}

// Initialize sets the deposit tokens and binds the distributor. It can be
// called once.
func (k Keeper) Initialize(ctx context.Context, p nsctypes.Principal, id string, depositDenoms []string, distributorID string) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}
	if t.Initialized {
		return types.ErrAlreadyInitialized.Wrapf("tracker %s", id)
	}

	d, err := k.GetDistributor(ctx, distributorID)
	if err != nil {
		return err
	}
	if d.TrackerID != id {
		return types.ErrInvalidDistributor.Wrapf("distributor %s is bound to tracker %s", d.ID, d.TrackerID)
	}

	t.Initialized = true
	t.DepositDenoms = slices.Clone(depositDenoms)
	t.DistributorID = distributorID
	if err := t.Validate(); err != nil {
		return err
	}
	if err := k.validateGraphWith(ctx, *t); err != nil {
		return err
	}
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeInitialize,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyDistributor, distributorID),
	))
	return nil
}

// validateGraphWith checks the staking graph stays acyclic once t replaces
// its stored version.
func (k Keeper) validateGraphWith(ctx context.Context, t types.Tracker) error {
	trackers, err := k.GetAllTrackers(ctx)
	if err != nil {
		return err
	}
	for i := range trackers {
		if trackers[i].ID == t.ID {
			trackers[i] = t
		}
	}
	return types.NewStakingGraph(trackers).Validate()
}

// StakingGraph returns the graph spanned by all trackers.
func (k Keeper) StakingGraph(ctx context.Context) (types.StakingGraph, error) {
	trackers, err := k.GetAllTrackers(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewStakingGraph(trackers), nil
}

func (k Keeper) SetGov(ctx context.Context, p nsctypes.Principal, id string, gov sdk.AccAddress) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}
	if gov.Empty() {
		return types.ErrInvalidAddress.Wrap("empty gov")
	}

	t.Gov = gov.String()
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetGov,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyGov, t.Gov),
	))
	return nil
}

// SetDepositToken adds or removes an accepted deposit token. Adding a
// receipt denom is rejected if it closes a cycle in the staking graph.
func (k Keeper) SetDepositToken(ctx context.Context, p nsctypes.Principal, id string, denom string, isDepositToken bool) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}
	if err := types.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDepositToken.Wrap(err.Error())
	}

	switch {
	case isDepositToken && !t.IsDepositDenom(denom):
		t.DepositDenoms = append(t.DepositDenoms, denom)
	case !isDepositToken:
		t.DepositDenoms = slices.DeleteFunc(t.DepositDenoms, func(d string) bool { return d == denom })
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if err := k.validateGraphWith(ctx, *t); err != nil {
		return err
	}
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetDepositToken,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyIsActive, strconv.FormatBool(isDepositToken)),
	))
	return nil
}

func (k Keeper) SetInPrivateTransferMode(ctx context.Context, p nsctypes.Principal, id string, enabled bool) error {
	return k.setPrivateMode(ctx, p, id, types.PrivateModeTransfer, enabled)
}

func (k Keeper) SetInPrivateStakingMode(ctx context.Context, p nsctypes.Principal, id string, enabled bool) error {
	return k.setPrivateMode(ctx, p, id, types.PrivateModeStaking, enabled)
}

func (k Keeper) SetInPrivateClaimingMode(ctx context.Context, p nsctypes.Principal, id string, enabled bool) error {
	return k.setPrivateMode(ctx, p, id, types.PrivateModeClaiming, enabled)
}

func (k Keeper) setPrivateMode(ctx context.Context, p nsctypes.Principal, id string, mode types.PrivateMode, enabled bool) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}

	switch mode {
	case types.PrivateModeTransfer:
		t.InPrivateTransferMode = enabled
	case types.PrivateModeStaking:
		t.InPrivateStakingMode = enabled
	case types.PrivateModeClaiming:
		t.InPrivateClaimingMode = enabled
	default:
		return types.ErrInvalidPrivateMode.Wrapf("%q", string(mode))
	}
	if err := k.setTracker(ctx, *t); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetPrivateMode,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyMode, string(mode)),
		sdk.NewAttribute(types.AttributeKeyIsActive, strconv.FormatBool(enabled)),
	))
	return nil
}

// SetHandler adds or removes addr from the tracker's handler allow-list.
func (k Keeper) SetHandler(ctx context.Context, p nsctypes.Principal, id string, handler sdk.AccAddress, isActive bool) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}
	if err := k.setHandler(ctx, id, handler, isActive); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetHandler,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyHandler, handler.String()),
		sdk.NewAttribute(types.AttributeKeyIsActive, strconv.FormatBool(isActive)),
	))
	return nil
}

func (k Keeper) setHandler(ctx context.Context, id string, handler sdk.AccAddress, isActive bool) error {
	key := collections.Join(id, handler)
	if isActive {
		return k.handlers.Set(ctx, key)
	}
	return k.handlers.Remove(ctx, key)
}

// WithdrawToken sends tokens held in the tracker custody to receiver.
func (k Keeper) WithdrawToken(ctx context.Context, p nsctypes.Principal, id string, denom string, receiver sdk.AccAddress, amount math.Int) error {
	t, err := k.GetTracker(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, t); err != nil {
		return err
	}
	if err := k.pushToken(ctx, t, receiver, denom, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawToken,
		sdk.NewAttribute(types.AttributeKeyTracker, id),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
