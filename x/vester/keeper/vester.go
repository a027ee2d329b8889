package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

// CreateVester registers a vester governed by the module authority. The
// reward tracker and the pair receipt tracker, if any, must exist.
func (k Keeper) CreateVester(ctx context.Context, params types.VesterParams) error {
	v := types.NewVester(params, k.authority)
	if err := v.Validate(); err != nil {
		return err
	}
	found, err := k.vesters.Has(ctx, v.ID)
	if err != nil {
		return err
	}
	if found {
		return types.ErrInstanceExists.Wrapf("vester %s", v.ID)
	}

	if v.HasRewardTracker() {
		if _, err := k.trackerK.Principal(ctx, v.RewardTrackerID, v.Address()); err != nil {
			return err
		}
	}
	if id, ok := rttypes.TrackerIDFromDenom(v.PairDenom); ok {
		if _, err := k.trackerK.Principal(ctx, id, v.Address()); err != nil {
			return err
		}
	}

	return k.setVester(ctx, v)
}

// GetVester returns the vester or ErrVesterNotFound.
func (k Keeper) GetVester(ctx context.Context, id string) (*types.Vester, error) {
	v, err := k.vesters.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrVesterNotFound.Wrapf("vester %s", id)
		}
		return nil, err
	}
	return &v, nil
}

func (k Keeper) setVester(ctx context.Context, v types.Vester) error {
	return k.vesters.Set(ctx, v.ID, v)
}

// GetAllVesters returns every vester ordered by id.
func (k Keeper) GetAllVesters(ctx context.Context) ([]types.Vester, error) {
	var vesters []types.Vester
	err := k.vesters.Walk(ctx, nil, func(_ string, v types.Vester) (bool, error) {
		vesters = append(vesters, v)
		return false, nil
	})
	return vesters, err
}

// Principal resolves the capabilities addr holds on a vester.
func (k Keeper) Principal(ctx context.Context, id string, addr sdk.AccAddress) (nsctypes.Principal, error) {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	isHandler, err := k.handlers.Has(ctx, collections.Join(id, addr))
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return nsctypes.Principal{
		Address:   addr,
		IsGov:     v.IsGov(addr),
		IsHandler: isHandler,
	}, nil
}

func requireGov(p nsctypes.Principal, v *types.Vester) error {
	if !p.IsGov {
		return types.ErrForbidden.Wrapf("%s is not the gov of vester %s", p.Address, v.ID)
	}
	return nil
}

func requireHandler(p nsctypes.Principal, v *types.Vester) error {
	if !p.IsHandler {
		return types.ErrForbidden.Wrapf("%s is not a handler of vester %s", p.Address, v.ID)
	}
	return nil
}

func (k Keeper) SetHandler(ctx context.Context, p nsctypes.Principal, id string, handler sdk.AccAddress, isActive bool) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, v); err != nil {
		return err
	}
	if err := k.setHandler(ctx, id, handler, isActive); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetHandler,
		sdk.NewAttribute(types.AttributeKeyVester, id),
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

func (k Keeper) SetGov(ctx context.Context, p nsctypes.Principal, id string, gov sdk.AccAddress) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, v); err != nil {
		return err
	}
	if gov.Empty() {
		return types.ErrInvalidAddress.Wrap("empty gov")
	}
	v.Gov = gov.String()
	if err := k.setVester(ctx, *v); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetGov,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeyGov, v.Gov),
	))
	return nil
}

// SetHasMaxVestableAmount toggles the deposit cap.
func (k Keeper) SetHasMaxVestableAmount(ctx context.Context, p nsctypes.Principal, id string, enabled bool) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, v); err != nil {
		return err
	}
	v.HasMaxVestableAmount = enabled
	if err := k.setVester(ctx, *v); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetMaxVestable,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeyEnabled, strconv.FormatBool(enabled)),
	))
	return nil
}

// WithdrawToken sends tokens held in the vester custody to receiver. It is
// how governance recovers an over-funded claimable reserve.
func (k Keeper) WithdrawToken(ctx context.Context, p nsctypes.Principal, id, denom string, receiver sdk.AccAddress, amount math.Int) error {
	v, err := k.GetVester(ctx, id)
	if err != nil {
		return err
	}
	if err := requireGov(p, v); err != nil {
		return err
	}
	if receiver.Empty() {
		return types.ErrInvalidAddress.Wrap("empty receiver")
	}
	if err := k.pushToken(ctx, v, receiver, denom, amount); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawToken,
		sdk.NewAttribute(types.AttributeKeyVester, id),
		sdk.NewAttribute(types.AttributeKeyDenom, denom),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}
