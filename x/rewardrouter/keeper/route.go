package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

func (k Keeper) GetRoute(ctx context.Context) (types.Route, error) {
	return k.route.Get(ctx)
}

// SetRoute replaces the route. Governance only.
func (k Keeper) SetRoute(ctx context.Context, p nsctypes.Principal, route types.Route) error {
	if err := requireGov(p); err != nil {
		return err
	}
	if err := route.Validate(); err != nil {
		return err
	}
	if err := k.route.Set(ctx, route); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetRoute,
		sdk.NewAttribute(types.AttributeKeySender, p.Address.String()),
	))
	return nil
}

// Principal resolves addr against the router. Only the module authority is
// gov; the router has no handlers.
func (k Keeper) Principal(addr sdk.AccAddress) nsctypes.Principal {
	return nsctypes.Principal{
		Address: addr,
		IsGov:   addr.String() == k.authority,
	}
}

func requireGov(p nsctypes.Principal) error {
	if !p.IsGov {
		return types.ErrForbidden.Wrapf("%s is not the router gov", p.Address)
	}
	return nil
}

// trackerPrincipal is the router acting on a tracker. The deployment makes
// the router a handler of every route tracker.
func (k Keeper) trackerPrincipal(ctx context.Context, trackerID string) (nsctypes.Principal, error) {
	return k.trackerK.Principal(ctx, trackerID, types.RouterAddress())
}

func (k Keeper) vesterPrincipal(ctx context.Context, vesterID string) (nsctypes.Principal, error) {
	return k.vesterK.Principal(ctx, vesterID, types.RouterAddress())
}
