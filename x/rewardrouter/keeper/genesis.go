package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

// InitGenesis initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.route.Set(ctx, gs.Route); err != nil {
		return err
	}
	for _, t := range gs.PendingTransfers {
		sender, err := sdk.AccAddressFromBech32(t.Sender)
		if err != nil {
			return err
		}
		if err := k.pendingReceivers.Set(ctx, sender, t.Receiver); err != nil {
			return err
		}
	}
	for _, a := range gs.StakedNlpAllowances {
		owner, err := sdk.AccAddressFromBech32(a.Owner)
		if err != nil {
			return err
		}
		spender, err := sdk.AccAddressFromBech32(a.Spender)
		if err != nil {
			return err
		}
		if err := k.stakedNlpAllowances.Set(ctx, collections.Join(owner, spender), a.Amount); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	route, err := k.GetRoute(ctx)
	if err != nil {
		return nil, err
	}
	gs.Route = route

	err = k.pendingReceivers.Walk(ctx, nil, func(sender sdk.AccAddress, receiver string) (bool, error) {
		gs.PendingTransfers = append(gs.PendingTransfers, types.PendingTransfer{
			Sender:   sender.String(),
			Receiver: receiver,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.stakedNlpAllowances.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, sdk.AccAddress], amount math.Int) (bool, error) {
		gs.StakedNlpAllowances = append(gs.StakedNlpAllowances, types.StakedNlpAllowance{
			Owner:   key.K1().String(),
			Spender: key.K2().String(),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
