package keeper

import (
	"context"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/vester/types"
)

// InitGenesis initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	for _, v := range gs.Vesters {
		if err := k.setVester(ctx, v); err != nil {
			return err
		}
	}
	for _, h := range gs.Handlers {
		addr, err := sdk.AccAddressFromBech32(h.Handler)
		if err != nil {
			return err
		}
		if err := k.setHandler(ctx, h.VesterID, addr, true); err != nil {
			return err
		}
	}
	for _, e := range gs.Accounts {
		addr, err := sdk.AccAddressFromBech32(e.Address)
		if err != nil {
			return err
		}
		if err := k.setAccount(ctx, e.VesterID, addr, e.Account); err != nil {
			return err
		}
	}

	if msg, broken := SupplyInvariant(k)(sdk.UnwrapSDKContext(ctx)); broken {
		return types.ErrInvalidVester.Wrapf("invalid genesis state: %s", msg)
	}
	return nil
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	vesters, err := k.GetAllVesters(ctx)
	if err != nil {
		return nil, err
	}
	gs.Vesters = append(gs.Vesters, vesters...)

	err = k.handlers.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress]) (bool, error) {
		gs.Handlers = append(gs.Handlers, types.HandlerEntry{VesterID: key.K1(), Handler: key.K2().String()})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.accounts.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], acc types.VestingAccount) (bool, error) {
		gs.Accounts = append(gs.Accounts, types.AccountEntry{
			VesterID: key.K1(),
			Address:  key.K2().String(),
			Account:  acc,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return gs, nil
}
