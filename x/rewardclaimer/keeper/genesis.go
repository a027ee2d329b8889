package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

// InitGenesis initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if gs.Gov != "" {
		if err := k.gov.Set(ctx, gs.Gov); err != nil {
			return err
		}
	}
	for _, denom := range gs.ClaimableTokens {
		if err := k.setClaimableToken(ctx, denom, true); err != nil {
			return err
		}
	}
	for _, h := range gs.Handlers {
		addr, err := sdk.AccAddressFromBech32(h)
		if err != nil {
			return err
		}
		if err := k.setHandler(ctx, addr, true); err != nil {
			return err
		}
	}
	totals := make(map[string]math.Int)
	for _, e := range gs.ClaimableAmounts {
		addr, err := sdk.AccAddressFromBech32(e.Account)
		if err != nil {
			return err
		}
		if err := k.setClaimable(ctx, addr, e.Denom, e.Amount); err != nil {
			return err
		}
		if t, ok := totals[e.Denom]; ok {
			totals[e.Denom] = t.Add(e.Amount)
		} else {
			totals[e.Denom] = e.Amount
		}
	}
	for denom, total := range totals {
		if err := k.setTotalClaimable(ctx, denom, total); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	gov, err := k.GetGov(ctx)
	if err != nil {
		return nil, err
	}
	gs.Gov = gov

	err = k.claimableTokens.Walk(ctx, nil, func(denom string) (bool, error) {
		gs.ClaimableTokens = append(gs.ClaimableTokens, denom)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.handlers.Walk(ctx, nil, func(addr sdk.AccAddress) (bool, error) {
		gs.Handlers = append(gs.Handlers, addr.String())
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.claimable.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], amount math.Int) (bool, error) {
		gs.ClaimableAmounts = append(gs.ClaimableAmounts, types.ClaimableEntry{
			Account: key.K1().String(),
			Denom:   key.K2(),
			Amount:  amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return gs, nil
}
