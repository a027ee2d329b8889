package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// InitGenesis performs stateful validations and initializes the keeper state from a provided initial genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	for _, t := range gs.Trackers {
		if err := t.Validate(); err != nil {
			return err
		}
		if err := k.setTracker(ctx, t); err != nil {
			return err
		}
	}

	for _, d := range gs.Distributors {
		if err := d.Validate(); err != nil {
			return err
		}
		if err := k.distributors.Set(ctx, d.ID, d); err != nil {
			return err
		}
	}

	for _, h := range gs.Handlers {
		addr, err := sdk.AccAddressFromBech32(h.Handler)
		if err != nil {
			return err
		}
		if err := k.setHandler(ctx, h.TrackerID, addr, true); err != nil {
			return err
		}
	}

	for _, entry := range gs.Accounts {
		if err := entry.Validate(); err != nil {
			return err
		}
		addr, err := sdk.AccAddressFromBech32(entry.Address)
		if err != nil {
			return err
		}
		if err := k.setStakeAccount(ctx, entry.TrackerID, addr, entry.Account); err != nil {
			return err
		}
		for denom, amount := range entry.DepositBalances {
			if err := setIntOrRemove(ctx, k.depositBalances, collections.Join3(entry.TrackerID, addr, denom), amount); err != nil {
				return err
			}
		}
		if !entry.ReceiptBalance.IsNil() {
			if err := setIntOrRemove(ctx, k.receiptBalances, collections.Join(entry.TrackerID, addr), entry.ReceiptBalance); err != nil {
				return err
			}
		}
	}

	for _, s := range gs.TotalDepositSupplies {
		if err := setIntOrRemove(ctx, k.totalDepositSupply, collections.Join(s.TrackerID, s.Denom), s.Amount); err != nil {
			return err
		}
	}

	for _, a := range gs.Allowances {
		owner, err := sdk.AccAddressFromBech32(a.Owner)
		if err != nil {
			return err
		}
		spender, err := sdk.AccAddressFromBech32(a.Spender)
		if err != nil {
			return err
		}
		if err := setIntOrRemove(ctx, k.allowances, collections.Join3(a.TrackerID, owner, spender), a.Amount); err != nil {
			return err
		}
	}

	if msg, broken := AllInvariants(k)(sdk.UnwrapSDKContext(ctx)); broken {
		return fmt.Errorf("invalid genesis state: %s", msg)
	}
	return nil
}

// ExportGenesis returns the keeper state into a exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	trackers, err := k.GetAllTrackers(ctx)
	if err != nil {
		return nil, err
	}
	gs.Trackers = append(gs.Trackers, trackers...)

	distributors, err := k.GetAllDistributors(ctx)
	if err != nil {
		return nil, err
	}
	gs.Distributors = append(gs.Distributors, distributors...)

	err = k.handlers.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress]) (bool, error) {
		gs.Handlers = append(gs.Handlers, types.HandlerEntry{TrackerID: key.K1(), Handler: key.K2().String()})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	accounts, err := k.accountEntries(ctx)
	if err != nil {
		return nil, err
	}
	gs.Accounts = accounts

	err = k.totalDepositSupply.Walk(ctx, nil, func(key collections.Pair[string, string], amount math.Int) (bool, error) {
		gs.TotalDepositSupplies = append(gs.TotalDepositSupplies, types.DepositSupplyEntry{
			TrackerID: key.K1(),
			Denom:     key.K2(),
			Amount:    amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.allowances.Walk(ctx, nil, func(key collections.Triple[string, sdk.AccAddress, sdk.AccAddress], amount math.Int) (bool, error) {
		gs.Allowances = append(gs.Allowances, types.AllowanceEntry{
			TrackerID: key.K1(),
			Owner:     key.K2().String(),
			Spender:   key.K3().String(),
			Amount:    amount,
		})
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return gs, nil
}

// accountEntries loads every (tracker, account) that holds a stake account
// or a receipt balance.
// This function has high resource consumption and should be only used on export genesis.
func (k Keeper) accountEntries(ctx context.Context) ([]types.AccountEntry, error) {
	entries := []types.AccountEntry{}
	index := make(map[string]int)

	entry := func(trackerID string, addr sdk.AccAddress) *types.AccountEntry {
		key := trackerID + "/" + addr.String()
		if i, ok := index[key]; ok {
			return &entries[i]
		}
		index[key] = len(entries)
		entries = append(entries, types.AccountEntry{
			TrackerID:      trackerID,
			Address:        addr.String(),
			Account:        types.NewStakeAccount(),
			ReceiptBalance: math.ZeroInt(),
		})
		return &entries[len(entries)-1]
	}

	err := k.stakeAccounts.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], acc types.StakeAccount) (bool, error) {
		entry(key.K1(), key.K2()).Account = acc
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.depositBalances.Walk(ctx, nil, func(key collections.Triple[string, sdk.AccAddress, string], amount math.Int) (bool, error) {
		e := entry(key.K1(), key.K2())
		if e.DepositBalances == nil {
			e.DepositBalances = make(map[string]math.Int)
		}
		e.DepositBalances[key.K3()] = amount
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	err = k.receiptBalances.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], amount math.Int) (bool, error) {
		entry(key.K1(), key.K2()).ReceiptBalance = amount
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
