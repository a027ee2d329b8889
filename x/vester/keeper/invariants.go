package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/vester/types"
)

// RegisterInvariants registers all vester invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "supply", SupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "custody", CustodyInvariant(k))
}

// AllInvariants runs all invariants of the module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if res, stop := SupplyInvariant(k)(ctx); stop {
			return res, stop
		}
		return CustodyInvariant(k)(ctx)
	}
}

// SupplyInvariant checks that the total and pair supply of every vester
// equal the sums over its accounts.
func SupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		balances := make(map[string]math.Int)
		pairs := make(map[string]math.Int)
		add := func(m map[string]math.Int, id string, v math.Int) {
			if s, ok := m[id]; ok {
				m[id] = s.Add(v)
			} else {
				m[id] = v
			}
		}
		err := k.accounts.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], acc types.VestingAccount) (bool, error) {
			add(balances, key.K1(), acc.Balance)
			add(pairs, key.K1(), acc.PairAmount)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "supply", err.Error()), true
		}

		vesters, err := k.GetAllVesters(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "supply", err.Error()), true
		}
		for _, v := range vesters {
			balance, ok := balances[v.ID]
			if !ok {
				balance = math.ZeroInt()
			}
			pair, ok := pairs[v.ID]
			if !ok {
				pair = math.ZeroInt()
			}
			if !balance.Equal(v.TotalSupply) || !pair.Equal(v.PairSupply) {
				count++
				msg += fmt.Sprintf("\t%s: supply %s/%s, accounts %s/%s\n", v.ID, v.TotalSupply, v.PairSupply, balance, pair)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "supply",
			fmt.Sprintf("%d vesters with supply != sum of account balances\n%s", count, msg),
		), broken
	}
}

// CustodyInvariant checks that every vester custody holds at least the
// escrow and pair collateral it owes its accounts.
func CustodyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		vesters, err := k.GetAllVesters(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "custody", err.Error()), true
		}
		for _, v := range vesters {
			escrow, err := k.custodyBalance(ctx, &v, v.EsDenom)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "custody", err.Error()), true
			}
			if escrow.LT(v.TotalSupply) {
				count++
				msg += fmt.Sprintf("\t%s: escrow %s < supply %s\n", v.ID, escrow, v.TotalSupply)
			}
			if !v.HasPairToken() {
				continue
			}
			pair, err := k.custodyBalance(ctx, &v, v.PairDenom)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "custody", err.Error()), true
			}
			if pair.LT(v.PairSupply) {
				count++
				msg += fmt.Sprintf("\t%s: pair %s < pair supply %s\n", v.ID, pair, v.PairSupply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "custody",
			fmt.Sprintf("%d vesters with undercollateralized custody\n%s", count, msg),
		), broken
	}
}
