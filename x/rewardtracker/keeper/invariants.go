package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// RegisterInvariants registers all tracker invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "deposit-sum", DepositSumInvariant(k))
	ir.RegisterRoute(types.ModuleName, "total-deposit-supply", TotalDepositSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "receipt-supply", ReceiptSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reward-conservation", RewardConservationInvariant(k))
}

// AllInvariants runs all invariants of the module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			DepositSumInvariant(k),
			TotalDepositSupplyInvariant(k),
			ReceiptSupplyInvariant(k),
			RewardConservationInvariant(k),
		} {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// DepositSumInvariant checks that the staked amount of every account equals
// the sum of its deposit balances.
func DepositSumInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		sums := make(map[string]math.Int)
		err := k.depositBalances.Walk(ctx, nil, func(key collections.Triple[string, sdk.AccAddress, string], amount math.Int) (bool, error) {
			acc := key.K1() + "/" + key.K2().String()
			if s, ok := sums[acc]; ok {
				sums[acc] = s.Add(amount)
			} else {
				sums[acc] = amount
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "deposit-sum", err.Error()), true
		}

		err = k.stakeAccounts.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], acc types.StakeAccount) (bool, error) {
			sum, ok := sums[key.K1()+"/"+key.K2().String()]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(acc.StakedAmount) {
				count++
				msg += fmt.Sprintf("\t%s/%s: staked %s, deposits %s\n", key.K1(), key.K2(), acc.StakedAmount, sum)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "deposit-sum", err.Error()), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "deposit-sum",
			fmt.Sprintf("%d accounts with staked amount != sum of deposits\n%s", count, msg),
		), broken
	}
}

// TotalDepositSupplyInvariant checks that the total deposit supply of every
// denom equals the sum of the deposit balances in that denom.
func TotalDepositSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		sums := make(map[string]math.Int)
		err := k.depositBalances.Walk(ctx, nil, func(key collections.Triple[string, sdk.AccAddress, string], amount math.Int) (bool, error) {
			denom := key.K1() + "/" + key.K3()
			if s, ok := sums[denom]; ok {
				sums[denom] = s.Add(amount)
			} else {
				sums[denom] = amount
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-deposit-supply", err.Error()), true
		}

		err = k.totalDepositSupply.Walk(ctx, nil, func(key collections.Pair[string, string], supply math.Int) (bool, error) {
			denom := key.K1() + "/" + key.K2()
			sum, ok := sums[denom]
			if !ok {
				sum = math.ZeroInt()
			}
			delete(sums, denom)
			if !sum.Equal(supply) {
				count++
				msg += fmt.Sprintf("\t%s/%s: supply %s, deposits %s\n", key.K1(), key.K2(), supply, sum)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-deposit-supply", err.Error()), true
		}
		for denom, sum := range sums {
			count++
			msg += fmt.Sprintf("\t%s: supply 0, deposits %s\n", denom, sum)
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "total-deposit-supply",
			fmt.Sprintf("%d denoms with total deposit supply != sum of deposits\n%s", count, msg),
		), broken
	}
}

// ReceiptSupplyInvariant checks that the receipt supply of every tracker
// equals the sum of its receipt balances.
func ReceiptSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		sums := make(map[string]math.Int)
		err := k.receiptBalances.Walk(ctx, nil, func(key collections.Pair[string, sdk.AccAddress], amount math.Int) (bool, error) {
			if s, ok := sums[key.K1()]; ok {
				sums[key.K1()] = s.Add(amount)
			} else {
				sums[key.K1()] = amount
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "receipt-supply", err.Error()), true
		}

		trackers, err := k.GetAllTrackers(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "receipt-supply", err.Error()), true
		}
		for _, t := range trackers {
			sum, ok := sums[t.ID]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(t.TotalSupply) {
				count++
				msg += fmt.Sprintf("\t%s: supply %s, balances %s\n", t.ID, t.TotalSupply, sum)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "receipt-supply",
			fmt.Sprintf("%d trackers with total supply != sum of receipt balances\n%s", count, msg),
		), broken
	}
}

// RewardConservationInvariant checks that no tracker paid out more reward
// than it received.
func RewardConservationInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		trackers, err := k.GetAllTrackers(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reward-conservation", err.Error()), true
		}
		for _, t := range trackers {
			if t.TotalClaimed.GT(t.TotalDistributed) {
				count++
				msg += fmt.Sprintf("\t%s: claimed %s, distributed %s\n", t.ID, t.TotalClaimed, t.TotalDistributed)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reward-conservation",
			fmt.Sprintf("%d trackers paid more than they received\n%s", count, msg),
		), broken
	}
}
