package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

// RegisterInvariants registers all rewardclaimer invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-claimable", TotalClaimableInvariant(k))
}

// TotalClaimableInvariant checks that the total claimable of every denom is
// the sum of the claimable amounts of all accounts.
func TotalClaimableInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		sums := make(map[string]math.Int)
		err := k.claimable.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], amount math.Int) (bool, error) {
			if s, ok := sums[key.K2()]; ok {
				sums[key.K2()] = s.Add(amount)
			} else {
				sums[key.K2()] = amount
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-claimable", err.Error()), true
		}
		err = k.totalClaimable.Walk(ctx, nil, func(denom string, total math.Int) (bool, error) {
			sum, ok := sums[denom]
			if !ok {
				sum = math.ZeroInt()
			}
			if !sum.Equal(total) {
				count++
				msg += fmt.Sprintf("\t%s total claimable %s but accounts sum to %s\n", denom, total, sum)
			}
			delete(sums, denom)
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-claimable", err.Error()), true
		}
		for denom, sum := range sums {
			count++
			msg += fmt.Sprintf("\t%s has no total claimable but accounts sum to %s\n", denom, sum)
		}

		return sdk.FormatInvariant(types.ModuleName, "total-claimable", fmt.Sprintf(
			"found %d denoms with a mismatching total claimable\n%s", count, msg)), count != 0
	}
}
