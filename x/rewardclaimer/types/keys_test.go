package types_test

import (
	"testing"

	"cosmossdk.io/collections"

	"github.com/nsc-protocol/nsc/testutil/store"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

func TestStoreKeysDoNotCollide(t *testing.T) {
	store.CheckKeyCollisions(t, map[string]collections.Prefix{
		"gov":               types.GovKey,
		"claimable_tokens":  types.ClaimableTokensKeyPrefix,
		"handlers":          types.HandlersKeyPrefix,
		"claimable_amounts": types.ClaimableAmountsKeyPrefix,
		"total_claimable":   types.TotalClaimableKeyPrefix,
	})
}
