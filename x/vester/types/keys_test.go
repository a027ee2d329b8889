package types_test

import (
	"testing"

	"cosmossdk.io/collections"

	"github.com/nsc-protocol/nsc/testutil/store"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

func TestStoreKeysDoNotCollide(t *testing.T) {
	store.CheckKeyCollisions(t, map[string]collections.Prefix{
		"vesters":          types.VestersKeyPrefix,
		"handlers":         types.HandlersKeyPrefix,
		"vesting_accounts": types.VestingAccountsKeyPrefix,
	})
}
