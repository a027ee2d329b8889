package types_test

import (
	"testing"

	"cosmossdk.io/collections"

	"github.com/nsc-protocol/nsc/testutil/store"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestStoreKeysDoNotCollide(t *testing.T) {
	store.CheckKeyCollisions(t, map[string]collections.Prefix{
		"trackers":             types.TrackersKeyPrefix,
		"distributors":         types.DistributorsKeyPrefix,
		"handlers":             types.HandlersKeyPrefix,
		"total_deposit_supply": types.TotalDepositSupplyKeyPrefix,
		"stake_accounts":       types.StakeAccountsKeyPrefix,
		"deposit_balances":     types.DepositBalancesKeyPrefix,
		"receipt_balances":     types.ReceiptBalancesKeyPrefix,
		"receipt_allowances":   types.ReceiptAllowancesKeyPrefix,
	})
}
