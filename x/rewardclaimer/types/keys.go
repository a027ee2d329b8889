package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "rewardclaimer"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	GovKey                    = collections.NewPrefix(1) // key for the claimer gov
	ClaimableTokensKeyPrefix  = collections.NewPrefix(2) // key prefix for (denom)
	HandlersKeyPrefix         = collections.NewPrefix(3) // key prefix for (handler)
	ClaimableAmountsKeyPrefix = collections.NewPrefix(4) // key prefix for (account, denom) => claimable amount
	TotalClaimableKeyPrefix   = collections.NewPrefix(5) // key prefix for (denom) => total claimable amount
)
