package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "rewardrouter"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	RouteKey                  = collections.NewPrefix(1) // key for the Route
	PendingReceiversKeyPrefix = collections.NewPrefix(2) // key prefix for (sender) => signalled receiver
	StakedNlpAllowancesPrefix = collections.NewPrefix(3) // key prefix for (owner, spender) => staked NLP allowance
)
