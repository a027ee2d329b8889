package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "vester"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	VestersKeyPrefix         = collections.NewPrefix(1) // key prefix for (vester) => Vester
	HandlersKeyPrefix        = collections.NewPrefix(2) // key prefix for (vester, handler)
	VestingAccountsKeyPrefix = collections.NewPrefix(3) // key prefix for (vester, account) => VestingAccount
)
