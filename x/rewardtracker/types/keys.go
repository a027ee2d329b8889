package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "rewardtracker"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

var (
	TrackersKeyPrefix           = collections.NewPrefix(1) // key prefix for (tracker) => Tracker
	DistributorsKeyPrefix       = collections.NewPrefix(2) // key prefix for (distributor) => Distributor
	HandlersKeyPrefix           = collections.NewPrefix(3) // key prefix for (tracker, handler)
	TotalDepositSupplyKeyPrefix = collections.NewPrefix(4) // key prefix for (tracker, denom) => total deposit supply
	StakeAccountsKeyPrefix      = collections.NewPrefix(5) // key prefix for (tracker, account) => StakeAccount
	DepositBalancesKeyPrefix    = collections.NewPrefix(6) // key prefix for (tracker, account, denom) => deposit balance
	ReceiptBalancesKeyPrefix    = collections.NewPrefix(7) // key prefix for (tracker, account) => receipt balance
	ReceiptAllowancesKeyPrefix  = collections.NewPrefix(8) // key prefix for (tracker, owner, spender) => allowance
)
