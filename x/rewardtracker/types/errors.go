package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/rewardtracker module sentinel errors
var (
	ErrForbidden                   = errorsmod.Register(ModuleName, 1100, "forbidden")
	ErrActionDisabled              = errorsmod.Register(ModuleName, 1101, "action not enabled")
	ErrInvalidAmount               = errorsmod.Register(ModuleName, 1102, "invalid amount")
	ErrInvalidDepositToken         = errorsmod.Register(ModuleName, 1103, "invalid deposit token")
	ErrAlreadyInitialized          = errorsmod.Register(ModuleName, 1104, "already initialized")
	ErrAmountExceedsStakedAmount   = errorsmod.Register(ModuleName, 1105, "amount exceeds stakedAmount")
	ErrAmountExceedsDepositBalance = errorsmod.Register(ModuleName, 1106, "amount exceeds depositBalance")
	ErrAmountExceedsAllowance      = errorsmod.Register(ModuleName, 1107, "transfer amount exceeds allowance")
	ErrBurnExceedsBalance          = errorsmod.Register(ModuleName, 1108, "burn amount exceeds balance")
	ErrTransferExceedsBalance      = errorsmod.Register(ModuleName, 1109, "transfer amount exceeds balance")
	ErrStakingCycle                = errorsmod.Register(ModuleName, 1110, "deposit token would create a staking cycle")
	ErrTrackerNotFound             = errorsmod.Register(ModuleName, 1111, "reward tracker not found")
	ErrTrackerNotInitialized       = errorsmod.Register(ModuleName, 1112, "reward tracker not initialized")
	ErrDistributorNotFound         = errorsmod.Register(ModuleName, 1113, "reward distributor not found")
	ErrInvalidDistributor          = errorsmod.Register(ModuleName, 1114, "invalid distributor")
	ErrInvalidLastDistributionTime = errorsmod.Register(ModuleName, 1115, "invalid lastDistributionTime")
	ErrInstanceExists              = errorsmod.Register(ModuleName, 1116, "instance already exists")
	ErrInvalidInstanceID           = errorsmod.Register(ModuleName, 1117, "invalid instance id")
	ErrInvalidAddress              = errorsmod.Register(ModuleName, 1118, "invalid address")
	ErrInvalidPrivateMode          = errorsmod.Register(ModuleName, 1119, "invalid private mode")
)
