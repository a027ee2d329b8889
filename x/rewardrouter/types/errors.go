package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/rewardrouter module sentinel errors
var (
	ErrForbidden                  = errorsmod.Register(ModuleName, 1300, "forbidden")
	ErrInvalidAmount              = errorsmod.Register(ModuleName, 1301, "invalid amount")
	ErrInvalidRoute               = errorsmod.Register(ModuleName, 1302, "invalid route")
	ErrInvalidAddress             = errorsmod.Register(ModuleName, 1303, "invalid address")
	ErrSenderHasVestedTokens      = errorsmod.Register(ModuleName, 1304, "sender has vested tokens")
	ErrAverageStakedAmountNonZero = errorsmod.Register(ModuleName, 1305, "receiver has staking history")
	ErrTransferNotSignalled       = errorsmod.Register(ModuleName, 1306, "transfer not signalled")
	ErrInsufficientAllowance      = errorsmod.Register(ModuleName, 1307, "transfer amount exceeds allowance")
)
