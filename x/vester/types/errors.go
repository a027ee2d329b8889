package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/vester module sentinel errors
var (
	ErrForbidden                 = errorsmod.Register(ModuleName, 1200, "forbidden")
	ErrInvalidAmount             = errorsmod.Register(ModuleName, 1201, "invalid amount")
	ErrMaxVestableAmountExceeded = errorsmod.Register(ModuleName, 1202, "max vestable amount exceeded")
	ErrVestedAmountZero          = errorsmod.Register(ModuleName, 1203, "vested amount is zero")
	ErrVesterNotFound            = errorsmod.Register(ModuleName, 1204, "vester not found")
	ErrInstanceExists            = errorsmod.Register(ModuleName, 1205, "instance already exists")
	ErrInvalidVester             = errorsmod.Register(ModuleName, 1206, "invalid vester")
	ErrInvalidAddress            = errorsmod.Register(ModuleName, 1207, "invalid address")
)
