package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/rewardclaimer module sentinel errors
var (
	ErrForbidden         = errorsmod.Register(ModuleName, 1400, "forbidden")
	ErrInvalidParam      = errorsmod.Register(ModuleName, 1401, "invalid param")
	ErrInvalidAmount     = errorsmod.Register(ModuleName, 1402, "invalid amount")
	ErrTokenNotClaimable = errorsmod.Register(ModuleName, 1403, "token is not claimable")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 1404, "invalid address")
)
