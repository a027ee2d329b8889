package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// ClaimerAddress holds the tokens the claimer pays out.
func ClaimerAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
