package params

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

var (
	// AccGov is the default governance principal of every instance.
	AccGov = authtypes.NewModuleAddress(govtypes.ModuleName)
)
