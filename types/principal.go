package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Principal is the resolved caller of an operation on one tracker,
// distributor, vester or claimer instance. It is built once at the message
// boundary and handed to the keeper, which only ever consults these flags.
type Principal struct {
	Address   sdk.AccAddress
	IsGov     bool
	IsHandler bool
}

// NewPrincipal returns a principal without any capability.
func NewPrincipal(addr sdk.AccAddress) Principal {
	return Principal{Address: addr}
}

// Is reports whether the principal acts as the given address.
func (p Principal) Is(addr sdk.AccAddress) bool {
	return p.Address.Equals(addr)
}

// InstanceAddress derives the custody address of a named instance owned by
// a module, e.g. InstanceAddress("rewardtracker", "tracker", "snsc").
func InstanceAddress(moduleName, kind, id string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(moduleName, []byte(kind+"/"+id)))
}

// BlockTime returns the block time of the context in unix seconds.
func BlockTime(ctx context.Context) int64 {
	return sdk.UnwrapSDKContext(ctx).HeaderInfo().Time.Unix()
}
