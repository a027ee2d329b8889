package params

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// EncodingConfig specifies the codecs used by the SDK keepers the app wires
// (x/auth and x/bank). The NSC modules persist plain Go state and do not
// register anything here.
type EncodingConfig struct {
	InterfaceRegistry types.InterfaceRegistry
	Codec             codec.Codec
	Amino             *codec.LegacyAmino
}

// DefaultEncodingConfig returns the default encoding config
func DefaultEncodingConfig() EncodingConfig {
	registry := types.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)

	return EncodingConfig{
		InterfaceRegistry: registry,
		Codec:             codec.NewProtoCodec(registry),
		Amino:             codec.NewLegacyAmino(),
	}
}
