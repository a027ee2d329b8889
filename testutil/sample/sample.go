package sample

import (
	"crypto/rand"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a random 20 byte account address.
func AccAddress() sdk.AccAddress {
	addr := make([]byte, 20)
	if _, err := rand.Read(addr); err != nil {
		panic(err)
	}
	return addr
}
