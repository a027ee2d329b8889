package datagen

import (
	"math/rand"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	appparams "github.com/nsc-protocol/nsc/app/params"
)

// GenRandomAccAddress returns a random 20 byte account address.
func GenRandomAccAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, 20))
}

// GenRandomAccAddresses returns n distinct random account addresses.
func GenRandomAccAddresses(r *rand.Rand, n int) []sdk.AccAddress {
	seen := make(map[string]bool, n)
	addrs := make([]sdk.AccAddress, 0, n)
	for len(addrs) < n {
		addr := GenRandomAccAddress(r)
		if seen[addr.String()] {
			continue
		}
		seen[addr.String()] = true
		addrs = append(addrs, addr)
	}
	return addrs
}

// GenRandomAccWithBalance returns n random accounts holding amount of every
// base denom of the protocol.
func GenRandomAccWithBalance(r *rand.Rand, n int, amount sdkmath.Int) []banktypes.Balance {
	balances := make([]banktypes.Balance, n)
	for i, addr := range GenRandomAccAddresses(r, n) {
		balances[i] = banktypes.Balance{
			Address: addr.String(),
			Coins: sdk.NewCoins(
				sdk.NewCoin(appparams.NscDenom, amount),
				sdk.NewCoin(appparams.EsNscDenom, amount),
				sdk.NewCoin(appparams.NlpDenom, amount),
				sdk.NewCoin(appparams.FeeDenom, amount),
			),
		}
	}
	return balances
}
