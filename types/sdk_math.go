package types

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// Precision is the fixed point scale of cumulative reward per token values.
	Precision = sdkmath.NewIntFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))
	// BasisPointsDivisor is the denominator of basis point rates.
	BasisPointsDivisor = sdkmath.NewInt(10_000)
)

// MulDiv returns a * b / c truncated towards zero. The product is computed
// on big.Int so intermediate values may exceed the 256 bit bound of
// sdkmath.Int. Returns an error if c is zero or the result overflows.
func MulDiv(a, b, c sdkmath.Int) (sdkmath.Int, error) {
	if c.IsZero() {
		return sdkmath.Int{}, fmt.Errorf("%w: division by zero", ErrInvalidAmount)
	}

	res := new(big.Int).Mul(a.BigInt(), b.BigInt())
	res.Quo(res, c.BigInt())
	if res.BitLen() > sdkmath.MaxBitLen {
		return sdkmath.Int{}, fmt.Errorf("%w: %s * %s / %s overflows", ErrOverflow, a, b, c)
	}

	return sdkmath.NewIntFromBigInt(res), nil
}

// MinInt returns the smaller of a and b.
func MinInt(a, b sdkmath.Int) sdkmath.Int {
	if a.LT(b) {
		return a
	}
	return b
}

// SafeNewCoin safely validates the coin created instead of panicking.
// Returns an error if the coin denomination or amount is invalid.
func SafeNewCoin(denom string, amount sdkmath.Int) (sdk.Coin, error) {
	coin := sdk.Coin{
		Denom:  denom,
		Amount: amount,
	}

	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, err
	}

	return coin, nil
}

// SingleCoins builds a validated sdk.Coins holding a single coin.
func SingleCoins(denom string, amount sdkmath.Int) (sdk.Coins, error) {
	coin, err := SafeNewCoin(denom, amount)
	if err != nil {
		return nil, err
	}
	return sdk.NewCoins(coin), nil
}
