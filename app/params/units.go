package params

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal amount in whole tokens into base units.
// Every NSC denom carries NscExponent decimals.
func ParseAmount(s string) (math.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return math.Int{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return math.Int{}, fmt.Errorf("negative amount %q", s)
	}
	base := d.Shift(NscExponent)
	if !base.Equal(base.Truncate(0)) {
		return math.Int{}, fmt.Errorf("amount %q has more than %d decimals", s, NscExponent)
	}
	return math.NewIntFromBigInt(base.BigInt()), nil
}

// FormatAmount renders base units as whole tokens.
func FormatAmount(amount math.Int) string {
	if amount.IsNil() {
		return "0"
	}
	return decimal.NewFromBigInt(amount.BigInt(), -NscExponent).String()
}
