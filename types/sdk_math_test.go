package types_test

import (
	"math/big"
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/testutil/datagen"
	"github.com/nsc-protocol/nsc/types"
)

func TestMulDiv(t *testing.T) {
	maxInt := sdkmath.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), sdkmath.MaxBitLen), big.NewInt(1)))
	tcs := []struct {
		title   string
		a, b, c sdkmath.Int
		exp     sdkmath.Int
		expErr  error
	}{
		{
			title: "truncates towards zero",
			a:     sdkmath.NewInt(10), b: sdkmath.NewInt(10), c: sdkmath.NewInt(3),
			exp: sdkmath.NewInt(33),
		},
		{
			title: "intermediate product above 256 bits",
			a:     maxInt, b: types.Precision, c: types.Precision,
			exp: maxInt,
		},
		{
			title: "division by zero",
			a:     sdkmath.OneInt(), b: sdkmath.OneInt(), c: sdkmath.ZeroInt(),
			expErr: types.ErrInvalidAmount,
		},
		{
			title: "result overflows",
			a:     maxInt, b: sdkmath.NewInt(2), c: sdkmath.OneInt(),
			expErr: types.ErrOverflow,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.title, func(t *testing.T) {
			res, err := types.MulDiv(tc.a, tc.b, tc.c)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.exp.Equal(res), "%s != %s", tc.exp, res)
		})
	}
}

func FuzzMulDivPrecisionRoundTrip(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		amount := sdkmath.NewIntWithDecimal(r.Int63n(1_000_000_000)+1, appparams.NscExponent)
		supply := amount.Add(sdkmath.NewInt(r.Int63()))

		perToken, err := types.MulDiv(amount, types.Precision, supply)
		require.NoError(t, err)
		back, err := types.MulDiv(perToken, supply, types.Precision)
		require.NoError(t, err)

		// two truncations lose at most one base unit
		require.True(t, back.LTE(amount))
		require.True(t, amount.Sub(back).LTE(sdkmath.OneInt()), "lost %s", amount.Sub(back))
	})
}

func TestMinInt(t *testing.T) {
	require.Equal(t, sdkmath.NewInt(1), types.MinInt(sdkmath.NewInt(1), sdkmath.NewInt(2)))
	require.Equal(t, sdkmath.NewInt(1), types.MinInt(sdkmath.NewInt(2), sdkmath.NewInt(1)))
}

func TestSingleCoins(t *testing.T) {
	coins, err := types.SingleCoins(appparams.NscDenom, sdkmath.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, "5ansc", coins.String())

	_, err = types.SingleCoins(appparams.NscDenom, sdkmath.NewInt(-5))
	require.Error(t, err)
	_, err = types.SafeNewCoin("1bad", sdkmath.NewInt(5))
	require.Error(t, err)
}

func TestCheckForDuplicatesAndEmptyStrings(t *testing.T) {
	require.NoError(t, types.CheckForDuplicatesAndEmptyStrings([]string{"ansc", "aesnsc"}))
	require.ErrorContains(t, types.CheckForDuplicatesAndEmptyStrings([]string{"ansc", ""}), "index 1")
	require.ErrorContains(t, types.CheckForDuplicatesAndEmptyStrings([]string{"ansc", "ansc"}), "duplicate")
}
