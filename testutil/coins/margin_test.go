package coins_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/testutil/coins"
)

func TestTokens(t *testing.T) {
	require.Equal(t, "1785000000000000000000", coins.Tokens(1785).String())
	require.Equal(t, "2730000000000000000", coins.MilliTokens(2730).String())
}

func TestInMargin(t *testing.T) {
	a := math.NewInt(10000)
	require.True(t, coins.InMargin(a, math.NewInt(9999), math.OneInt()))
	require.True(t, coins.InMargin(math.NewInt(9999), a, math.OneInt()))
	require.False(t, coins.InMargin(a, math.NewInt(9998), math.OneInt()))
}

func TestRequireInRange(t *testing.T) {
	coins.RequireInRange(t, coins.Tokens(1785).AddRaw(1), coins.Tokens(1785), coins.Tokens(1786))
}
