package coins

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

// Tokens returns n whole tokens of 18 decimals.
func Tokens(n int64) math.Int {
	return math.NewInt(n).Mul(math.NewInt(1e18))
}

// MilliTokens returns n thousandths of a token of 18 decimals.
func MilliTokens(n int64) math.Int {
	return math.NewInt(n).Mul(math.NewInt(1e15))
}

// RequireInRange requires lo < v < hi.
func RequireInRange(t *testing.T, v, lo, hi math.Int, msgAndArgs ...any) {
	t.Helper()
	if !v.GT(lo) || !v.LT(hi) {
		t.Logf("%s is not in (%s, %s)", v, lo, hi)
	}
	require.True(t, v.GT(lo), msgAndArgs...)
	require.True(t, v.LT(hi), msgAndArgs...)
}

// InMargin reports whether a and b differ by at most margin.
func InMargin(a, b, margin math.Int) bool {
	return a.Sub(b).Abs().LTE(margin)
}

// RequireInMargin requires |a - b| <= margin.
func RequireInMargin(t *testing.T, a, b, margin math.Int, msgAndArgs ...any) {
	t.Helper()
	if !InMargin(a, b, margin) {
		t.Logf("|%s - %s| > %s", a, b, margin)
	}
	require.True(t, InMargin(a, b, margin), msgAndArgs...)
}
