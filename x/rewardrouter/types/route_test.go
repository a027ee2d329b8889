package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

func TestRouteValidate(t *testing.T) {
	tests := []struct {
		desc   string
		mutate func(r *types.Route)
		valid  bool
	}{
		{"default", func(r *types.Route) {}, true},
		{"empty denom", func(r *types.Route) { r.BnNscDenom = "" }, false},
		{"invalid denom", func(r *types.Route) { r.NlpDenom = "1nlp" }, false},
		{"empty tracker", func(r *types.Route) { r.BonusNscTracker = "" }, false},
		{"tracker reused", func(r *types.Route) { r.FeeNlpTracker = r.FeeNscTracker }, false},
		{"vester named like a tracker", func(r *types.Route) { r.NlpVester = r.StakedNlpTracker }, false},
		{"renamed instances", func(r *types.Route) {
			r.StakedNscTracker = "staked"
			r.NscVester = "vested"
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			r := types.DefaultRoute()
			tc.mutate(&r)
			err := r.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidRoute)
			}
		})
	}
}

func TestRouteChainsAreOrderedBottomUp(t *testing.T) {
	r := types.DefaultRoute()
	require.Equal(t, []string{"snsc", "sbnsc", "sbfnsc", "fnlp", "fsnlp"}, r.Trackers())
	require.Equal(t, []string{"vnsc", "vnlp"}, r.Vesters())
}
