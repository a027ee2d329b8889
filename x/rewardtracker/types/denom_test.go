package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

func TestReceiptDenoms(t *testing.T) {
	denom := types.ReceiptDenom("snsc")
	require.Equal(t, "rt/snsc", denom)

	id, ok := types.TrackerIDFromDenom(denom)
	require.True(t, ok)
	require.Equal(t, "snsc", id)

	_, ok = types.TrackerIDFromDenom("rt/")
	require.False(t, ok)
	require.False(t, types.IsReceiptDenom("ansc"))

	require.NoError(t, types.ValidateDenom(denom))
	require.NoError(t, types.ValidateDenom("ansc"))
	require.ErrorIs(t, types.ValidateDenom("rt/Bad-ID"), types.ErrInvalidInstanceID)
	require.Error(t, types.ValidateDenom("1x"))
}

func TestInstanceAddressesAreDistinct(t *testing.T) {
	require.NotEqual(t, types.TrackerAddress("snsc"), types.TrackerAddress("sbnsc"))
	require.NotEqual(t, types.TrackerAddress("snsc"), types.DistributorAddress("snsc"))
	require.Equal(t, types.TrackerAddress("snsc"), types.TrackerAddress("snsc"))
}
