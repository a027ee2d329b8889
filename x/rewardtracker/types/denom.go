package types

import (
	"fmt"
	"regexp"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

const (
	// ReceiptDenomPrefix prefixes the denom of every tracker receipt token.
	ReceiptDenomPrefix = "rt/"

	instanceKindTracker     = "tracker"
	instanceKindDistributor = "distributor"
)

var instanceIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

// ValidateInstanceID checks the format of a tracker or distributor id.
func ValidateInstanceID(id string) error {
	if !instanceIDRegex.MatchString(id) {
		return ErrInvalidInstanceID.Wrapf("%q", id)
	}
	return nil
}

// ReceiptDenom returns the denom of the receipt token minted by a tracker.
func ReceiptDenom(trackerID string) string {
	return ReceiptDenomPrefix + trackerID
}

// TrackerIDFromDenom returns the tracker id behind a receipt denom.
func TrackerIDFromDenom(denom string) (string, bool) {
	if !strings.HasPrefix(denom, ReceiptDenomPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(denom, ReceiptDenomPrefix)
	return id, id != ""
}

// IsReceiptDenom reports whether denom is a tracker receipt.
func IsReceiptDenom(denom string) bool {
	_, ok := TrackerIDFromDenom(denom)
	return ok
}

// ValidateDenom accepts bank denoms and receipt denoms.
func ValidateDenom(denom string) error {
	if id, ok := TrackerIDFromDenom(denom); ok {
		return ValidateInstanceID(id)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return fmt.Errorf("invalid denom %q: %w", denom, err)
	}
	return nil
}

// TrackerAddress is the custody address of a tracker. It holds the deposit
// tokens staked into the tracker and the rewards distributed to it.
func TrackerAddress(trackerID string) sdk.AccAddress {
	return nsctypes.InstanceAddress(ModuleName, instanceKindTracker, trackerID)
}

// DistributorAddress is the custody address holding a linear distributor's
// funded reward balance.
func DistributorAddress(distributorID string) sdk.AccAddress {
	return nsctypes.InstanceAddress(ModuleName, instanceKindDistributor, distributorID)
}
