package types

import (
	"fmt"
	"slices"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

// Tracker is the global state of one reward tracker.
type Tracker struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	// Gov is the bech32 address allowed to call the governance setters.
	Gov         string `json:"gov"`
	Initialized bool   `json:"initialized"`
	// DepositDenoms is the set of accepted deposit tokens. Receipt denoms of
	// other trackers make this tracker a parent of those trackers.
	DepositDenoms []string `json:"deposit_denoms"`
	DistributorID string   `json:"distributor_id"`

	InPrivateTransferMode bool `json:"in_private_transfer_mode"`
	InPrivateStakingMode  bool `json:"in_private_staking_mode"`
	InPrivateClaimingMode bool `json:"in_private_claiming_mode"`

	// CumulativeRewardPerToken is scaled by nsctypes.Precision.
	CumulativeRewardPerToken math.Int `json:"cumulative_reward_per_token"`
	// TotalSupply is the receipt token supply.
	TotalSupply math.Int `json:"total_supply"`

	// TotalDistributed and TotalClaimed count reward tokens that entered
	// and left the tracker through its distributor and claims.
	TotalDistributed math.Int `json:"total_distributed"`
	TotalClaimed     math.Int `json:"total_claimed"`
}

func NewTracker(id, name, symbol, gov string) Tracker {
	return Tracker{
		ID:                       id,
		Name:                     name,
		Symbol:                   symbol,
		Gov:                      gov,
		DepositDenoms:            []string{},
		CumulativeRewardPerToken: math.ZeroInt(),
		TotalSupply:              math.ZeroInt(),
		TotalDistributed:         math.ZeroInt(),
		TotalClaimed:             math.ZeroInt(),
	}
}

func (t Tracker) Validate() error {
	if err := ValidateInstanceID(t.ID); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(t.Gov); err != nil {
		return fmt.Errorf("invalid gov of tracker %s: %w", t.ID, err)
	}
	if err := nsctypes.CheckForDuplicatesAndEmptyStrings(t.DepositDenoms); err != nil {
		return fmt.Errorf("invalid deposit denoms of tracker %s: %w", t.ID, err)
	}
	for _, denom := range t.DepositDenoms {
		if err := ValidateDenom(denom); err != nil {
			return err
		}
		if denom == t.ReceiptDenom() {
			return ErrStakingCycle.Wrapf("tracker %s accepts its own receipt", t.ID)
		}
	}
	if t.Initialized && t.DistributorID == "" {
		return fmt.Errorf("initialized tracker %s has no distributor", t.ID)
	}
	for name, v := range map[string]math.Int{
		"cumulative_reward_per_token": t.CumulativeRewardPerToken,
		"total_supply":                t.TotalSupply,
		"total_distributed":           t.TotalDistributed,
		"total_claimed":               t.TotalClaimed,
	} {
		if v.IsNil() || v.IsNegative() {
			return fmt.Errorf("tracker %s has invalid %s", t.ID, name)
		}
	}
	return nil
}

// IsDepositDenom reports whether denom is accepted for staking.
func (t Tracker) IsDepositDenom(denom string) bool {
	return slices.Contains(t.DepositDenoms, denom)
}

// ReceiptDenom is the denom of the tracker's own receipt token.
func (t Tracker) ReceiptDenom() string {
	return ReceiptDenom(t.ID)
}

// Address is the custody address of the tracker.
func (t Tracker) Address() sdk.AccAddress {
	return TrackerAddress(t.ID)
}

// IsGov reports whether addr is the tracker's governance principal.
func (t Tracker) IsGov(addr sdk.AccAddress) bool {
	return t.Gov == addr.String()
}

// ChildTrackerIDs lists the trackers whose receipts this tracker accepts.
func (t Tracker) ChildTrackerIDs() []string {
	var ids []string
	for _, denom := range t.DepositDenoms {
		if id, ok := TrackerIDFromDenom(denom); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
