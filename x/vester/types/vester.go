package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

const instanceKindVester = "vester"

// Vester converts EsDenom into ClaimableDenom linearly over
// VestingDuration seconds.
type Vester struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Gov    string `json:"gov"`

	VestingDuration int64  `json:"vesting_duration"`
	EsDenom         string `json:"es_denom"`
	ClaimableDenom  string `json:"claimable_denom"`
	// PairDenom is the collateral locked alongside escrow, usually a tracker
	// receipt. Empty when the vester has no pair token.
	PairDenom string `json:"pair_denom,omitempty"`
	// RewardTrackerID is the tracker whose reward history caps vesting.
	RewardTrackerID      string `json:"reward_tracker_id,omitempty"`
	HasMaxVestableAmount bool   `json:"has_max_vestable_amount"`

	// TotalSupply is the sum of all account balances still vesting.
	TotalSupply math.Int `json:"total_supply"`
	// PairSupply is the sum of all locked pair amounts.
	PairSupply math.Int `json:"pair_supply"`
}

// VesterParams are the immutable parameters of a new vester.
type VesterParams struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	VestingDuration int64  `json:"vesting_duration"`
	EsDenom         string `json:"es_denom"`
	ClaimableDenom  string `json:"claimable_denom"`
	PairDenom       string `json:"pair_denom,omitempty"`
	RewardTrackerID string `json:"reward_tracker_id,omitempty"`
}

func NewVester(p VesterParams, gov string) Vester {
	return Vester{
		ID:                   p.ID,
		Name:                 p.Name,
		Symbol:               p.Symbol,
		Gov:                  gov,
		VestingDuration:      p.VestingDuration,
		EsDenom:              p.EsDenom,
		ClaimableDenom:       p.ClaimableDenom,
		PairDenom:            p.PairDenom,
		RewardTrackerID:      p.RewardTrackerID,
		HasMaxVestableAmount: p.RewardTrackerID != "",
		TotalSupply:          math.ZeroInt(),
		PairSupply:           math.ZeroInt(),
	}
}

func (v Vester) Validate() error {
	if err := rttypes.ValidateInstanceID(v.ID); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(v.Gov); err != nil {
		return fmt.Errorf("invalid gov of vester %s: %w", v.ID, err)
	}
	if v.VestingDuration <= 0 {
		return ErrInvalidVester.Wrapf("vester %s has non-positive vesting duration", v.ID)
	}
	for name, denom := range map[string]string{"es": v.EsDenom, "claimable": v.ClaimableDenom} {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidVester.Wrapf("vester %s: invalid %s denom: %s", v.ID, name, err)
		}
		if rttypes.IsReceiptDenom(denom) {
			return ErrInvalidVester.Wrapf("vester %s: %s denom cannot be a receipt", v.ID, name)
		}
	}
	if v.EsDenom == v.ClaimableDenom {
		return ErrInvalidVester.Wrapf("vester %s vests %s into itself", v.ID, v.EsDenom)
	}
	if v.HasPairToken() {
		if err := rttypes.ValidateDenom(v.PairDenom); err != nil {
			return ErrInvalidVester.Wrapf("vester %s: %s", v.ID, err)
		}
	}
	if v.HasRewardTracker() {
		if err := rttypes.ValidateInstanceID(v.RewardTrackerID); err != nil {
			return err
		}
	}
	if v.TotalSupply.IsNil() || v.TotalSupply.IsNegative() {
		return ErrInvalidVester.Wrapf("vester %s has invalid total supply", v.ID)
	}
	if v.PairSupply.IsNil() || v.PairSupply.IsNegative() {
		return ErrInvalidVester.Wrapf("vester %s has invalid pair supply", v.ID)
	}
	return nil
}

func (v Vester) HasPairToken() bool {
	return v.PairDenom != ""
}

func (v Vester) HasRewardTracker() bool {
	return v.RewardTrackerID != ""
}

// Address is the custody address holding escrow, pair collateral and the
// claimable token reserve.
func (v Vester) Address() sdk.AccAddress {
	return VesterAddress(v.ID)
}

func (v Vester) IsGov(addr sdk.AccAddress) bool {
	return v.Gov == addr.String()
}

// VesterAddress is the custody address of a vester.
func VesterAddress(id string) sdk.AccAddress {
	return nsctypes.InstanceAddress(ModuleName, instanceKindVester, id)
}
