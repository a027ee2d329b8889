package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BonusDuration is the period bonus multiplier rates are expressed over.
const BonusDuration = int64(365 * 24 * 60 * 60)

type DistributorKind string

const (
	// DistributorKindLinear drains a funded balance at TokensPerInterval.
	DistributorKindLinear DistributorKind = "linear"
	// DistributorKindBonus mints multiplier points proportional to the
	// tracker supply and the elapsed time.
	DistributorKindBonus DistributorKind = "bonus"
)

func (k DistributorKind) Validate() error {
	switch k {
	case DistributorKindLinear, DistributorKindBonus:
		return nil
	default:
		return fmt.Errorf("unknown distributor kind %q", string(k))
	}
}

// Distributor emits RewardDenom to exactly one tracker.
type Distributor struct {
	ID          string          `json:"id"`
	Kind        DistributorKind `json:"kind"`
	RewardDenom string          `json:"reward_denom"`
	TrackerID   string          `json:"tracker_id"`
	Gov         string          `json:"gov"`

	TokensPerInterval          math.Int `json:"tokens_per_interval"`
	BonusMultiplierBasisPoints math.Int `json:"bonus_multiplier_basis_points"`
	// LastDistributionTime is in unix seconds; zero until bootstrapped.
	LastDistributionTime int64 `json:"last_distribution_time"`
}

func NewDistributor(id string, kind DistributorKind, rewardDenom, trackerID, gov string) Distributor {
	return Distributor{
		ID:                         id,
		Kind:                       kind,
		RewardDenom:                rewardDenom,
		TrackerID:                  trackerID,
		Gov:                        gov,
		TokensPerInterval:          math.ZeroInt(),
		BonusMultiplierBasisPoints: math.ZeroInt(),
	}
}

func (d Distributor) Validate() error {
	if err := ValidateInstanceID(d.ID); err != nil {
		return err
	}
	if err := ValidateInstanceID(d.TrackerID); err != nil {
		return err
	}
	if err := d.Kind.Validate(); err != nil {
		return err
	}
	if err := sdk.ValidateDenom(d.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom of distributor %s: %w", d.ID, err)
	}
	if IsReceiptDenom(d.RewardDenom) {
		return fmt.Errorf("distributor %s cannot emit a receipt token", d.ID)
	}
	if _, err := sdk.AccAddressFromBech32(d.Gov); err != nil {
		return fmt.Errorf("invalid gov of distributor %s: %w", d.ID, err)
	}
	if d.TokensPerInterval.IsNil() || d.TokensPerInterval.IsNegative() {
		return fmt.Errorf("distributor %s has invalid tokens per interval", d.ID)
	}
	if d.BonusMultiplierBasisPoints.IsNil() || d.BonusMultiplierBasisPoints.IsNegative() {
		return fmt.Errorf("distributor %s has invalid bonus multiplier", d.ID)
	}
	if d.LastDistributionTime < 0 {
		return fmt.Errorf("distributor %s has negative last distribution time", d.ID)
	}
	return nil
}

// Address is the custody address of the distributor's funded balance.
func (d Distributor) Address() sdk.AccAddress {
	return DistributorAddress(d.ID)
}

// IsGov reports whether addr is the distributor's governance principal.
func (d Distributor) IsGov(addr sdk.AccAddress) bool {
	return d.Gov == addr.String()
}

// ElapsedSince returns the seconds between the last distribution and now,
// or zero when time did not advance.
func (d Distributor) ElapsedSince(now int64) int64 {
	if now <= d.LastDistributionTime {
		return 0
	}
	return now - d.LastDistributionTime
}
