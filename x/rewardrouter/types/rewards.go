package types

import (
	"cosmossdk.io/math"
)

// HandleRewardsOptions selects what HandleRewards does.
type HandleRewardsOptions struct {
	// ClaimNsc claims vested NSC from both vesters.
	ClaimNsc bool `json:"claim_nsc"`
	// StakeNsc restakes the NSC claimed from the vesters.
	StakeNsc   bool `json:"stake_nsc"`
	ClaimEsNsc bool `json:"claim_es_nsc"`
	StakeEsNsc bool `json:"stake_es_nsc"`
	// StakeMultiplierPoints stakes accrued bonus points.
	StakeMultiplierPoints bool `json:"stake_multiplier_points"`
	ClaimFees             bool `json:"claim_fees"`
}

// HandleRewardsResult reports what HandleRewards claimed.
type HandleRewardsResult struct {
	Nsc   math.Int `json:"nsc"`
	EsNsc math.Int `json:"es_nsc"`
	BnNsc math.Int `json:"bn_nsc"`
	Fees  math.Int `json:"fees"`
}

func NewHandleRewardsResult() HandleRewardsResult {
	return HandleRewardsResult{
		Nsc:   math.ZeroInt(),
		EsNsc: math.ZeroInt(),
		BnNsc: math.ZeroInt(),
		Fees:  math.ZeroInt(),
	}
}
