package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// StakeAccount is the state of one account in one tracker. Deposit
// balances per denom and the receipt balance are stored separately.
type StakeAccount struct {
	StakedAmount    math.Int `json:"staked_amount"`
	ClaimableReward math.Int `json:"claimable_reward"`
	// PreviousCumulatedRewardPerToken is the tracker accumulator value the
	// account was last settled at.
	PreviousCumulatedRewardPerToken math.Int `json:"previous_cumulated_reward_per_token"`
	// AverageStakedAmount is folded up to AveragedCumulativeReward. The
	// remaining CumulativeReward - AveragedCumulativeReward was earned at
	// the current StakedAmount.
	AverageStakedAmount      math.Int `json:"average_staked_amount"`
	AveragedCumulativeReward math.Int `json:"averaged_cumulative_reward"`
	CumulativeReward         math.Int `json:"cumulative_reward"`
}

func NewStakeAccount() StakeAccount {
	return StakeAccount{
		StakedAmount:                    math.ZeroInt(),
		ClaimableReward:                 math.ZeroInt(),
		PreviousCumulatedRewardPerToken: math.ZeroInt(),
		AverageStakedAmount:             math.ZeroInt(),
		AveragedCumulativeReward:        math.ZeroInt(),
		CumulativeReward:                math.ZeroInt(),
	}
}

func (a StakeAccount) Validate() error {
	for name, v := range map[string]math.Int{
		"staked_amount":                       a.StakedAmount,
		"claimable_reward":                    a.ClaimableReward,
		"previous_cumulated_reward_per_token": a.PreviousCumulatedRewardPerToken,
		"average_staked_amount":               a.AverageStakedAmount,
		"averaged_cumulative_reward":          a.AveragedCumulativeReward,
		"cumulative_reward":                   a.CumulativeReward,
	} {
		if v.IsNil() || v.IsNegative() {
			return fmt.Errorf("invalid %s", name)
		}
	}
	if a.AveragedCumulativeReward.GT(a.CumulativeReward) {
		return fmt.Errorf("averaged cumulative reward exceeds cumulative reward")
	}
	return nil
}

// CurrentAverageStakedAmount folds the unaveraged part of the cumulative
// reward at the current stake. Every reward since the last fold was earned
// at StakedAmount, so this equals folding after every settlement.
func (a StakeAccount) CurrentAverageStakedAmount() math.Int {
	if a.CumulativeReward.IsZero() || a.CumulativeReward.Equal(a.AveragedCumulativeReward) {
		return a.AverageStakedAmount
	}

	unaveraged := a.CumulativeReward.Sub(a.AveragedCumulativeReward)
	prev := a.AverageStakedAmount.Mul(a.AveragedCumulativeReward).Quo(a.CumulativeReward)
	cur := a.StakedAmount.Mul(unaveraged).Quo(a.CumulativeReward)
	return prev.Add(cur)
}

// FoldAverage records the current average. It must run before StakedAmount
// changes.
func (a *StakeAccount) FoldAverage() {
	a.AverageStakedAmount = a.CurrentAverageStakedAmount()
	a.AveragedCumulativeReward = a.CumulativeReward
}

// IsFresh reports whether the account has no reward history. Transfer
// receivers must be fresh.
func (a StakeAccount) IsFresh() bool {
	return a.CurrentAverageStakedAmount().IsZero() && a.CumulativeReward.IsZero()
}

// AccountEntry is an exported (tracker, account) record.
type AccountEntry struct {
	TrackerID       string              `json:"tracker_id"`
	Address         string              `json:"address"`
	Account         StakeAccount        `json:"account"`
	DepositBalances map[string]math.Int `json:"deposit_balances,omitempty"`
	ReceiptBalance  math.Int            `json:"receipt_balance"`
}
