package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// VestingAccount is the state of one account in one vester.
type VestingAccount struct {
	// Balance is the escrow still vesting.
	Balance               math.Int `json:"balance"`
	CumulativeClaimAmount math.Int `json:"cumulative_claim_amount"`
	ClaimedAmount         math.Int `json:"claimed_amount"`
	PairAmount            math.Int `json:"pair_amount"`
	// LastVestingTime is in unix seconds, zero for an empty account.
	LastVestingTime int64 `json:"last_vesting_time"`

	TransferredAverageStakedAmount math.Int `json:"transferred_average_staked_amount"`
	TransferredCumulativeReward    math.Int `json:"transferred_cumulative_reward"`
	CumulativeRewardDeduction      math.Int `json:"cumulative_reward_deduction"`
	BonusReward                    math.Int `json:"bonus_reward"`
}

func NewVestingAccount() VestingAccount {
	return VestingAccount{
		Balance:                        math.ZeroInt(),
		CumulativeClaimAmount:          math.ZeroInt(),
		ClaimedAmount:                  math.ZeroInt(),
		PairAmount:                     math.ZeroInt(),
		TransferredAverageStakedAmount: math.ZeroInt(),
		TransferredCumulativeReward:    math.ZeroInt(),
		CumulativeRewardDeduction:      math.ZeroInt(),
		BonusReward:                    math.ZeroInt(),
	}
}

func (a VestingAccount) Validate() error {
	for name, v := range map[string]math.Int{
		"balance":                           a.Balance,
		"cumulative_claim_amount":           a.CumulativeClaimAmount,
		"claimed_amount":                    a.ClaimedAmount,
		"pair_amount":                       a.PairAmount,
		"transferred_average_staked_amount": a.TransferredAverageStakedAmount,
		"transferred_cumulative_reward":     a.TransferredCumulativeReward,
		"cumulative_reward_deduction":       a.CumulativeRewardDeduction,
		"bonus_reward":                      a.BonusReward,
	} {
		if v.IsNil() || v.IsNegative() {
			return fmt.Errorf("invalid %s", name)
		}
	}
	if a.ClaimedAmount.GT(a.CumulativeClaimAmount) {
		return fmt.Errorf("claimed amount exceeds cumulative claim amount")
	}
	if a.LastVestingTime < 0 {
		return fmt.Errorf("negative last vesting time")
	}
	return nil
}

// TotalVested is everything ever deposited in the current vesting cycle.
func (a VestingAccount) TotalVested() math.Int {
	return a.Balance.Add(a.CumulativeClaimAmount)
}

// NextVested returns the escrow released by the schedule since the last
// vesting time, capped at the balance.
func (a VestingAccount) NextVested(now, vestingDuration int64) math.Int {
	if a.Balance.IsZero() || now <= a.LastVestingTime {
		return math.ZeroInt()
	}
	vested := a.TotalVested().MulRaw(now - a.LastVestingTime).QuoRaw(vestingDuration)
	if vested.LT(a.Balance) {
		return vested
	}
	return a.Balance
}

// Claimable is the vested amount not paid out yet.
func (a VestingAccount) Claimable(now, vestingDuration int64) math.Int {
	return a.CumulativeClaimAmount.Sub(a.ClaimedAmount).Add(a.NextVested(now, vestingDuration))
}

// HasTransferHistory reports whether the account already received stake
// values or holds escrow. Transfer receivers must not.
func (a VestingAccount) HasTransferHistory() bool {
	return !a.TransferredAverageStakedAmount.IsZero() ||
		!a.TransferredCumulativeReward.IsZero() ||
		!a.Balance.IsZero()
}

// AccountEntry is an exported (vester, account) record.
type AccountEntry struct {
	VesterID string         `json:"vester_id"`
	Address  string         `json:"address"`
	Account  VestingAccount `json:"account"`
}
