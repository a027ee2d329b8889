package types

import (
	"cosmossdk.io/math"
)

type MsgCreateVester struct {
	Authority string       `json:"authority"`
	Params    VesterParams `json:"params"`
}

type MsgCreateVesterResponse struct{}

type MsgDeposit struct {
	Sender   string   `json:"sender"`
	VesterID string   `json:"vester_id"`
	Amount   math.Int `json:"amount"`
}

type MsgDepositResponse struct{}

type MsgDepositForAccount struct {
	Sender   string   `json:"sender"`
	VesterID string   `json:"vester_id"`
	Account  string   `json:"account"`
	Amount   math.Int `json:"amount"`
}

type MsgDepositForAccountResponse struct{}

type MsgClaim struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
	Receiver string `json:"receiver"`
}

type MsgClaimResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgClaimForAccount struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
	Account  string `json:"account"`
	Receiver string `json:"receiver"`
}

type MsgClaimForAccountResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgWithdraw struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
}

type MsgWithdrawResponse struct{}

// AccountField names a handler-settable per-account value.
type AccountField string

const (
	FieldTransferredAverageStakedAmount AccountField = "transferred_average_staked_amount"
	FieldTransferredCumulativeReward    AccountField = "transferred_cumulative_reward"
	FieldCumulativeRewardDeduction      AccountField = "cumulative_reward_deduction"
	FieldBonusReward                    AccountField = "bonus_reward"
)

type MsgSetAccountValue struct {
	Sender   string       `json:"sender"`
	VesterID string       `json:"vester_id"`
	Field    AccountField `json:"field"`
	Account  string       `json:"account"`
	Amount   math.Int     `json:"amount"`
}

type MsgSetAccountValueResponse struct{}

type MsgTransferStakeValues struct {
	Sender          string `json:"sender"`
	VesterID        string `json:"vester_id"`
	AccountSender   string `json:"account_sender"`
	AccountReceiver string `json:"account_receiver"`
}

type MsgTransferStakeValuesResponse struct{}

type MsgSetHandler struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
	Handler  string `json:"handler"`
	IsActive bool   `json:"is_active"`
}

type MsgSetHandlerResponse struct{}

type MsgSetGov struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
	NewGov   string `json:"new_gov"`
}

type MsgSetGovResponse struct{}

type MsgSetHasMaxVestableAmount struct {
	Sender   string `json:"sender"`
	VesterID string `json:"vester_id"`
	Enabled  bool   `json:"enabled"`
}

type MsgSetHasMaxVestableAmountResponse struct{}

type MsgWithdrawToken struct {
	Sender   string   `json:"sender"`
	VesterID string   `json:"vester_id"`
	Denom    string   `json:"denom"`
	Receiver string   `json:"receiver"`
	Amount   math.Int `json:"amount"`
}

type MsgWithdrawTokenResponse struct{}
