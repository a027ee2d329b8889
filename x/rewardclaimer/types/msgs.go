package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type MsgSetGov struct {
	Sender string `json:"sender"`
	NewGov string `json:"new_gov"`
}

type MsgSetGovResponse struct{}

type MsgSetClaimableToken struct {
	Sender      string `json:"sender"`
	Denom       string `json:"denom"`
	IsClaimable bool   `json:"is_claimable"`
}

type MsgSetClaimableTokenResponse struct{}

type MsgSetHandler struct {
	Sender   string `json:"sender"`
	Handler  string `json:"handler"`
	IsActive bool   `json:"is_active"`
}

type MsgSetHandlerResponse struct{}

type MsgWithdrawToken struct {
	Sender   string   `json:"sender"`
	Denom    string   `json:"denom"`
	Receiver string   `json:"receiver"`
	Amount   math.Int `json:"amount"`
}

type MsgWithdrawTokenResponse struct{}

// MsgIncreaseClaimableAmounts credits Amounts[i] of Denom to Accounts[i].
type MsgIncreaseClaimableAmounts struct {
	Sender   string     `json:"sender"`
	Denom    string     `json:"denom"`
	Accounts []string   `json:"accounts"`
	Amounts  []math.Int `json:"amounts"`
}

type MsgIncreaseClaimableAmountsResponse struct{}

type MsgDecreaseClaimableAmounts struct {
	Sender   string     `json:"sender"`
	Denom    string     `json:"denom"`
	Accounts []string   `json:"accounts"`
	Amounts  []math.Int `json:"amounts"`
}

type MsgDecreaseClaimableAmountsResponse struct{}

type MsgClaim struct {
	Sender   string   `json:"sender"`
	Receiver string   `json:"receiver"`
	Denoms   []string `json:"denoms"`
}

type MsgClaimResponse struct {
	Amounts sdk.Coins `json:"amounts"`
}

type MsgClaimForAccount struct {
	Sender   string   `json:"sender"`
	Account  string   `json:"account"`
	Receiver string   `json:"receiver"`
	Denoms   []string `json:"denoms"`
}

type MsgClaimForAccountResponse struct {
	Amounts sdk.Coins `json:"amounts"`
}
