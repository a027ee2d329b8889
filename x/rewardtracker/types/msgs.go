package types

import (
	"cosmossdk.io/math"
)

// Messages of the module. Every message carries the bech32 address of its
// signer in Sender (or Authority for instance creation); the message server
// resolves it into a Principal for the addressed instance.

type MsgCreateTracker struct {
	Authority string `json:"authority"`
	TrackerID string `json:"tracker_id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
}

type MsgCreateTrackerResponse struct{}

type MsgCreateDistributor struct {
	Authority     string          `json:"authority"`
	DistributorID string          `json:"distributor_id"`
	Kind          DistributorKind `json:"kind"`
	RewardDenom   string          `json:"reward_denom"`
	TrackerID     string          `json:"tracker_id"`
}

type MsgCreateDistributorResponse struct{}

type MsgInitialize struct {
	Sender        string   `json:"sender"`
	TrackerID     string   `json:"tracker_id"`
	DepositDenoms []string `json:"deposit_denoms"`
	DistributorID string   `json:"distributor_id"`
}

type MsgInitializeResponse struct{}

type MsgStake struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

type MsgStakeResponse struct{}

type MsgStakeForAccount struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Funder    string   `json:"funder"`
	Account   string   `json:"account"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

type MsgStakeForAccountResponse struct{}

type MsgUnstake struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
	Receiver  string   `json:"receiver"`
}

type MsgUnstakeResponse struct{}

type MsgUnstakeForAccount struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Account   string   `json:"account"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
	Receiver  string   `json:"receiver"`
}

type MsgUnstakeForAccountResponse struct{}

type MsgClaim struct {
	Sender    string `json:"sender"`
	TrackerID string `json:"tracker_id"`
	Receiver  string `json:"receiver"`
}

type MsgClaimResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgClaimForAccount struct {
	Sender    string `json:"sender"`
	TrackerID string `json:"tracker_id"`
	Account   string `json:"account"`
	Receiver  string `json:"receiver"`
}

type MsgClaimForAccountResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgTransfer struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgTransferResponse struct{}

type MsgApprove struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Spender   string   `json:"spender"`
	Amount    math.Int `json:"amount"`
}

type MsgApproveResponse struct{}

type MsgTransferFrom struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgTransferFromResponse struct{}

type MsgSetTrackerGov struct {
	Sender    string `json:"sender"`
	TrackerID string `json:"tracker_id"`
	NewGov    string `json:"new_gov"`
}

type MsgSetTrackerGovResponse struct{}

type MsgSetDepositToken struct {
	Sender         string `json:"sender"`
	TrackerID      string `json:"tracker_id"`
	Denom          string `json:"denom"`
	IsDepositToken bool   `json:"is_deposit_token"`
}

type MsgSetDepositTokenResponse struct{}

type PrivateMode string

const (
	PrivateModeTransfer PrivateMode = "transfer"
	PrivateModeStaking  PrivateMode = "staking"
	PrivateModeClaiming PrivateMode = "claiming"
)

type MsgSetPrivateMode struct {
	Sender    string      `json:"sender"`
	TrackerID string      `json:"tracker_id"`
	Mode      PrivateMode `json:"mode"`
	Enabled   bool        `json:"enabled"`
}

type MsgSetPrivateModeResponse struct{}

type MsgSetHandler struct {
	Sender    string `json:"sender"`
	TrackerID string `json:"tracker_id"`
	Handler   string `json:"handler"`
	IsActive  bool   `json:"is_active"`
}

type MsgSetHandlerResponse struct{}

type MsgWithdrawToken struct {
	Sender    string   `json:"sender"`
	TrackerID string   `json:"tracker_id"`
	Denom     string   `json:"denom"`
	Receiver  string   `json:"receiver"`
	Amount    math.Int `json:"amount"`
}

type MsgWithdrawTokenResponse struct{}

type MsgUpdateLastDistributionTime struct {
	Sender        string `json:"sender"`
	DistributorID string `json:"distributor_id"`
}

type MsgUpdateLastDistributionTimeResponse struct{}

type MsgSetTokensPerInterval struct {
	Sender        string   `json:"sender"`
	DistributorID string   `json:"distributor_id"`
	Amount        math.Int `json:"amount"`
}

type MsgSetTokensPerIntervalResponse struct{}

type MsgSetBonusMultiplier struct {
	Sender        string   `json:"sender"`
	DistributorID string   `json:"distributor_id"`
	BasisPoints   math.Int `json:"basis_points"`
}

type MsgSetBonusMultiplierResponse struct{}

type MsgSetDistributorGov struct {
	Sender        string `json:"sender"`
	DistributorID string `json:"distributor_id"`
	NewGov        string `json:"new_gov"`
}

type MsgSetDistributorGovResponse struct{}

type MsgWithdrawDistributorToken struct {
	Sender        string   `json:"sender"`
	DistributorID string   `json:"distributor_id"`
	Denom         string   `json:"denom"`
	Receiver      string   `json:"receiver"`
	Amount        math.Int `json:"amount"`
}

type MsgWithdrawDistributorTokenResponse struct{}
