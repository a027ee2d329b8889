package types

import (
	"cosmossdk.io/math"
)

type MsgSetRoute struct {
	Authority string `json:"authority"`
	Route     Route  `json:"route"`
}

type MsgSetRouteResponse struct{}

type MsgStakeNsc struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgStakeNscResponse struct{}

// MsgStakeNscForAccount stakes the sender's NSC into the position of
// Account. Governance only.
type MsgStakeNscForAccount struct {
	Sender  string   `json:"sender"`
	Account string   `json:"account"`
	Amount  math.Int `json:"amount"`
}

type MsgStakeNscForAccountResponse struct{}

type MsgStakeEsNsc struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgStakeEsNscResponse struct{}

type MsgUnstakeNsc struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgUnstakeNscResponse struct{}

type MsgUnstakeEsNsc struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgUnstakeEsNscResponse struct{}

type MsgStakeNlp struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgStakeNlpResponse struct{}

type MsgUnstakeNlp struct {
	Sender string   `json:"sender"`
	Amount math.Int `json:"amount"`
}

type MsgUnstakeNlpResponse struct{}

type MsgClaim struct {
	Sender string `json:"sender"`
}

type MsgClaimResponse struct {
	Fees  math.Int `json:"fees"`
	EsNsc math.Int `json:"es_nsc"`
}

type MsgClaimEsNsc struct {
	Sender string `json:"sender"`
}

type MsgClaimEsNscResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgClaimFees struct {
	Sender string `json:"sender"`
}

type MsgClaimFeesResponse struct {
	Amount math.Int `json:"amount"`
}

type MsgCompound struct {
	Sender string `json:"sender"`
}

type MsgCompoundResponse struct{}

type MsgCompoundForAccount struct {
	Sender  string `json:"sender"`
	Account string `json:"account"`
}

type MsgCompoundForAccountResponse struct{}

type MsgBatchCompoundForAccounts struct {
	Sender   string   `json:"sender"`
	Accounts []string `json:"accounts"`
}

type MsgBatchCompoundForAccountsResponse struct{}

type MsgHandleRewards struct {
	Sender  string               `json:"sender"`
	Options HandleRewardsOptions `json:"options"`
}

type MsgHandleRewardsResponse struct {
	Result HandleRewardsResult `json:"result"`
}

// MsgSignalTransfer announces that Sender wants to move its whole staking
// position to Receiver.
type MsgSignalTransfer struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

type MsgSignalTransferResponse struct{}

// MsgAcceptTransfer is sent by the signalled receiver.
type MsgAcceptTransfer struct {
	Receiver string `json:"receiver"`
	Sender   string `json:"sender"`
}

type MsgAcceptTransferResponse struct{}

// MsgApproveStakedNlp lets Spender move up to Amount of the sender's staked
// NLP. A later approval replaces an earlier one.
type MsgApproveStakedNlp struct {
	Sender  string   `json:"sender"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

type MsgApproveStakedNlpResponse struct{}

// MsgTransferStakedNlp moves Amount of the sender's staked NLP position to
// Recipient.
type MsgTransferStakedNlp struct {
	Sender    string   `json:"sender"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgTransferStakedNlpResponse struct{}

// MsgTransferStakedNlpFrom moves Amount of Owner's staked NLP position to
// Recipient, spending the allowance Owner gave the sender.
type MsgTransferStakedNlpFrom struct {
	Sender    string   `json:"sender"`
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

type MsgTransferStakedNlpFromResponse struct{}
