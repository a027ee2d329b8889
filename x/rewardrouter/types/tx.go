package types

import (
	"context"
)

// MsgServer is the server API for the rewardrouter messages.
type MsgServer interface {
	SetRoute(context.Context, *MsgSetRoute) (*MsgSetRouteResponse, error)
	StakeNsc(context.Context, *MsgStakeNsc) (*MsgStakeNscResponse, error)
	StakeNscForAccount(context.Context, *MsgStakeNscForAccount) (*MsgStakeNscForAccountResponse, error)
	StakeEsNsc(context.Context, *MsgStakeEsNsc) (*MsgStakeEsNscResponse, error)
	UnstakeNsc(context.Context, *MsgUnstakeNsc) (*MsgUnstakeNscResponse, error)
	UnstakeEsNsc(context.Context, *MsgUnstakeEsNsc) (*MsgUnstakeEsNscResponse, error)
	StakeNlp(context.Context, *MsgStakeNlp) (*MsgStakeNlpResponse, error)
	UnstakeNlp(context.Context, *MsgUnstakeNlp) (*MsgUnstakeNlpResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ClaimEsNsc(context.Context, *MsgClaimEsNsc) (*MsgClaimEsNscResponse, error)
	ClaimFees(context.Context, *MsgClaimFees) (*MsgClaimFeesResponse, error)
	Compound(context.Context, *MsgCompound) (*MsgCompoundResponse, error)
	CompoundForAccount(context.Context, *MsgCompoundForAccount) (*MsgCompoundForAccountResponse, error)
	BatchCompoundForAccounts(context.Context, *MsgBatchCompoundForAccounts) (*MsgBatchCompoundForAccountsResponse, error)
	HandleRewards(context.Context, *MsgHandleRewards) (*MsgHandleRewardsResponse, error)
	SignalTransfer(context.Context, *MsgSignalTransfer) (*MsgSignalTransferResponse, error)
	AcceptTransfer(context.Context, *MsgAcceptTransfer) (*MsgAcceptTransferResponse, error)
	ApproveStakedNlp(context.Context, *MsgApproveStakedNlp) (*MsgApproveStakedNlpResponse, error)
	TransferStakedNlp(context.Context, *MsgTransferStakedNlp) (*MsgTransferStakedNlpResponse, error)
	TransferStakedNlpFrom(context.Context, *MsgTransferStakedNlpFrom) (*MsgTransferStakedNlpFromResponse, error)
}
