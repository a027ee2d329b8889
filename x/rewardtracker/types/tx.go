package types

import (
	"context"
)

// MsgServer is the server API for the rewardtracker messages.
type MsgServer interface {
	CreateTracker(context.Context, *MsgCreateTracker) (*MsgCreateTrackerResponse, error)
	CreateDistributor(context.Context, *MsgCreateDistributor) (*MsgCreateDistributorResponse, error)
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)

	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	StakeForAccount(context.Context, *MsgStakeForAccount) (*MsgStakeForAccountResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
	UnstakeForAccount(context.Context, *MsgUnstakeForAccount) (*MsgUnstakeForAccountResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ClaimForAccount(context.Context, *MsgClaimForAccount) (*MsgClaimForAccountResponse, error)

	Transfer(context.Context, *MsgTransfer) (*MsgTransferResponse, error)
	Approve(context.Context, *MsgApprove) (*MsgApproveResponse, error)
	TransferFrom(context.Context, *MsgTransferFrom) (*MsgTransferFromResponse, error)

	SetTrackerGov(context.Context, *MsgSetTrackerGov) (*MsgSetTrackerGovResponse, error)
	SetDepositToken(context.Context, *MsgSetDepositToken) (*MsgSetDepositTokenResponse, error)
	SetPrivateMode(context.Context, *MsgSetPrivateMode) (*MsgSetPrivateModeResponse, error)
	SetHandler(context.Context, *MsgSetHandler) (*MsgSetHandlerResponse, error)
	WithdrawToken(context.Context, *MsgWithdrawToken) (*MsgWithdrawTokenResponse, error)

	UpdateLastDistributionTime(context.Context, *MsgUpdateLastDistributionTime) (*MsgUpdateLastDistributionTimeResponse, error)
	SetTokensPerInterval(context.Context, *MsgSetTokensPerInterval) (*MsgSetTokensPerIntervalResponse, error)
	SetBonusMultiplier(context.Context, *MsgSetBonusMultiplier) (*MsgSetBonusMultiplierResponse, error)
	SetDistributorGov(context.Context, *MsgSetDistributorGov) (*MsgSetDistributorGovResponse, error)
	WithdrawDistributorToken(context.Context, *MsgWithdrawDistributorToken) (*MsgWithdrawDistributorTokenResponse, error)
}
