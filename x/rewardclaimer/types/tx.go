package types

import (
	"context"
)

// MsgServer is the server API for the rewardclaimer messages.
type MsgServer interface {
	SetGov(context.Context, *MsgSetGov) (*MsgSetGovResponse, error)
	SetClaimableToken(context.Context, *MsgSetClaimableToken) (*MsgSetClaimableTokenResponse, error)
	SetHandler(context.Context, *MsgSetHandler) (*MsgSetHandlerResponse, error)
	WithdrawToken(context.Context, *MsgWithdrawToken) (*MsgWithdrawTokenResponse, error)
	IncreaseClaimableAmounts(context.Context, *MsgIncreaseClaimableAmounts) (*MsgIncreaseClaimableAmountsResponse, error)
	DecreaseClaimableAmounts(context.Context, *MsgDecreaseClaimableAmounts) (*MsgDecreaseClaimableAmountsResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ClaimForAccount(context.Context, *MsgClaimForAccount) (*MsgClaimForAccountResponse, error)
}
