package types

import (
	"context"
)

// MsgServer is the server API for the vester messages.
type MsgServer interface {
	CreateVester(context.Context, *MsgCreateVester) (*MsgCreateVesterResponse, error)

	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	DepositForAccount(context.Context, *MsgDepositForAccount) (*MsgDepositForAccountResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	ClaimForAccount(context.Context, *MsgClaimForAccount) (*MsgClaimForAccountResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)

	SetAccountValue(context.Context, *MsgSetAccountValue) (*MsgSetAccountValueResponse, error)
	TransferStakeValues(context.Context, *MsgTransferStakeValues) (*MsgTransferStakeValuesResponse, error)

	SetHandler(context.Context, *MsgSetHandler) (*MsgSetHandlerResponse, error)
	SetGov(context.Context, *MsgSetGov) (*MsgSetGovResponse, error)
	SetHasMaxVestableAmount(context.Context, *MsgSetHasMaxVestableAmount) (*MsgSetHasMaxVestableAmountResponse, error)
	WithdrawToken(context.Context, *MsgWithdrawToken) (*MsgWithdrawTokenResponse, error)
}
