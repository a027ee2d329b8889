package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func parseAddr(addr string) (sdk.AccAddress, error) {
	a, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return a, nil
}

func (ms msgServer) principal(ctx context.Context, vesterID, sender string) (nsctypes.Principal, error) {
	addr, err := parseAddr(sender)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return ms.Principal(ctx, vesterID, addr)
}

func (ms msgServer) CreateVester(goCtx context.Context, req *types.MsgCreateVester) (*types.MsgCreateVesterResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}
	if err := ms.Keeper.CreateVester(goCtx, req.Params); err != nil {
		return nil, err
	}
	return &types.MsgCreateVesterResponse{}, nil
}

func (ms msgServer) Deposit(goCtx context.Context, req *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Deposit(goCtx, p, req.VesterID, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{}, nil
}

func (ms msgServer) DepositForAccount(goCtx context.Context, req *types.MsgDepositForAccount) (*types.MsgDepositForAccountResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.DepositForAccount(goCtx, p, req.VesterID, account, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgDepositForAccountResponse{}, nil
}

func (ms msgServer) Claim(goCtx context.Context, req *types.MsgClaim) (*types.MsgClaimResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.Claim(goCtx, p, req.VesterID, receiver)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{Amount: amount}, nil
}

func (ms msgServer) ClaimForAccount(goCtx context.Context, req *types.MsgClaimForAccount) (*types.MsgClaimForAccountResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.ClaimForAccount(goCtx, p, req.VesterID, account, receiver)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimForAccountResponse{Amount: amount}, nil
}

func (ms msgServer) Withdraw(goCtx context.Context, req *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Withdraw(goCtx, p, req.VesterID); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{}, nil
}

func (ms msgServer) SetAccountValue(goCtx context.Context, req *types.MsgSetAccountValue) (*types.MsgSetAccountValueResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetAccountValue(goCtx, p, req.VesterID, req.Field, account, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgSetAccountValueResponse{}, nil
}

func (ms msgServer) TransferStakeValues(goCtx context.Context, req *types.MsgTransferStakeValues) (*types.MsgTransferStakeValuesResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	sender, err := parseAddr(req.AccountSender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.AccountReceiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.TransferStakeValues(goCtx, p, req.VesterID, sender, receiver); err != nil {
		return nil, err
	}
	return &types.MsgTransferStakeValuesResponse{}, nil
}

func (ms msgServer) SetHandler(goCtx context.Context, req *types.MsgSetHandler) (*types.MsgSetHandlerResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	handler, err := parseAddr(req.Handler)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetHandler(goCtx, p, req.VesterID, handler, req.IsActive); err != nil {
		return nil, err
	}
	return &types.MsgSetHandlerResponse{}, nil
}

func (ms msgServer) SetGov(goCtx context.Context, req *types.MsgSetGov) (*types.MsgSetGovResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	gov, err := parseAddr(req.NewGov)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetGov(goCtx, p, req.VesterID, gov); err != nil {
		return nil, err
	}
	return &types.MsgSetGovResponse{}, nil
}

func (ms msgServer) SetHasMaxVestableAmount(goCtx context.Context, req *types.MsgSetHasMaxVestableAmount) (*types.MsgSetHasMaxVestableAmountResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetHasMaxVestableAmount(goCtx, p, req.VesterID, req.Enabled); err != nil {
		return nil, err
	}
	return &types.MsgSetHasMaxVestableAmountResponse{}, nil
}

func (ms msgServer) WithdrawToken(goCtx context.Context, req *types.MsgWithdrawToken) (*types.MsgWithdrawTokenResponse, error) {
	p, err := ms.principal(goCtx, req.VesterID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.WithdrawToken(goCtx, p, req.VesterID, req.Denom, receiver, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawTokenResponse{}, nil
}
