package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
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

func parseAddrs(addrs []string) ([]sdk.AccAddress, error) {
	out := make([]sdk.AccAddress, 0, len(addrs))
	for _, a := range addrs {
		addr, err := parseAddr(a)
		if err != nil {
			return nil, err
		}
		out = append(out, addr)
	}
	return out, nil
}

func (ms msgServer) principal(ctx context.Context, sender string) (nsctypes.Principal, error) {
	addr, err := parseAddr(sender)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return ms.Principal(ctx, addr)
}

func (ms msgServer) SetGov(goCtx context.Context, req *types.MsgSetGov) (*types.MsgSetGovResponse, error) {
	p, err := ms.principal(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	gov, err := parseAddr(req.NewGov)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetGov(goCtx, p, gov); err != nil {
		return nil, err
	}
	return &types.MsgSetGovResponse{}, nil
}

func (ms msgServer) SetClaimableToken(goCtx context.Context, req *types.MsgSetClaimableToken) (*types.MsgSetClaimableTokenResponse, error) {
	p, err := ms.principal(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetClaimableToken(goCtx, p, req.Denom, req.IsClaimable); err != nil {
		return nil, err
	}
	return &types.MsgSetClaimableTokenResponse{}, nil
}

func (ms msgServer) SetHandler(goCtx context.Context, req *types.MsgSetHandler) (*types.MsgSetHandlerResponse, error) {
	p, err := ms.principal(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	handler, err := parseAddr(req.Handler)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetHandler(goCtx, p, handler, req.IsActive); err != nil {
		return nil, err
	}
	return &types.MsgSetHandlerResponse{}, nil
}

func (ms msgServer) WithdrawToken(goCtx context.Context, req *types.MsgWithdrawToken) (*types.MsgWithdrawTokenResponse, error) {
	p, err := ms.principal(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.WithdrawToken(goCtx, p, req.Denom, receiver, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawTokenResponse{}, nil
}

func (ms msgServer) batch(goCtx context.Context, sender string, accounts []string, amounts []math.Int) (nsctypes.Principal, []sdk.AccAddress, error) {
	if len(accounts) != len(amounts) {
		return nsctypes.Principal{}, nil, types.ErrInvalidParam.Wrapf("%d accounts but %d amounts", len(accounts), len(amounts))
	}
	p, err := ms.principal(goCtx, sender)
	if err != nil {
		return p, nil, err
	}
	addrs, err := parseAddrs(accounts)
	return p, addrs, err
}

func (ms msgServer) IncreaseClaimableAmounts(goCtx context.Context, req *types.MsgIncreaseClaimableAmounts) (*types.MsgIncreaseClaimableAmountsResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyIncreaseClaimable)

	p, accounts, err := ms.batch(goCtx, req.Sender, req.Accounts, req.Amounts)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.IncreaseClaimableAmounts(goCtx, p, req.Denom, accounts, req.Amounts); err != nil {
		return nil, err
	}
	return &types.MsgIncreaseClaimableAmountsResponse{}, nil
}

func (ms msgServer) DecreaseClaimableAmounts(goCtx context.Context, req *types.MsgDecreaseClaimableAmounts) (*types.MsgDecreaseClaimableAmountsResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyDecreaseClaimable)

	p, accounts, err := ms.batch(goCtx, req.Sender, req.Accounts, req.Amounts)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.DecreaseClaimableAmounts(goCtx, p, req.Denom, accounts, req.Amounts); err != nil {
		return nil, err
	}
	return &types.MsgDecreaseClaimableAmountsResponse{}, nil
}

func (ms msgServer) Claim(goCtx context.Context, req *types.MsgClaim) (*types.MsgClaimResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.principal(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	paid, err := ms.Keeper.Claim(goCtx, p, receiver, req.Denoms)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{Amounts: paid}, nil
}

func (ms msgServer) ClaimForAccount(goCtx context.Context, req *types.MsgClaimForAccount) (*types.MsgClaimForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.principal(goCtx, req.Sender)
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
	paid, err := ms.Keeper.ClaimForAccount(goCtx, p, account, receiver, req.Denoms)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimForAccountResponse{Amounts: paid}, nil
}
