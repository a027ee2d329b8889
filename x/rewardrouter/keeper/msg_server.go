package keeper

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
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

func (ms msgServer) principal(sender string) (nsctypes.Principal, error) {
	addr, err := parseAddr(sender)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return ms.Principal(addr), nil
}

func (ms msgServer) SetRoute(goCtx context.Context, req *types.MsgSetRoute) (*types.MsgSetRouteResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}
	p, err := ms.principal(req.Authority)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetRoute(goCtx, p, req.Route); err != nil {
		return nil, err
	}
	return &types.MsgSetRouteResponse{}, nil
}

func (ms msgServer) StakeNsc(goCtx context.Context, req *types.MsgStakeNsc) (*types.MsgStakeNscResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStakeNsc)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.StakeNsc(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeNscResponse{}, nil
}

func (ms msgServer) StakeNscForAccount(goCtx context.Context, req *types.MsgStakeNscForAccount) (*types.MsgStakeNscForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStakeNsc)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.StakeNscForAccount(goCtx, p, account, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeNscForAccountResponse{}, nil
}

func (ms msgServer) StakeEsNsc(goCtx context.Context, req *types.MsgStakeEsNsc) (*types.MsgStakeEsNscResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStakeNsc)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.StakeEsNsc(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeEsNscResponse{}, nil
}

func (ms msgServer) UnstakeNsc(goCtx context.Context, req *types.MsgUnstakeNsc) (*types.MsgUnstakeNscResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyUnstakeNsc)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.UnstakeNsc(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeNscResponse{}, nil
}

func (ms msgServer) UnstakeEsNsc(goCtx context.Context, req *types.MsgUnstakeEsNsc) (*types.MsgUnstakeEsNscResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyUnstakeNsc)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.UnstakeEsNsc(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeEsNscResponse{}, nil
}

func (ms msgServer) StakeNlp(goCtx context.Context, req *types.MsgStakeNlp) (*types.MsgStakeNlpResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStakeNlp)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.StakeNlp(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeNlpResponse{}, nil
}

func (ms msgServer) UnstakeNlp(goCtx context.Context, req *types.MsgUnstakeNlp) (*types.MsgUnstakeNlpResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyUnstakeNlp)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.UnstakeNlp(goCtx, p, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeNlpResponse{}, nil
}

func (ms msgServer) Claim(goCtx context.Context, req *types.MsgClaim) (*types.MsgClaimResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	fees, esNsc, err := ms.Keeper.Claim(goCtx, p)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{Fees: fees, EsNsc: esNsc}, nil
}

func (ms msgServer) ClaimEsNsc(goCtx context.Context, req *types.MsgClaimEsNsc) (*types.MsgClaimEsNscResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.ClaimEsNsc(goCtx, p)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimEsNscResponse{Amount: amount}, nil
}

func (ms msgServer) ClaimFees(goCtx context.Context, req *types.MsgClaimFees) (*types.MsgClaimFeesResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.ClaimFees(goCtx, p)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimFeesResponse{Amount: amount}, nil
}

func (ms msgServer) Compound(goCtx context.Context, req *types.MsgCompound) (*types.MsgCompoundResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyCompound)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Compound(goCtx, p); err != nil {
		return nil, err
	}
	return &types.MsgCompoundResponse{}, nil
}

func (ms msgServer) CompoundForAccount(goCtx context.Context, req *types.MsgCompoundForAccount) (*types.MsgCompoundForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyCompound)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.CompoundForAccount(goCtx, p, account); err != nil {
		return nil, err
	}
	return &types.MsgCompoundForAccountResponse{}, nil
}

func (ms msgServer) BatchCompoundForAccounts(goCtx context.Context, req *types.MsgBatchCompoundForAccounts) (*types.MsgBatchCompoundForAccountsResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyCompound)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	accounts := make([]sdk.AccAddress, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		account, err := parseAddr(a)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	if err := ms.Keeper.BatchCompoundForAccounts(goCtx, p, accounts); err != nil {
		return nil, err
	}
	return &types.MsgBatchCompoundForAccountsResponse{}, nil
}

func (ms msgServer) HandleRewards(goCtx context.Context, req *types.MsgHandleRewards) (*types.MsgHandleRewardsResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyHandleRewards)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	res, err := ms.Keeper.HandleRewards(goCtx, p, req.Options)
	if err != nil {
		return nil, err
	}
	return &types.MsgHandleRewardsResponse{Result: res}, nil
}

func (ms msgServer) SignalTransfer(goCtx context.Context, req *types.MsgSignalTransfer) (*types.MsgSignalTransferResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeySignalTransfer)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SignalTransfer(goCtx, p, receiver); err != nil {
		return nil, err
	}
	return &types.MsgSignalTransferResponse{}, nil
}

func (ms msgServer) AcceptTransfer(goCtx context.Context, req *types.MsgAcceptTransfer) (*types.MsgAcceptTransferResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyAcceptTransfer)

	p, err := ms.principal(req.Receiver)
	if err != nil {
		return nil, err
	}
	sender, err := parseAddr(req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.AcceptTransfer(goCtx, p, sender); err != nil {
		return nil, err
	}
	return &types.MsgAcceptTransferResponse{}, nil
}

func (ms msgServer) ApproveStakedNlp(goCtx context.Context, req *types.MsgApproveStakedNlp) (*types.MsgApproveStakedNlpResponse, error) {
	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	spender, err := parseAddr(req.Spender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.ApproveStakedNlp(goCtx, p, spender, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgApproveStakedNlpResponse{}, nil
}

func (ms msgServer) TransferStakedNlp(goCtx context.Context, req *types.MsgTransferStakedNlp) (*types.MsgTransferStakedNlpResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyTransferNlp)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddr(req.Recipient)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.TransferStakedNlp(goCtx, p, recipient, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferStakedNlpResponse{}, nil
}

func (ms msgServer) TransferStakedNlpFrom(goCtx context.Context, req *types.MsgTransferStakedNlpFrom) (*types.MsgTransferStakedNlpFromResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyTransferNlp)

	p, err := ms.principal(req.Sender)
	if err != nil {
		return nil, err
	}
	owner, err := parseAddr(req.Owner)
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddr(req.Recipient)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.TransferStakedNlpFrom(goCtx, p, owner, recipient, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferStakedNlpFromResponse{}, nil
}
