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
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
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

// trackerPrincipal resolves the signer of a message addressed to a tracker.
func (ms msgServer) trackerPrincipal(ctx context.Context, trackerID, sender string) (nsctypes.Principal, error) {
	addr, err := parseAddr(sender)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return ms.Principal(ctx, trackerID, addr)
}

func (ms msgServer) distributorPrincipal(ctx context.Context, distributorID, sender string) (nsctypes.Principal, error) {
	addr, err := parseAddr(sender)
	if err != nil {
		return nsctypes.Principal{}, err
	}
	return ms.DistributorPrincipal(ctx, distributorID, addr)
}

func (ms msgServer) CreateTracker(goCtx context.Context, req *types.MsgCreateTracker) (*types.MsgCreateTrackerResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}
	if err := ms.Keeper.CreateTracker(goCtx, req.TrackerID, req.Name, req.Symbol); err != nil {
		return nil, err
	}
	return &types.MsgCreateTrackerResponse{}, nil
}

func (ms msgServer) CreateDistributor(goCtx context.Context, req *types.MsgCreateDistributor) (*types.MsgCreateDistributorResponse, error) {
	if ms.authority != req.Authority {
		return nil, errorsmod.Wrapf(govtypes.ErrInvalidSigner, "invalid authority; expected %s, got %s", ms.authority, req.Authority)
	}
	if err := ms.Keeper.CreateDistributor(goCtx, req.DistributorID, req.Kind, req.RewardDenom, req.TrackerID); err != nil {
		return nil, err
	}
	return &types.MsgCreateDistributorResponse{}, nil
}

func (ms msgServer) Initialize(goCtx context.Context, req *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Initialize(goCtx, p, req.TrackerID, req.DepositDenoms, req.DistributorID); err != nil {
		return nil, err
	}
	return &types.MsgInitializeResponse{}, nil
}

func (ms msgServer) Stake(goCtx context.Context, req *types.MsgStake) (*types.MsgStakeResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStake)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Stake(goCtx, p, req.TrackerID, req.Denom, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{}, nil
}

func (ms msgServer) StakeForAccount(goCtx context.Context, req *types.MsgStakeForAccount) (*types.MsgStakeForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyStake)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	funder, err := parseAddr(req.Funder)
	if err != nil {
		return nil, err
	}
	account, err := parseAddr(req.Account)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.StakeForAccount(goCtx, p, req.TrackerID, funder, account, req.Denom, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgStakeForAccountResponse{}, nil
}

func (ms msgServer) Unstake(goCtx context.Context, req *types.MsgUnstake) (*types.MsgUnstakeResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyUnstake)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Unstake(goCtx, p, req.TrackerID, req.Denom, req.Amount, receiver); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeResponse{}, nil
}

func (ms msgServer) UnstakeForAccount(goCtx context.Context, req *types.MsgUnstakeForAccount) (*types.MsgUnstakeForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyUnstake)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
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
	if err := ms.Keeper.UnstakeForAccount(goCtx, p, req.TrackerID, account, req.Denom, req.Amount, receiver); err != nil {
		return nil, err
	}
	return &types.MsgUnstakeForAccountResponse{}, nil
}

func (ms msgServer) Claim(goCtx context.Context, req *types.MsgClaim) (*types.MsgClaimResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	amount, err := ms.Keeper.Claim(goCtx, p, req.TrackerID, receiver)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimResponse{Amount: amount}, nil
}

func (ms msgServer) ClaimForAccount(goCtx context.Context, req *types.MsgClaimForAccount) (*types.MsgClaimForAccountResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyClaim)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
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
	amount, err := ms.Keeper.ClaimForAccount(goCtx, p, req.TrackerID, account, receiver)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimForAccountResponse{Amount: amount}, nil
}

func (ms msgServer) Transfer(goCtx context.Context, req *types.MsgTransfer) (*types.MsgTransferResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyTransfer)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	recipient, err := parseAddr(req.Recipient)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Transfer(goCtx, p, req.TrackerID, recipient, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferResponse{}, nil
}

func (ms msgServer) Approve(goCtx context.Context, req *types.MsgApprove) (*types.MsgApproveResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	spender, err := parseAddr(req.Spender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.Approve(goCtx, p, req.TrackerID, spender, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgApproveResponse{}, nil
}

func (ms msgServer) TransferFrom(goCtx context.Context, req *types.MsgTransferFrom) (*types.MsgTransferFromResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyTransfer)

	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
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
	if err := ms.Keeper.TransferFrom(goCtx, p, req.TrackerID, owner, recipient, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgTransferFromResponse{}, nil
}

func (ms msgServer) SetTrackerGov(goCtx context.Context, req *types.MsgSetTrackerGov) (*types.MsgSetTrackerGovResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	gov, err := parseAddr(req.NewGov)
	if err != nil {
		return nil, err
	}
	if err := ms.SetGov(goCtx, p, req.TrackerID, gov); err != nil {
		return nil, err
	}
	return &types.MsgSetTrackerGovResponse{}, nil
}

func (ms msgServer) SetDepositToken(goCtx context.Context, req *types.MsgSetDepositToken) (*types.MsgSetDepositTokenResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetDepositToken(goCtx, p, req.TrackerID, req.Denom, req.IsDepositToken); err != nil {
		return nil, err
	}
	return &types.MsgSetDepositTokenResponse{}, nil
}

func (ms msgServer) SetPrivateMode(goCtx context.Context, req *types.MsgSetPrivateMode) (*types.MsgSetPrivateModeResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.setPrivateMode(goCtx, p, req.TrackerID, req.Mode, req.Enabled); err != nil {
		return nil, err
	}
	return &types.MsgSetPrivateModeResponse{}, nil
}

func (ms msgServer) SetHandler(goCtx context.Context, req *types.MsgSetHandler) (*types.MsgSetHandlerResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	handler, err := parseAddr(req.Handler)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetHandler(goCtx, p, req.TrackerID, handler, req.IsActive); err != nil {
		return nil, err
	}
	return &types.MsgSetHandlerResponse{}, nil
}

func (ms msgServer) WithdrawToken(goCtx context.Context, req *types.MsgWithdrawToken) (*types.MsgWithdrawTokenResponse, error) {
	p, err := ms.trackerPrincipal(goCtx, req.TrackerID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.WithdrawToken(goCtx, p, req.TrackerID, req.Denom, receiver, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawTokenResponse{}, nil
}

func (ms msgServer) UpdateLastDistributionTime(goCtx context.Context, req *types.MsgUpdateLastDistributionTime) (*types.MsgUpdateLastDistributionTimeResponse, error) {
	p, err := ms.distributorPrincipal(goCtx, req.DistributorID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.UpdateLastDistributionTime(goCtx, p, req.DistributorID); err != nil {
		return nil, err
	}
	return &types.MsgUpdateLastDistributionTimeResponse{}, nil
}

func (ms msgServer) SetTokensPerInterval(goCtx context.Context, req *types.MsgSetTokensPerInterval) (*types.MsgSetTokensPerIntervalResponse, error) {
	p, err := ms.distributorPrincipal(goCtx, req.DistributorID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetTokensPerInterval(goCtx, p, req.DistributorID, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgSetTokensPerIntervalResponse{}, nil
}

func (ms msgServer) SetBonusMultiplier(goCtx context.Context, req *types.MsgSetBonusMultiplier) (*types.MsgSetBonusMultiplierResponse, error) {
	p, err := ms.distributorPrincipal(goCtx, req.DistributorID, req.Sender)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetBonusMultiplier(goCtx, p, req.DistributorID, req.BasisPoints); err != nil {
		return nil, err
	}
	return &types.MsgSetBonusMultiplierResponse{}, nil
}

func (ms msgServer) SetDistributorGov(goCtx context.Context, req *types.MsgSetDistributorGov) (*types.MsgSetDistributorGovResponse, error) {
	p, err := ms.distributorPrincipal(goCtx, req.DistributorID, req.Sender)
	if err != nil {
		return nil, err
	}
	gov, err := parseAddr(req.NewGov)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.SetDistributorGov(goCtx, p, req.DistributorID, gov); err != nil {
		return nil, err
	}
	return &types.MsgSetDistributorGovResponse{}, nil
}

func (ms msgServer) WithdrawDistributorToken(goCtx context.Context, req *types.MsgWithdrawDistributorToken) (*types.MsgWithdrawDistributorTokenResponse, error) {
	p, err := ms.distributorPrincipal(goCtx, req.DistributorID, req.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := parseAddr(req.Receiver)
	if err != nil {
		return nil, err
	}
	if err := ms.Keeper.WithdrawDistributorToken(goCtx, p, req.DistributorID, req.Denom, receiver, req.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawDistributorTokenResponse{}, nil
}
