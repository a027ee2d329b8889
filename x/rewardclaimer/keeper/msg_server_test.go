package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	appparams "github.com/nsc-protocol/nsc/app/params"
	testkeeper "github.com/nsc-protocol/nsc/testutil/keeper"
	"github.com/nsc-protocol/nsc/testutil/sample"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/keeper"
	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

func TestMsgServerClaimFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	k, ctx := testkeeper.RewardClaimerKeeper(t, bankK)
	ms := keeper.NewMsgServerImpl(*k)

	gov := appparams.AccGov.String()
	handler, user, receiver := sample.AccAddress(), sample.AccAddress(), sample.AccAddress()
	denom := appparams.EsNscDenom

	_, err := ms.SetClaimableToken(ctx, &types.MsgSetClaimableToken{Sender: "bad", Denom: denom, IsClaimable: true})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = ms.SetClaimableToken(ctx, &types.MsgSetClaimableToken{Sender: gov, Denom: denom, IsClaimable: true})
	require.NoError(t, err)
	_, err = ms.SetHandler(ctx, &types.MsgSetHandler{Sender: gov, Handler: handler.String(), IsActive: true})
	require.NoError(t, err)

	// the length check precedes address parsing and authorization
	_, err = ms.IncreaseClaimableAmounts(ctx, &types.MsgIncreaseClaimableAmounts{
		Sender:   "bad",
		Denom:    denom,
		Accounts: []string{user.String()},
	})
	require.ErrorIs(t, err, types.ErrInvalidParam)

	_, err = ms.IncreaseClaimableAmounts(ctx, &types.MsgIncreaseClaimableAmounts{
		Sender:   handler.String(),
		Denom:    denom,
		Accounts: []string{user.String()},
		Amounts:  []math.Int{math.NewInt(7)},
	})
	require.NoError(t, err)

	bankK.EXPECT().GetBalance(gomock.Any(), types.ClaimerAddress(), denom).Return(sdk.NewInt64Coin(denom, 10))
	withdrawable, err := k.WithdrawableAmount(ctx, denom)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), withdrawable)

	coins := sdk.NewCoins(sdk.NewInt64Coin(denom, 7))
	bankK.EXPECT().SendCoins(gomock.Any(), types.ClaimerAddress(), receiver, coins).Return(errors.New("bank halted"))
	_, err = ms.Claim(ctx, &types.MsgClaim{Sender: user.String(), Receiver: receiver.String(), Denoms: []string{denom}})
	require.EqualError(t, err, "bank halted")

	bankK.EXPECT().SendCoins(gomock.Any(), types.ClaimerAddress(), receiver, coins).Return(nil)
	_, err = ms.ClaimForAccount(ctx, &types.MsgClaimForAccount{
		Sender:   user.String(),
		Account:  user.String(),
		Receiver: receiver.String(),
		Denoms:   []string{denom},
	})
	require.ErrorIs(t, err, types.ErrForbidden)
	resp, err := ms.ClaimForAccount(ctx, &types.MsgClaimForAccount{
		Sender:   handler.String(),
		Account:  user.String(),
		Receiver: receiver.String(),
		Denoms:   []string{denom},
	})
	require.NoError(t, err)
	require.Equal(t, coins, resp.Amounts)
}

func TestMsgServerGovOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	k, ctx := testkeeper.RewardClaimerKeeper(t, bankK)
	ms := keeper.NewMsgServerImpl(*k)

	gov := appparams.AccGov.String()
	user, receiver := sample.AccAddress(), sample.AccAddress()

	_, err := ms.WithdrawToken(ctx, &types.MsgWithdrawToken{
		Sender:   user.String(),
		Denom:    appparams.NscDenom,
		Receiver: receiver.String(),
		Amount:   math.NewInt(1),
	})
	require.ErrorIs(t, err, types.ErrForbidden)

	bankK.EXPECT().SendCoins(gomock.Any(), types.ClaimerAddress(), receiver, sdk.NewCoins(sdk.NewInt64Coin(appparams.NscDenom, 1))).Return(nil)
	_, err = ms.WithdrawToken(ctx, &types.MsgWithdrawToken{
		Sender:   gov,
		Denom:    appparams.NscDenom,
		Receiver: receiver.String(),
		Amount:   math.NewInt(1),
	})
	require.NoError(t, err)

	_, err = ms.SetGov(ctx, &types.MsgSetGov{Sender: gov, NewGov: "bad"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = ms.SetGov(ctx, &types.MsgSetGov{Sender: gov, NewGov: user.String()})
	require.NoError(t, err)
	_, err = ms.SetHandler(ctx, &types.MsgSetHandler{Sender: gov, Handler: receiver.String(), IsActive: true})
	require.ErrorIs(t, err, types.ErrForbidden)
}
