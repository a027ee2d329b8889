package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

type RewardTrackerKeeper interface {
	Principal(ctx context.Context, trackerID string, addr sdk.AccAddress) (nsctypes.Principal, error)
	StakeForAccount(ctx context.Context, p nsctypes.Principal, trackerID string, funder, account sdk.AccAddress, denom string, amount math.Int) error
	UnstakeForAccount(ctx context.Context, p nsctypes.Principal, trackerID string, account sdk.AccAddress, denom string, amount math.Int, receiver sdk.AccAddress) error
	ClaimForAccount(ctx context.Context, p nsctypes.Principal, trackerID string, account, receiver sdk.AccAddress) (math.Int, error)
	MovePosition(ctx context.Context, p nsctypes.Principal, trackerID string, from, to sdk.AccAddress) error
	StakedAmount(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error)
	DepositBalance(ctx context.Context, trackerID string, addr sdk.AccAddress, denom string) (math.Int, error)
	IsFresh(ctx context.Context, trackerID string, addr sdk.AccAddress) (bool, error)
}

type VesterKeeper interface {
	Principal(ctx context.Context, id string, addr sdk.AccAddress) (nsctypes.Principal, error)
	ClaimForAccount(ctx context.Context, p nsctypes.Principal, id string, account, receiver sdk.AccAddress) (math.Int, error)
	BalanceOf(ctx context.Context, id string, account sdk.AccAddress) (math.Int, error)
	HasTransferHistory(ctx context.Context, id string, account sdk.AccAddress) (bool, error)
	TransferStakeValues(ctx context.Context, p nsctypes.Principal, id string, sender, receiver sdk.AccAddress) error
}
