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

// RewardTrackerKeeper exposes the tracker reward history used for the
// vesting cap and the receipt ledger used for pair collateral.
type RewardTrackerKeeper interface {
	Principal(ctx context.Context, trackerID string, addr sdk.AccAddress) (nsctypes.Principal, error)
	Transfer(ctx context.Context, p nsctypes.Principal, trackerID string, recipient sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, p nsctypes.Principal, trackerID string, owner, recipient sdk.AccAddress, amount math.Int) error
	ReceiptBalance(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error)
	CumulativeReward(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error)
	AverageStakedAmount(ctx context.Context, trackerID string, addr sdk.AccAddress) (math.Int, error)
}
