package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		// the address that becomes the gov of every instance created through
		// MsgCreateTracker / MsgCreateDistributor. Typically, this should be
		// the x/gov module account.
		authority string

		bankK types.BankKeeper

		Schema collections.Schema

		// trackers maps (trackerID) => Tracker
		trackers collections.Map[string, types.Tracker]
		// distributors maps (distributorID) => Distributor
		distributors collections.Map[string, types.Distributor]
		// handlers is the set of (trackerID, handler) pairs
		handlers collections.KeySet[collections.Pair[string, sdk.AccAddress]]
		// totalDepositSupply maps (trackerID, denom) => staked amount of denom
		totalDepositSupply collections.Map[collections.Pair[string, string], math.Int]
		// stakeAccounts maps (trackerID, account) => StakeAccount
		stakeAccounts collections.Map[collections.Pair[string, sdk.AccAddress], types.StakeAccount]
		// depositBalances maps (trackerID, account, denom) => deposit balance
		depositBalances collections.Map[collections.Triple[string, sdk.AccAddress, string], math.Int]
		// receiptBalances maps (trackerID, account) => receipt token balance
		receiptBalances collections.Map[collections.Pair[string, sdk.AccAddress], math.Int]
		// allowances maps (trackerID, owner, spender) => receipt allowance
		allowances collections.Map[collections.Triple[string, sdk.AccAddress, sdk.AccAddress], math.Int]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	bankK types.BankKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,

		bankK: bankK,

		trackers: collections.NewMap(
			sb,
			types.TrackersKeyPrefix,
			"trackers",
			// key: (trackerID)
			collections.StringKey,
			nsctypes.JSONValue[types.Tracker](),
		),
		distributors: collections.NewMap(
			sb,
			types.DistributorsKeyPrefix,
			"distributors",
			// key: (distributorID)
			collections.StringKey,
			nsctypes.JSONValue[types.Distributor](),
		),
		handlers: collections.NewKeySet(
			sb,
			types.HandlersKeyPrefix,
			"handlers",
			// key: (trackerID, handler)
			collections.PairKeyCodec(collections.StringKey, sdk.AccAddressKey),
		),
		totalDepositSupply: collections.NewMap(
			sb,
			types.TotalDepositSupplyKeyPrefix,
			"total_deposit_supply",
			// key: (trackerID, denom)
			collections.PairKeyCodec(collections.StringKey, collections.StringKey),
			sdk.IntValue,
		),
		stakeAccounts: collections.NewMap(
			sb,
			types.StakeAccountsKeyPrefix,
			"stake_accounts",
			// key: (trackerID, account)
			collections.PairKeyCodec(collections.StringKey, sdk.AccAddressKey),
			nsctypes.JSONValue[types.StakeAccount](),
		),
		depositBalances: collections.NewMap(
			sb,
			types.DepositBalancesKeyPrefix,
			"deposit_balances",
			// key: (trackerID, account, denom)
			collections.TripleKeyCodec(collections.StringKey, sdk.AccAddressKey, collections.StringKey),
			sdk.IntValue,
		),
		receiptBalances: collections.NewMap(
			sb,
			types.ReceiptBalancesKeyPrefix,
			"receipt_balances",
			// key: (trackerID, account)
			collections.PairKeyCodec(collections.StringKey, sdk.AccAddressKey),
			sdk.IntValue,
		),
		allowances: collections.NewMap(
			sb,
			types.ReceiptAllowancesKeyPrefix,
			"receipt_allowances",
			// key: (trackerID, owner, spender)
			collections.TripleKeyCodec(collections.StringKey, sdk.AccAddressKey, sdk.AccAddressKey),
			sdk.IntValue,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
