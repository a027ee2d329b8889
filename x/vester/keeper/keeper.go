package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		// the address that becomes the gov of every vester created through
		// MsgCreateVester
		authority string

		bankK    types.BankKeeper
		trackerK types.RewardTrackerKeeper

		Schema collections.Schema

		// vesters maps (vesterID) => Vester
		vesters collections.Map[string, types.Vester]
		// handlers is the set of (vesterID, handler) pairs
		handlers collections.KeySet[collections.Pair[string, sdk.AccAddress]]
		// accounts maps (vesterID, account) => VestingAccount
		accounts collections.Map[collections.Pair[string, sdk.AccAddress], types.VestingAccount]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	bankK types.BankKeeper,
	trackerK types.RewardTrackerKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,

		bankK:    bankK,
		trackerK: trackerK,

		vesters: collections.NewMap(
			sb,
			types.VestersKeyPrefix,
			"vesters",
			collections.StringKey,
			nsctypes.JSONValue[types.Vester](),
		),
		handlers: collections.NewKeySet(
			sb,
			types.HandlersKeyPrefix,
			"handlers",
			collections.PairKeyCodec(collections.StringKey, sdk.AccAddressKey),
		),
		accounts: collections.NewMap(
			sb,
			types.VestingAccountsKeyPrefix,
			"vesting_accounts",
			collections.PairKeyCodec(collections.StringKey, sdk.AccAddressKey),
			nsctypes.JSONValue[types.VestingAccount](),
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
