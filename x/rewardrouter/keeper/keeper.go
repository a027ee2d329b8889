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
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		// the address allowed to change the route and to stake or compound
		// for other accounts
		authority string

		bankK    types.BankKeeper
		trackerK types.RewardTrackerKeeper
		vesterK  types.VesterKeeper

		Schema collections.Schema

		route collections.Item[types.Route]
		// pendingReceivers maps (sender) => bech32 receiver of a signalled
		// transfer
		pendingReceivers collections.Map[sdk.AccAddress, string]
		// stakedNlpAllowances maps (owner, spender) => staked NLP allowance
		stakedNlpAllowances collections.Map[collections.Pair[sdk.AccAddress, sdk.AccAddress], math.Int]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	bankK types.BankKeeper,
	trackerK types.RewardTrackerKeeper,
	vesterK types.VesterKeeper,
	authority string,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		authority:    authority,

		bankK:    bankK,
		trackerK: trackerK,
		vesterK:  vesterK,

		route: collections.NewItem(
			sb,
			types.RouteKey,
			"route",
			nsctypes.JSONValue[types.Route](),
		),
		pendingReceivers: collections.NewMap(
			sb,
			types.PendingReceiversKeyPrefix,
			"pending_receivers",
			sdk.AccAddressKey,
			collections.StringValue,
		),
		stakedNlpAllowances: collections.NewMap(
			sb,
			types.StakedNlpAllowancesPrefix,
			"staked_nlp_allowances",
			collections.PairKeyCodec(sdk.AccAddressKey, sdk.AccAddressKey),
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
