package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/nsc-protocol/nsc/x/rewardclaimer/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		// the initial gov of the claimer
		authority string

		bankK types.BankKeeper

		Schema collections.Schema

		gov             collections.Item[string]
		claimableTokens collections.KeySet[string]
		handlers        collections.KeySet[sdk.AccAddress]
		// claimable maps (account, denom) => amount the account may claim
		claimable collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
		// totalClaimable maps (denom) => sum of claimable over all accounts
		totalClaimable collections.Map[string, math.Int]
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

		gov: collections.NewItem(
			sb,
			types.GovKey,
			"gov",
			collections.StringValue,
		),
		claimableTokens: collections.NewKeySet(
			sb,
			types.ClaimableTokensKeyPrefix,
			"claimable_tokens",
			collections.StringKey,
		),
		handlers: collections.NewKeySet(
			sb,
			types.HandlersKeyPrefix,
			"handlers",
			sdk.AccAddressKey,
		),
		claimable: collections.NewMap(
			sb,
			types.ClaimableAmountsKeyPrefix,
			"claimable_amounts",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			sdk.IntValue,
		),
		totalClaimable: collections.NewMap(
			sb,
			types.TotalClaimableKeyPrefix,
			"total_claimable",
			collections.StringKey,
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

// Logger returns a module-specific logger.
func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
