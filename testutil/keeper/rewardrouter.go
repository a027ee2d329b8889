package keeper

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"

	appparams "github.com/nsc-protocol/nsc/app/params"
	teststore "github.com/nsc-protocol/nsc/testutil/store"
	"github.com/nsc-protocol/nsc/x/rewardrouter/keeper"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

func RewardRouterKeeper(
	t testing.TB,
	bankKeeper types.BankKeeper,
	trackerKeeper types.RewardTrackerKeeper,
	vesterKeeper types.VesterKeeper,
) (*keeper.Keeper, sdk.Context) {
	kvStore, stateStore := teststore.NewStoreService(t, types.StoreKey)
	k := keeper.NewKeeper(kvStore, bankKeeper, trackerKeeper, vesterKeeper, appparams.AccGov.String())
	return &k, teststore.NewContext(stateStore)
}
