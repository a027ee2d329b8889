package keeper

import (
	"testing"

	"cosmossdk.io/store"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	teststore "github.com/nsc-protocol/nsc/testutil/store"
	"github.com/nsc-protocol/nsc/x/vester/keeper"
	"github.com/nsc-protocol/nsc/x/vester/types"
)

func VesterKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	bankKeeper types.BankKeeper,
	trackerKeeper types.RewardTrackerKeeper,
) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		bankKeeper,
		trackerKeeper,
		appparams.AccGov.String(),
	)

	return &k, teststore.NewContext(stateStore)
}

// VesterKeeper returns a keeper over a fresh store, typically with mocked
// dependencies.
func VesterKeeper(t testing.TB, bankKeeper types.BankKeeper, trackerKeeper types.RewardTrackerKeeper) (*keeper.Keeper, sdk.Context) {
	kvStore, stateStore := teststore.NewStoreService(t, types.StoreKey)
	k := keeper.NewKeeper(kvStore, bankKeeper, trackerKeeper, appparams.AccGov.String())
	return &k, teststore.NewContext(stateStore)
}
