package store

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// GenesisTime is the block time of contexts created by this package. Zero
// header times are not usable because emission measures unix seconds.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

func NewStoreService(t testing.TB, moduleName string) (kvStore corestore.KVStoreService, stateStore storetypes.CommitMultiStore) {
	db := dbm.NewMemDB()
	stateStore = store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	storeKey := storetypes.NewKVStoreKey(moduleName)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	return runtime.NewKVStoreService(storeKey), stateStore
}

func NewStoreWithCtx(t testing.TB, moduleName string) (ctx sdk.Context, kvStore corestore.KVStoreService) {
	kvStore, stateStore := NewStoreService(t, moduleName)
	return NewContext(stateStore), kvStore
}

// NewContext returns a context over stateStore at GenesisTime.
func NewContext(stateStore storetypes.CommitMultiStore) sdk.Context {
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())
	return ctx.WithHeaderInfo(header.Info{Time: GenesisTime})
}

// AdvanceTime moves the block time of ctx forward by d.
func AdvanceTime(ctx sdk.Context, d time.Duration) sdk.Context {
	now := ctx.HeaderInfo().Time.Add(d)
	return ctx.WithBlockTime(now).WithHeaderInfo(header.Info{Height: ctx.HeaderInfo().Height + 1, Time: now})
}
