package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	accountk "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankk "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktestutil "github.com/cosmos/cosmos-sdk/x/bank/testutil"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	"github.com/nsc-protocol/nsc/app"
	appparams "github.com/nsc-protocol/nsc/app/params"
)

// BankEnv is an in-memory multistore with real auth and bank keepers.
// Module keepers are mounted on top of it by the helpers of this package.
type BankEnv struct {
	DB            dbm.DB
	StateStore    store.CommitMultiStore
	AccountKeeper accountk.AccountKeeper
	BankKeeper    bankk.BaseKeeper
}

func NewBankEnv(t testing.TB) *BankEnv {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	stateStore.MountStoreWithDB(authKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	// module accounts match the app so keepers can mint and burn
	accK := accountk.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authKey),
		authtypes.ProtoBaseAccount,
		app.GetMaccPerms(),
		authcodec.NewBech32Codec(appparams.Bech32PrefixAccAddr),
		appparams.Bech32PrefixAccAddr,
		appparams.AccGov.String(),
	)
	bankK := bankk.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankKey),
		accK,
		map[string]bool{},
		appparams.AccGov.String(),
		log.NewNopLogger(),
	)

	return &BankEnv{
		DB:            db,
		StateStore:    stateStore,
		AccountKeeper: accK,
		BankKeeper:    bankK,
	}
}

// Fund mints coins to addr.
func (e *BankEnv) Fund(t testing.TB, ctx sdk.Context, addr sdk.AccAddress, coins ...sdk.Coin) {
	t.Helper()
	require.NoError(t, banktestutil.FundAccount(ctx, e.BankKeeper, addr, sdk.NewCoins(coins...)))
}
