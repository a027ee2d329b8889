package keepers

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	crisiskeeper "github.com/cosmos/cosmos-sdk/x/crisis/keeper"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	appparams "github.com/nsc-protocol/nsc/app/params"
	rewardclaimerkeeper "github.com/nsc-protocol/nsc/x/rewardclaimer/keeper"
	rewardclaimertypes "github.com/nsc-protocol/nsc/x/rewardclaimer/types"
	rewardrouterkeeper "github.com/nsc-protocol/nsc/x/rewardrouter/keeper"
	rewardroutertypes "github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rewardtrackerkeeper "github.com/nsc-protocol/nsc/x/rewardtracker/keeper"
	rewardtrackertypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	vesterkeeper "github.com/nsc-protocol/nsc/x/vester/keeper"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

// AppStoreKey holds app-level metadata such as the last block time.
const AppStoreKey = "nscapp"

type AppKeepers struct {
	// keepers
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	CrisisKeeper  *crisiskeeper.Keeper

	// NSC modules
	RewardTrackerKeeper rewardtrackerkeeper.Keeper
	VesterKeeper        vesterkeeper.Keeper
	RewardRouterKeeper  rewardrouterkeeper.Keeper
	RewardClaimerKeeper rewardclaimerkeeper.Keeper

	// keys to access the substores
	keys map[string]*storetypes.KVStoreKey
}

func (ak *AppKeepers) InitKeepers(
	logger log.Logger,
	encCfg *appparams.EncodingConfig,
	invCheckPeriod uint,
	maccPerms map[string][]string,
	blockedAddress map[string]bool,
) {
	appCodec := encCfg.Codec
	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()

	// set persistent store keys
	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey, banktypes.StoreKey, crisistypes.StoreKey,
		// NSC modules
		rewardtrackertypes.StoreKey,
		vestertypes.StoreKey,
		rewardroutertypes.StoreKey,
		rewardclaimertypes.StoreKey,
		AppStoreKey,
	)
	ak.keys = keys

	accountKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		maccPerms,
		authcodec.NewBech32Codec(appparams.Bech32PrefixAccAddr),
		appparams.Bech32PrefixAccAddr,
		authority,
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		accountKeeper,
		blockedAddress,
		authority,
		logger,
	)

	ak.AccountKeeper = accountKeeper
	ak.BankKeeper = bankKeeper

	ak.CrisisKeeper = crisiskeeper.NewKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[crisistypes.StoreKey]),
		invCheckPeriod,
		ak.BankKeeper,
		authtypes.FeeCollectorName,
		authority,
		ak.AccountKeeper.AddressCodec(),
	)

	// the tracker owns receipts and distributors; vesters consume tracker
	// history; the router drives both
	ak.RewardTrackerKeeper = rewardtrackerkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[rewardtrackertypes.StoreKey]),
		ak.BankKeeper,
		authority,
	)
	ak.VesterKeeper = vesterkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[vestertypes.StoreKey]),
		ak.BankKeeper,
		ak.RewardTrackerKeeper,
		authority,
	)
	ak.RewardRouterKeeper = rewardrouterkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[rewardroutertypes.StoreKey]),
		ak.BankKeeper,
		ak.RewardTrackerKeeper,
		ak.VesterKeeper,
		authority,
	)
	ak.RewardClaimerKeeper = rewardclaimerkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[rewardclaimertypes.StoreKey]),
		ak.BankKeeper,
		authority,
	)
}

// GetKVStoreKeys returns all the persistent store keys.
func (ak *AppKeepers) GetKVStoreKeys() map[string]*storetypes.KVStoreKey {
	return ak.keys
}

// GetKey returns the KVStoreKey for the provided store key.
func (ak *AppKeepers) GetKey(storeKey string) *storetypes.KVStoreKey {
	return ak.keys[storeKey]
}
