package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	appkeepers "github.com/nsc-protocol/nsc/app/keepers"
	appparams "github.com/nsc-protocol/nsc/app/params"
	"github.com/nsc-protocol/nsc/x/rewardclaimer"
	rewardclaimertypes "github.com/nsc-protocol/nsc/x/rewardclaimer/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter"
	rewardroutertypes "github.com/nsc-protocol/nsc/x/rewardrouter/types"
	"github.com/nsc-protocol/nsc/x/rewardtracker"
	rewardtrackertypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	"github.com/nsc-protocol/nsc/x/vester"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

const (
	appName = "NscApp"
	// ChainID is the chain id stamped on every block header.
	ChainID = "nsc-local"
	// EnvPrefix prefixes the environment variables read by nscd.
	EnvPrefix = "NSC"
)

var (
	// DefaultNodeHome default home directories for the application daemon
	DefaultNodeHome string
	// module accounts and their permissions
	maccPerms = map[string][]string{
		authtypes.FeeCollectorName: nil, // fee collector account
		// funds instances at deployment
		minttypes.ModuleName: {authtypes.Minter},
		// bonus distributors mint multiplier points
		rewardtrackertypes.ModuleName: {authtypes.Minter},
		// vesters burn vested escrow
		vestertypes.ModuleName: {authtypes.Burner},
		// the router burns bonus points on unstake
		rewardroutertypes.ModuleName: {authtypes.Burner},
	}
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".nscd")
}

// NscApp holds the NSC keepers over a single commit multistore. Messages are
// delivered one at a time, each inside its own cached store, so a failing
// message leaves no state behind.
type NscApp struct {
	*appkeepers.AppKeepers

	logger         log.Logger
	db             dbm.DB
	cms            storetypes.CommitMultiStore
	encCfg         appparams.EncodingConfig
	msgRouter      *MsgRouter
	invCheckPeriod uint

	// the module manager
	ModuleManager      *module.Manager
	BasicModuleManager module.BasicManager

	// blockTime persists the time of the last committed block
	blockTime collections.Item[int64]
	header    header.Info
}

// NewNscApp returns a reference to an initialized NscApp loaded at the
// latest committed version of db.
func NewNscApp(logger log.Logger, db dbm.DB, invCheckPeriod uint) (*NscApp, error) {
	encCfg := appparams.DefaultEncodingConfig()
	app := &NscApp{
		AppKeepers:     &appkeepers.AppKeepers{},
		logger:         logger.With("module", "app"),
		db:             db,
		encCfg:         encCfg,
		invCheckPeriod: invCheckPeriod,
	}
	app.InitKeepers(logger, &encCfg, invCheckPeriod, GetMaccPerms(), BlockedAddresses())

	app.cms = store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	for _, key := range app.GetKVStoreKeys() {
		app.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, err
	}

	sb := collections.NewSchemaBuilder(runtime.NewKVStoreService(app.GetKey(appkeepers.AppStoreKey)))
	app.blockTime = collections.NewItem(sb, collections.NewPrefix(0), "block_time", collections.Int64Value)
	if _, err := sb.Build(); err != nil {
		return nil, err
	}

	app.ModuleManager = module.NewManager(
		auth.NewAppModule(encCfg.Codec, app.AccountKeeper, nil, nil),
		bank.NewAppModule(encCfg.Codec, app.BankKeeper, app.AccountKeeper, nil),
		// NSC modules
		rewardtracker.NewAppModule(app.RewardTrackerKeeper),
		vester.NewAppModule(app.VesterKeeper),
		rewardrouter.NewAppModule(app.RewardRouterKeeper),
		rewardclaimer.NewAppModule(app.RewardClaimerKeeper),
	)
	app.BasicModuleManager = module.NewBasicManagerFromManager(app.ModuleManager, nil)
	app.BasicModuleManager.RegisterLegacyAminoCodec(encCfg.Amino)
	app.BasicModuleManager.RegisterInterfaces(encCfg.InterfaceRegistry)

	// NOTE: trackers are restored before the vesters and the router that
	// reference them
	genesisModuleOrder := []string{
		authtypes.ModuleName, banktypes.ModuleName,
		rewardtrackertypes.ModuleName,
		vestertypes.ModuleName,
		rewardroutertypes.ModuleName,
		rewardclaimertypes.ModuleName,
	}
	app.ModuleManager.SetOrderInitGenesis(genesisModuleOrder...)
	app.ModuleManager.SetOrderExportGenesis(genesisModuleOrder...)
	app.ModuleManager.RegisterInvariants(app.CrisisKeeper)

	// messages are dispatched by the app router; the modules define no
	// protobuf Msg services for the manager to register
	app.msgRouter = NewMsgRouter()
	app.registerMsgServers()

	app.header = header.Info{Height: app.LastBlockHeight(), ChainID: ChainID}
	t, err := app.blockTime.Get(app.NewContext())
	switch {
	case errors.Is(err, collections.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		app.header.Time = time.Unix(t, 0).UTC()
	}

	return app, nil
}

// Name returns the name of the App
func (app *NscApp) Name() string { return appName }

// Logger returns the app logger.
func (app *NscApp) Logger() log.Logger { return app.logger }

// LastBlockHeight returns the height of the last committed block.
func (app *NscApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// BlockTime returns the time of the current block.
func (app *NscApp) BlockTime() time.Time {
	return app.header.Time
}

// MsgRouter returns the message router of the app.
func (app *NscApp) MsgRouter() *MsgRouter {
	return app.msgRouter
}

func (app *NscApp) newContext(h header.Info) sdk.Context {
	ctx := sdk.NewContext(app.cms, cmtproto.Header{
		ChainID: h.ChainID,
		Height:  h.Height,
		Time:    h.Time,
	}, false, app.logger)
	return ctx.WithHeaderInfo(h)
}

// NewContext returns a context of the current block. Writes through it land
// in the working state and are persisted by Commit.
func (app *NscApp) NewContext() sdk.Context {
	return app.newContext(app.header)
}

// BeginBlock opens the next block at t. Block time never goes backwards.
func (app *NscApp) BeginBlock(t time.Time) error {
	if t.Before(app.header.Time) {
		return fmt.Errorf("block time %s is before the last block time %s", t, app.header.Time)
	}
	app.header = header.Info{
		Height:  app.LastBlockHeight() + 1,
		Time:    t.UTC(),
		ChainID: ChainID,
	}
	if _, err := app.ModuleManager.BeginBlock(app.NewContext()); err != nil {
		return err
	}
	return nil
}

// Deliver executes msg atomically in the current block and returns its
// response together with the events it emitted.
func (app *NscApp) Deliver(msg any) (any, sdk.Events, error) {
	ctx := app.NewContext()
	cacheCtx, write := ctx.CacheContext()
	res, err := app.msgRouter.Handle(cacheCtx, msg)
	if err != nil {
		app.logger.Debug("message failed", "msg", MsgName(msg), "err", err)
		return nil, nil, err
	}
	events := cacheCtx.EventManager().Events()
	write()
	return res, events, nil
}

// Commit persists the current block. Invariants are asserted every
// invCheckPeriod blocks.
func (app *NscApp) Commit() error {
	ctx := app.NewContext()
	if _, err := app.ModuleManager.EndBlock(ctx); err != nil {
		return err
	}
	if err := app.blockTime.Set(ctx, app.header.Time.Unix()); err != nil {
		return err
	}
	if app.invCheckPeriod > 0 && app.header.Height%int64(app.invCheckPeriod) == 0 {
		if err := app.AssertInvariants(ctx); err != nil {
			return err
		}
	}
	id := app.cms.Commit()
	app.logger.Info("committed block", "height", id.Version, "time", app.header.Time)
	return nil
}

// AssertInvariants runs every registered invariant and returns the first
// broken one.
func (app *NscApp) AssertInvariants(ctx sdk.Context) error {
	start := time.Now()
	for _, route := range app.CrisisKeeper.Routes() {
		if res, stop := route.Invar(ctx); stop {
			return fmt.Errorf("invariant %s broken: %s", route.FullRoute(), res)
		}
	}
	app.logger.Debug("asserted invariants", "duration", time.Since(start))
	return nil
}

// Close releases the database.
func (app *NscApp) Close() error {
	return app.db.Close()
}

// ModuleAccountAddrs returns all the app's module account addresses.
func (app *NscApp) ModuleAccountAddrs() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range maccPerms {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	return modAccAddrs
}

// GetMaccPerms returns a copy of the module account permissions
func GetMaccPerms() map[string][]string {
	dupMaccPerms := make(map[string][]string)
	for k, v := range maccPerms {
		dupMaccPerms[k] = v
	}
	return dupMaccPerms
}

// BlockedAddresses returns all the app's blocked account addresses.
func BlockedAddresses() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range GetMaccPerms() {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	// allow the following addresses to receive funds
	delete(modAccAddrs, authtypes.NewModuleAddress(govtypes.ModuleName).String())

	return modAccAddrs
}
