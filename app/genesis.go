package app

import (
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/core/header"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// GenesisState of the blockchain is represented here as a map of raw json
// messages key'd by a identifier string.
// The identifier is used to determine which module genesis information belongs
// to so it may be appropriately routed during init chain.
type GenesisState map[string]json.RawMessage

// GenesisDoc is the genesis file of the chain: the time of block 1 and the
// per-module application state.
type GenesisDoc struct {
	GenesisTime time.Time    `json:"genesis_time"`
	AppState    GenesisState `json:"app_state"`
}

// DefaultGenesis returns the default genesis of every module at genesisTime.
func (app *NscApp) DefaultGenesis(genesisTime time.Time) GenesisDoc {
	return GenesisDoc{
		GenesisTime: genesisTime.UTC(),
		AppState:    app.BasicModuleManager.DefaultGenesis(app.encCfg.Codec),
	}
}

// AddBalances appends balances to the bank genesis of doc.
func (app *NscApp) AddBalances(doc GenesisDoc, balances ...banktypes.Balance) error {
	var bankGenesis banktypes.GenesisState
	if err := app.encCfg.Codec.UnmarshalJSON(doc.AppState[banktypes.ModuleName], &bankGenesis); err != nil {
		return err
	}
	bankGenesis.Balances = append(bankGenesis.Balances, balances...)
	bz, err := app.encCfg.Codec.MarshalJSON(&bankGenesis)
	if err != nil {
		return err
	}
	doc.AppState[banktypes.ModuleName] = bz
	return nil
}

// ValidateGenesis validates the genesis of every module in doc.
func (app *NscApp) ValidateGenesis(doc GenesisDoc) error {
	if doc.GenesisTime.IsZero() {
		return fmt.Errorf("genesis time is not set")
	}
	return app.BasicModuleManager.ValidateGenesis(app.encCfg.Codec, nil, doc.AppState)
}

// ParseGenesis decodes a JSON genesis document.
func ParseGenesis(bz []byte) (GenesisDoc, error) {
	var doc GenesisDoc
	err := json.Unmarshal(bz, &doc)
	return doc, err
}

// InitChain writes doc into the empty store and commits it as block 1.
func (app *NscApp) InitChain(doc GenesisDoc) error {
	if app.LastBlockHeight() != 0 {
		return fmt.Errorf("chain already initialized at height %d", app.LastBlockHeight())
	}
	if err := app.ValidateGenesis(doc); err != nil {
		return err
	}
	app.header = header.Info{Height: 1, Time: doc.GenesisTime.UTC(), ChainID: ChainID}
	ctx := app.NewContext()

	if err := app.initGenesis(ctx, doc.AppState); err != nil {
		return err
	}
	if err := app.AssertInvariants(ctx); err != nil {
		return err
	}
	return app.Commit()
}

// initGenesis runs the module genesis in the manager's init order.
// Manager.InitGenesis requires a non-empty validator set, which this chain
// does not have.
func (app *NscApp) initGenesis(ctx sdk.Context, genesisData GenesisState) error {
	for _, name := range app.ModuleManager.OrderInitGenesis {
		if genesisData[name] == nil {
			continue
		}
		mod, ok := app.ModuleManager.Modules[name].(module.HasGenesis)
		if !ok {
			continue
		}
		if err := initModuleGenesis(ctx, app.encCfg.Codec, mod, genesisData[name]); err != nil {
			return fmt.Errorf("%s genesis: %w", name, err)
		}
		app.logger.Debug("initialized module genesis", "module", name)
	}
	return nil
}

// initModuleGenesis turns a module genesis panic into an error.
func initModuleGenesis(ctx sdk.Context, cdc codec.JSONCodec, mod module.HasGenesis, bz json.RawMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	mod.InitGenesis(ctx, cdc, bz)
	return nil
}

// ExportGenesis returns the state of the last committed block as genesis.
func (app *NscApp) ExportGenesis() (GenesisDoc, error) {
	ctx, _ := app.NewContext().CacheContext()
	appState, err := app.ModuleManager.ExportGenesis(ctx, app.encCfg.Codec)
	if err != nil {
		return GenesisDoc{}, err
	}
	return GenesisDoc{GenesisTime: app.header.Time, AppState: appState}, nil
}
