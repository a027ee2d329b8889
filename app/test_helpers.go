package app

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
)

// TestGenesisTime is the genesis time of apps created by Setup.
var TestGenesisTime = time.Unix(1_700_000_000, 0).UTC()

// SetupOptions defines arguments that are passed into Setup.
type SetupOptions struct {
	DB             dbm.DB
	InvCheckPeriod uint
	Config         *Config
	// Accounts start with 1000 NSC and 1000 NLP each.
	Accounts []sdk.AccAddress
}

// Tokens returns n whole tokens in base units.
func Tokens(n int64) math.Int {
	return math.NewIntWithDecimal(n, appparams.NscExponent)
}

// Setup starts a chain and deploys the default config one second after
// genesis. The deployment is committed at height 2.
func Setup(t *testing.T, accounts ...sdk.AccAddress) *NscApp {
	t.Helper()
	return SetupWithOptions(t, SetupOptions{Accounts: accounts})
}

func SetupWithOptions(t *testing.T, opts SetupOptions) *NscApp {
	t.Helper()
	if opts.DB == nil {
		opts.DB = dbm.NewMemDB()
	}
	if opts.InvCheckPeriod == 0 {
		opts.InvCheckPeriod = 1
	}
	if opts.Config == nil {
		opts.Config = DefaultConfig()
	}

	app, err := NewNscApp(log.NewNopLogger(), opts.DB, opts.InvCheckPeriod)
	require.NoError(t, err)

	doc := app.DefaultGenesis(TestGenesisTime)
	balances := make([]banktypes.Balance, 0, len(opts.Accounts))
	for _, addr := range opts.Accounts {
		balances = append(balances, banktypes.Balance{
			Address: addr.String(),
			Coins: sdk.NewCoins(
				sdk.NewCoin(appparams.NscDenom, Tokens(1000)),
				sdk.NewCoin(appparams.NlpDenom, Tokens(1000)),
			),
		})
	}
	require.NoError(t, app.AddBalances(doc, balances...))
	require.NoError(t, app.InitChain(doc))

	require.NoError(t, app.BeginBlock(TestGenesisTime.Add(time.Second)))
	require.NoError(t, app.Deploy(opts.Config))
	require.NoError(t, app.Commit())
	return app
}

// NextBlock opens a block d after the current one.
func NextBlock(t *testing.T, app *NscApp, d time.Duration) {
	t.Helper()
	require.NoError(t, app.BeginBlock(app.BlockTime().Add(d)))
}

// Deliver delivers msg and requires it to succeed.
func Deliver(t *testing.T, app *NscApp, msg any) any {
	t.Helper()
	res, _, err := app.Deliver(msg)
	require.NoError(t, err, MsgName(msg))
	return res
}
