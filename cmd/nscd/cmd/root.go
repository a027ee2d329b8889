package cmd

import (
	"path/filepath"
	"strings"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsc-protocol/nsc/app"
)

const (
	FlagHome           = "home"
	FlagLogLevel       = "log-level"
	FlagLogFormat      = "log-format"
	FlagInvCheckPeriod = "inv-check-period"

	dbName = "application"
)

// NewRootCmd creates a new root command for nscd. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	// flags can also be set through NSC_<FLAG> environment variables
	v := viper.New()
	v.SetEnvPrefix(app.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:          "nscd",
		Short:        "Run the NSC staking and vesting ledger",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return v.BindPFlags(cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(FlagHome, app.DefaultNodeHome, "directory for the deployment and the database")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String(FlagLogFormat, LogFormatLogfmt, "log format (logfmt|json)")
	rootCmd.PersistentFlags().Uint(FlagInvCheckPeriod, 1, "assert invariants every n blocks, 0 disables")

	rootCmd.AddCommand(
		InitCmd(v),
		RunCmd(v),
		QueryCmd(v),
		MsgsCmd(),
	)
	return rootCmd
}

// openApp loads the app stored under the home directory.
func openApp(cmd *cobra.Command, v *viper.Viper) (*app.NscApp, error) {
	logger, err := NewLogger(cmd.ErrOrStderr(), v.GetString(FlagLogLevel), v.GetString(FlagLogFormat))
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Join(v.GetString(FlagHome), "data")
	db, err := dbm.NewDB(dbName, dbm.GoLevelDBBackend, dataDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database in %s", dataDir)
	}

	nscApp, err := app.NewNscApp(logger, db, v.GetUint(FlagInvCheckPeriod))
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to load app")
	}
	return nscApp, nil
}

// openInitializedApp is openApp for commands that need a deployed chain.
func openInitializedApp(cmd *cobra.Command, v *viper.Viper) (*app.NscApp, error) {
	nscApp, err := openApp(cmd, v)
	if err != nil {
		return nil, err
	}
	if nscApp.LastBlockHeight() == 0 {
		_ = nscApp.Close()
		return nil, errors.Errorf("%s is not initialized, run nscd init first", v.GetString(FlagHome))
	}
	return nscApp, nil
}
