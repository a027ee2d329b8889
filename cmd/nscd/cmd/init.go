package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsc-protocol/nsc/app"
)

const deployFile = "deploy.yaml"

// InitCmd creates the chain and deploys the configured trackers, vesters,
// router and claimer in its first block.
func InitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the chain and deploy the staking topology",
		Long: `Initialize the chain in the home directory and deploy the staking topology.

The deployment is read from --deploy-config, or is the default NSC deployment
when no file is given. The resolved deployment is written to
<home>/config/deploy.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return errors.Wrap(err, "failed to load deploy config")
			}
			if cfg.GenesisTime == 0 {
				cfg.GenesisTime = time.Now().Unix()
			}

			nscApp, err := openApp(cmd, v)
			if err != nil {
				return err
			}
			defer nscApp.Close()

			if h := nscApp.LastBlockHeight(); h != 0 {
				return errors.Errorf("%s is already initialized at height %d", v.GetString(FlagHome), h)
			}

			genesisTime := time.Unix(cfg.GenesisTime, 0).UTC()
			if err := nscApp.InitChain(nscApp.DefaultGenesis(genesisTime)); err != nil {
				return errors.Wrap(err, "failed to init chain")
			}
			if err := nscApp.BeginBlock(genesisTime); err != nil {
				return err
			}
			if err := nscApp.Deploy(cfg); err != nil {
				return errors.Wrap(err, "failed to deploy")
			}
			if err := nscApp.Commit(); err != nil {
				return errors.Wrap(err, "failed to commit deployment")
			}

			if err := writeDeployConfig(v.GetString(FlagHome), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deployed %d trackers and %d vesters at height %d, genesis %s\n",
				len(cfg.Trackers), len(cfg.Vesters), nscApp.LastBlockHeight(), genesisTime.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().String(app.FlagDeployConfig, "", "deployment YAML file, the default deployment when empty")
	cmd.Flags().Int64(app.FlagGenesisTime, 0, "unix time of the first block, now when zero")
	cmd.Flags().Int64(app.FlagVestingDuration, 0, "override the vesting duration of every vester, in seconds")
	cmd.Flags().Int64(app.FlagBonusMultiplier, 0, "override the multiplier of every bonus distributor, in basis points")
	return cmd
}

func writeDeployConfig(home string, cfg *app.Config) error {
	bz, err := cfg.Marshal()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, "config")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}
	path := filepath.Join(dir, deployFile)
	return errors.Wrapf(os.WriteFile(path, bz, 0o600), "failed to write %s", path)
}
