package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	appparams "github.com/nsc-protocol/nsc/app/params"
	rewardclaimertypes "github.com/nsc-protocol/nsc/x/rewardclaimer/types"
	rewardroutertypes "github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

func TestDefaultConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bz, err := cfg.Marshal()
	require.NoError(t, err)
	parsed, err := ParseConfig(bz)
	require.NoError(t, err)
	require.Equal(t, cfg, parsed)
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("trackers: []\nunknown_field: 1\n"))
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{
			"duplicate tracker",
			func(cfg *Config) { cfg.Trackers = append(cfg.Trackers, cfg.Trackers[0]) },
		},
		{
			"tracker without deposit denoms",
			func(cfg *Config) { cfg.Trackers[0].DepositDenoms = nil },
		},
		{
			"unknown distributor kind",
			func(cfg *Config) { cfg.Trackers[0].Distributor.Kind = "exponential" },
		},
		{
			"bonus multiplier on a linear distributor",
			func(cfg *Config) { cfg.Trackers[0].Distributor.BonusMultiplier = 100 },
		},
		{
			"tokens per interval on a bonus distributor",
			func(cfg *Config) { cfg.Trackers[1].Distributor.TokensPerInterval = "1" },
		},
		{
			"malformed tokens per interval",
			func(cfg *Config) { cfg.Trackers[0].Distributor.TokensPerInterval = "lots" },
		},
		{
			"vester with zero duration",
			func(cfg *Config) { cfg.Vesters[0].VestingDuration = 0 },
		},
		{
			"vester on unknown reward tracker",
			func(cfg *Config) { cfg.Vesters[0].RewardTrackerID = "missing" },
		},
		{
			"route names unknown tracker",
			func(cfg *Config) { cfg.Route.FeeNscTracker = "missing" },
		},
		{
			"handler names unknown tracker",
			func(cfg *Config) { cfg.Trackers[0].Handlers = append(cfg.Trackers[0].Handlers, RefTracker+"missing") },
		},
		{
			"handler is not an address",
			func(cfg *Config) { cfg.Claimer.Handlers = []string{"nobody"} },
		},
		{
			"funding with too many decimals",
			func(cfg *Config) { cfg.Funding[0].Amount = "0.0000000000000000001" },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	v := viper.New()
	v.Set(FlagVestingDuration, "3600")
	v.Set(FlagBonusMultiplier, 10000)
	v.Set(FlagGenesisTime, int64(1_700_000_000))

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	require.EqualValues(t, 1_700_000_000, cfg.GenesisTime)
	for _, vc := range cfg.Vesters {
		require.EqualValues(t, 3600, vc.VestingDuration)
	}
	for _, tc := range cfg.Trackers {
		if tc.Distributor.Kind == rttypes.DistributorKindBonus {
			require.EqualValues(t, 10000, tc.Distributor.BonusMultiplier)
		}
	}

	v.Set(FlagVestingDuration, "a year")
	_, err = LoadConfig(v)
	require.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GenesisTime = 1_700_000_000
	for i := range cfg.Vesters {
		cfg.Vesters[i].VestingDuration = 60
	}
	cfg.Claimer.Handlers = []string{RefGov, RefRouter}
	bz, err := cfg.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "deploy.yaml")
	require.NoError(t, os.WriteFile(path, bz, 0o600))

	v := viper.New()
	v.Set(FlagDeployConfig, path)
	loaded, err := LoadConfig(v)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	v.Set(FlagDeployConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadConfig(v)
	require.Error(t, err)
}

func TestMaxVestableAmountDefault(t *testing.T) {
	bz, err := DefaultConfig().Marshal()
	require.NoError(t, err)
	require.NotContains(t, string(bz), "has_max_vestable_amount")

	// an omitted key keeps the cap of every vester bound to a tracker
	cfg, err := ParseConfig(bz)
	require.NoError(t, err)
	app := SetupWithOptions(t, SetupOptions{Config: cfg})
	ctx := app.NewContext()
	for _, vc := range cfg.Vesters {
		require.Nil(t, vc.HasMaxVestableAmount)
		v, err := app.VesterKeeper.GetVester(ctx, vc.ID)
		require.NoError(t, err)
		require.True(t, v.HasMaxVestableAmount, vc.ID)
	}

	cfg = DefaultConfig()
	disabled := false
	cfg.Vesters[1].HasMaxVestableAmount = &disabled
	bz, err = cfg.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(bz), "has_max_vestable_amount: false")
	cfg, err = ParseConfig(bz)
	require.NoError(t, err)

	app = SetupWithOptions(t, SetupOptions{Config: cfg})
	ctx = app.NewContext()
	v, err := app.VesterKeeper.GetVester(ctx, cfg.Vesters[0].ID)
	require.NoError(t, err)
	require.True(t, v.HasMaxVestableAmount)
	v, err = app.VesterKeeper.GetVester(ctx, cfg.Vesters[1].ID)
	require.NoError(t, err)
	require.False(t, v.HasMaxVestableAmount)
}

func TestResolveAccount(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
	}{
		{RefGov, appparams.AccGov.String()},
		{RefRouter, rewardroutertypes.RouterAddress().String()},
		{RefClaimer, rewardclaimertypes.ClaimerAddress().String()},
		{RefStakedNlp, rewardroutertypes.StakedNlpAddress().String()},
		{RefTracker + "snsc", rttypes.TrackerAddress("snsc").String()},
		{RefDistributor + "snsc", rttypes.DistributorAddress("snsc").String()},
		{RefVester + "vnsc", vestertypes.VesterAddress("vnsc").String()},
		{appparams.AccGov.String(), appparams.AccGov.String()},
	}
	for _, tc := range tests {
		addr, err := ResolveAccount(tc.ref)
		require.NoError(t, err, tc.ref)
		require.Equal(t, tc.expected, addr.String(), tc.ref)
	}

	_, err := ResolveAccount("cosmos1invalid")
	require.Error(t, err)
}
