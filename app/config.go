package app

import (
	"fmt"
	"os"
	"strings"

	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	appparams "github.com/nsc-protocol/nsc/app/params"
	rewardclaimertypes "github.com/nsc-protocol/nsc/x/rewardclaimer/types"
	rewardroutertypes "github.com/nsc-protocol/nsc/x/rewardrouter/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
	vestertypes "github.com/nsc-protocol/nsc/x/vester/types"
)

const (
	FlagDeployConfig    = "deploy-config"
	FlagGenesisTime     = "genesis-time"
	FlagVestingDuration = "vesting-duration"
	FlagBonusMultiplier = "bonus-multiplier"

	// DefaultVestingDuration is one year in seconds.
	DefaultVestingDuration = int64(365 * 24 * 60 * 60)
	// DefaultBonusMultiplier is 50% a year, in basis points.
	DefaultBonusMultiplier = int64(5000)
)

// Account references accepted wherever a config names an address.
const (
	RefGov         = "gov"
	RefRouter      = "router"
	RefClaimer     = "claimer"
	RefStakedNlp   = "staked_nlp"
	RefTracker     = "tracker:"
	RefDistributor = "distributor:"
	RefVester      = "vester:"
)

// Config describes a deployment: every tracker with its distributor, every
// vester, the router route and the claimer, together with the handler
// wiring between them and the initial funding.
type Config struct {
	// GenesisTime is the unix time of the first block. Zero lets the caller
	// pick the current time.
	GenesisTime int64                   `yaml:"genesis_time"`
	Trackers    []TrackerConfig         `yaml:"trackers"`
	Vesters     []VesterConfig          `yaml:"vesters"`
	Route       rewardroutertypes.Route `yaml:"route"`
	Claimer     ClaimerConfig           `yaml:"claimer"`
	Funding     []FundingConfig         `yaml:"funding"`
}

type TrackerConfig struct {
	ID                  string            `yaml:"id"`
	Name                string            `yaml:"name"`
	Symbol              string            `yaml:"symbol"`
	DepositDenoms       []string          `yaml:"deposit_denoms"`
	Distributor         DistributorConfig `yaml:"distributor"`
	PrivateTransferMode bool              `yaml:"private_transfer_mode"`
	PrivateStakingMode  bool              `yaml:"private_staking_mode"`
	PrivateClaimingMode bool              `yaml:"private_claiming_mode"`
	Handlers            []string          `yaml:"handlers"`
}

// DistributorConfig is the distributor bound to a tracker. It shares the
// tracker id.
type DistributorConfig struct {
	Kind        rttypes.DistributorKind `yaml:"kind"`
	RewardDenom string                  `yaml:"reward_denom"`
	// TokensPerInterval is in whole tokens per second. Linear only.
	TokensPerInterval string `yaml:"tokens_per_interval,omitempty"`
	// BonusMultiplier is in basis points per year. Bonus only.
	BonusMultiplier int64 `yaml:"bonus_multiplier,omitempty"`
}

type VesterConfig struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Symbol          string `yaml:"symbol"`
	VestingDuration int64  `yaml:"vesting_duration"`
	EsDenom         string `yaml:"es_denom"`
	ClaimableDenom  string `yaml:"claimable_denom"`
	PairDenom       string `yaml:"pair_denom,omitempty"`
	RewardTrackerID string `yaml:"reward_tracker_id,omitempty"`
	// HasMaxVestableAmount overrides the vester default, which caps vesting
	// whenever a reward tracker is set.
	HasMaxVestableAmount *bool    `yaml:"has_max_vestable_amount,omitempty"`
	Handlers             []string `yaml:"handlers"`
}

func (vc VesterConfig) params() vestertypes.VesterParams {
	return vestertypes.VesterParams{
		ID:              vc.ID,
		Name:            vc.Name,
		Symbol:          vc.Symbol,
		VestingDuration: vc.VestingDuration,
		EsDenom:         vc.EsDenom,
		ClaimableDenom:  vc.ClaimableDenom,
		PairDenom:       vc.PairDenom,
		RewardTrackerID: vc.RewardTrackerID,
	}
}

type ClaimerConfig struct {
	ClaimableTokens []string `yaml:"claimable_tokens"`
	Handlers        []string `yaml:"handlers"`
}

// FundingConfig mints Amount whole tokens of Denom to Account at deployment.
type FundingConfig struct {
	Account string `yaml:"account"`
	Denom   string `yaml:"denom"`
	Amount  string `yaml:"amount"`
}

// DefaultConfig is the standard deployment: staked NSC, bonus and fee
// trackers chained under the NSC vester, and the fee and staked NLP
// trackers under the NLP vester.
func DefaultConfig() *Config {
	route := rewardroutertypes.DefaultRoute()
	linear := func(denom, rate string) DistributorConfig {
		return DistributorConfig{Kind: rttypes.DistributorKindLinear, RewardDenom: denom, TokensPerInterval: rate}
	}

	return &Config{
		Trackers: []TrackerConfig{
			{
				ID:                  route.StakedNscTracker,
				Name:                "Staked NSC",
				Symbol:              "sNSC",
				DepositDenoms:       []string{route.NscDenom, route.EsNscDenom},
				Distributor:         linear(route.EsNscDenom, "0.02"),
				PrivateTransferMode: true,
				PrivateStakingMode:  true,
				Handlers:            []string{RefRouter, RefTracker + route.BonusNscTracker},
			},
			{
				ID:            route.BonusNscTracker,
				Name:          "Staked + Bonus NSC",
				Symbol:        "sbNSC",
				DepositDenoms: []string{rttypes.ReceiptDenom(route.StakedNscTracker)},
				Distributor: DistributorConfig{
					Kind:            rttypes.DistributorKindBonus,
					RewardDenom:     route.BnNscDenom,
					BonusMultiplier: DefaultBonusMultiplier,
				},
				PrivateTransferMode: true,
				PrivateStakingMode:  true,
				PrivateClaimingMode: true,
				Handlers:            []string{RefRouter, RefTracker + route.FeeNscTracker},
			},
			{
				ID:                  route.FeeNscTracker,
				Name:                "Staked + Bonus + Fee NSC",
				Symbol:              "sbfNSC",
				DepositDenoms:       []string{rttypes.ReceiptDenom(route.BonusNscTracker), route.BnNscDenom},
				Distributor:         linear(appparams.FeeDenom, "0.001"),
				PrivateTransferMode: true,
				PrivateStakingMode:  true,
				Handlers:            []string{RefRouter, RefVester + route.NscVester},
			},
			{
				ID:                  route.FeeNlpTracker,
				Name:                "Fee NLP",
				Symbol:              "fNLP",
				DepositDenoms:       []string{route.NlpDenom},
				Distributor:         linear(appparams.FeeDenom, "0.001"),
				PrivateTransferMode: true,
				PrivateStakingMode:  true,
				Handlers:            []string{RefRouter, RefTracker + route.StakedNlpTracker, RefStakedNlp},
			},
			{
				ID:                  route.StakedNlpTracker,
				Name:                "Fee + Staked NLP",
				Symbol:              "fsNLP",
				DepositDenoms:       []string{rttypes.ReceiptDenom(route.FeeNlpTracker)},
				Distributor:         linear(route.EsNscDenom, "0.02"),
				PrivateTransferMode: true,
				PrivateStakingMode:  true,
				Handlers:            []string{RefRouter, RefVester + route.NlpVester, RefStakedNlp},
			},
		},
		Vesters: []VesterConfig{
			{
				ID:              route.NscVester,
				Name:            "Vested NSC",
				Symbol:          "vNSC",
				VestingDuration: DefaultVestingDuration,
				EsDenom:         route.EsNscDenom,
				ClaimableDenom:  route.NscDenom,
				PairDenom:       rttypes.ReceiptDenom(route.FeeNscTracker),
				RewardTrackerID: route.StakedNscTracker,
				Handlers:        []string{RefRouter},
			},
			{
				ID:              route.NlpVester,
				Name:            "Vested NLP",
				Symbol:          "vNLP",
				VestingDuration: DefaultVestingDuration,
				EsDenom:         route.EsNscDenom,
				ClaimableDenom:  route.NscDenom,
				PairDenom:       rttypes.ReceiptDenom(route.StakedNlpTracker),
				RewardTrackerID: route.StakedNlpTracker,
				Handlers:        []string{RefRouter},
			},
		},
		Route: route,
		Claimer: ClaimerConfig{
			ClaimableTokens: []string{route.EsNscDenom, appparams.FeeDenom},
			Handlers:        []string{RefGov},
		},
		Funding: []FundingConfig{
			{Account: RefDistributor + route.StakedNscTracker, Denom: route.EsNscDenom, Amount: "1000000"},
			{Account: RefDistributor + route.StakedNlpTracker, Denom: route.EsNscDenom, Amount: "1000000"},
			{Account: RefDistributor + route.FeeNscTracker, Denom: appparams.FeeDenom, Amount: "10000"},
			{Account: RefDistributor + route.FeeNlpTracker, Denom: appparams.FeeDenom, Amount: "10000"},
			{Account: RefVester + route.NscVester, Denom: route.NscDenom, Amount: "1000000"},
			{Account: RefVester + route.NlpVester, Denom: route.NscDenom, Amount: "1000000"},
		},
	}
}

// ParseConfig decodes a YAML deployment. Unknown fields are rejected.
func ParseConfig(bz []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(bz, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse deployment config: %w", err)
	}
	return &cfg, cfg.Validate()
}

// Marshal encodes the deployment as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LoadConfig reads the deployment named by FlagDeployConfig, or the default
// one, and applies the overrides set in appOpts.
func LoadConfig(appOpts servertypes.AppOptions) (*Config, error) {
	cfg := DefaultConfig()
	if path := cast.ToString(appOpts.Get(FlagDeployConfig)); path != "" {
		bz, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if cfg, err = ParseConfig(bz); err != nil {
			return nil, err
		}
	}

	genesisTime, err := cast.ToInt64E(appOpts.Get(FlagGenesisTime))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FlagGenesisTime, err)
	}
	if genesisTime > 0 {
		cfg.GenesisTime = genesisTime
	}

	vestingDuration, err := cast.ToInt64E(appOpts.Get(FlagVestingDuration))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FlagVestingDuration, err)
	}
	if vestingDuration > 0 {
		for i := range cfg.Vesters {
			cfg.Vesters[i].VestingDuration = vestingDuration
		}
	}

	multiplier, err := cast.ToInt64E(appOpts.Get(FlagBonusMultiplier))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FlagBonusMultiplier, err)
	}
	if multiplier > 0 {
		for i := range cfg.Trackers {
			if cfg.Trackers[i].Distributor.Kind == rttypes.DistributorKindBonus {
				cfg.Trackers[i].Distributor.BonusMultiplier = multiplier
			}
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks the deployment is self-consistent. Keeper validation still
// applies when it is deployed.
func (cfg *Config) Validate() error {
	if cfg.GenesisTime < 0 {
		return fmt.Errorf("negative genesis time %d", cfg.GenesisTime)
	}

	trackers := make(map[string]bool, len(cfg.Trackers))
	for _, tc := range cfg.Trackers {
		if err := rttypes.ValidateInstanceID(tc.ID); err != nil {
			return err
		}
		if trackers[tc.ID] {
			return fmt.Errorf("duplicate tracker %s", tc.ID)
		}
		trackers[tc.ID] = true

		if len(tc.DepositDenoms) == 0 {
			return fmt.Errorf("tracker %s has no deposit denoms", tc.ID)
		}
		if err := tc.Distributor.Kind.Validate(); err != nil {
			return fmt.Errorf("tracker %s: %w", tc.ID, err)
		}
		if err := sdk.ValidateDenom(tc.Distributor.RewardDenom); err != nil {
			return fmt.Errorf("tracker %s reward denom: %w", tc.ID, err)
		}
		switch tc.Distributor.Kind {
		case rttypes.DistributorKindLinear:
			if tc.Distributor.BonusMultiplier != 0 {
				return fmt.Errorf("linear distributor %s has a bonus multiplier", tc.ID)
			}
			if tc.Distributor.TokensPerInterval != "" {
				if _, err := appparams.ParseAmount(tc.Distributor.TokensPerInterval); err != nil {
					return fmt.Errorf("tracker %s tokens per interval: %w", tc.ID, err)
				}
			}
		case rttypes.DistributorKindBonus:
			if tc.Distributor.TokensPerInterval != "" {
				return fmt.Errorf("bonus distributor %s has tokens per interval", tc.ID)
			}
			if tc.Distributor.BonusMultiplier < 0 {
				return fmt.Errorf("tracker %s: negative bonus multiplier", tc.ID)
			}
		}
	}

	vesters := make(map[string]bool, len(cfg.Vesters))
	for _, vc := range cfg.Vesters {
		if vesters[vc.ID] || trackers[vc.ID] {
			return fmt.Errorf("duplicate instance %s", vc.ID)
		}
		vesters[vc.ID] = true
		if err := vestertypes.NewVester(vc.params(), appparams.AccGov.String()).Validate(); err != nil {
			return err
		}
		if vc.RewardTrackerID != "" && !trackers[vc.RewardTrackerID] {
			return fmt.Errorf("vester %s: unknown reward tracker %s", vc.ID, vc.RewardTrackerID)
		}
	}

	if err := cfg.Route.Validate(); err != nil {
		return err
	}
	for _, id := range cfg.Route.Trackers() {
		if !trackers[id] {
			return fmt.Errorf("route names unknown tracker %s", id)
		}
	}
	for _, id := range cfg.Route.Vesters() {
		if !vesters[id] {
			return fmt.Errorf("route names unknown vester %s", id)
		}
	}

	refs := make([]string, 0)
	for _, tc := range cfg.Trackers {
		refs = append(refs, tc.Handlers...)
	}
	for _, vc := range cfg.Vesters {
		refs = append(refs, vc.Handlers...)
	}
	refs = append(refs, cfg.Claimer.Handlers...)
	for _, f := range cfg.Funding {
		refs = append(refs, f.Account)
		if err := sdk.ValidateDenom(f.Denom); err != nil {
			return fmt.Errorf("funding of %s: %w", f.Account, err)
		}
		if _, err := appparams.ParseAmount(f.Amount); err != nil {
			return fmt.Errorf("funding of %s: %w", f.Account, err)
		}
	}
	for _, ref := range refs {
		if err := cfg.checkRef(ref, trackers, vesters); err != nil {
			return err
		}
	}

	for _, denom := range cfg.Claimer.ClaimableTokens {
		if err := sdk.ValidateDenom(denom); err != nil {
			return fmt.Errorf("claimable token: %w", err)
		}
	}
	return nil
}

func (cfg *Config) checkRef(ref string, trackers, vesters map[string]bool) error {
	switch {
	case strings.HasPrefix(ref, RefTracker):
		if !trackers[strings.TrimPrefix(ref, RefTracker)] {
			return fmt.Errorf("unknown tracker in %s", ref)
		}
	case strings.HasPrefix(ref, RefDistributor):
		if !trackers[strings.TrimPrefix(ref, RefDistributor)] {
			return fmt.Errorf("unknown distributor in %s", ref)
		}
	case strings.HasPrefix(ref, RefVester):
		if !vesters[strings.TrimPrefix(ref, RefVester)] {
			return fmt.Errorf("unknown vester in %s", ref)
		}
	}
	_, err := ResolveAccount(ref)
	return err
}

// ResolveAccount maps an account reference to its address. Anything that
// is not a reference must be a bech32 address.
func ResolveAccount(ref string) (sdk.AccAddress, error) {
	switch {
	case ref == RefGov:
		return appparams.AccGov, nil
	case ref == RefRouter:
		return rewardroutertypes.RouterAddress(), nil
	case ref == RefClaimer:
		return rewardclaimertypes.ClaimerAddress(), nil
	case ref == RefStakedNlp:
		return rewardroutertypes.StakedNlpAddress(), nil
	case strings.HasPrefix(ref, RefTracker):
		return rttypes.TrackerAddress(strings.TrimPrefix(ref, RefTracker)), nil
	case strings.HasPrefix(ref, RefDistributor):
		return rttypes.DistributorAddress(strings.TrimPrefix(ref, RefDistributor)), nil
	case strings.HasPrefix(ref, RefVester):
		return vestertypes.VesterAddress(strings.TrimPrefix(ref, RefVester)), nil
	}

	addr, err := sdk.AccAddressFromBech32(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid account %q: %w", ref, err)
	}
	return addr, nil
}
