package app

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	appkeepers "github.com/nsc-protocol/nsc/app/keepers"
	appparams "github.com/nsc-protocol/nsc/app/params"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// Deploy creates every instance of cfg in the current block and wires them
// together. Either the whole deployment lands or nothing does.
func (app *NscApp) Deploy(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := app.NewContext()
	cacheCtx, write := ctx.CacheContext()
	if err := deploy(cacheCtx, app.AppKeepers, cfg); err != nil {
		return fmt.Errorf("failed to deploy: %w", err)
	}
	write()

	app.logger.Info("deployed",
		"trackers", len(cfg.Trackers),
		"vesters", len(cfg.Vesters),
		"funded", len(cfg.Funding),
	)
	return nil
}

func deploy(ctx context.Context, k *appkeepers.AppKeepers, cfg *Config) error {
	gov := appparams.AccGov

	// trackers are initialized only once every distributor exists, parents
	// after the trackers they deposit into
	for _, tc := range cfg.Trackers {
		if err := k.RewardTrackerKeeper.CreateTracker(ctx, tc.ID, tc.Name, tc.Symbol); err != nil {
			return err
		}
		if err := k.RewardTrackerKeeper.CreateDistributor(ctx, tc.ID, tc.Distributor.Kind, tc.Distributor.RewardDenom, tc.ID); err != nil {
			return err
		}
	}
	for _, tc := range cfg.Trackers {
		p, err := k.RewardTrackerKeeper.Principal(ctx, tc.ID, gov)
		if err != nil {
			return err
		}
		if err := k.RewardTrackerKeeper.Initialize(ctx, p, tc.ID, tc.DepositDenoms, tc.ID); err != nil {
			return err
		}
	}

	if err := fund(ctx, k, cfg.Funding); err != nil {
		return err
	}

	for _, tc := range cfg.Trackers {
		if err := startDistributor(ctx, k, tc); err != nil {
			return err
		}
		p, err := k.RewardTrackerKeeper.Principal(ctx, tc.ID, gov)
		if err != nil {
			return err
		}
		if err := k.RewardTrackerKeeper.SetInPrivateTransferMode(ctx, p, tc.ID, tc.PrivateTransferMode); err != nil {
			return err
		}
		if err := k.RewardTrackerKeeper.SetInPrivateStakingMode(ctx, p, tc.ID, tc.PrivateStakingMode); err != nil {
			return err
		}
		if err := k.RewardTrackerKeeper.SetInPrivateClaimingMode(ctx, p, tc.ID, tc.PrivateClaimingMode); err != nil {
			return err
		}
	}

	for _, vc := range cfg.Vesters {
		if err := k.VesterKeeper.CreateVester(ctx, vc.params()); err != nil {
			return err
		}
		if vc.HasMaxVestableAmount == nil {
			continue
		}
		p, err := k.VesterKeeper.Principal(ctx, vc.ID, gov)
		if err != nil {
			return err
		}
		if err := k.VesterKeeper.SetHasMaxVestableAmount(ctx, p, vc.ID, *vc.HasMaxVestableAmount); err != nil {
			return err
		}
	}

	if err := k.RewardRouterKeeper.SetRoute(ctx, k.RewardRouterKeeper.Principal(gov), cfg.Route); err != nil {
		return err
	}

	return wireHandlers(ctx, k, cfg)
}

func startDistributor(ctx context.Context, k *appkeepers.AppKeepers, tc TrackerConfig) error {
	p, err := k.RewardTrackerKeeper.DistributorPrincipal(ctx, tc.ID, appparams.AccGov)
	if err != nil {
		return err
	}
	if err := k.RewardTrackerKeeper.UpdateLastDistributionTime(ctx, p, tc.ID); err != nil {
		return err
	}

	switch tc.Distributor.Kind {
	case rttypes.DistributorKindLinear:
		if tc.Distributor.TokensPerInterval == "" {
			return nil
		}
		rate, err := appparams.ParseAmount(tc.Distributor.TokensPerInterval)
		if err != nil {
			return err
		}
		return k.RewardTrackerKeeper.SetTokensPerInterval(ctx, p, tc.ID, rate)
	case rttypes.DistributorKindBonus:
		return k.RewardTrackerKeeper.SetBonusMultiplier(ctx, p, tc.ID, math.NewInt(tc.Distributor.BonusMultiplier))
	}
	return nil
}

func wireHandlers(ctx context.Context, k *appkeepers.AppKeepers, cfg *Config) error {
	gov := appparams.AccGov

	for _, tc := range cfg.Trackers {
		p, err := k.RewardTrackerKeeper.Principal(ctx, tc.ID, gov)
		if err != nil {
			return err
		}
		for _, ref := range tc.Handlers {
			addr, err := ResolveAccount(ref)
			if err != nil {
				return err
			}
			if err := k.RewardTrackerKeeper.SetHandler(ctx, p, tc.ID, addr, true); err != nil {
				return err
			}
		}
	}

	for _, vc := range cfg.Vesters {
		p, err := k.VesterKeeper.Principal(ctx, vc.ID, gov)
		if err != nil {
			return err
		}
		for _, ref := range vc.Handlers {
			addr, err := ResolveAccount(ref)
			if err != nil {
				return err
			}
			if err := k.VesterKeeper.SetHandler(ctx, p, vc.ID, addr, true); err != nil {
				return err
			}
		}
	}

	p, err := k.RewardClaimerKeeper.Principal(ctx, gov)
	if err != nil {
		return err
	}
	for _, denom := range cfg.Claimer.ClaimableTokens {
		if err := k.RewardClaimerKeeper.SetClaimableToken(ctx, p, denom, true); err != nil {
			return err
		}
	}
	for _, ref := range cfg.Claimer.Handlers {
		addr, err := ResolveAccount(ref)
		if err != nil {
			return err
		}
		if err := k.RewardClaimerKeeper.SetHandler(ctx, p, addr, true); err != nil {
			return err
		}
	}
	return nil
}

// fund mints the configured amounts through the mint module account.
func fund(ctx context.Context, k *appkeepers.AppKeepers, funding []FundingConfig) error {
	for _, f := range funding {
		addr, err := ResolveAccount(f.Account)
		if err != nil {
			return err
		}
		amount, err := appparams.ParseAmount(f.Amount)
		if err != nil {
			return err
		}
		coins := sdk.NewCoins(sdk.NewCoin(f.Denom, amount))
		if err := k.BankKeeper.MintCoins(ctx, minttypes.ModuleName, coins); err != nil {
			return err
		}
		if err := k.BankKeeper.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, addr, coins); err != nil {
			return err
		}
	}
	return nil
}
