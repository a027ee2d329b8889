package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
	"github.com/nsc-protocol/nsc/x/rewardrouter/types"
)

// Claim claims fees and esNSC from every route tracker into the wallet of
// the principal.
func (k Keeper) Claim(ctx context.Context, p nsctypes.Principal) (fees, esNsc math.Int, err error) {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	fees, err = k.claimAll(ctx, p.Address, route.FeeNscTracker, route.FeeNlpTracker)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	esNsc, err = k.claimAll(ctx, p.Address, route.StakedNscTracker, route.StakedNlpTracker)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return fees, esNsc, nil
}

func (k Keeper) ClaimEsNsc(ctx context.Context, p nsctypes.Principal) (math.Int, error) {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return k.claimAll(ctx, p.Address, route.StakedNscTracker, route.StakedNlpTracker)
}

func (k Keeper) ClaimFees(ctx context.Context, p nsctypes.Principal) (math.Int, error) {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return math.Int{}, err
	}
	return k.claimAll(ctx, p.Address, route.FeeNscTracker, route.FeeNlpTracker)
}

func (k Keeper) Compound(ctx context.Context, p nsctypes.Principal) error {
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	return k.compound(ctx, route, p.Address)
}

// CompoundForAccount compounds the rewards of account. Governance only.
func (k Keeper) CompoundForAccount(ctx context.Context, p nsctypes.Principal, account sdk.AccAddress) error {
	return k.BatchCompoundForAccounts(ctx, p, []sdk.AccAddress{account})
}

func (k Keeper) BatchCompoundForAccounts(ctx context.Context, p nsctypes.Principal, accounts []sdk.AccAddress) error {
	if err := requireGov(p); err != nil {
		return err
	}
	route, err := k.GetRoute(ctx)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if err := k.compound(ctx, route, account); err != nil {
			return err
		}
	}
	return nil
}

// compound restakes the esNSC of both chains and the bonus points accrued
// by account.
func (k Keeper) compound(ctx context.Context, route types.Route, account sdk.AccAddress) error {
	esNsc, err := k.claimFor(ctx, route.StakedNscTracker, account)
	if err != nil {
		return err
	}
	if esNsc.IsPositive() {
		if err := k.stakeNsc(ctx, route, account, account, route.EsNscDenom, esNsc); err != nil {
			return err
		}
	}

	bn, err := k.claimFor(ctx, route.BonusNscTracker, account)
	if err != nil {
		return err
	}
	if bn.IsPositive() {
		if err := k.stakeFor(ctx, route.FeeNscTracker, account, account, route.BnNscDenom, bn); err != nil {
			return err
		}
	}

	nlpEsNsc, err := k.claimFor(ctx, route.StakedNlpTracker, account)
	if err != nil {
		return err
	}
	if nlpEsNsc.IsPositive() {
		if err := k.stakeNsc(ctx, route, account, account, route.EsNscDenom, nlpEsNsc); err != nil {
			return err
		}
	}

	compounded := esNsc.Add(nlpEsNsc)
	types.RecordCompounded(compounded)
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCompound,
		sdk.NewAttribute(types.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(types.AttributeKeyEsAmount, compounded.String()),
		sdk.NewAttribute(types.AttributeKeyBnAmount, bn.String()),
	))
	return nil
}

// HandleRewards claims and optionally restakes every reward of the
// principal in one step.
func (k Keeper) HandleRewards(ctx context.Context, p nsctypes.Principal, opts types.HandleRewardsOptions) (types.HandleRewardsResult, error) {
	res := types.NewHandleRewardsResult()
	route, err := k.GetRoute(ctx)
	if err != nil {
		return res, err
	}
	account := p.Address

	if opts.ClaimNsc {
		for _, id := range route.Vesters() {
			vp, err := k.vesterPrincipal(ctx, id)
			if err != nil {
				return res, err
			}
			amount, err := k.vesterK.ClaimForAccount(ctx, vp, id, account, account)
			if err != nil {
				return res, err
			}
			res.Nsc = res.Nsc.Add(amount)
		}
		if opts.StakeNsc && res.Nsc.IsPositive() {
			if err := k.stakeNsc(ctx, route, account, account, route.NscDenom, res.Nsc); err != nil {
				return res, err
			}
		}
	}

	if opts.ClaimEsNsc {
		res.EsNsc, err = k.claimAll(ctx, account, route.StakedNscTracker, route.StakedNlpTracker)
		if err != nil {
			return res, err
		}
		if opts.StakeEsNsc && res.EsNsc.IsPositive() {
			if err := k.stakeNsc(ctx, route, account, account, route.EsNscDenom, res.EsNsc); err != nil {
				return res, err
			}
		}
	}

	if opts.StakeMultiplierPoints {
		res.BnNsc, err = k.claimFor(ctx, route.BonusNscTracker, account)
		if err != nil {
			return res, err
		}
		if res.BnNsc.IsPositive() {
			if err := k.stakeFor(ctx, route.FeeNscTracker, account, account, route.BnNscDenom, res.BnNsc); err != nil {
				return res, err
			}
		}
	}

	if opts.ClaimFees {
		res.Fees, err = k.claimAll(ctx, account, route.FeeNscTracker, route.FeeNlpTracker)
		if err != nil {
			return res, err
		}
	}

	k.Logger(ctx).Debug("handled rewards",
		"account", account.String(),
		"nsc", res.Nsc.String(),
		"es_nsc", res.EsNsc.String(),
		"bn_nsc", res.BnNsc.String(),
		"fees", res.Fees.String(),
	)
	return res, nil
}
