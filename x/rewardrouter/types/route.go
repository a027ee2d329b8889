package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	appparams "github.com/nsc-protocol/nsc/app/params"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// Route names the denoms, trackers and vesters the router composes.
//
// NSC and esNSC stake through StakedNscTracker -> BonusNscTracker ->
// FeeNscTracker, bonus points are staked directly into FeeNscTracker. NLP
// stakes through FeeNlpTracker -> StakedNlpTracker.
type Route struct {
	NscDenom   string `json:"nsc_denom" yaml:"nsc_denom"`
	EsNscDenom string `json:"es_nsc_denom" yaml:"es_nsc_denom"`
	BnNscDenom string `json:"bn_nsc_denom" yaml:"bn_nsc_denom"`
	NlpDenom   string `json:"nlp_denom" yaml:"nlp_denom"`

	StakedNscTracker string `json:"staked_nsc_tracker" yaml:"staked_nsc_tracker"`
	BonusNscTracker  string `json:"bonus_nsc_tracker" yaml:"bonus_nsc_tracker"`
	FeeNscTracker    string `json:"fee_nsc_tracker" yaml:"fee_nsc_tracker"`
	FeeNlpTracker    string `json:"fee_nlp_tracker" yaml:"fee_nlp_tracker"`
	StakedNlpTracker string `json:"staked_nlp_tracker" yaml:"staked_nlp_tracker"`

	NscVester string `json:"nsc_vester" yaml:"nsc_vester"`
	NlpVester string `json:"nlp_vester" yaml:"nlp_vester"`
}

// DefaultRoute is the route of the standard deployment.
func DefaultRoute() Route {
	return Route{
		NscDenom:         appparams.NscDenom,
		EsNscDenom:       appparams.EsNscDenom,
		BnNscDenom:       appparams.BnNscDenom,
		NlpDenom:         appparams.NlpDenom,
		StakedNscTracker: "snsc",
		BonusNscTracker:  "sbnsc",
		FeeNscTracker:    "sbfnsc",
		FeeNlpTracker:    "fnlp",
		StakedNlpTracker: "fsnlp",
		NscVester:        "vnsc",
		NlpVester:        "vnlp",
	}
}

func (r Route) Validate() error {
	for name, denom := range map[string]string{
		"nsc":    r.NscDenom,
		"es_nsc": r.EsNscDenom,
		"bn_nsc": r.BnNscDenom,
		"nlp":    r.NlpDenom,
	} {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidRoute.Wrapf("%s denom: %s", name, err)
		}
	}

	seen := make(map[string]bool)
	for _, id := range append(r.Trackers(), r.Vesters()...) {
		if err := rttypes.ValidateInstanceID(id); err != nil {
			return ErrInvalidRoute.Wrap(err.Error())
		}
		if seen[id] {
			return ErrInvalidRoute.Wrapf("instance %s used twice", id)
		}
		seen[id] = true
	}
	return nil
}

// Trackers returns every tracker of the route, each chain ordered from its
// base tracker up.
func (r Route) Trackers() []string {
	return []string{
		r.StakedNscTracker,
		r.BonusNscTracker,
		r.FeeNscTracker,
		r.FeeNlpTracker,
		r.StakedNlpTracker,
	}
}

func (r Route) Vesters() []string {
	return []string{r.NscVester, r.NlpVester}
}

// RouterAddress is the address the router acts as on trackers and vesters.
// It is the module account, which burns bonus points.
func RouterAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}

// StakedNlpAddress is the address staked NLP transfers act as on the NLP
// trackers. It must be a handler of both to move positions.
func StakedNlpAddress() sdk.AccAddress {
	return address.Module(ModuleName, []byte("staked_nlp"))
}
