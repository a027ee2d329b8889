package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

// GenesisState is the state of the reward claimer.
type GenesisState struct {
	// Gov defaults to the module authority when empty.
	Gov              string           `json:"gov,omitempty"`
	ClaimableTokens  []string         `json:"claimable_tokens"`
	Handlers         []string         `json:"handlers"`
	ClaimableAmounts []ClaimableEntry `json:"claimable_amounts"`
}

type ClaimableEntry struct {
	Account string   `json:"account"`
	Denom   string   `json:"denom"`
	Amount  math.Int `json:"amount"`
}

func (e ClaimableEntry) key() string {
	return e.Account + "/" + e.Denom
}

func (e ClaimableEntry) Validate() error {
	if _, err := sdk.AccAddressFromBech32(e.Account); err != nil {
		return fmt.Errorf("invalid claimable account: %w", err)
	}
	if err := sdk.ValidateDenom(e.Denom); err != nil {
		return fmt.Errorf("invalid claimable denom: %w", err)
	}
	if e.Amount.IsNil() || !e.Amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("claimable %s of %s", e.Denom, e.Account)
	}
	return nil
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		ClaimableTokens:  []string{},
		Handlers:         []string{},
		ClaimableAmounts: []ClaimableEntry{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Gov != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Gov); err != nil {
			return fmt.Errorf("invalid gov: %w", err)
		}
	}
	tokens := make(map[string]bool, len(gs.ClaimableTokens))
	for _, denom := range gs.ClaimableTokens {
		if err := sdk.ValidateDenom(denom); err != nil {
			return err
		}
		if tokens[denom] {
			return fmt.Errorf("duplicate claimable token %s", denom)
		}
		tokens[denom] = true
	}
	handlers := make(map[string]bool, len(gs.Handlers))
	for _, h := range gs.Handlers {
		if _, err := sdk.AccAddressFromBech32(h); err != nil {
			return fmt.Errorf("invalid handler: %w", err)
		}
		if handlers[h] {
			return fmt.Errorf("duplicate handler %s", h)
		}
		handlers[h] = true
	}
	if err := nsctypes.ValidateUnique(gs.ClaimableAmounts, ClaimableEntry.key); err != nil {
		return err
	}
	for _, e := range gs.ClaimableAmounts {
		if !tokens[e.Denom] {
			return ErrTokenNotClaimable.Wrapf("claimable amount of %s", e.Denom)
		}
	}
	return nil
}
