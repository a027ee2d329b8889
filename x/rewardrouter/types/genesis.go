package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

// GenesisState is the route, the transfers signalled but not accepted and
// the staked NLP allowances.
type GenesisState struct {
	Route               Route                `json:"route"`
	PendingTransfers    []PendingTransfer    `json:"pending_transfers"`
	StakedNlpAllowances []StakedNlpAllowance `json:"staked_nlp_allowances"`
}

type PendingTransfer struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

func (p PendingTransfer) key() string {
	return p.Sender
}

func (p PendingTransfer) Validate() error {
	sender, err := sdk.AccAddressFromBech32(p.Sender)
	if err != nil {
		return fmt.Errorf("invalid pending transfer sender: %w", err)
	}
	receiver, err := sdk.AccAddressFromBech32(p.Receiver)
	if err != nil {
		return fmt.Errorf("invalid pending transfer receiver: %w", err)
	}
	if sender.Equals(receiver) {
		return fmt.Errorf("pending transfer of %s to itself", p.Sender)
	}
	return nil
}

type StakedNlpAllowance struct {
	Owner   string   `json:"owner"`
	Spender string   `json:"spender"`
	Amount  math.Int `json:"amount"`
}

func (a StakedNlpAllowance) key() string {
	return a.Owner + "/" + a.Spender
}

func (a StakedNlpAllowance) Validate() error {
	if _, err := sdk.AccAddressFromBech32(a.Owner); err != nil {
		return fmt.Errorf("invalid allowance owner: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(a.Spender); err != nil {
		return fmt.Errorf("invalid allowance spender: %w", err)
	}
	if a.Amount.IsNil() || !a.Amount.IsPositive() {
		return fmt.Errorf("allowance of %s to %s must be positive", a.Owner, a.Spender)
	}
	return nil
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Route:               DefaultRoute(),
		PendingTransfers:    []PendingTransfer{},
		StakedNlpAllowances: []StakedNlpAllowance{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Route.Validate(); err != nil {
		return err
	}
	if err := nsctypes.ValidateUnique(gs.PendingTransfers, PendingTransfer.key); err != nil {
		return err
	}
	return nsctypes.ValidateUnique(gs.StakedNlpAllowances, StakedNlpAllowance.key)
}
