package types

import (
	"fmt"

	nsctypes "github.com/nsc-protocol/nsc/types"
	rttypes "github.com/nsc-protocol/nsc/x/rewardtracker/types"
)

// GenesisState is the state of all vesters.
type GenesisState struct {
	Vesters  []Vester       `json:"vesters"`
	Handlers []HandlerEntry `json:"handlers"`
	Accounts []AccountEntry `json:"accounts"`
}

type HandlerEntry struct {
	VesterID string `json:"vester_id"`
	Handler  string `json:"handler"`
}

func (v Vester) key() string {
	return v.ID
}

func (e AccountEntry) key() string {
	return e.VesterID + "/" + e.Address
}

func (e AccountEntry) Validate() error {
	if err := rttypes.ValidateInstanceID(e.VesterID); err != nil {
		return err
	}
	if e.Address == "" {
		return fmt.Errorf("account entry of vester %s has no address", e.VesterID)
	}
	if err := e.Account.Validate(); err != nil {
		return fmt.Errorf("account %s of vester %s: %w", e.Address, e.VesterID, err)
	}
	return nil
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Vesters:  []Vester{},
		Handlers: []HandlerEntry{},
		Accounts: []AccountEntry{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := nsctypes.ValidateUnique(gs.Vesters, Vester.key); err != nil {
		return err
	}
	if err := nsctypes.ValidateUnique(gs.Accounts, AccountEntry.key); err != nil {
		return err
	}

	vesters := make(map[string]bool, len(gs.Vesters))
	for _, v := range gs.Vesters {
		vesters[v.ID] = true
	}
	for _, h := range gs.Handlers {
		if !vesters[h.VesterID] {
			return ErrVesterNotFound.Wrapf("handler %s of unknown vester %s", h.Handler, h.VesterID)
		}
	}
	for _, e := range gs.Accounts {
		if !vesters[e.VesterID] {
			return ErrVesterNotFound.Wrapf("account %s of unknown vester %s", e.Address, e.VesterID)
		}
	}
	return nil
}
