package types

import (
	"fmt"

	"cosmossdk.io/math"

	nsctypes "github.com/nsc-protocol/nsc/types"
)

// GenesisState is the state of all trackers and distributors.
type GenesisState struct {
	Trackers     []Tracker      `json:"trackers"`
	Distributors []Distributor  `json:"distributors"`
	Handlers     []HandlerEntry `json:"handlers"`
	Accounts     []AccountEntry `json:"accounts"`
	// TotalDepositSupplies is indexed by tracker id and denom.
	TotalDepositSupplies []DepositSupplyEntry `json:"total_deposit_supplies"`
	Allowances           []AllowanceEntry     `json:"allowances"`
}

type HandlerEntry struct {
	TrackerID string `json:"tracker_id"`
	Handler   string `json:"handler"`
}

type DepositSupplyEntry struct {
	TrackerID string   `json:"tracker_id"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

type AllowanceEntry struct {
	TrackerID string   `json:"tracker_id"`
	Owner     string   `json:"owner"`
	Spender   string   `json:"spender"`
	Amount    math.Int `json:"amount"`
}

func (t Tracker) key() string {
	return t.ID
}

func (d Distributor) key() string {
	return d.ID
}

func (e AccountEntry) key() string {
	return e.TrackerID + "/" + e.Address
}

func (e AccountEntry) Validate() error {
	if err := ValidateInstanceID(e.TrackerID); err != nil {
		return err
	}
	if e.Address == "" {
		return fmt.Errorf("account entry of tracker %s has no address", e.TrackerID)
	}
	if err := e.Account.Validate(); err != nil {
		return fmt.Errorf("account %s of tracker %s: %w", e.Address, e.TrackerID, err)
	}
	for denom, amount := range e.DepositBalances {
		if amount.IsNil() || amount.IsNegative() {
			return fmt.Errorf("account %s of tracker %s has invalid %s deposit", e.Address, e.TrackerID, denom)
		}
	}
	return nil
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Trackers:             []Tracker{},
		Distributors:         []Distributor{},
		Handlers:             []HandlerEntry{},
		Accounts:             []AccountEntry{},
		TotalDepositSupplies: []DepositSupplyEntry{},
		Allowances:           []AllowanceEntry{},
	}
}

func (gs GenesisState) Validate() error {
	if err := nsctypes.ValidateUnique(gs.Trackers, Tracker.key); err != nil {
		return err
	}
	if err := nsctypes.ValidateUnique(gs.Distributors, Distributor.key); err != nil {
		return err
	}
	if err := nsctypes.ValidateUnique(gs.Accounts, AccountEntry.key); err != nil {
		return err
	}

	trackers := make(map[string]Tracker, len(gs.Trackers))
	for _, t := range gs.Trackers {
		trackers[t.ID] = t
	}
	for _, d := range gs.Distributors {
		if _, ok := trackers[d.TrackerID]; !ok {
			return ErrTrackerNotFound.Wrapf("distributor %s is bound to unknown tracker %s", d.ID, d.TrackerID)
		}
	}
	for _, h := range gs.Handlers {
		if _, ok := trackers[h.TrackerID]; !ok {
			return ErrTrackerNotFound.Wrapf("handler %s of unknown tracker %s", h.Handler, h.TrackerID)
		}
	}

	return NewStakingGraph(gs.Trackers).Validate()
}
