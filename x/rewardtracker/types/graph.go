package types

import (
	"sort"
)

// StakingGraph maps a tracker id to the ids of the trackers whose receipts
// it accepts as deposits.
type StakingGraph map[string][]string

// NewStakingGraph builds the graph spanned by the given trackers.
func NewStakingGraph(trackers []Tracker) StakingGraph {
	g := make(StakingGraph, len(trackers))
	for _, t := range trackers {
		g[t.ID] = t.ChildTrackerIDs()
	}
	return g
}

// Validate returns ErrStakingCycle if the graph has a cycle and
// ErrTrackerNotFound if an edge points to an unknown tracker.
func (g StakingGraph) Validate() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g))

	var visit func(id string, path []string) error
	visit = func(id string, path []string) error {
		switch state[id] {
		case visiting:
			return ErrStakingCycle.Wrapf("%v", append(path, id))
		case done:
			return nil
		}
		state[id] = visiting
		for _, child := range g[id] {
			if _, ok := g[child]; !ok {
				return ErrTrackerNotFound.Wrapf("tracker %s accepts receipts of unknown tracker %s", id, child)
			}
			if err := visit(child, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	// deterministic error reporting
	sort.Strings(ids)
	for _, id := range ids {
		if err := visit(id, nil); err != nil {
			return err
		}
	}
	return nil
}

// TopologicalOrder returns tracker ids so that every tracker comes before
// the trackers that accept its receipts.
func (g StakingGraph) TopologicalOrder() ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	seen := make(map[string]bool, len(g))
	order := make([]string, 0, len(g))
	var visit func(id string)
	visit = func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		for _, child := range g[id] {
			visit(child)
		}
		order = append(order, id)
	}
	for _, id := range ids {
		visit(id)
	}
	return order, nil
}
