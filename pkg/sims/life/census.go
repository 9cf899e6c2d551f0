package life

import (
	"fmt"

	"lifegrid/pkg/core"
)

// CensusResult summarises how a pattern evolves under one edge policy.
type CensusResult struct {
	Pattern string
	Policy  EdgePolicy
	Steps   int

	Initial   int // live cells right after stamping
	Final     int // live cells after the last computed step
	Peak      int
	PeakStep  int
	Extinct   bool
	SettledAt int // first generation of the detected cycle, -1 when none
	Period    int // cycle length, 0 when none was found within Steps
}

func (r CensusResult) String() string {
	cycle := "none"
	if r.Period > 0 {
		cycle = fmt.Sprintf("p%d from gen %d", r.Period, r.SettledAt)
	}
	return fmt.Sprintf("%-8s %-8s initial=%-3d final=%-3d peak=%-3d@%-4d extinct=%-5v cycle=%s",
		r.Pattern, r.Policy, r.Initial, r.Final, r.Peak, r.PeakStep, r.Extinct, cycle)
}

// Census stamps the named pattern onto a fresh grid of cfg.Size and runs it
// for up to steps generations under policy, stopping early once a repeated
// grid reveals a cycle.
func Census(cfg Config, catalog *Catalog, name string, policy EdgePolicy, steps int) (CensusResult, error) {
	state := core.NewGridState(cfg.Size)
	initial, err := catalog.Apply(name, state)
	if err != nil {
		return CensusResult{}, err
	}

	grid := state.Snapshot()
	res := CensusResult{Pattern: name, Policy: policy, Initial: initial, Peak: initial, SettledAt: -1}
	seen := map[string]int{grid.String(): 0}
	for gen := 1; gen <= steps; gen++ {
		grid = NextGeneration(grid, policy)
		res.Steps = gen
		pop := grid.Population()
		if pop > res.Peak {
			res.Peak = pop
			res.PeakStep = gen
		}
		key := grid.String()
		if first, ok := seen[key]; ok {
			res.SettledAt = first
			res.Period = gen - first
			break
		}
		seen[key] = gen
	}
	res.Final = grid.Population()
	res.Extinct = res.Final == 0
	return res, nil
}
