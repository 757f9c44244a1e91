// Package match implements the minute-by-minute stochastic simulator:
// fatigue recomputation, shot/foul/injury events and the substitution
// state machine (spec.md §4.4), run within the strict per-minute
// home-then-away ordering spec.md §5 requires.
package match

import (
	"math/rand"

	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

const minAbortActive = 7

// Result carries what the roster updater needs after a match ends.
type Result struct {
	Home, Away *model.TeamMatchState
	HomeGoals  int16
	AwayGoals  int16
}

// Simulate plays a full match (up to 90 minutes, aborting early if
// either side drops below minAbortActive active players) and returns
// the final match-state for both sides plus the goal tally.
func Simulate(home, away *model.TeamMatchState, table *tactics.Table) Result {
	for minute := 1; minute <= 90; minute++ {
		if home.ActiveCount() < minAbortActive || away.ActiveCount() < minAbortActive {
			break
		}

		updateFatigue(home)
		updateFatigue(away)

		shotEvent(home, away, true)
		foulEvent(home, away)
		injuryEvent(home, away, table)

		shotEvent(away, home, false)
		foulEvent(away, home)
		injuryEvent(away, home, table)
	}

	return Result{
		Home:      home,
		Away:      away,
		HomeGoals: sumGoals(home),
		AwayGoals: sumGoals(away),
	}
}

// updateFatigue applies spec.md §4.4's per-minute fatigue update: accrue
// minutes played, drain fatigue by the slot's deduction jittered by a
// uniform per-slot-per-minute draw, floor at 0.1, then recompute the
// post-fatigue contributions.
func updateFatigue(ms *model.TeamMatchState) {
	for i := range ms.Slots {
		s := &ms.Slots[i]
		if !s.Active {
			s.Shm, s.Psm, s.Tkm = 0, 0, 0
			continue
		}
		s.Min++
		jitter := (ms.RNG.Float64()*2 - 1) * 0.003 // Uniform(-0.003, 0.003)
		s.Fatigue -= s.FatigueDeduction - jitter
		if s.Fatigue < 0.1 {
			s.Fatigue = 0.1
		}
		s.Shm = s.Sh0 * s.Fatigue
		s.Psm = s.Ps0 * s.Fatigue
		s.Tkm = s.Tk0 * s.Fatigue
	}
}

func sumGoals(ms *model.TeamMatchState) int16 {
	var total int16
	for i := range ms.Slots {
		total += ms.Slots[i].Gls
	}
	return total
}

// NewRNG derives a team or match-scoped RNG stream from a root seed and
// an index, so runs are reproducible regardless of thread count
// (spec.md §5).
func NewRNG(rootSeed int64, index int) *rand.Rand {
	return rand.New(rand.NewSource(rootSeed + int64(index)))
}
