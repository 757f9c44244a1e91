package match

import (
	"math/rand"

	"github.com/jstittsworth/soccer-sim/internal/contrib"
	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

// NewTeamMatchState builds the 16-slot per-match snapshot for one side
// from its roster and teamsheet (spec.md §3 Lifecycle: "reconstructed
// from Roster+Teamsheet at the start of every match"). It does not
// compute contributions; call contrib.ComputeContribs for both sides
// once both states exist.
func NewTeamMatchState(roster *model.Roster, ts *model.Teamsheet, rng *rand.Rand) *model.TeamMatchState {
	ms := &model.TeamMatchState{
		TeamName: roster.Team,
		Tactic:   ts.Tactic,
		Gk:       -1,
		Pk:       -1,
		RNG:      rng,
	}

	entries := ts.AllEntries()
	for i, entry := range entries {
		ridx := roster.IndexOf(entry.Name)
		var p model.Player
		if ridx >= 0 {
			p = roster.Players[ridx]
		}
		s := &ms.Slots[i]
		s.RosterIndex = ridx
		s.Name = entry.Name
		s.PreferredSide = p.PreferredSide
		s.Pos = entry.Pos
		s.St, s.Tk, s.Ps, s.Sh, s.Sm, s.Ag = p.St, p.Tk, p.Ps, p.Sh, p.Sm, p.Ag
		s.Fatigue = 1.0
		s.FatigueDeduction = fatigueDeduction(p.Sm, entry.Pos.Group())

		if i < model.NStarters {
			s.Active = true
		} else {
			s.Active = false
			s.Bench = true
		}

		if entry.Pos.Group() == model.GK {
			ms.Gk = i
		}
		if entry.Name == ts.PenaltyKicker {
			ms.Pk = i
		}
	}

	return ms
}

// fatigueDeduction returns the per-minute fatigue drain derived from
// stamina at kickoff (spec.md §3): 0.0031 - 0.0022*(Sm-50)/50, forced
// to 0 for the goalkeeper.
func fatigueDeduction(sm int16, group model.PositionGroup) float64 {
	if group == model.GK {
		return 0
	}
	return 0.0031 - 0.0022*(float64(sm)-50)/50
}

// NewMatch builds both sides' match state and runs the kickoff
// contribution calculation (spec.md §4.3, §5 ordering: recalc_contribs
// home then away).
func NewMatch(homeRoster, awayRoster *model.Roster, homeSheet, awaySheet *model.Teamsheet, homeRNG, awayRNG *rand.Rand, table *tactics.Table) (home, away *model.TeamMatchState) {
	home = NewTeamMatchState(homeRoster, homeSheet, homeRNG)
	away = NewTeamMatchState(awayRoster, awaySheet, awayRNG)
	contrib.ComputeContribs(home, away, table)
	contrib.ComputeContribs(away, home, table)
	return home, away
}
