// Package rosterupdate folds one match's statistics back into a team's
// roster and advances the injury/suspension/fitness state teams carry
// between matches (spec.md §4.5).
package rosterupdate

import (
	"math"
	"math/rand"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

const (
	maxInj    = 9
	dpYellow  = 4
	dpRed     = 10
	susMargin = 10
	fitAfterInj = 80
)

// UpdateRoster folds ms's 16 lineup slots back into roster, matching
// each slot's name to a roster player by first-hit linear search
// (spec.md §4.5). Unmatched slots (a name with no roster hit, e.g. a
// stale teamsheet) are skipped.
func UpdateRoster(roster *model.Roster, ms *model.TeamMatchState, rng *rand.Rand) {
	for i := range ms.Slots {
		s := &ms.Slots[i]
		ridx := roster.IndexOf(s.Name)
		if ridx < 0 {
			continue
		}
		p := &roster.Players[ridx]

		if s.Min > 0 {
			p.Gam++
		}
		p.Sav += s.Sav
		p.Ktk += s.Ktk
		p.Kps += s.Kps
		p.Sht += s.Sht
		p.Gls += s.Gls
		p.Ass += s.Ass

		dpBefore := p.DP
		p.DP += int16(s.Yellow)*dpYellow + boolToInt16(s.Red)*dpRed

		if s.Injured {
			p.Inj += int16(rng.Intn(maxInj + 1))
		}
		p.Fit = int16(math.Floor(100 * s.Fatigue))

		// Suspension accrual adds the full floor value DPF, not the
		// delta DPF-DP0: preserved upstream behavior (spec.md §9).
		dp0 := dpBefore / susMargin
		dpf := p.DP / susMargin
		if dpf > dp0 {
			p.Sus += dpf
		}

		p.CapStats()
	}
}

// ApplyInterMatchMaintenance advances every roster player's recovery
// state by one fixture (spec.md §4.5): fitness regenerates, injuries
// and suspensions count down, and season stats stay capped.
func ApplyInterMatchMaintenance(roster *model.Roster) {
	for i := range roster.Players {
		p := &roster.Players[i]

		p.Fit = minInt16(100, p.Fit+20)
		if p.Inj == 1 {
			p.Fit = fitAfterInj
		}
		p.Sus = maxInt16(0, p.Sus-1)
		p.Inj = maxInt16(0, p.Inj-1)

		p.CapStats()
	}
}

func boolToInt16(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func minInt16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func maxInt16(a, b int16) int16 {
	if a > b {
		return a
	}
	return b
}
