// Package contrib computes per-player contributions after side
// balance, side preference, tactic and bonus adjustments (spec.md
// §4.3). It is invoked once at kickoff for both sides and again,
// narrowly, after a substitution changes one slot.
package contrib

import (
	"math"

	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

var nonGKGroups = []model.PositionGroup{model.DF, model.DM, model.MF, model.AM, model.FW}

// ComputeContribs recomputes Sh0/Ps0/Tk0 for every active slot of ms,
// using opp's tactic for the opponent-bonus lookup. Called once at
// kickoff for each side (spec.md §4.3).
func ComputeContribs(ms, opp *model.TeamMatchState, table *tactics.Table) {
	for i := range ms.Slots {
		if ms.Slots[i].Active {
			resetBaseline(&ms.Slots[i])
		}
	}

	for _, group := range nonGKGroups {
		factor := sideBalanceFactor(ms, group)
		for _, idx := range ms.SlotsInGroup(group) {
			applyAdjustments(&ms.Slots[idx], group, factor, ms.Tactic, opp.Tactic, table)
		}
	}

	zeroGoalkeeper(ms)
}

// ComputeContribsForSlot recomputes just one slot's contribution,
// recomputing its group's side-balance factor but leaving every other
// slot untouched. Used by the substitution state machine's general
// replacement branch, which spec.md §4.4 scopes to "that single slot
// only".
func ComputeContribsForSlot(ms, opp *model.TeamMatchState, table *tactics.Table, idx int) {
	s := &ms.Slots[idx]
	group := s.Pos.Group()
	if group == model.GK {
		s.Sh0, s.Ps0, s.Tk0 = 0, 0, 0
		return
	}
	resetBaseline(s)
	factor := sideBalanceFactor(ms, group)
	applyAdjustments(s, group, factor, ms.Tactic, opp.Tactic, table)
}

func resetBaseline(s *model.Slot) {
	s.Sh0 = float64(s.Sh)
	s.Ps0 = float64(s.Ps)
	s.Tk0 = float64(s.Tk)
}

func applyAdjustments(s *model.Slot, group model.PositionGroup, sideFactor float64, ownTactic, oppTactic model.Tactic, table *tactics.Table) {
	s.Sh0 *= sideFactor
	s.Ps0 *= sideFactor
	s.Tk0 *= sideFactor

	if !model.PreferredSideMatches(s.PreferredSide, s.Pos.Side()) {
		s.Sh0 *= 0.75
		s.Ps0 *= 0.75
		s.Tk0 *= 0.75
	}

	s.Sh0 *= float64(table.TactMult(ownTactic, group, model.SkillShoot))
	s.Ps0 *= float64(table.TactMult(ownTactic, group, model.SkillPass))
	s.Tk0 *= float64(table.TactMult(ownTactic, group, model.SkillTackle))

	s.Sh0 *= float64(table.BonusMult(ownTactic, oppTactic, group, model.SkillShoot))
	s.Ps0 *= float64(table.BonusMult(ownTactic, oppTactic, group, model.SkillPass))
	s.Tk0 *= float64(table.BonusMult(ownTactic, oppTactic, group, model.SkillTackle))
}

// sideBalanceFactor implements spec.md §4.3(a): count active players
// on R/L/C for the group; if nR != nL, shrink by 1-0.25*|nR-nL|/(nR+nL);
// else if more than three centred players and no R/L at all, shrink by
// a flat 0.87.
func sideBalanceFactor(ms *model.TeamMatchState, group model.PositionGroup) float64 {
	var nR, nL, nC int
	for _, idx := range ms.SlotsInGroup(group) {
		switch ms.Slots[idx].Pos.Side() {
		case model.SideRight:
			nR++
		case model.SideLeft:
			nL++
		case model.SideCentre:
			nC++
		}
	}
	if nR != nL {
		return 1 - 0.25*math.Abs(float64(nR-nL))/float64(nR+nL)
	}
	if nC > 3 && nR == 0 && nL == 0 {
		return 0.87
	}
	return 1.0
}

func zeroGoalkeeper(ms *model.TeamMatchState) {
	if ms.Gk < 0 || ms.Gk >= model.NLineup {
		return
	}
	g := &ms.Slots[ms.Gk]
	if g.Active {
		g.Sh0, g.Ps0, g.Tk0 = 0, 0, 0
	}
}
