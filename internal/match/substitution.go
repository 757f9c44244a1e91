package match

import (
	"github.com/jstittsworth/soccer-sim/internal/contrib"
	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

// substitute runs the substitution state machine for one injured slot
// (spec.md §4.4). victimIdx's slot must already have Active=false,
// Injured=true before this is called.
func substitute(side, opp *model.TeamMatchState, victimIdx int, table *tactics.Table) {
	victim := &side.Slots[victimIdx]
	victimWasGK := victim.Pos.Group() == model.GK

	avail := availIndices(side)
	if len(avail) == 0 || side.SubCnt >= 3 {
		if victimWasGK {
			promoteActiveOutfieldToGK(side)
		}
		return
	}

	if exact := findByPos(side, avail, victim.Pos); exact >= 0 {
		bringOn(side, exact)
		if victimWasGK {
			side.Gk = exact
		}
		side.SubCnt++
		return
	}

	if victimWasGK {
		idx := bestAvailOutfielder(side, avail)
		if idx < 0 {
			return
		}
		bringOn(side, idx)
		promoteSlotToGK(side, idx)
		side.SubCnt++
		return
	}

	idx := findByGroup(side, avail, victim.Pos.Group())
	if idx < 0 {
		idx = preferNonGK(side, avail)
	}
	if idx < 0 {
		return
	}
	bringOn(side, idx)
	contrib.ComputeContribsForSlot(side, opp, table, idx)
	side.SubCnt++
}

// availIndices returns bench-slot indices satisfying spec.md §4.4's
// avail predicate: not active, not injured, not sent off, fewer than
// two yellows.
func availIndices(ms *model.TeamMatchState) []int {
	var out []int
	for i := range ms.Slots {
		s := &ms.Slots[i]
		if !s.Active && !s.Injured && !s.Red && s.Yellow < 2 {
			out = append(out, i)
		}
	}
	return out
}

func findByPos(ms *model.TeamMatchState, avail []int, pos model.PositionCode) int {
	for _, idx := range avail {
		if ms.Slots[idx].Pos == pos {
			return idx
		}
	}
	return -1
}

func findByGroup(ms *model.TeamMatchState, avail []int, group model.PositionGroup) int {
	for _, idx := range avail {
		if ms.Slots[idx].Pos.Group() == group {
			return idx
		}
	}
	return -1
}

// preferNonGK returns the first avail non-GK slot, else the first avail
// slot of any kind (spec.md §4.4's "prefer non-GK availables, else any").
func preferNonGK(ms *model.TeamMatchState, avail []int) int {
	for _, idx := range avail {
		if ms.Slots[idx].Pos.Group() != model.GK {
			return idx
		}
	}
	if len(avail) > 0 {
		return avail[0]
	}
	return -1
}

// bestAvailOutfielder returns the avail non-GK slot with the highest St.
func bestAvailOutfielder(ms *model.TeamMatchState, avail []int) int {
	best := -1
	var bestSt int16 = -1
	for _, idx := range avail {
		if ms.Slots[idx].Pos.Group() == model.GK {
			continue
		}
		if ms.Slots[idx].St > bestSt {
			bestSt = ms.Slots[idx].St
			best = idx
		}
	}
	return best
}

func bringOn(ms *model.TeamMatchState, idx int) {
	s := &ms.Slots[idx]
	s.Active = true
	s.Used = true
}

// promoteSlotToGK converts a newly brought-on slot into the goalkeeper
// (spec.md §4.4's GK-promotion path): reassign its position code,
// zero its outfield contributions and fatigue deduction, and update Gk.
func promoteSlotToGK(ms *model.TeamMatchState, idx int) {
	s := &ms.Slots[idx]
	s.Pos = model.NewPositionCode(model.GK, model.SideNone)
	s.Sh0, s.Ps0, s.Tk0 = 0, 0, 0
	s.FatigueDeduction = 0
	ms.Gk = idx
}

// promoteActiveOutfieldToGK handles the no-subs-remaining GK injury
// branch: the active outfielder with the highest St·Active takes over
// in goal, and the injured keeper is not replaced (spec.md §4.4).
func promoteActiveOutfieldToGK(ms *model.TeamMatchState) {
	best := -1
	var bestSt int16 = -1
	for i := range ms.Slots {
		s := &ms.Slots[i]
		if !s.Active || s.Pos.Group() == model.GK {
			continue
		}
		if s.St > bestSt {
			bestSt = s.St
			best = i
		}
	}
	if best < 0 {
		return
	}
	promoteSlotToGK(ms, best)
}

