// Package selector implements the teamsheet auto-selector (spec.md
// §4.2): ranks available players by fitness-weighted skill per
// position, assigns starters and subs, and designates the penalty
// kicker.
package selector

import (
	"sort"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

// AutoTeamsheet builds a Teamsheet from a roster using the default
// tactic "N" unless tactic is given explicitly. All non-GK slots are
// assigned side 'C'; GK is assigned blank side.
func AutoTeamsheet(r *model.Roster, tactic model.Tactic) model.Teamsheet {
	if tactic == 0 {
		tactic = model.TacticNeutral
	}

	availFit := r.AvailableFitness()

	ts := model.Teamsheet{Team: r.Team, Tactic: tactic}
	ts.PenaltyKicker = pickPenaltyKicker(r, &availFit)

	var taken [model.MaxPlayers]bool
	starterCursor, subCursor := 0, 0

	for _, group := range model.PositionOrder {
		counts := model.DefaultSlotCounts[group]
		nStarters, nSubs := counts[0], counts[1]
		if nStarters == 0 && nSubs == 0 {
			continue
		}

		ranked := rankCandidates(r, &availFit, &taken, group)
		need := nStarters + nSubs
		if need > len(ranked) {
			need = len(ranked)
		}

		side := model.SideCentre
		if group == model.GK {
			side = model.SideNone
		}
		pos := model.NewPositionCode(group, side)

		for i := 0; i < need; i++ {
			idx := ranked[i].idx
			taken[idx] = true
			availFit[idx] = 0
			entry := model.LineupEntry{Name: r.Players[idx].Name, Pos: pos}
			if i < nStarters {
				if starterCursor < model.NStarters {
					ts.Starters[starterCursor] = entry
					starterCursor++
				}
			} else {
				if subCursor < model.NSubs {
					ts.Subs[subCursor] = entry
					subCursor++
				}
			}
		}
	}

	return ts
}

type candidate struct {
	idx   int
	score float64
}

// rankCandidates ranks the not-yet-taken roster indices by
// skill_of(group) * avail_fit, descending, tied by ascending roster
// index (spec.md §4.2).
func rankCandidates(r *model.Roster, availFit *[model.MaxPlayers]float64, taken *[model.MaxPlayers]bool, group model.PositionGroup) []candidate {
	out := make([]candidate, 0, model.MaxPlayers)
	for i := range r.Players {
		if taken[i] {
			continue
		}
		score := float64(model.SkillOf(group, &r.Players[i])) * availFit[i]
		out = append(out, candidate{idx: i, score: score})
	}
	sort.SliceStable(out, func(a, b int) bool {
		if out[a].score != out[b].score {
			return out[a].score > out[b].score
		}
		return out[a].idx < out[b].idx
	})
	return out
}

func pickPenaltyKicker(r *model.Roster, availFit *[model.MaxPlayers]float64) string {
	best := -1
	bestScore := -1.0
	for i := range r.Players {
		score := float64(r.Players[i].Sh) * availFit[i]
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return ""
	}
	return r.Players[best].Name
}
