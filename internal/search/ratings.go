// Package search implements the rating-search engine: a
// threshold-acceptance meta-heuristic that fits six per-player skill
// ratings against a baseline league's season-end statistics by
// repeated full-season simulation (spec.md §4.9).
package search

import (
	"math/rand"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

// PlayerRatings is the six independently-perturbed skills a
// rating-search step proposes (spec.md §3's intrinsic skills).
type PlayerRatings struct {
	St, Tk, Ps, Sh, Sm, Ag int16
}

// RatingSet is a full league's proposed ratings, indexed [team][slot]
// to align with a League's Rosters. Placeholder slots carry zero
// ratings and are never perturbed.
type RatingSet [][model.MaxPlayers]PlayerRatings

// ExtractRatings reads the current six skills out of every
// non-placeholder player in rosters.
func ExtractRatings(rosters []model.Roster) RatingSet {
	rs := make(RatingSet, len(rosters))
	for t, r := range rosters {
		for i, p := range r.Players {
			if p.IsPlaceholder() {
				continue
			}
			rs[t][i] = PlayerRatings{St: p.St, Tk: p.Tk, Ps: p.Ps, Sh: p.Sh, Sm: p.Sm, Ag: p.Ag}
		}
	}
	return rs
}

// Apply copies rs's ratings into every replica roster's players,
// skipping placeholders (spec.md §8 "placeholder isolation").
func (rs RatingSet) Apply(rosters []model.Roster) {
	for t := range rosters {
		for i := range rosters[t].Players {
			p := &rosters[t].Players[i]
			if p.IsPlaceholder() {
				continue
			}
			r := rs[t][i]
			p.St, p.Tk, p.Ps, p.Sh, p.Sm, p.Ag = r.St, r.Tk, r.Ps, r.Sh, r.Sm, r.Ag
		}
	}
}

// Clone deep-copies a RatingSet (spec.md §9: snapshotting sims_best/
// sims_last must avoid reference sharing).
func (rs RatingSet) Clone() RatingSet {
	out := make(RatingSet, len(rs))
	copy(out, rs)
	return out
}

// Perturb proposes a new RatingSet by adding an independent
// U{-stepsize..+stepsize} draw to each of the six skills of every
// non-placeholder player, clamped to [1,99] (spec.md §4.9 step 3/4).
func Perturb(rs RatingSet, structural []model.Roster, stepsize int, rng *rand.Rand) RatingSet {
	out := rs.Clone()
	for t := range out {
		for i := range out[t] {
			if t < len(structural) && structural[t].Players[i].IsPlaceholder() {
				continue
			}
			p := &out[t][i]
			p.St = clampRating(p.St, stepsize, rng)
			p.Tk = clampRating(p.Tk, stepsize, rng)
			p.Ps = clampRating(p.Ps, stepsize, rng)
			p.Sh = clampRating(p.Sh, stepsize, rng)
			p.Sm = clampRating(p.Sm, stepsize, rng)
			p.Ag = clampRating(p.Ag, stepsize, rng)
		}
	}
	return out
}

func clampRating(v int16, stepsize int, rng *rand.Rand) int16 {
	delta := rng.Intn(2*stepsize+1) - stepsize
	nv := int(v) + delta
	if nv < 1 {
		nv = 1
	}
	if nv > 99 {
		nv = 99
	}
	return int16(nv)
}
