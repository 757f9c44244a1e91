package search

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jstittsworth/soccer-sim/internal/league"
)

const (
	// percentileAg and percentileSm are the fixed aggression/stamina
	// values percentile init assigns. The source's field labels for
	// these two look swapped relative to apparent intent, but source
	// behavior is preserved verbatim rather than silently "fixed"
	// (spec.md §9 open question).
	percentileAg int16 = 30
	percentileSm int16 = 50
)

// RandomRatings assigns six independent U{1..99} ratings to every
// non-placeholder player (spec.md §4.9 "random" init).
func RandomRatings(l *league.League, rng *rand.Rand) RatingSet {
	rs := make(RatingSet, len(l.Rosters))
	for t, r := range l.Rosters {
		for i, p := range r.Players {
			if p.IsPlaceholder() {
				continue
			}
			rs[t][i] = PlayerRatings{
				St: randSkill(rng), Tk: randSkill(rng), Ps: randSkill(rng),
				Sh: randSkill(rng), Sm: randSkill(rng), Ag: randSkill(rng),
			}
		}
	}
	return rs
}

func randSkill(rng *rand.Rand) int16 {
	return int16(1 + rng.Intn(99))
}

// PercentileRatings derives {St,Tk,Ps,Sh} from the empirical CDF of the
// baseline league's season-end {Sav,Ktk,Kps,Sht} across the full
// player population, scaled to a [1,99] percentile rank; Ag and Sm are
// set to fixed constants (spec.md §4.9 "percentile" init).
func PercentileRatings(l *league.League) RatingSet {
	sav := collectStat(l, func(p *playerRef) float64 { return float64(p.Sav) })
	ktk := collectStat(l, func(p *playerRef) float64 { return float64(p.Ktk) })
	kps := collectStat(l, func(p *playerRef) float64 { return float64(p.Kps) })
	sht := collectStat(l, func(p *playerRef) float64 { return float64(p.Sht) })

	sortedSav := sortedCopy(sav)
	sortedKtk := sortedCopy(ktk)
	sortedKps := sortedCopy(kps)
	sortedSht := sortedCopy(sht)

	rs := make(RatingSet, len(l.Rosters))
	for t, r := range l.Rosters {
		for i, p := range r.Players {
			if p.IsPlaceholder() {
				continue
			}
			rs[t][i] = PlayerRatings{
				St: percentileRank(float64(p.Sav), sortedSav),
				Tk: percentileRank(float64(p.Ktk), sortedKtk),
				Ps: percentileRank(float64(p.Kps), sortedKps),
				Sh: percentileRank(float64(p.Sht), sortedSht),
				Ag: percentileAg,
				Sm: percentileSm,
			}
		}
	}
	return rs
}

type playerRef struct {
	Sav, Ktk, Kps, Sht int16
}

func collectStat(l *league.League, field func(*playerRef) float64) []float64 {
	var out []float64
	for _, r := range l.Rosters {
		for _, p := range r.Players {
			if p.IsPlaceholder() {
				continue
			}
			ref := playerRef{Sav: p.Sav, Ktk: p.Ktk, Kps: p.Kps, Sht: p.Sht}
			out = append(out, field(&ref))
		}
	}
	return out
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}

// percentileRank scales x's empirical CDF value within sorted to
// [1,99], truncated (spec.md §4.9).
func percentileRank(x float64, sorted []float64) int16 {
	if len(sorted) == 0 {
		return 1
	}
	p := stat.CDF(x, stat.Empirical, sorted, nil) * 100
	v := int16(p)
	if v < 1 {
		v = 1
	}
	if v > 99 {
		v = 99
	}
	return v
}
