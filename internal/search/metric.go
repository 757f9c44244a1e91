package search

import (
	"math"

	"github.com/jstittsworth/soccer-sim/internal/league"
	"github.com/jstittsworth/soccer-sim/internal/model"
)

// RMSE implements spec.md §4.9's metric: sum of squares over
// player-level stats {Gam,Sav,Ktk,Kps,Sht,Gls,Ass,DP} and team-level
// {P,W,D,L,GF,GA,GD,Pts}, of per-slot differences cast to 64-bit, then
// sqrt(sumSq / (n_teams * n_reps)).
func RMSE(baseline *league.League, reps []*league.League) float64 {
	var sumSq float64
	nTeams := len(baseline.Rosters)

	for _, rep := range reps {
		for t := 0; t < nTeams; t++ {
			sumSq += playerSumSq(baseline.Rosters[t], rep.Rosters[t])
			sumSq += teamSumSq(baseline.Table[t], rep.Table[t])
		}
	}

	n := float64(nTeams * len(reps))
	if n == 0 {
		return 0
	}
	rmse := math.Sqrt(sumSq / n)
	if math.IsNaN(rmse) || math.IsInf(rmse, 0) {
		return math.Inf(1)
	}
	return rmse
}

func playerSumSq(base, rep model.Roster) float64 {
	var sum float64
	for i := range base.Players {
		bp, rp := &base.Players[i], &rep.Players[i]
		sum += sq(bp.Gam, rp.Gam)
		sum += sq(bp.Sav, rp.Sav)
		sum += sq(bp.Ktk, rp.Ktk)
		sum += sq(bp.Kps, rp.Kps)
		sum += sq(bp.Sht, rp.Sht)
		sum += sq(bp.Gls, rp.Gls)
		sum += sq(bp.Ass, rp.Ass)
		sum += sq(bp.DP, rp.DP)
	}
	return sum
}

func teamSumSq(base, rep model.LeagueStanding) float64 {
	var sum float64
	sum += sq(base.P, rep.P)
	sum += sq(base.W, rep.W)
	sum += sq(base.D, rep.D)
	sum += sq(base.L, rep.L)
	sum += sq(base.GF, rep.GF)
	sum += sq(base.GA, rep.GA)
	sum += sq(base.GD, rep.GD)
	sum += sq(base.Pts, rep.Pts)
	return sum
}

func sq(a, b int16) float64 {
	d := float64(a) - float64(b)
	return d * d
}
