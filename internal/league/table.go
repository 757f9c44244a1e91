// Package league maintains standings, builds the round-robin fixture
// list, and drives a season of matches across weeks (spec.md §4.6-4.8).
package league

import "github.com/jstittsworth/soccer-sim/internal/model"

// UpdateTable folds one played match's goals into both teams' rows
// (spec.md §4.6).
func UpdateTable(table []model.LeagueStanding, homeGls, awayGls int16, homeIdx, awayIdx int) {
	applyResult(&table[homeIdx], homeGls, awayGls)
	applyResult(&table[awayIdx], awayGls, homeGls)
}

func applyResult(row *model.LeagueStanding, own, opp int16) {
	row.P++
	row.GF += own
	row.GA += opp
	switch {
	case own > opp:
		row.W++
	case own == opp:
		row.D++
	default:
		row.L++
	}
	row.GD = row.GF - row.GA
	row.Pts = 3*row.W + row.D
}

// Rank assigns Place 1..N by repeatedly finding the current leader
// under (Pts desc, GD desc, GF+1 desc) and masking it out (spec.md
// §4.6). beats compares the three keys as a tuple, so the +1 offset on
// GF does not change the order; it matters only for a product-based
// comparison, which this code does not use.
func Rank(table []model.LeagueStanding) {
	n := len(table)
	masked := make([]bool, n)
	for place := 1; place <= n; place++ {
		best := -1
		for i := 0; i < n; i++ {
			if masked[i] {
				continue
			}
			if best < 0 || beats(&table[i], &table[best]) {
				best = i
			}
		}
		if best < 0 {
			break
		}
		table[best].Place = place
		masked[best] = true
	}
}

func beats(a, b *model.LeagueStanding) bool {
	if a.Pts != b.Pts {
		return a.Pts > b.Pts
	}
	if a.GD != b.GD {
		return a.GD > b.GD
	}
	return (a.GF + 1) > (b.GF + 1)
}
