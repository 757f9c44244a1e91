package ioadapters

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedDemoLeagueReturnsSortedDistinctTeamNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	teams, rosters := SeedDemoLeague(10, 18, rng)

	assert.Len(t, teams, 10)
	assert.Len(t, rosters, 10)
	assert.True(t, sort.StringsAreSorted(teams))

	seen := map[string]bool{}
	for _, name := range teams {
		assert.False(t, seen[name], "duplicate team name %s", name)
		seen[name] = true
	}
}

func TestSeedDemoLeagueRostersMatchTeamNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	teams, rosters := SeedDemoLeague(5, 16, rng)

	for i, team := range teams {
		assert.Equal(t, team, rosters[i].Team)
	}
}

func TestSeedDemoLeaguePlayersStartAtFullFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, rosters := SeedDemoLeague(2, 16, rng)

	for _, p := range rosters[0].Players {
		if p.IsPlaceholder() {
			continue
		}
		assert.Greater(t, p.Fit, int16(0))
		assert.Equal(t, int16(100), p.Fit)
	}
}
