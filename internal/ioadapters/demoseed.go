package ioadapters

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

// SeedDemoLeague generates a deterministic synthetic team vector and
// matching rosters, standing in for DirSeeder's real job of copying a
// packaged default roster set into a user's data directory. Team names
// are sorted lexicographically to match the league-file loading rule
// (spec.md §6).
func SeedDemoLeague(nTeams, playersPerTeam int, rng *rand.Rand) ([]string, []model.Roster) {
	teams := make([]string, nTeams)
	for i := range teams {
		teams[i] = fmt.Sprintf("Team %02d", i+1)
	}
	sort.Strings(teams)

	rosters := make([]model.Roster, nTeams)
	for t, name := range teams {
		players := make([]model.Player, playersPerTeam)
		for i := range players {
			players[i] = demoPlayer(name, i, rng)
		}
		r, err := model.NewRoster(name, players)
		if err != nil {
			// NewRoster only fails when playersPerTeam > MaxPlayers, which
			// is a caller programming error, not a runtime data problem.
			panic(err)
		}
		rosters[t] = r
	}
	return teams, rosters
}

var demoSides = []string{"R", "L", "C", "RC", "LC"}
var demoPositions = []model.PositionGroup{model.GK, model.DF, model.DF, model.DF, model.DF, model.MF, model.MF, model.MF, model.MF, model.FW, model.FW}

func demoPlayer(team string, idx int, rng *rand.Rand) model.Player {
	group := model.MF
	if idx < len(demoPositions) {
		group = demoPositions[idx]
	}
	return model.Player{
		Name:          fmt.Sprintf("%s Player %02d", team, idx+1),
		Age:           int16(18 + rng.Intn(20)),
		Nationality:   "N/A",
		PreferredSide: demoSides[rng.Intn(len(demoSides))],
		St:            demoSkill(group, model.GK, rng),
		Tk:            demoSkill(group, model.DF, rng),
		Ps:            demoSkill(group, model.MF, rng),
		Sh:            demoSkill(group, model.FW, rng),
		Sm:            int16(40 + rng.Intn(40)),
		Ag:            int16(10 + rng.Intn(50)),
		KAb:           model.DefaultAbility,
		TAb:           model.DefaultAbility,
		PAb:           model.DefaultAbility,
		SAb:           model.DefaultAbility,
		Fit:           100,
	}
}

// demoSkill biases a player's primary-position skill upward so the
// auto-selector's skill_of ranking produces sensible lineups.
func demoSkill(group, target model.PositionGroup, rng *rand.Rand) int16 {
	if group == target {
		return int16(60 + rng.Intn(39))
	}
	return int16(20 + rng.Intn(40))
}
