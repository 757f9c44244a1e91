package league

import (
	"math/rand"

	"github.com/jstittsworth/soccer-sim/internal/match"
	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/rosterupdate"
	"github.com/jstittsworth/soccer-sim/internal/sched"
	"github.com/jstittsworth/soccer-sim/internal/selector"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

// League owns one season's rosters, teamsheets, standings and fixture
// list (spec.md §3, §4.8). Teams, Rosters and Teamsheets are
// index-aligned with Table and Schedule's team indices.
type League struct {
	Teams      []string
	Rosters    []model.Roster
	Teamsheets []model.Teamsheet
	Table      []model.LeagueStanding
	Schedule   model.Schedule
	Tactics    *tactics.Table
	RootSeed   int64
	Mode       sched.Mode
}

// InitLeague builds a League from a team vector and matching rosters:
// a double round-robin schedule, a zeroed standings row per team, and
// an auto-selected neutral-tactic teamsheet for every roster (spec.md
// §4.7, lifecycle op init_league).
func InitLeague(teams []string, rosters []model.Roster, tacticsTable *tactics.Table, rootSeed int64) *League {
	l := &League{
		Teams:    teams,
		Rosters:  rosters,
		Tactics:  tacticsTable,
		RootSeed: rootSeed,
		Schedule: BuildSchedule(len(teams)),
	}
	l.Table = make([]model.LeagueStanding, len(teams))
	l.Teamsheets = make([]model.Teamsheet, len(teams))
	for i := range teams {
		l.Table[i] = model.LeagueStanding{Team: teams[i]}
		l.Teamsheets[i] = selector.AutoTeamsheet(&l.Rosters[i], model.TacticNeutral)
	}
	return l
}

// ResetAll zeroes the standings accumulators and Place (lifecycle op
// reset_all), leaving rosters, teamsheets and the schedule untouched.
// Rosters are not restored to their pre-season state: a season played
// after ResetAll starts from the rosters (stats, fitness, injuries,
// suspensions) and teamsheets the previous season left behind, so it
// does not reproduce the previous season's table.
func (l *League) ResetAll() {
	for i := range l.Table {
		l.Table[i].Reset()
		l.Table[i].Place = 0
	}
}

// matchRNGIndex derives a unique, deterministic RNG stream index for
// one side of one fixture, independent of execution order or thread
// count (spec.md §5).
func matchRNGIndex(week, fixture int, home bool) int64 {
	base := int64(week)*100000 + int64(fixture)*2
	if !home {
		base++
	}
	return base
}

type playedMatch struct {
	home, away           int
	homeGls, awayGls      int16
	homeState, awayState *model.TeamMatchState
}

// PlayWeek plays every fixture of the given week, independently and in
// parallel (disjoint team sets per spec.md §5), then sequentially folds
// results into the table and rosters and re-selects each played team's
// teamsheet (spec.md §4.8).
func (l *League) PlayWeek(week int) {
	fixtures := l.Schedule[week]
	results := make([]playedMatch, len(fixtures))

	sched.Run(l.Mode, len(fixtures), func(i int) {
		p := fixtures[i]
		homeRNG := rand.New(rand.NewSource(l.RootSeed + matchRNGIndex(week, i, true)))
		awayRNG := rand.New(rand.NewSource(l.RootSeed + matchRNGIndex(week, i, false)))

		home, away := match.NewMatch(&l.Rosters[p.Home], &l.Rosters[p.Away], &l.Teamsheets[p.Home], &l.Teamsheets[p.Away], homeRNG, awayRNG, l.Tactics)
		res := match.Simulate(home, away, l.Tactics)

		results[i] = playedMatch{
			home: p.Home, away: p.Away,
			homeGls: res.HomeGoals, awayGls: res.AwayGoals,
			homeState: res.Home, awayState: res.Away,
		}
	})

	const updateRNGOffset = int64(1) << 32

	for i, r := range results {
		UpdateTable(l.Table, r.homeGls, r.awayGls, r.home, r.away)

		homeRNG := rand.New(rand.NewSource(l.RootSeed + matchRNGIndex(week, i, true) + updateRNGOffset))
		awayRNG := rand.New(rand.NewSource(l.RootSeed + matchRNGIndex(week, i, false) + updateRNGOffset))

		rosterupdate.UpdateRoster(&l.Rosters[r.home], r.homeState, homeRNG)
		rosterupdate.UpdateRoster(&l.Rosters[r.away], r.awayState, awayRNG)

		l.Teamsheets[r.home] = selector.AutoTeamsheet(&l.Rosters[r.home], model.TacticNeutral)
		l.Teamsheets[r.away] = selector.AutoTeamsheet(&l.Rosters[r.away], model.TacticNeutral)
	}
}

// PlaySeason plays every week in schedule order (weeks are strictly
// sequential, spec.md §5) then ranks the final table.
func (l *League) PlaySeason() {
	for week := range l.Schedule {
		l.PlayWeek(week)
	}
	Rank(l.Table)
}
