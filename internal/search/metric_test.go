package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/soccer-sim/internal/league"
	"github.com/jstittsworth/soccer-sim/internal/model"
)

func leagueWith(t *testing.T, gls int16, statOffset int16) *league.League {
	t.Helper()
	roster, err := model.NewRoster("FC", []model.Player{{Name: "P1", Gls: gls}})
	if err != nil {
		t.Fatal(err)
	}
	roster.Players[0].Sav += statOffset
	return &league.League{
		Rosters: []model.Roster{roster},
		Table:   []model.LeagueStanding{{Team: "FC", Pts: 10 + gls}},
	}
}

func TestRMSEIsZeroForIdenticalLeagues(t *testing.T) {
	baseline := leagueWith(t, 5, 0)
	rep := leagueWith(t, 5, 0)

	rmse := RMSE(baseline, []*league.League{rep})
	assert.Equal(t, 0.0, rmse)
}

func TestRMSEIsPositiveWhenStatsDiffer(t *testing.T) {
	baseline := leagueWith(t, 5, 0)
	rep := leagueWith(t, 2, 3)

	rmse := RMSE(baseline, []*league.League{rep})
	assert.Greater(t, rmse, 0.0)
}

func TestRMSEWithNoReplicasReturnsZero(t *testing.T) {
	baseline := leagueWith(t, 5, 0)
	rmse := RMSE(baseline, nil)
	assert.Equal(t, 0.0, rmse)
}

func TestRMSEAveragesAcrossMultipleReplicas(t *testing.T) {
	baseline := leagueWith(t, 5, 0)
	repExact := leagueWith(t, 5, 0)
	repOff := leagueWith(t, 6, 0)

	rmse := RMSE(baseline, []*league.League{repExact, repOff})
	assert.Greater(t, rmse, 0.0)
}

func TestSqComputesSquaredDifference(t *testing.T) {
	assert.Equal(t, 9.0, sq(5, 2))
	assert.Equal(t, 0.0, sq(3, 3))
}
