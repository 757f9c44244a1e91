package model

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestNewRosterPadsWithPlaceholders(t *testing.T) {
	players := []Player{{Name: "Alice"}, {Name: "Bob"}}
	r, err := NewRoster("Arsenal", players)
	require.NoError(t, err)

	assert.Equal(t, "Alice", r.Players[0].Name)
	assert.Equal(t, "Bob", r.Players[1].Name)
	for i := 2; i < MaxPlayers; i++ {
		assert.True(t, r.Players[i].IsPlaceholder())
		assert.Equal(t, int16(DefaultAbility), r.Players[i].KAb)
		assert.Equal(t, int16(100), r.Players[i].Fit)
	}
}

func TestNewRosterRejectsOversizedInput(t *testing.T) {
	players := make([]Player, MaxPlayers+1)
	_, err := NewRoster("Too Big", players)
	require.Error(t, err)

	var capErr *CapacityError
	assert.ErrorAs(t, err, &capErr)
}

func TestIndexOfFirstHit(t *testing.T) {
	r, err := NewRoster("Chelsea", []Player{{Name: "Dup"}, {Name: "Dup"}})
	require.NoError(t, err)

	assert.Equal(t, 0, r.IndexOf("Dup"))
	assert.Equal(t, -1, r.IndexOf("Missing"))
}

func TestAvailableFitnessZeroesInjuredAndSuspended(t *testing.T) {
	players := []Player{
		{Name: "Fit", Fit: 90},
		{Name: "Injured", Fit: 90, Inj: 3},
		{Name: "Suspended", Fit: 90, Sus: 1},
	}
	r, err := NewRoster("Everton", players)
	require.NoError(t, err)

	avail := r.AvailableFitness()
	assert.Equal(t, 90.0, avail[0])
	assert.Equal(t, 0.0, avail[1])
	assert.Equal(t, 0.0, avail[2])
}

func TestCapStatsSaturatesAtStatCap(t *testing.T) {
	p := Player{Sav: 1200, Ktk: 1000, Kps: 500, Sht: StatCap + 1, Gls: 0}
	p.CapStats()

	assert.Equal(t, int16(StatCap), p.Sav)
	assert.Equal(t, int16(StatCap), p.Ktk)
	assert.Equal(t, int16(500), p.Kps)
	assert.Equal(t, int16(StatCap), p.Sht)
}

func TestSkillOfPerGroup(t *testing.T) {
	p := &Player{St: 1, Tk: 2, Ps: 3, Sh: 4}
	assert.Equal(t, int16(1), SkillOf(GK, p))
	assert.Equal(t, int16(2), SkillOf(DF, p))
	assert.Equal(t, int16(4), SkillOf(FW, p))
	assert.Equal(t, int16(3), SkillOf(MF, p))
	assert.Equal(t, int16(3), SkillOf(AM, p))
}
