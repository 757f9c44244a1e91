package contrib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

func newMatchState(tactic model.Tactic) *model.TeamMatchState {
	ms := &model.TeamMatchState{Tactic: tactic, Gk: -1, Pk: -1}
	return ms
}

func TestComputeContribsZeroesGoalkeeper(t *testing.T) {
	home := newMatchState(model.TacticNeutral)
	away := newMatchState(model.TacticNeutral)
	table := tactics.DefaultTable()

	home.Slots[0].Active = true
	home.Slots[0].Pos = model.NewPositionCode(model.GK, model.SideNone)
	home.Slots[0].Sh, home.Slots[0].Ps, home.Slots[0].Tk = 80, 80, 80
	home.Gk = 0

	ComputeContribs(home, away, table)

	assert.Equal(t, 0.0, home.Slots[0].Sh0)
	assert.Equal(t, 0.0, home.Slots[0].Ps0)
	assert.Equal(t, 0.0, home.Slots[0].Tk0)
}

func TestComputeContribsAppliesSidePenaltyForMismatch(t *testing.T) {
	home := newMatchState(model.TacticNeutral)
	away := newMatchState(model.TacticNeutral)
	table := tactics.NewTable() // neutral multipliers/bonuses everywhere

	home.Slots[0].Active = true
	home.Slots[0].Pos = model.NewPositionCode(model.FW, model.SideRight)
	home.Slots[0].PreferredSide = "L"
	home.Slots[0].Sh = 100

	ComputeContribs(home, away, table)

	// A single active FW on the right (nR=1, nL=0) gives a side-balance
	// factor of 1-0.25*1/1 = 0.75, and the preferred-side mismatch adds
	// another 0.75: 100 * 0.75 * 0.75 = 56.25.
	assert.InDelta(t, 56.25, home.Slots[0].Sh0, 1e-9)
}

func TestComputeContribsForSlotLeavesOtherSlotsUntouched(t *testing.T) {
	home := newMatchState(model.TacticNeutral)
	away := newMatchState(model.TacticNeutral)
	table := tactics.NewTable()

	home.Slots[0].Active = true
	home.Slots[0].Pos = model.NewPositionCode(model.FW, model.SideCentre)
	home.Slots[0].Sh = 60
	home.Slots[1].Active = true
	home.Slots[1].Pos = model.NewPositionCode(model.FW, model.SideCentre)
	home.Slots[1].Sh = 40

	ComputeContribs(home, away, table)
	before := home.Slots[1].Sh0

	home.Slots[0].Sh = 999
	ComputeContribsForSlot(home, away, table, 0)

	assert.Equal(t, before, home.Slots[1].Sh0)
}

func TestComputeContribsForSlotZeroesGoalkeeperSlot(t *testing.T) {
	home := newMatchState(model.TacticNeutral)
	away := newMatchState(model.TacticNeutral)
	table := tactics.DefaultTable()

	home.Slots[0].Pos = model.NewPositionCode(model.GK, model.SideNone)
	home.Slots[0].Sh, home.Slots[0].Ps, home.Slots[0].Tk = 80, 80, 80

	ComputeContribsForSlot(home, away, table, 0)

	assert.Equal(t, 0.0, home.Slots[0].Sh0)
	assert.Equal(t, 0.0, home.Slots[0].Ps0)
	assert.Equal(t, 0.0, home.Slots[0].Tk0)
}
