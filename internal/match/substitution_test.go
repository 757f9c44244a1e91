package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

func freshSide(rng *rand.Rand) *model.TeamMatchState {
	ms := newTestState(rng)
	ms.Gk = 0
	ms.Slots[0].Pos = model.NewPositionCode(model.GK, model.SideNone)
	ms.Slots[0].Active = true
	ms.Slots[0].St = 50
	for i := 1; i <= model.NStarters-1; i++ {
		ms.Slots[i].Pos = model.NewPositionCode(model.FW, model.SideCentre)
		ms.Slots[i].Active = true
		ms.Slots[i].St = int16(10 + i)
	}
	for i := model.NStarters; i < model.NLineup; i++ {
		ms.Slots[i].Pos = model.NewPositionCode(model.FW, model.SideCentre)
		ms.Slots[i].Active = false
		ms.Slots[i].Bench = true
		ms.Slots[i].St = int16(20 + i)
	}
	return ms
}

func TestAvailIndicesExcludesInjuredRedAndDoubleYellow(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	ms.Slots[model.NStarters].Injured = true
	ms.Slots[model.NStarters+1].Red = true
	ms.Slots[model.NStarters+2].Yellow = 2

	avail := availIndices(ms)
	for _, idx := range avail {
		assert.NotEqual(t, model.NStarters, idx)
		assert.NotEqual(t, model.NStarters+1, idx)
		assert.NotEqual(t, model.NStarters+2, idx)
	}
	assert.Contains(t, avail, model.NStarters+3)
}

func TestSubstituteExactPositionMatchBringsOnExactCode(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	opp := freshSide(rand.New(rand.NewSource(2)))
	table := tactics.DefaultTable()

	victimIdx := 1
	ms.Slots[victimIdx].Active = false
	ms.Slots[victimIdx].Injured = true

	substitute(ms, opp, victimIdx, table)

	assert.Equal(t, 1, ms.SubCnt)
	broughtOn := false
	for i := model.NStarters; i < model.NLineup; i++ {
		if ms.Slots[i].Active {
			broughtOn = true
			assert.Equal(t, ms.Slots[victimIdx].Pos, ms.Slots[i].Pos)
		}
	}
	assert.True(t, broughtOn)
}

func TestSubstituteGKInjuryPromotesBenchOutfielderWithHighestSt(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	opp := freshSide(rand.New(rand.NewSource(2)))
	table := tactics.DefaultTable()

	ms.Slots[0].Active = false
	ms.Slots[0].Injured = true

	substitute(ms, opp, 0, table)

	require.GreaterOrEqual(t, ms.Gk, model.NStarters)
	assert.Equal(t, model.GK, ms.Slots[ms.Gk].Pos.Group())
	assert.Equal(t, 0.0, ms.Slots[ms.Gk].Sh0)
}

func TestSubstituteNoAvailAndGKInjuredPromotesActiveOutfieldToGK(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	opp := freshSide(rand.New(rand.NewSource(2)))
	table := tactics.DefaultTable()

	// Exhaust the bench.
	for i := model.NStarters; i < model.NLineup; i++ {
		ms.Slots[i].Red = true
	}
	ms.Slots[0].Active = false
	ms.Slots[0].Injured = true

	substitute(ms, opp, 0, table)

	assert.NotEqual(t, 0, ms.Gk)
	assert.Equal(t, model.GK, ms.Slots[ms.Gk].Pos.Group())
}

func TestSubstituteNoAvailReturnsWithoutPanicForOutfieldInjury(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	opp := freshSide(rand.New(rand.NewSource(2)))
	table := tactics.DefaultTable()

	for i := model.NStarters; i < model.NLineup; i++ {
		ms.Slots[i].Red = true
	}
	ms.Slots[1].Active = false
	ms.Slots[1].Injured = true

	assert.NotPanics(t, func() { substitute(ms, opp, 1, table) })
	assert.Equal(t, 0, ms.SubCnt)
}

func TestSubstituteCapsAtThreeSubstitutions(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	opp := freshSide(rand.New(rand.NewSource(2)))
	table := tactics.DefaultTable()
	ms.SubCnt = 3

	ms.Slots[1].Active = false
	ms.Slots[1].Injured = true
	substitute(ms, opp, 1, table)

	assert.Equal(t, 3, ms.SubCnt)
	for i := model.NStarters; i < model.NLineup; i++ {
		assert.False(t, ms.Slots[i].Active)
	}
}

func TestBringOnMarksActiveAndUsed(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	bringOn(ms, model.NStarters)
	assert.True(t, ms.Slots[model.NStarters].Active)
	assert.True(t, ms.Slots[model.NStarters].Used)
}

func TestPreferNonGKSkipsGKSlots(t *testing.T) {
	ms := freshSide(rand.New(rand.NewSource(1)))
	ms.Slots[model.NStarters].Pos = model.NewPositionCode(model.GK, model.SideNone)
	avail := []int{model.NStarters, model.NStarters + 1}

	idx := preferNonGK(ms, avail)
	assert.Equal(t, model.NStarters+1, idx)
}
