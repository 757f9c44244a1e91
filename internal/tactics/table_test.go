package tactics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

func TestTactMultDefaultsToNeutral(t *testing.T) {
	table := NewTable()
	assert.Equal(t, float32(1.0), table.TactMult(model.TacticAttacking, model.FW, model.SkillShoot))
}

func TestTactMultGKAlwaysNeutral(t *testing.T) {
	table := NewTable()
	table.AddMultiplier(model.TacticAttacking, model.GK, model.SkillShoot, 2.0)
	assert.Equal(t, float32(1.0), table.TactMult(model.TacticAttacking, model.GK, model.SkillShoot))
}

func TestAddMultiplierRoundTrips(t *testing.T) {
	table := NewTable()
	table.AddMultiplier(model.TacticDefensive, model.DF, model.SkillTackle, 1.2)
	assert.Equal(t, float32(1.2), table.TactMult(model.TacticDefensive, model.DF, model.SkillTackle))
}

func TestBonusMultDefaultsToNeutral(t *testing.T) {
	table := NewTable()
	assert.Equal(t, float32(1.0), table.BonusMult(model.TacticNeutral, model.TacticAttacking, model.FW, model.SkillShoot))
}

func TestAddBonusRoundTripsAndCounts(t *testing.T) {
	table := NewTable()
	table.AddBonus(model.TacticAttacking, model.TacticNeutral, model.FW, model.SkillShoot, 1.08)
	assert.Equal(t, float32(1.08), table.BonusMult(model.TacticAttacking, model.TacticNeutral, model.FW, model.SkillShoot))
	assert.Equal(t, 1, table.NumBonusRows())
}

func TestDefaultTableHasExactlyTwelveBonusRows(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, 12, table.NumBonusRows())
}

func TestDefaultTableCoversEveryTacticPositionSkill(t *testing.T) {
	table := DefaultTable()
	tacticsList := []model.Tactic{
		model.TacticNeutral, model.TacticDefensive, model.TacticAttacking,
		model.TacticCounter, model.TacticLongBall, model.TacticPossession,
	}
	positions := []model.PositionGroup{model.DF, model.DM, model.MF, model.AM, model.FW}
	skills := []model.Skill{model.SkillShoot, model.SkillPass, model.SkillTackle}

	for _, tc := range tacticsList {
		for _, pos := range positions {
			for _, sk := range skills {
				mult := table.TactMult(tc, pos, sk)
				assert.Greater(t, mult, float32(0))
			}
		}
	}
}
