package tactics

import "github.com/jstittsworth/soccer-sim/internal/model"

// DefaultTable returns a minimal, internally-consistent tactics table
// covering every tactic x outfield-position x skill combination (neutral
// 1.0 for TacticNeutral), plus the twelve bonus rows a
// real tactics file is expected to carry (spec.md §4.1). It exists so
// the engine runs end to end without the external tactics-file parser
// (internal/ioadapters.TacticsFileLoader) being wired to a real file,
// and is the fixture used by package tests.
func DefaultTable() *Table {
	t := NewTable()

	tactics := []model.Tactic{
		model.TacticNeutral, model.TacticDefensive, model.TacticAttacking,
		model.TacticCounter, model.TacticLongBall, model.TacticPossession,
	}
	positions := []model.PositionGroup{model.DF, model.DM, model.MF, model.AM, model.FW}
	skills := []model.Skill{model.SkillShoot, model.SkillPass, model.SkillTackle}

	// Each non-neutral tactic nudges its signature skill up 10% and its
	// other two skills down 5%; TacticNeutral stays at 1.0 everywhere.
	signature := map[model.Tactic]model.Skill{
		model.TacticAttacking:  model.SkillShoot,
		model.TacticDefensive:  model.SkillTackle,
		model.TacticPossession: model.SkillPass,
		model.TacticLongBall:   model.SkillShoot,
		model.TacticCounter:    model.SkillPass,
	}

	for _, tc := range tactics {
		for _, pos := range positions {
			for _, sk := range skills {
				mult := float32(1.0)
				if sig, ok := signature[tc]; ok {
					if sk == sig {
						mult = 1.1
					} else {
						mult = 0.95
					}
				}
				t.AddMultiplier(tc, pos, sk, mult)
			}
		}
	}

	// Ten bonus rows: each of the five non-neutral tactics gets one
	// favourable row when facing TacticNeutral, and TacticNeutral gets one
	// unfavourable row when facing it, applied to the signature skill only.
	for _, tc := range []model.Tactic{
		model.TacticDefensive, model.TacticAttacking, model.TacticCounter,
		model.TacticLongBall, model.TacticPossession,
	} {
		sig := signature[tc]
		t.AddBonus(tc, model.TacticNeutral, model.FW, sig, 1.08)
		t.AddBonus(model.TacticNeutral, tc, model.FW, sig, 0.92)
	}
	// Rows eleven and twelve: neutral vs neutral no-op bonuses, included
	// so the row count matches the "exactly 12 rows" spec.md §4.1 calls out.
	t.AddBonus(model.TacticNeutral, model.TacticNeutral, model.FW, model.SkillShoot, 1.0)
	t.AddBonus(model.TacticNeutral, model.TacticNeutral, model.FW, model.SkillPass, 1.0)

	return t
}
