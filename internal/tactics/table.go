// Package tactics implements the pure-data tactics table: multiplier
// lookups by (tactic, position, skill) and bonus lookups by (own
// tactic, opponent tactic, position, skill) (spec.md §4.1).
package tactics

import "github.com/jstittsworth/soccer-sim/internal/model"

type multKey struct {
	tactic   model.Tactic
	position model.PositionGroup
	skill    model.Skill
}

type bonusKey struct {
	ownTactic model.Tactic
	oppTactic model.Tactic
	position  model.PositionGroup
	skill     model.Skill
}

// Table holds the multiplier and bonus rows parsed from a tactics file
// (spec.md §6). The file parser itself is an external collaborator
// (internal/ioadapters.TacticsFileLoader); Table is the pure in-memory
// lookup structure that parser feeds.
type Table struct {
	mult  map[multKey]float32
	bonus map[bonusKey]float32
}

// NewTable returns an empty table. Use AddMultiplier/AddBonus to
// populate it, or ioadapters.TacticsFileLoader to parse one from a
// file.
func NewTable() *Table {
	return &Table{
		mult:  make(map[multKey]float32),
		bonus: make(map[bonusKey]float32),
	}
}

// AddMultiplier records one "M" row.
func (t *Table) AddMultiplier(tactic model.Tactic, position model.PositionGroup, skill model.Skill, mult float32) {
	t.mult[multKey{tactic, position, skill}] = mult
}

// AddBonus records one "B" row. Exactly 12 bonus rows are expected by
// spec.md §4.1, but Table itself does not enforce that count; callers
// can check it with NumBonusRows.
func (t *Table) AddBonus(ownTactic, oppTactic model.Tactic, position model.PositionGroup, skill model.Skill, mult float32) {
	t.bonus[bonusKey{ownTactic, oppTactic, position, skill}] = mult
}

// NumBonusRows reports how many bonus rows are loaded, for validation
// by callers that expect exactly 12.
func (t *Table) NumBonusRows() int {
	return len(t.bonus)
}

// TactMult returns the multiplier for (tactic, position, skill). GK is
// always neutral (1.0) and is never consulted for a real row.
func (t *Table) TactMult(tactic model.Tactic, position model.PositionGroup, skill model.Skill) float32 {
	if position == model.GK {
		return 1.0
	}
	if v, ok := t.mult[multKey{tactic, position, skill}]; ok {
		return v
	}
	return 1.0
}

// BonusMult returns the bonus multiplier for (own tactic, opponent
// tactic, position, skill), or 1.0 if no matching row exists.
func (t *Table) BonusMult(ownTactic, oppTactic model.Tactic, position model.PositionGroup, skill model.Skill) float32 {
	if v, ok := t.bonus[bonusKey{ownTactic, oppTactic, position, skill}]; ok {
		return v
	}
	return 1.0
}
