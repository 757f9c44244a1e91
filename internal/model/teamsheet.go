package model

import "strings"

// PositionCode is the 3-character "<group><side>" code used throughout
// teamsheets and match state, e.g. "FWC", "GK " (spec.md §3).
type PositionCode string

// NewPositionCode builds a PositionCode from a group and side. GK is
// always forced to a blank side.
func NewPositionCode(group PositionGroup, side Side) PositionCode {
	if group == GK {
		side = SideNone
	}
	return PositionCode(string(group) + string(rune(side)))
}

// Group returns the 2-letter position group portion of the code.
func (pc PositionCode) Group() PositionGroup {
	s := string(pc)
	if len(s) < 2 {
		return ""
	}
	return PositionGroup(s[:2])
}

// Side returns the side character portion of the code (index 3, i.e.
// the byte after the 2-letter group, per spec.md §4.4's "char index 3").
func (pc PositionCode) Side() Side {
	s := string(pc)
	if len(s) < 3 {
		return SideNone
	}
	return Side(s[2])
}

// DefaultSlotCounts gives the (starters, subs) the auto-selector fills
// per position group, in PositionOrder (spec.md §4.2).
var DefaultSlotCounts = map[PositionGroup][2]int{
	GK: {1, 1},
	DF: {4, 1},
	DM: {0, 0},
	MF: {4, 2},
	AM: {0, 0},
	FW: {2, 1},
}

// LineupEntry pairs a player name with the position code they are
// assigned in a teamsheet.
type LineupEntry struct {
	Name string
	Pos  PositionCode
}

// Teamsheet is a lineup selection: 11 starters, 5 subs, a designated
// penalty kicker, and a chosen tactic (spec.md §3).
type Teamsheet struct {
	Team      string
	Tactic    Tactic
	Starters  [NStarters]LineupEntry
	Subs      [NSubs]LineupEntry
	PenaltyKicker string
}

// AllEntries returns the 16 starter+sub entries in lineup order
// (starters first, then subs), matching the N_LINEUP slot ordering
// used to build a MatchState.
func (t *Teamsheet) AllEntries() [NLineup]LineupEntry {
	var out [NLineup]LineupEntry
	copy(out[:NStarters], t.Starters[:])
	copy(out[NStarters:], t.Subs[:])
	return out
}

// PreferredSideMatches reports whether side is a substring of the
// player's preferred-side string (spec.md §4.3b).
func PreferredSideMatches(preferred string, side Side) bool {
	return strings.ContainsRune(preferred, rune(side))
}
