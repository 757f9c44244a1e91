package model

// Pairing is one fixture within a week: 0-based indices into the
// league's team vector, home side first.
type Pairing struct {
	Home int
	Away int
}

// WeekMatrix is the set of fixtures played in a single week; every
// team appears in at most one pairing per week.
type WeekMatrix []Pairing

// Schedule is the full season fixture list, one WeekMatrix per week
// (spec.md §3).
type Schedule []WeekMatrix
