package model

// LeagueStanding is one team's accumulated row in the league table
// (spec.md §3). Invariant: Pts = 3*W + D, GD = GF - GA.
type LeagueStanding struct {
	Place int
	Team  string
	P     int16
	W     int16
	D     int16
	L     int16
	GF    int16
	GA    int16
	GD    int16
	Pts   int16
}

// Reset zeroes every accumulator field but keeps Team and Place.
func (s *LeagueStanding) Reset() {
	s.P, s.W, s.D, s.L, s.GF, s.GA, s.GD, s.Pts = 0, 0, 0, 0, 0, 0, 0, 0
}
