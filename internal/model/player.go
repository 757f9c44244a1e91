package model

// Player is one roster entry. All skill/ability/stat fields are 16-bit
// integers per spec.md §3.
type Player struct {
	Name          string
	Age           int16
	Nationality   string
	PreferredSide string // up to 4 characters drawn from {'R','L','C',' '}

	// Intrinsic skills, fit range 1..99.
	St int16 // shot-stopping
	Tk int16 // tackling
	Ps int16 // passing
	Sh int16 // shooting
	Sm int16 // stamina
	Ag int16 // aggression

	// Progression-state abilities, default DefaultAbility.
	KAb int16
	TAb int16
	PAb int16
	SAb int16

	// Season stats.
	Gam int16
	Sav int16
	Ktk int16
	Kps int16
	Sht int16
	Gls int16
	Ass int16
	DP  int16
	Inj int16
	Sus int16
	Fit int16 // per-game carry-over fatigue 0..100 (100 = fresh)
}

// IsPlaceholder reports whether p is the sentinel used to pad short
// rosters up to MaxPlayers.
func (p *Player) IsPlaceholder() bool {
	return p.Name == PlaceholderName
}

// NewPlaceholder returns the sentinel roster entry: zero ratings,
// DefaultAbility abilities, full fitness, no stats.
func NewPlaceholder() Player {
	return Player{
		Name: PlaceholderName,
		KAb:  DefaultAbility,
		TAb:  DefaultAbility,
		PAb:  DefaultAbility,
		SAb:  DefaultAbility,
		Fit:  100,
	}
}

// CapStats saturates the season stat counters at StatCap, bug-compatible
// with the upstream reference (spec.md §3 invariants).
func (p *Player) CapStats() {
	p.Sav = capInt16(p.Sav, StatCap)
	p.Ktk = capInt16(p.Ktk, StatCap)
	p.Kps = capInt16(p.Kps, StatCap)
	p.Sht = capInt16(p.Sht, StatCap)
	p.Gls = capInt16(p.Gls, StatCap)
}

func capInt16(v, max int16) int16 {
	if v > max {
		return max
	}
	return v
}

// Roster is the persistent pool of up to MaxPlayers players for one
// team. Value-typed and freely copyable (spec.md §3 Ownership).
type Roster struct {
	Team    string
	Players [MaxPlayers]Player
}

// NewRoster builds a roster from a list of real players, padding any
// remaining slots up to MaxPlayers with placeholders. It returns a
// CapacityError if more than MaxPlayers real players are supplied.
func NewRoster(team string, players []Player) (Roster, error) {
	if len(players) > MaxPlayers {
		return Roster{}, &CapacityError{Reason: "roster exceeds MaxPlayers"}
	}
	r := Roster{Team: team}
	copy(r.Players[:], players)
	for i := len(players); i < MaxPlayers; i++ {
		r.Players[i] = NewPlaceholder()
	}
	return r, nil
}

// IndexOf returns the index of the first player matching name, or -1.
// Roster-to-lineup matching is first-hit linear search (spec.md §4.5).
func (r *Roster) IndexOf(name string) int {
	for i := range r.Players {
		if r.Players[i].Name == name {
			return i
		}
	}
	return -1
}

// AvailableFitness returns Fit * 1[Inj=0] * 1[Sus=0] for every slot, the
// vector the auto-selector ranks players by (spec.md §4.2).
func (r *Roster) AvailableFitness() [MaxPlayers]float64 {
	var out [MaxPlayers]float64
	for i, p := range r.Players {
		if p.Inj == 0 && p.Sus == 0 {
			out[i] = float64(p.Fit)
		}
	}
	return out
}

// SkillOf returns the selection skill used by the auto-selector for a
// given position group (spec.md §4.2): St for GK, Tk for DF, Ps for MF
// and every other non-FW group, Sh for FW.
func SkillOf(group PositionGroup, p *Player) int16 {
	switch group {
	case GK:
		return p.St
	case DF:
		return p.Tk
	case FW:
		return p.Sh
	default:
		return p.Ps
	}
}
