package match

import "github.com/jstittsworth/soccer-sim/internal/model"

// field selects one of a slot's post-fatigue contribution fields for the
// weighted-sampling helpers below, avoiding an allocation-per-event
// closure (spec.md §9 design note: reuse a fixed-size weights buffer).
type field int

const (
	fieldShm field = iota
	fieldPsm
	fieldTkm
)

func (f field) of(s *model.Slot) float64 {
	switch f {
	case fieldShm:
		return s.Shm
	case fieldPsm:
		return s.Psm
	default:
		return s.Tkm
	}
}

// sumActiveField sums f over every active slot of ms.
func sumActiveField(ms *model.TeamMatchState, f field) float64 {
	sum := 0.0
	for i := range ms.Slots {
		if ms.Slots[i].Active {
			sum += f.of(&ms.Slots[i])
		}
	}
	return sum
}

// sampleActiveWeighted draws one active slot index of ms weighted by f,
// excluding exclude (pass -1 to exclude nothing).
func sampleActiveWeighted(ms *model.TeamMatchState, f field, exclude int) int {
	var idx [model.NLineup]int
	var weights [model.NLineup]float64
	n := 0
	for i := range ms.Slots {
		if !ms.Slots[i].Active || i == exclude {
			continue
		}
		idx[n] = i
		weights[n] = f.of(&ms.Slots[i])
		n++
	}
	if n == 0 {
		return -1
	}
	pick := weightedIndex(weights[:n], ms.RNG)
	if pick < 0 {
		return -1
	}
	return idx[pick]
}

// sampleActiveWeightedAg draws one active slot weighted by Ag, excluding
// exclude (pass -1 to exclude nothing); used by the foul event.
func sampleActiveWeightedAg(ms *model.TeamMatchState, exclude int) int {
	var idx [model.NLineup]int
	var weights [model.NLineup]float64
	n := 0
	for i := range ms.Slots {
		if !ms.Slots[i].Active || i == exclude {
			continue
		}
		idx[n] = i
		weights[n] = float64(ms.Slots[i].Ag)
		n++
	}
	if n == 0 {
		return -1
	}
	pick := weightedIndex(weights[:n], ms.RNG)
	if pick < 0 {
		return -1
	}
	return idx[pick]
}

// sampleActiveUniform draws one active slot index uniformly.
func sampleActiveUniform(ms *model.TeamMatchState) int {
	var idx [model.NLineup]int
	n := 0
	for i := range ms.Slots {
		if ms.Slots[i].Active {
			idx[n] = i
			n++
		}
	}
	if n == 0 {
		return -1
	}
	return idx[ms.RNG.Intn(n)]
}
