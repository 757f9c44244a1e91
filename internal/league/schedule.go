package league

import "github.com/jstittsworth/soccer-sim/internal/model"

const ghostTeam = -1

// BuildSchedule produces a double round-robin over nTeams teams using
// the circle method (spec.md §4.7): an odd team count gets a ghost
// team appended whose pairings are dropped (the bye week), a single
// round is built by fixing one team and rotating the rest, then the
// reverse fixtures (home/away swapped) are appended to complete the
// double round-robin. Team indices here are 0-based into the league's
// team vector, unlike the file-format's 1-based indices (spec.md §6);
// translation happens at the I/O boundary, not in this package.
func BuildSchedule(nTeams int) model.Schedule {
	if nTeams < 2 {
		return model.Schedule{}
	}

	arr := make([]int, nTeams)
	for i := range arr {
		arr[i] = i
	}
	if nTeams%2 != 0 {
		arr = append(arr, ghostTeam)
	}
	m := len(arr)
	rounds := m - 1

	var first model.Schedule
	for w := 0; w < rounds; w++ {
		var week model.WeekMatrix
		for i := 0; i < m/2; i++ {
			a, b := arr[i], arr[m-1-i]
			if a == ghostTeam || b == ghostTeam {
				continue
			}
			if w%2 == 0 {
				week = append(week, model.Pairing{Home: a, Away: b})
			} else {
				week = append(week, model.Pairing{Home: b, Away: a})
			}
		}
		first = append(first, week)

		last := arr[m-1]
		copy(arr[2:], arr[1:m-1])
		arr[1] = last
	}

	full := make(model.Schedule, 0, 2*len(first))
	full = append(full, first...)
	for _, week := range first {
		reversed := make(model.WeekMatrix, len(week))
		for i, p := range week {
			reversed[i] = model.Pairing{Home: p.Away, Away: p.Home}
		}
		full = append(full, reversed)
	}

	return full
}
