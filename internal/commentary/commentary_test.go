package commentary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

func TestPlaceholderNamesBothTeamsAndStubsLog(t *testing.T) {
	out := Placeholder("Home FC", "Away FC")
	assert.Contains(t, out, "Home FC vs Away FC")
	assert.Contains(t, out, "Game log goes here")
}

func TestStatTableIncludesEveryNamedSlotAndTotals(t *testing.T) {
	var slots [model.NLineup]model.Slot
	slots[0] = model.Slot{Name: "Alice", Sav: 2, Ktk: 1, Kps: 3, Sht: 4, Gls: 1, Ass: 2}
	slots[1] = model.Slot{Name: "Bob", Sav: 1, Ktk: 0, Kps: 0, Sht: 2, Gls: 0, Ass: 1}

	out := StatTable("Home FC", slots)

	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "TOTAL")
}

func TestStatTableSkipsUnnamedSlots(t *testing.T) {
	var slots [model.NLineup]model.Slot
	slots[0] = model.Slot{Name: "Alice"}

	out := StatTable("Home FC", slots)
	lineCount := 0
	for _, r := range out {
		if r == '\n' {
			lineCount++
		}
	}
	// header + Alice + TOTAL = 3 lines.
	assert.Equal(t, 3, lineCount)
}

func TestStatTableTotalsSumEachColumn(t *testing.T) {
	var slots [model.NLineup]model.Slot
	slots[0] = model.Slot{Name: "Alice", Gls: 2}
	slots[1] = model.Slot{Name: "Bob", Gls: 3}

	out := StatTable("Home FC", slots)
	assert.Contains(t, out, "TOTAL")
	// The rendered totals row should reflect Gls=5 somewhere in the string.
	assert.Contains(t, out, "5")
}
