// Package commentary produces the per-match commentary file's
// placeholder game-log section (spec.md §6). In-game text commentary
// generation is an explicit non-goal (spec.md §1); this exists only so
// the commentary file's documented shape — stub log plus two per-team
// stat tables — can be written out by an external collaborator.
package commentary

import (
	"fmt"
	"strings"

	"github.com/jstittsworth/soccer-sim/internal/model"
)

const gameLogStub = "Game log goes here"

// Placeholder returns the fixed stub game-log section for one match,
// headed "<home> vs <away>". It does not build the commentary file's
// "<home>_<away>.txt" name.
func Placeholder(home, away string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n\n", home, away)
	b.WriteString(gameLogStub)
	b.WriteString("\n")
	return b.String()
}

// StatTable renders one side's fixed-width per-player stat table with
// a totals row, the second documented section of the commentary file.
func StatTable(team string, slots [model.NLineup]model.Slot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %4s %4s %4s %4s %4s %4s\n", team, "Sav", "Ktk", "Kps", "Sht", "Gls", "Ass")

	var totSav, totKtk, totKps, totSht, totGls, totAss int16
	for _, s := range slots {
		if s.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "%-20s %4d %4d %4d %4d %4d %4d\n", s.Name, s.Sav, s.Ktk, s.Kps, s.Sht, s.Gls, s.Ass)
		totSav += s.Sav
		totKtk += s.Ktk
		totKps += s.Kps
		totSht += s.Sht
		totGls += s.Gls
		totAss += s.Ass
	}
	fmt.Fprintf(&b, "%-20s %4d %4d %4d %4d %4d %4d\n", "TOTAL", totSav, totKtk, totKps, totSht, totGls, totAss)
	return b.String()
}
