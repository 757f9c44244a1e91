// Package ioadapters declares the interfaces for every external
// collaborator spec.md §1 and §6 place out of core scope: fixed-width
// roster/teamsheet file I/O, the tactics-table file parser,
// directory-seeding helpers, table-display formatting, and progress
// reporting. Only interfaces plus minimal in-memory stand-ins live
// here; the real fixed-width parsers are explicitly not implemented.
package ioadapters

import (
	"strconv"

	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

// RosterReader loads a team's roster from wherever it is stored.
type RosterReader interface {
	ReadRoster(team string) (model.Roster, error)
}

// RosterWriter persists a team's roster back to storage.
type RosterWriter interface {
	WriteRoster(r model.Roster) error
}

// TeamsheetReader loads a team's saved teamsheet.
type TeamsheetReader interface {
	ReadTeamsheet(team string) (model.Teamsheet, error)
}

// TeamsheetWriter persists a teamsheet.
type TeamsheetWriter interface {
	WriteTeamsheet(t model.Teamsheet) error
}

// TacticsFileLoader parses the tactics-table file format (spec.md §6)
// into a ready-to-query tactics.Table.
type TacticsFileLoader interface {
	LoadTactics() (*tactics.Table, error)
}

// DirSeeder copies a packaged set of default rosters/teamsheets/tactics
// into a user's working data directory on first run.
type DirSeeder interface {
	SeedDefaults(destDir string) error
}

// TableFormatter renders a league table to its fixed-width display
// format (spec.md §6).
type TableFormatter interface {
	FormatTable(standings []model.LeagueStanding) string
}

// ProgressReporter receives periodic updates from a long-running
// operation (a season, a rating-search run) without knowing anything
// about terminal UIs or plotting.
type ProgressReporter interface {
	Report(stage string, current, total int)
}

// NoopProgressReporter discards every report; used where no interactive
// reporter is wired.
type NoopProgressReporter struct{}

func (NoopProgressReporter) Report(stage string, current, total int) {}

// MemoryStore is a minimal in-memory stand-in for the roster/teamsheet
// file-format collaborators, sufficient to drive cmd/simulate and
// tests without the real fixed-width parsers.
type MemoryStore struct {
	Rosters    map[string]model.Roster
	Teamsheets map[string]model.Teamsheet
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Rosters:    make(map[string]model.Roster),
		Teamsheets: make(map[string]model.Teamsheet),
	}
}

func (m *MemoryStore) ReadRoster(team string) (model.Roster, error) {
	r, ok := m.Rosters[team]
	if !ok {
		return model.Roster{}, &model.IoError{Path: team, Err: errNotFound}
	}
	return r, nil
}

func (m *MemoryStore) WriteRoster(r model.Roster) error {
	m.Rosters[r.Team] = r
	return nil
}

func (m *MemoryStore) ReadTeamsheet(team string) (model.Teamsheet, error) {
	t, ok := m.Teamsheets[team]
	if !ok {
		return model.Teamsheet{}, &model.IoError{Path: team, Err: errNotFound}
	}
	return t, nil
}

func (m *MemoryStore) WriteTeamsheet(t model.Teamsheet) error {
	m.Teamsheets[t.Team] = t
	return nil
}

var errNotFound = notFoundError("not found")

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

// FixedWidthTableFormatter renders the league-table output format
// (spec.md §6): header, dash rule, fixed-width per-team rows.
type FixedWidthTableFormatter struct{}

func (FixedWidthTableFormatter) FormatTable(standings []model.LeagueStanding) string {
	out := "Pl   Team                    P    W   D   L    GF   GA   GD   Pts\n"
	out += "--------------------------------------------------------------------\n"
	for _, s := range standings {
		out += formatRow(s)
	}
	return out
}

func formatRow(s model.LeagueStanding) string {
	return padInt(s.Place, 4) + padStr(s.Team, 24) +
		padInt(int(s.P), 4) + padInt(int(s.W), 5) + padInt(int(s.D), 4) + padInt(int(s.L), 4) +
		padInt(int(s.GF), 6) + padInt(int(s.GA), 5) + padInt(int(s.GD), 5) + padInt(int(s.Pts), 5) + "\n"
}

func padStr(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func padInt(v, width int) string {
	return padStr(strconv.Itoa(v), width)
}
