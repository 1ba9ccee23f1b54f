// Package game holds the live state of one game being scored: the per-period
// ledgers, the action history, and the period cursor. All mutation entry
// points are total; a clicked-in error is dropped, never a crash.
package game

import (
	"fmt"

	"hockey-tracker/internal/domain"

	"github.com/rs/zerolog"
)

const (
	FirstPeriod = 1
	LastPeriod  = 5 // 4 is overtime, 5 is the shootout
)

// Game is the single live game state for a scoring session. It is owned by
// the game service; stat derivation and summary building only read it.
type Game struct {
	logger zerolog.Logger

	homeTeam domain.Team
	awayTeam domain.Team
	date     string

	periods []domain.PeriodLedger
	history History

	// highestPeriod grows monotonically and always equals len(periods).
	// viewCursor moves freely within [1, highestPeriod] and is the period
	// all recording, undo, and display runs against.
	highestPeriod int
	viewCursor    int

	homeGoalie *domain.Player
	awayGoalie *domain.Player
}

func New(homeTeam, awayTeam domain.Team, date string, logger zerolog.Logger) *Game {
	return &Game{
		logger:        logger,
		homeTeam:      homeTeam,
		awayTeam:      awayTeam,
		date:          date,
		periods:       []domain.PeriodLedger{domain.NewPeriodLedger(FirstPeriod)},
		highestPeriod: FirstPeriod,
		viewCursor:    FirstPeriod,
	}
}

// RecordAction records one shot for team in the current period and appends it
// to the history. Tags outside the action vocabulary are logged and dropped.
func (g *Game) RecordAction(team, action string, loc domain.Location) {
	kind, ok := domain.ParseActionKind(action)
	if !ok {
		g.logger.Warn().Str("action", action).Str("team", team).Msg("unrecognized action tag dropped")
		return
	}

	g.periods[g.viewCursor-1].RecordShot(team, kind, loc)
	g.history.Append(domain.HistoryEntry{
		Period:   g.viewCursor,
		TeamName: team,
		Action:   kind,
		Location: loc,
	})

	g.logger.Debug().
		Str("team", team).
		Stringer("action", kind).
		Int("period", g.viewCursor).
		Msg("action recorded")
}

// UndoLastAction removes the newest recorded action, provided it belongs to
// the current period. Undo never reaches back into a completed period, and an
// empty history is a no-op.
func (g *Game) UndoLastAction() {
	last, ok := g.history.Last()
	if !ok || last.Period != g.viewCursor {
		return
	}

	g.history.PopLast()
	g.periods[g.viewCursor-1].RemoveLastShot(last.TeamName, last.Action)

	g.logger.Debug().
		Str("team", last.TeamName).
		Stringer("action", last.Action).
		Int("period", g.viewCursor).
		Msg("action undone")
}

// AdvancePeriod moves the cursor forward, appending a fresh ledger only when
// the cursor passes the highest period reached so far. At the shootout it is
// a no-op.
func (g *Game) AdvancePeriod() {
	if g.viewCursor >= LastPeriod {
		return
	}
	g.viewCursor++
	if g.viewCursor > g.highestPeriod {
		g.periods = append(g.periods, domain.NewPeriodLedger(g.viewCursor))
		g.highestPeriod = g.viewCursor
	}
}

// RetreatPeriod moves the view cursor back one period. Ledgers already
// created are never removed.
func (g *Game) RetreatPeriod() {
	if g.viewCursor > FirstPeriod {
		g.viewCursor--
	}
}

// CurrentPeriod is the period the cursor points at.
func (g *Game) CurrentPeriod() int {
	return g.viewCursor
}

// HighestPeriod is the furthest period reached so far.
func (g *Game) HighestPeriod() int {
	return g.highestPeriod
}

// Periods returns the ledger sequence. Callers must treat it as read-only.
func (g *Game) Periods() []domain.PeriodLedger {
	return g.periods
}

// CurrentLedger returns the ledger under the cursor.
func (g *Game) CurrentLedger() *domain.PeriodLedger {
	return &g.periods[g.viewCursor-1]
}

func (g *Game) History() []domain.HistoryEntry {
	return g.history.Entries()
}

func (g *Game) HistoryLen() int {
	return g.history.Len()
}

func (g *Game) HomeTeam() domain.Team { return g.homeTeam }
func (g *Game) AwayTeam() domain.Team { return g.awayTeam }
func (g *Game) Date() string          { return g.date }

// SetGoalie records the goalie selection for "home" or "away". Other team
// types are dropped.
func (g *Game) SetGoalie(teamType string, player *domain.Player) {
	switch teamType {
	case "home":
		g.homeGoalie = player
	case "away":
		g.awayGoalie = player
	default:
		g.logger.Warn().Str("team_type", teamType).Msg("unknown team type for goalie selection")
	}
}

func (g *Game) HomeGoalie() *domain.Player { return g.homeGoalie }
func (g *Game) AwayGoalie() *domain.Player { return g.awayGoalie }

// PeriodLabel names a period the way the scoreboard does.
func PeriodLabel(period int) string {
	switch period {
	case 4:
		return "Overtime"
	case 5:
		return "Shootout"
	default:
		return fmt.Sprintf("Period %d", period)
	}
}
