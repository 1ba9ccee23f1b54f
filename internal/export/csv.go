// Package export serializes stored game summaries for download. Values are
// taken verbatim from the summary; nothing is recomputed here.
package export

import (
	"fmt"
	"strings"
	"time"

	"hockey-tracker/internal/domain"
)

var csvHeaders = []string{
	"Date",
	"Team",
	"Opponent",
	"Goalie",
	"Result",
	"GA",
	"SOG",
	"Covered",
	"Rebound",
	"Blocked",
	"Missed",
	"Total Shots",
	"Sv%",
	"Hit%",
}

// GenerateCSV renders one header row plus two rows per stored game, home team
// first. Every value is double-quoted.
func GenerateCSV(games []domain.StoredGame) string {
	lines := make([]string, 0, 1+2*len(games))
	lines = append(lines, strings.Join(csvHeaders, ","))

	for _, game := range games {
		lines = append(lines, teamRow(game, true), teamRow(game, false))
	}

	return strings.Join(lines, "\n")
}

func teamRow(game domain.StoredGame, home bool) string {
	team, opponent := game.HomeTeam, game.AwayTeam
	totals, oppTotals := game.HomeTotal, game.AwayTotal
	goalie := game.SelectedHomeGoalie
	savePct, hitPct := game.HomeSavePercentage, game.HomeHitPercentage
	if !home {
		team, opponent = game.AwayTeam, game.HomeTeam
		totals, oppTotals = game.AwayTotal, game.HomeTotal
		goalie = game.SelectedAwayGoalie
		savePct, hitPct = game.AwaySavePercentage, game.AwayHitPercentage
	}

	values := []string{
		formatDate(game.Date),
		team.Name,
		opponent.Name,
		formatGoalie(goalie),
		result(totals.Goals, oppTotals.Goals),
		fmt.Sprintf("%d", oppTotals.Goals),
		fmt.Sprintf("%d", totals.ShotsOnGoal),
		fmt.Sprintf("%d", totals.Covered),
		fmt.Sprintf("%d", totals.Rebounds),
		fmt.Sprintf("%d", totals.Blocked),
		fmt.Sprintf("%d", totals.Missed),
		fmt.Sprintf("%d", totals.TotalShots),
		savePct + "%",
		hitPct + "%",
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, ",")
}

func result(goalsFor, goalsAgainst int) string {
	switch {
	case goalsFor > goalsAgainst:
		return "W"
	case goalsFor < goalsAgainst:
		return "L"
	default:
		return "T"
	}
}

func formatGoalie(goalie *domain.Player) string {
	if goalie == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s (#%s)", goalie.Name, goalie.Number)
}

// formatDate renders a stored date as M/D/YYYY, passing through anything it
// cannot parse.
func formatDate(date string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
		}
	}
	return date
}
