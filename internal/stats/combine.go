package stats

import (
	"hockey-tracker/internal/domain"
)

// CombinedStats aggregates one team's stored totals across several games for
// the analysis view.
type CombinedStats struct {
	Team           string `json:"team"`
	Games          int    `json:"games"`
	Goals          int    `json:"goals"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	ShotsOnGoal    int    `json:"shotsOnGoal"`
	TotalShots     int    `json:"totalShots"`
	Missed         int    `json:"missed"`
	Blocked        int    `json:"blocked"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Ties           int    `json:"ties"`
	HitPercentage  string `json:"hitPercentage"`
	SavePercentage string `json:"savePercentage"`
}

// Combine folds the stored games where team appears on either side. Games the
// team did not play are skipped; percentages are computed from the summed
// totals at the end, never averaged game-by-game.
func Combine(games []domain.StoredGame, team string) CombinedStats {
	combined := CombinedStats{Team: team}

	var shotsAgainst, goalsAgainst int
	for _, g := range games {
		var own, opp domain.TeamTotals
		switch team {
		case g.HomeTeam.Name:
			own, opp = g.HomeTotal, g.AwayTotal
		case g.AwayTeam.Name:
			own, opp = g.AwayTotal, g.HomeTotal
		default:
			continue
		}

		combined.Games++
		combined.Goals += own.Goals
		combined.GoalsAgainst += opp.Goals
		combined.ShotsOnGoal += own.ShotsOnGoal
		combined.TotalShots += own.TotalShots
		combined.Missed += own.Missed
		combined.Blocked += own.Blocked
		shotsAgainst += opp.ShotsOnGoal
		goalsAgainst += opp.Goals

		switch {
		case own.Goals > opp.Goals:
			combined.Wins++
		case own.Goals < opp.Goals:
			combined.Losses++
		default:
			combined.Ties++
		}
	}

	combined.HitPercentage = Percent(combined.ShotsOnGoal, combined.TotalShots)
	combined.SavePercentage = SavePercentage(shotsAgainst, goalsAgainst)
	return combined
}
