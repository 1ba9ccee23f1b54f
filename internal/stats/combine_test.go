package stats

import (
	"testing"

	"hockey-tracker/internal/domain"
)

func storedGame(id int64, home, away string, homeTotal, awayTotal domain.TeamTotals) domain.StoredGame {
	return domain.StoredGame{
		ID: id,
		GameSummary: domain.GameSummary{
			HomeTeam:  domain.Team{Name: home},
			AwayTeam:  domain.Team{Name: away},
			HomeTotal: homeTotal,
			AwayTotal: awayTotal,
		},
	}
}

func TestCombineFoldsBothSides(t *testing.T) {
	games := []domain.StoredGame{
		storedGame(1, "Tigers", "Sharks",
			domain.TeamTotals{Goals: 3, ShotsOnGoal: 10, TotalShots: 14, Missed: 2, Blocked: 2},
			domain.TeamTotals{Goals: 1, ShotsOnGoal: 8, TotalShots: 12, Missed: 3, Blocked: 1}),
		storedGame(2, "Bears", "Tigers",
			domain.TeamTotals{Goals: 2, ShotsOnGoal: 6, TotalShots: 9, Missed: 2, Blocked: 1},
			domain.TeamTotals{Goals: 2, ShotsOnGoal: 12, TotalShots: 16, Missed: 2, Blocked: 2}),
		storedGame(3, "Bears", "Sharks",
			domain.TeamTotals{Goals: 1, ShotsOnGoal: 4, TotalShots: 6, Missed: 1, Blocked: 1},
			domain.TeamTotals{Goals: 0, ShotsOnGoal: 5, TotalShots: 7, Missed: 1, Blocked: 1}),
	}

	combined := Combine(games, "Tigers")

	if combined.Games != 2 {
		t.Fatalf("games = %d, want 2", combined.Games)
	}
	if combined.Goals != 5 {
		t.Errorf("goals = %d, want 5", combined.Goals)
	}
	if combined.GoalsAgainst != 3 {
		t.Errorf("goals against = %d, want 3", combined.GoalsAgainst)
	}
	if combined.ShotsOnGoal != 22 || combined.TotalShots != 30 {
		t.Errorf("shots = %d/%d, want 22/30", combined.ShotsOnGoal, combined.TotalShots)
	}
	if combined.Wins != 1 || combined.Losses != 0 || combined.Ties != 1 {
		t.Errorf("record = %d-%d-%d, want 1-0-1", combined.Wins, combined.Losses, combined.Ties)
	}
	// 22 of 30 attempts on goal.
	if combined.HitPercentage != "73.3" {
		t.Errorf("hit%% = %q, want \"73.3\"", combined.HitPercentage)
	}
	// Opponents: 8+6 on goal, 1+2 in.
	if combined.SavePercentage != "78.6" {
		t.Errorf("save%% = %q, want \"78.6\"", combined.SavePercentage)
	}
}

func TestCombineUnknownTeamIsEmpty(t *testing.T) {
	games := []domain.StoredGame{
		storedGame(1, "Tigers", "Sharks", domain.TeamTotals{Goals: 1}, domain.TeamTotals{}),
	}

	combined := Combine(games, "Ghosts")
	if combined.Games != 0 {
		t.Errorf("games = %d, want 0", combined.Games)
	}
	if combined.HitPercentage != "0.0" || combined.SavePercentage != "0.0" {
		t.Errorf("percentages = %q/%q, want \"0.0\"/\"0.0\"", combined.HitPercentage, combined.SavePercentage)
	}
}
