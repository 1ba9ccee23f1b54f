package stats

import (
	"testing"

	"hockey-tracker/internal/domain"
)

func fillLine(period *domain.PeriodLedger, team string, line Line) {
	record := func(kind domain.ActionKind, n int) {
		for i := 0; i < n; i++ {
			period.RecordShot(team, kind, domain.Location{X: float64(i), Y: float64(i)})
		}
	}
	record(domain.ActionGoal, line.Goals)
	record(domain.ActionRebound, line.Rebounds)
	record(domain.ActionCovered, line.Covered)
	record(domain.ActionBlocked, line.Blocked)
	record(domain.ActionMissed, line.Missed)
}

func TestLineForMissingTeamIsZero(t *testing.T) {
	period := domain.NewPeriodLedger(1)

	line := LineFor(period, "Ghosts")
	if line != (Line{}) {
		t.Errorf("line for missing team = %+v, want zero", line)
	}
	if line.TotalShots() != 0 || line.ShotsOnGoal() != 0 {
		t.Error("derived stats over missing team must be zero")
	}
}

func TestTotalShotsIdentity(t *testing.T) {
	tests := []struct {
		name string
		line Line
	}{
		{"empty", Line{}},
		{"single goal", Line{Goals: 1}},
		{"mixed", Line{Goals: 2, Rebounds: 3, Covered: 1, Blocked: 4, Missed: 5}},
		{"blocks and misses only", Line{Blocked: 7, Missed: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := tt.line.TotalShots()
			if got := tt.line.ShotsOnGoal() + tt.line.Missed + tt.line.Blocked; got != total {
				t.Errorf("shotsOnGoal+missed+blocked = %d, want totalShots %d", got, total)
			}
		})
	}
}

func TestSingleGoalScenario(t *testing.T) {
	period := domain.NewPeriodLedger(1)
	period.RecordShot("Tigers", domain.ActionGoal, domain.Location{X: 50, Y: 40})

	line := LineFor(period, "Tigers")
	if line.TotalShots() != 1 {
		t.Errorf("totalShots = %d, want 1", line.TotalShots())
	}
	if line.ShotsOnGoal() != 1 {
		t.Errorf("shotsOnGoal = %d, want 1", line.ShotsOnGoal())
	}
	if line.Goals != 1 {
		t.Errorf("goals = %d, want 1", line.Goals)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		part, whole int
		want        string
	}{
		{"zero denominator", 5, 0, "0.0"},
		{"whole", 10, 10, "100.0"},
		{"eighty", 8, 10, "80.0"},
		{"third", 1, 3, "33.3"},
		{"two thirds", 2, 3, "66.7"},
		{"zero part", 0, 4, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.part, tt.whole); got != tt.want {
				t.Errorf("Percent(%d, %d) = %q, want %q", tt.part, tt.whole, got, tt.want)
			}
		})
	}
}

func TestSavePercentageAcrossPeriods(t *testing.T) {
	// Opponent "B" puts 10 shots on goal and scores 2 across periods 1-3;
	// A's goalie saves 8 of 10.
	periods := []domain.PeriodLedger{
		domain.NewPeriodLedger(1),
		domain.NewPeriodLedger(2),
		domain.NewPeriodLedger(3),
	}
	fillLine(&periods[0], "B", Line{Goals: 1, Rebounds: 2, Covered: 1, Missed: 3})
	fillLine(&periods[1], "B", Line{Rebounds: 1, Covered: 2, Blocked: 2})
	fillLine(&periods[2], "B", Line{Goals: 1, Covered: 2, Missed: 1})

	if got := AggregateSavePercentage(periods, "B"); got != "80.0" {
		t.Errorf("save percentage = %q, want \"80.0\"", got)
	}
}

func TestPeriodViewSavePercentageUsesOpponent(t *testing.T) {
	period := domain.NewPeriodLedger(1)
	fillLine(&period, "Tigers", Line{Goals: 1, Covered: 1})
	fillLine(&period, "Sharks", Line{Goals: 1, Rebounds: 1, Covered: 2, Missed: 1})

	view := PeriodView(period, "Tigers", "Sharks")
	// Sharks: 4 on goal, 1 scored; Tigers' goalie saves 3 of 4.
	if view.SavePercentage != "75.0" {
		t.Errorf("save percentage = %q, want \"75.0\"", view.SavePercentage)
	}
	if view.TotalShots != 2 || view.ShotsOnGoal != 2 {
		t.Errorf("totals = %d/%d, want 2/2", view.ShotsOnGoal, view.TotalShots)
	}
	if view.HitPercentage != "100.0" {
		t.Errorf("hit percentage = %q, want \"100.0\"", view.HitPercentage)
	}
}

func TestHitPercentage(t *testing.T) {
	line := Line{Goals: 1, Rebounds: 1, Covered: 1, Blocked: 1, Missed: 1}
	if got := HitPercentage(line); got != "60.0" {
		t.Errorf("hit percentage = %q, want \"60.0\"", got)
	}
	if got := HitPercentage(Line{}); got != "0.0" {
		t.Errorf("hit percentage of empty line = %q, want \"0.0\"", got)
	}
}

func TestAggregateTotalsSumsBeforePercentages(t *testing.T) {
	periods := []domain.PeriodLedger{
		domain.NewPeriodLedger(1),
		domain.NewPeriodLedger(2),
	}
	fillLine(&periods[0], "Tigers", Line{Goals: 1, Missed: 9}) // 10.0% hit in isolation
	fillLine(&periods[1], "Tigers", Line{Goals: 9, Missed: 1}) // 90.0% hit in isolation

	totals := AggregateTotals(periods, "Tigers")
	if totals.TotalShots != 20 || totals.ShotsOnGoal != 10 {
		t.Fatalf("totals = %+v", totals)
	}
	// Summed counts give 50.0; averaging the period percentages would too,
	// but with unequal shot volumes they diverge.
	if got := Percent(totals.ShotsOnGoal, totals.TotalShots); got != "50.0" {
		t.Errorf("aggregate hit percentage = %q, want \"50.0\"", got)
	}

	fillLine(&periods[1], "Sharks", Line{Goals: 1, Missed: 3}) // 25% over 4 shots
	fillLine(&periods[0], "Sharks", Line{Goals: 1, Covered: 1})
	sharks := AggregateTotals(periods, "Sharks")
	if got := Percent(sharks.ShotsOnGoal, sharks.TotalShots); got != "50.0" {
		t.Errorf("aggregate hit percentage = %q, want \"50.0\" (3 on goal of 6 attempts)", got)
	}
}

func TestShootoutContributesGoalsOnly(t *testing.T) {
	periods := []domain.PeriodLedger{
		domain.NewPeriodLedger(1),
		domain.NewPeriodLedger(2),
		domain.NewPeriodLedger(3),
		domain.NewPeriodLedger(4),
		domain.NewPeriodLedger(5),
	}
	fillLine(&periods[0], "Tigers", Line{Goals: 2, Covered: 3, Missed: 1})
	fillLine(&periods[3], "Tigers", Line{Goals: 1, Blocked: 1})
	fillLine(&periods[4], "Tigers", Line{Goals: 2, Missed: 3, Covered: 1})

	totals := AggregateTotals(periods, "Tigers")
	if totals.Goals != 5 {
		t.Errorf("goals = %d, want 5 (shootout goals included)", totals.Goals)
	}
	if totals.TotalShots != 8 {
		t.Errorf("totalShots = %d, want 8 (shootout attempts excluded)", totals.TotalShots)
	}
	if totals.ShotsOnGoal != 6 {
		t.Errorf("shotsOnGoal = %d, want 6 (shootout excluded)", totals.ShotsOnGoal)
	}
	if totals.Missed != 1 || totals.Blocked != 1 {
		t.Errorf("missed/blocked = %d/%d, want 1/1", totals.Missed, totals.Blocked)
	}
}

func TestAggregateSavePercentageExcludesShootout(t *testing.T) {
	periods := []domain.PeriodLedger{
		domain.NewPeriodLedger(1),
		domain.NewPeriodLedger(5),
	}
	fillLine(&periods[0], "Sharks", Line{Goals: 1, Covered: 3}) // 4 on goal, 1 in
	fillLine(&periods[1], "Sharks", Line{Goals: 3})             // shootout, ignored

	if got := AggregateSavePercentage(periods, "Sharks"); got != "75.0" {
		t.Errorf("save percentage = %q, want \"75.0\"", got)
	}
}
