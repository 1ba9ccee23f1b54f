package stats

import (
	"hockey-tracker/internal/domain"
)

// BuildSummary freezes a finished game into its persistable summary: one
// snapshot per period played plus whole-game totals and percentages.
// Deterministic, no I/O; shot locations are dropped at this stage.
func BuildSummary(
	periods []domain.PeriodLedger,
	homeTeam, awayTeam domain.Team,
	homeGoalie, awayGoalie *domain.Player,
	date string,
) domain.GameSummary {
	snapshots := make([]domain.PeriodSnapshot, 0, len(periods))
	for _, period := range periods {
		home := LineFor(period, homeTeam.Name)
		away := LineFor(period, awayTeam.Name)
		snapshots = append(snapshots, domain.PeriodSnapshot{
			Period:    period.Period,
			HomeStats: snapshotLine(home),
			AwayStats: snapshotLine(away),
		})
	}

	homeTotal := AggregateTotals(periods, homeTeam.Name)
	awayTotal := AggregateTotals(periods, awayTeam.Name)

	return domain.GameSummary{
		HomeTeam:           homeTeam,
		AwayTeam:           awayTeam,
		HomeTotal:          homeTotal,
		AwayTotal:          awayTotal,
		HomeSavePercentage: AggregateSavePercentage(periods, awayTeam.Name),
		AwaySavePercentage: AggregateSavePercentage(periods, homeTeam.Name),
		HomeHitPercentage:  Percent(homeTotal.ShotsOnGoal, homeTotal.TotalShots),
		AwayHitPercentage:  Percent(awayTotal.ShotsOnGoal, awayTotal.TotalShots),
		SelectedHomeGoalie: homeGoalie,
		SelectedAwayGoalie: awayGoalie,
		Date:               date,
		PeriodStats:        snapshots,
	}
}

// snapshotLine keeps only the on-ice buckets in the shots-on-goal figure:
// goals, rebounds, and covered shots.
func snapshotLine(line Line) domain.PeriodLine {
	return domain.PeriodLine{
		Goals:       line.Goals,
		ShotsOnGoal: line.Goals + line.Rebounds + line.Covered,
		Covered:     line.Covered,
		Rebounds:    line.Rebounds,
		Blocked:     line.Blocked,
		Missed:      line.Missed,
	}
}
