// Package stats derives hockey statistics from period ledgers and stored
// summaries. Everything here is a pure function over its inputs: missing
// teams or periods read as zero, never as an error.
package stats

import (
	"strconv"

	"hockey-tracker/internal/domain"
)

// shootoutPeriod contributes goals to game totals and nothing to any shot or
// percentage denominator, per shootout statistics convention.
const shootoutPeriod = 5

// Line is one team's raw bucket counts for a single period.
type Line struct {
	Goals    int
	Rebounds int
	Covered  int
	Blocked  int
	Missed   int
}

// LineFor counts the buckets for team in one period ledger. An absent team
// reads as all-zero.
func LineFor(period domain.PeriodLedger, team string) Line {
	ledger, ok := period.TeamStats[team]
	if !ok {
		return Line{}
	}
	return Line{
		Goals:    len(ledger[domain.ActionGoal]),
		Rebounds: len(ledger[domain.ActionRebound]),
		Covered:  len(ledger[domain.ActionCovered]),
		Blocked:  len(ledger[domain.ActionBlocked]),
		Missed:   len(ledger[domain.ActionMissed]),
	}
}

// TotalShots is every attempt in the line, on goal or not.
func (l Line) TotalShots() int {
	return l.Goals + l.Rebounds + l.Covered + l.Blocked + l.Missed
}

// ShotsOnGoal counts attempts that reached the goaltender: everything except
// misses and blocks.
func (l Line) ShotsOnGoal() int {
	return l.TotalShots() - l.Missed - l.Blocked
}

func (l Line) add(other Line) Line {
	return Line{
		Goals:    l.Goals + other.Goals,
		Rebounds: l.Rebounds + other.Rebounds,
		Covered:  l.Covered + other.Covered,
		Blocked:  l.Blocked + other.Blocked,
		Missed:   l.Missed + other.Missed,
	}
}

// SavePercentage is the defending side's view of the opponent's offense:
// shots against that did not score, as a percentage with one decimal place.
func SavePercentage(shotsAgainst, goalsAgainst int) string {
	return Percent(shotsAgainst-goalsAgainst, shotsAgainst)
}

// HitPercentage is the share of all attempts that were on goal.
func HitPercentage(line Line) string {
	return Percent(line.TotalShots()-line.Missed-line.Blocked, line.TotalShots())
}

// Percent formats part/whole as a percentage with one decimal place. A zero
// or negative denominator reads as "0.0".
func Percent(part, whole int) string {
	if whole <= 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)/float64(whole)*100, 'f', 1, 64)
}

// TeamPeriodStats is the full single-period stat view for one team, as shown
// while the period is being scored.
type TeamPeriodStats struct {
	Goals          int    `json:"goals"`
	ShotsOnGoal    int    `json:"shotsOnGoal"`
	Covered        int    `json:"covered"`
	Rebounds       int    `json:"rebounds"`
	Blocked        int    `json:"blocked"`
	Missed         int    `json:"missed"`
	TotalShots     int    `json:"totalShots"`
	SavePercentage string `json:"savePercentage"`
	HitPercentage  string `json:"hitPercentage"`
}

// PeriodView derives team's stats for one period, with the save percentage
// computed from opponent's offense in the same period.
func PeriodView(period domain.PeriodLedger, team, opponent string) TeamPeriodStats {
	line := LineFor(period, team)
	against := LineFor(period, opponent)

	return TeamPeriodStats{
		Goals:          line.Goals,
		ShotsOnGoal:    line.ShotsOnGoal(),
		Covered:        line.Covered,
		Rebounds:       line.Rebounds,
		Blocked:        line.Blocked,
		Missed:         line.Missed,
		TotalShots:     line.TotalShots(),
		SavePercentage: SavePercentage(against.ShotsOnGoal(), against.Goals),
		HitPercentage:  HitPercentage(line),
	}
}

// AggregateTotals sums team's buckets across regulation and overtime before
// computing any derived stat; percentages over summed counts, never averaged
// period percentages. The shootout adds its goals to the goal total and
// nothing else.
func AggregateTotals(periods []domain.PeriodLedger, team string) domain.TeamTotals {
	var sum Line
	for _, period := range periods {
		if period.Period >= shootoutPeriod {
			continue
		}
		sum = sum.add(LineFor(period, team))
	}

	totals := domain.TeamTotals{
		Goals:       sum.Goals,
		ShotsOnGoal: sum.ShotsOnGoal(),
		Covered:     sum.Covered,
		Rebounds:    sum.Rebounds,
		Blocked:     sum.Blocked,
		Missed:      sum.Missed,
		TotalShots:  sum.TotalShots(),
	}

	for _, period := range periods {
		if period.Period == shootoutPeriod {
			totals.Goals += LineFor(period, team).Goals
		}
	}

	return totals
}

// AggregateSavePercentage is the defending team's save percentage over
// regulation and overtime, computed from the opponent's summed shots on goal.
func AggregateSavePercentage(periods []domain.PeriodLedger, opponent string) string {
	var against Line
	for _, period := range periods {
		if period.Period >= shootoutPeriod {
			continue
		}
		against = against.add(LineFor(period, opponent))
	}
	return SavePercentage(against.ShotsOnGoal(), against.Goals)
}
