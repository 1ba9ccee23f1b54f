package domain

// TeamLedger holds one team's shots for a single period, grouped by outcome.
// Insertion order within a bucket is chronological order.
type TeamLedger map[ActionKind][]ShotRecord

// NewTeamLedger returns a ledger with all five buckets present and empty.
func NewTeamLedger() TeamLedger {
	ledger := make(TeamLedger, len(ActionKinds()))
	for _, kind := range ActionKinds() {
		ledger[kind] = []ShotRecord{}
	}
	return ledger
}

// PeriodLedger is the per-period collection of team ledgers, keyed by team
// name. The name is the join key across periods; nothing enforces uniqueness
// beyond string equality.
type PeriodLedger struct {
	Period    int
	TeamStats map[string]TeamLedger
}

func NewPeriodLedger(period int) PeriodLedger {
	return PeriodLedger{
		Period:    period,
		TeamStats: make(map[string]TeamLedger),
	}
}

// RecordShot appends a shot to the team's bucket for kind, creating the
// team's ledger on first use.
func (p *PeriodLedger) RecordShot(team string, kind ActionKind, loc Location) {
	ledger, ok := p.TeamStats[team]
	if !ok {
		ledger = NewTeamLedger()
		p.TeamStats[team] = ledger
	}
	ledger[kind] = append(ledger[kind], ShotRecord{Location: loc})
}

// RemoveLastShot removes the most recently appended record from the team's
// bucket for kind. Unknown teams and empty buckets are silent no-ops; the
// action history guarantees this path is never reached on an empty bucket in
// correct operation, but a stray call must not crash the session.
func (p *PeriodLedger) RemoveLastShot(team string, kind ActionKind) bool {
	ledger, ok := p.TeamStats[team]
	if !ok {
		return false
	}
	bucket := ledger[kind]
	if len(bucket) == 0 {
		return false
	}
	ledger[kind] = bucket[:len(bucket)-1]
	return true
}
