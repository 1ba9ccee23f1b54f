package domain

import (
	"time"
)

// Location is a point in rink coordinate space. X runs 0-200 along the ice,
// Y runs 0-85 across it. Out-of-range values are accepted; they only affect
// where a marker is drawn, never a stat.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShotRecord is one recorded shot attempt. Immutable once appended to a
// bucket; undo removes the record instead of changing it.
type ShotRecord struct {
	Location Location `json:"location"`
}

// ActionKind is the closed set of outcomes a recorded shot can have.
type ActionKind int

const (
	ActionGoal ActionKind = iota
	ActionRebound
	ActionCovered
	ActionBlocked
	ActionMissed
)

var actionTags = map[string]ActionKind{
	"GOAL":    ActionGoal,
	"REBOUND": ActionRebound,
	"COVERED": ActionCovered,
	"BLOCKED": ActionBlocked,
	"MISSED":  ActionMissed,
}

// ParseActionKind maps an action tag from the wire to its kind. The second
// return is false for anything outside the closed vocabulary.
func ParseActionKind(tag string) (ActionKind, bool) {
	kind, ok := actionTags[tag]
	return kind, ok
}

func (k ActionKind) String() string {
	switch k {
	case ActionGoal:
		return "GOAL"
	case ActionRebound:
		return "REBOUND"
	case ActionCovered:
		return "COVERED"
	case ActionBlocked:
		return "BLOCKED"
	case ActionMissed:
		return "MISSED"
	}
	return "UNKNOWN"
}

// ActionKinds returns every kind in bucket order.
func ActionKinds() []ActionKind {
	return []ActionKind{ActionGoal, ActionRebound, ActionCovered, ActionBlocked, ActionMissed}
}

type Player struct {
	ID        int64     `json:"id,omitempty"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	TeamType  string    `json:"teamType,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type Team struct {
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// HistoryEntry is one element of the append-only action log. The log is the
// authoritative undo source: the newest entry names exactly which bucket to
// truncate.
type HistoryEntry struct {
	Period   int
	TeamName string
	Action   ActionKind
	Location Location
}

// TeamTotals are a team's whole-game counting stats.
type TeamTotals struct {
	Goals       int `json:"goals"`
	ShotsOnGoal int `json:"shotsOnGoal"`
	Covered     int `json:"covered"`
	Rebounds    int `json:"rebounds"`
	Blocked     int `json:"blocked"`
	Missed      int `json:"missed"`
	TotalShots  int `json:"totalShots"`
}

// PeriodLine is one team's counting stats for a single period. Shot location
// detail is dropped at this level.
type PeriodLine struct {
	Goals       int `json:"goals"`
	ShotsOnGoal int `json:"shotsOnGoal"`
	Covered     int `json:"covered"`
	Rebounds    int `json:"rebounds"`
	Blocked     int `json:"blocked"`
	Missed      int `json:"missed"`
}

type PeriodSnapshot struct {
	Period    int        `json:"period"`
	HomeStats PeriodLine `json:"homeStats"`
	AwayStats PeriodLine `json:"awayStats"`
}

// GameSummary is the frozen, persistable form of a finished game. Immutable
// once built.
type GameSummary struct {
	HomeTeam           Team             `json:"homeTeam"`
	AwayTeam           Team             `json:"awayTeam"`
	HomeTotal          TeamTotals       `json:"homeTotal"`
	AwayTotal          TeamTotals       `json:"awayTotal"`
	HomeSavePercentage string           `json:"homeSavePercentage"`
	AwaySavePercentage string           `json:"awaySavePercentage"`
	HomeHitPercentage  string           `json:"homeHitPercentage"`
	AwayHitPercentage  string           `json:"awayHitPercentage"`
	SelectedHomeGoalie *Player          `json:"selectedHomeGoalie"`
	SelectedAwayGoalie *Player          `json:"selectedAwayGoalie"`
	Date               string           `json:"date"`
	PeriodStats        []PeriodSnapshot `json:"periodStats"`
}

// StoredGame is a GameSummary plus its persistence-assigned identifier.
type StoredGame struct {
	ID int64 `json:"id"`
	GameSummary
}
