package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hockey-tracker/internal/api"
	"hockey-tracker/internal/constants"
	"hockey-tracker/internal/domain"
	"hockey-tracker/internal/game"
	"hockey-tracker/internal/repository"
	"hockey-tracker/internal/stats"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// GameService owns the live game sessions. Each session holds exactly one
// Game, mutated only through this service; the mutex stands in for the
// browser's single event loop now that mutations arrive over HTTP.
type GameService struct {
	mu       sync.Mutex
	sessions map[string]*game.Game

	games  *repository.GameRepository
	roster *RosterService
	share  *api.ShareClient
	logger zerolog.Logger
}

func NewGameService(games *repository.GameRepository, roster *RosterService, share *api.ShareClient, logger zerolog.Logger) *GameService {
	return &GameService{
		sessions: make(map[string]*game.Game),
		games:    games,
		roster:   roster,
		share:    share,
		logger:   logger,
	}
}

// StartGame opens a new scoring session with the stored rosters attached and
// returns its session ID.
func (s *GameService) StartGame(ctx context.Context, homeName, awayName, date string) (string, error) {
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	homePlayers, awayPlayers, err := s.roster.Rosters(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load rosters: %w", err)
	}

	id, err := gonanoid.New(constants.SessionIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	home := domain.Team{Name: homeName, Players: homePlayers}
	away := domain.Team{Name: awayName, Players: awayPlayers}
	live := game.New(home, away, date, s.logger.With().Str("session", id).Logger())

	s.mu.Lock()
	s.sessions[id] = live
	s.mu.Unlock()

	s.logger.Info().
		Str("session", id).
		Str("home_team", homeName).
		Str("away_team", awayName).
		Str("date", date).
		Msg("game started")
	return id, nil
}

func (s *GameService) session(id string) (*game.Game, error) {
	live, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("unknown session %q", id)
	}
	return live, nil
}

// RecordAction records one shot. Unrecognized action tags are absorbed by the
// game itself; only an unknown session is an error.
func (s *GameService) RecordAction(sessionID, team, action string, loc domain.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return err
	}
	live.RecordAction(team, action, loc)
	return nil
}

func (s *GameService) Undo(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return err
	}
	live.UndoLastAction()
	return nil
}

func (s *GameService) Advance(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return err
	}
	live.AdvancePeriod()
	return nil
}

func (s *GameService) Retreat(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return err
	}
	live.RetreatPeriod()
	return nil
}

func (s *GameService) SetGoalie(sessionID, teamType string, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return err
	}
	live.SetGoalie(teamType, player)
	return nil
}

// PeriodLineView is one row of the running goals/shots-on-goal board.
type PeriodLineView struct {
	Period          int    `json:"period"`
	Label           string `json:"label"`
	HomeGoals       int    `json:"homeGoals"`
	HomeShotsOnGoal int    `json:"homeShotsOnGoal"`
	AwayGoals       int    `json:"awayGoals"`
	AwayShotsOnGoal int    `json:"awayShotsOnGoal"`
}

// GameView is the on-demand stat display for a live session, recomputed from
// ledger state on every request.
type GameView struct {
	Session       string                `json:"session"`
	CurrentPeriod int                   `json:"currentPeriod"`
	PeriodLabel   string                `json:"periodLabel"`
	HighestPeriod int                   `json:"highestPeriod"`
	HomeTeam      string                `json:"homeTeam"`
	AwayTeam      string                `json:"awayTeam"`
	Home          stats.TeamPeriodStats `json:"home"`
	Away          stats.TeamPeriodStats `json:"away"`
	HomeTotals    domain.TeamTotals     `json:"homeTotals"`
	AwayTotals    domain.TeamTotals     `json:"awayTotals"`
	PeriodLines   []PeriodLineView      `json:"periodLines"`
}

// View derives the current stat display for a session.
func (s *GameService) View(sessionID string) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live, err := s.session(sessionID)
	if err != nil {
		return GameView{}, err
	}

	homeName := live.HomeTeam().Name
	awayName := live.AwayTeam().Name
	current := *live.CurrentLedger()
	periods := live.Periods()

	lines := make([]PeriodLineView, 0, len(periods))
	for _, period := range periods {
		home := stats.LineFor(period, homeName)
		away := stats.LineFor(period, awayName)
		lines = append(lines, PeriodLineView{
			Period:          period.Period,
			Label:           game.PeriodLabel(period.Period),
			HomeGoals:       home.Goals,
			HomeShotsOnGoal: home.ShotsOnGoal(),
			AwayGoals:       away.Goals,
			AwayShotsOnGoal: away.ShotsOnGoal(),
		})
	}

	return GameView{
		Session:       sessionID,
		CurrentPeriod: live.CurrentPeriod(),
		PeriodLabel:   game.PeriodLabel(live.CurrentPeriod()),
		HighestPeriod: live.HighestPeriod(),
		HomeTeam:      homeName,
		AwayTeam:      awayName,
		Home:          stats.PeriodView(current, homeName, awayName),
		Away:          stats.PeriodView(current, awayName, homeName),
		HomeTotals:    stats.AggregateTotals(periods, homeName),
		AwayTotals:    stats.AggregateTotals(periods, awayName),
		PeriodLines:   lines,
	}, nil
}

// FinishGame freezes the session into a summary, persists it, drops the
// session, and shares the result when a webhook is configured. A failed share
// is logged and does not undo the save.
func (s *GameService) FinishGame(ctx context.Context, sessionID string) (domain.StoredGame, error) {
	s.mu.Lock()
	live, err := s.session(sessionID)
	if err != nil {
		s.mu.Unlock()
		return domain.StoredGame{}, err
	}

	summary := stats.BuildSummary(
		live.Periods(),
		live.HomeTeam(),
		live.AwayTeam(),
		live.HomeGoalie(),
		live.AwayGoalie(),
		live.Date(),
	)
	s.mu.Unlock()

	dbCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := s.games.Save(dbCtx, summary)
	if err != nil {
		return domain.StoredGame{}, fmt.Errorf("failed to save game: %w", err)
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	record := domain.StoredGame{ID: id, GameSummary: summary}

	if s.share.Enabled() {
		shareCtx, shareCancel := context.WithTimeout(ctx, constants.ShareTimeout)
		defer shareCancel()
		if err := s.share.ShareGame(shareCtx, record); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("failed to share game summary")
		}
	}

	s.logger.Info().Str("session", sessionID).Int64("id", id).Msg("game finished")
	return record, nil
}
