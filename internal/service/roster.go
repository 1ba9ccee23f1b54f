package service

import (
	"context"
	"fmt"
	"time"

	"hockey-tracker/internal/constants"
	"hockey-tracker/internal/domain"
	"hockey-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RosterService manages the persisted home and away rosters.
type RosterService struct {
	players *repository.PlayerRepository
	logger  zerolog.Logger
}

func NewRosterService(players *repository.PlayerRepository, logger zerolog.Logger) *RosterService {
	return &RosterService{players: players, logger: logger}
}

// AddPlayer stores a roster player and returns it with its assigned ID.
func (s *RosterService) AddPlayer(ctx context.Context, teamType string, player domain.Player) (domain.Player, error) {
	if teamType != "home" && teamType != "away" {
		return domain.Player{}, fmt.Errorf("invalid team type %q", teamType)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player.TeamType = teamType
	player.CreatedAt = time.Now().UTC()

	id, err := s.players.Add(ctx, teamType, player)
	if err != nil {
		s.logger.Error().Err(err).Str("team_type", teamType).Str("name", player.Name).Msg("failed to add player")
		return domain.Player{}, err
	}
	player.ID = id

	s.logger.Info().Int64("id", id).Str("team_type", teamType).Str("name", player.Name).Msg("player added")
	return player, nil
}

// Players returns the stored roster for one team type.
func (s *RosterService) Players(ctx context.Context, teamType string) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.players.ListByTeamType(ctx, teamType)
}

// Rosters loads both rosters concurrently.
func (s *RosterService) Rosters(ctx context.Context) ([]domain.Player, []domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var home, away []domain.Player
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		home, err = s.players.ListByTeamType(gctx, "home")
		return err
	})
	g.Go(func() error {
		var err error
		away, err = s.players.ListByTeamType(gctx, "away")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return home, away, nil
}

// Clear empties the stored roster for one team type.
func (s *RosterService) Clear(ctx context.Context, teamType string) error {
	if teamType != "home" && teamType != "away" {
		return fmt.Errorf("invalid team type %q", teamType)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.players.Clear(ctx, teamType)
}
