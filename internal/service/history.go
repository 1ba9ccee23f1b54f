package service

import (
	"context"

	"hockey-tracker/internal/constants"
	"hockey-tracker/internal/domain"
	"hockey-tracker/internal/export"
	"hockey-tracker/internal/repository"
	"hockey-tracker/internal/stats"

	"github.com/rs/zerolog"
)

// HistoryService serves stored games: review, deletion, CSV export, and
// cross-game aggregation.
type HistoryService struct {
	games  *repository.GameRepository
	logger zerolog.Logger
}

func NewHistoryService(games *repository.GameRepository, logger zerolog.Logger) *HistoryService {
	return &HistoryService{games: games, logger: logger}
}

// List returns every stored game, newest first.
func (s *HistoryService) List(ctx context.Context) ([]domain.StoredGame, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.games.ListAll(ctx)
}

// Delete removes one stored game.
func (s *HistoryService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.games.Delete(ctx, id)
}

// ExportCSV renders every stored game as CSV.
func (s *HistoryService) ExportCSV(ctx context.Context) (string, error) {
	games, err := s.List(ctx)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int("games", len(games)).Msg("exporting game history")
	return export.GenerateCSV(games), nil
}

// Combine aggregates a team's stored totals across games. With IDs given,
// only those games are folded; otherwise every game the team played.
func (s *HistoryService) Combine(ctx context.Context, team string, ids []int64) (stats.CombinedStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	games, err := s.games.ListByTeam(ctx, team)
	if err != nil {
		return stats.CombinedStats{}, err
	}

	if len(ids) > 0 {
		wanted := make(map[int64]bool, len(ids))
		for _, id := range ids {
			wanted[id] = true
		}
		filtered := games[:0]
		for _, g := range games {
			if wanted[g.ID] {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	combined := stats.Combine(games, team)
	s.logger.Debug().Str("team", team).Int("games", combined.Games).Msg("combined stored games")
	return combined, nil
}
