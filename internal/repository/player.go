package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hockey-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Add stores a roster player under "home" or "away" and returns the assigned ID.
func (r *PlayerRepository) Add(ctx context.Context, teamType string, player domain.Player) (int64, error) {
	createdAt := player.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO players (team_type, number, name, position, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		teamType, player.Number, player.Name, player.Position, createdAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("team_type", teamType).Str("name", player.Name).Msg("failed to insert player")
		return 0, fmt.Errorf("failed to insert player: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read player id: %w", err)
	}

	r.logger.Debug().Int64("id", id).Str("team_type", teamType).Str("name", player.Name).Msg("player stored")
	return id, nil
}

// ListByTeamType returns the stored roster for "home" or "away" in insertion order.
func (r *PlayerRepository) ListByTeamType(ctx context.Context, teamType string) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, team_type, number, name, position, created_at
		 FROM players WHERE team_type = ? ORDER BY id`,
		teamType,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.TeamType, &p.Number, &p.Name, &p.Position, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate players: %w", err)
	}
	return players, nil
}

// Clear removes every stored player for a team type.
func (r *PlayerRepository) Clear(ctx context.Context, teamType string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE team_type = ?`, teamType)
	if err != nil {
		r.logger.Error().Err(err).Str("team_type", teamType).Msg("failed to clear players")
		return fmt.Errorf("failed to clear players: %w", err)
	}

	affected, _ := res.RowsAffected()
	r.logger.Debug().Str("team_type", teamType).Int64("removed", affected).Msg("roster cleared")
	return nil
}
