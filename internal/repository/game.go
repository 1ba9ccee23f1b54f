package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"hockey-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type GameRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewGameRepository(sqlDB *sql.DB, logger zerolog.Logger) *GameRepository {
	return &GameRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// Save persists a finished game summary and returns the assigned record ID.
// A summary without a date gets the save time, matching how games were
// stamped on save in the browser store.
func (r *GameRepository) Save(ctx context.Context, summary domain.GameSummary) (int64, error) {
	if summary.Date == "" {
		summary.Date = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return 0, fmt.Errorf("failed to encode summary: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO games (game_date, home_team, away_team, summary, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		summary.Date, summary.HomeTeam.Name, summary.AwayTeam.Name, string(payload), time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("home_team", summary.HomeTeam.Name).
			Str("away_team", summary.AwayTeam.Name).
			Msg("failed to insert game")
		return 0, fmt.Errorf("failed to insert game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read game id: %w", err)
	}

	r.logger.Info().Int64("id", id).
		Str("home_team", summary.HomeTeam.Name).
		Str("away_team", summary.AwayTeam.Name).
		Msg("game saved")
	return id, nil
}

// ListAll returns every stored game, newest first.
func (r *GameRepository) ListAll(ctx context.Context) ([]domain.StoredGame, error) {
	return r.list(ctx,
		`SELECT id, summary FROM games ORDER BY game_date DESC, id DESC`)
}

// ListByTeam returns stored games where the named team played on either side,
// newest first.
func (r *GameRepository) ListByTeam(ctx context.Context, team string) ([]domain.StoredGame, error) {
	return r.list(ctx,
		`SELECT id, summary FROM games
		 WHERE home_team = ? OR away_team = ?
		 ORDER BY game_date DESC, id DESC`,
		team, team)
}

func (r *GameRepository) list(ctx context.Context, query string, args ...any) ([]domain.StoredGame, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []domain.StoredGame
	for rows.Next() {
		var (
			id      int64
			payload string
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}

		var summary domain.GameSummary
		if err := json.Unmarshal([]byte(payload), &summary); err != nil {
			return nil, fmt.Errorf("failed to decode game %d: %w", id, err)
		}
		games = append(games, domain.StoredGame{ID: id, GameSummary: summary})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}
	return games, nil
}

// Delete removes a stored game by ID. Deleting an absent ID is reported.
func (r *GameRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("id", id).Msg("failed to delete game")
		return fmt.Errorf("failed to delete game: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	r.logger.Info().Int64("id", id).Msg("game deleted")
	return nil
}
