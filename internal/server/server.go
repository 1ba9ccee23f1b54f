// Package server exposes the scoring, roster, and history services over
// HTTP. Handlers validate input at the boundary; persistence failures pass
// through with their message, never swallowed.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"hockey-tracker/internal/domain"
	"hockey-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Server struct {
	gameSvc    *service.GameService
	rosterSvc  *service.RosterService
	historySvc *service.HistoryService
	db         *sql.DB
}

func New(gameSvc *service.GameService, rosterSvc *service.RosterService, historySvc *service.HistoryService, db *sql.DB) *Server {
	return &Server{
		gameSvc:    gameSvc,
		rosterSvc:  rosterSvc,
		historySvc: historySvc,
		db:         db,
	}
}

// RegisterRoutes mounts every endpoint on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/games", s.StartGame)
		r.Route("/games/{session}", func(r chi.Router) {
			r.Post("/actions", s.RecordAction)
			r.Post("/undo", s.Undo)
			r.Post("/advance", s.Advance)
			r.Post("/retreat", s.Retreat)
			r.Put("/goalie", s.SetGoalie)
			r.Get("/stats", s.Stats)
			r.Post("/finish", s.FinishGame)
		})

		r.Get("/history", s.ListGames)
		r.Delete("/history/{id}", s.DeleteGame)
		r.Get("/history/export.csv", s.ExportCSV)
		r.Post("/history/combine", s.Combine)

		r.Post("/players", s.AddPlayer)
		r.Get("/players", s.ListPlayers)
		r.Delete("/players", s.ClearPlayers)
	})
}

func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

type startGameRequest struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Date     string `json:"date"`
}

func (s *Server) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.HomeTeam == "" || req.AwayTeam == "" {
		respondError(w, r, http.StatusBadRequest, "homeTeam and awayTeam are required", nil)
		return
	}

	session, err := s.gameSvc.StartGame(r.Context(), req.HomeTeam, req.AwayTeam, req.Date)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "failed to start game", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"session": session})
}

type recordActionRequest struct {
	Team     string          `json:"team"`
	Action   string          `json:"action"`
	Location domain.Location `json:"location"`
}

func (s *Server) RecordAction(w http.ResponseWriter, r *http.Request) {
	var req recordActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if _, ok := domain.ParseActionKind(req.Action); !ok {
		respondError(w, r, http.StatusBadRequest, "unrecognized action", nil)
		return
	}

	if err := s.gameSvc.RecordAction(chi.URLParam(r, "session"), req.Team, req.Action, req.Location); err != nil {
		respondError(w, r, http.StatusNotFound, "unknown session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Undo(w http.ResponseWriter, r *http.Request) {
	s.mutateSession(w, r, s.gameSvc.Undo)
}

func (s *Server) Advance(w http.ResponseWriter, r *http.Request) {
	s.mutateSession(w, r, s.gameSvc.Advance)
}

func (s *Server) Retreat(w http.ResponseWriter, r *http.Request) {
	s.mutateSession(w, r, s.gameSvc.Retreat)
}

func (s *Server) mutateSession(w http.ResponseWriter, r *http.Request, op func(string) error) {
	if err := op(chi.URLParam(r, "session")); err != nil {
		respondError(w, r, http.StatusNotFound, "unknown session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type setGoalieRequest struct {
	TeamType string         `json:"teamType"`
	Player   *domain.Player `json:"player"`
}

func (s *Server) SetGoalie(w http.ResponseWriter, r *http.Request) {
	var req setGoalieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.TeamType != "home" && req.TeamType != "away" {
		respondError(w, r, http.StatusBadRequest, "teamType must be home or away", nil)
		return
	}

	if err := s.gameSvc.SetGoalie(chi.URLParam(r, "session"), req.TeamType, req.Player); err != nil {
		respondError(w, r, http.StatusNotFound, "unknown session", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	view, err := s.gameSvc.View(chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, r, http.StatusNotFound, "unknown session", err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *Server) FinishGame(w http.ResponseWriter, r *http.Request) {
	record, err := s.gameSvc.FinishGame(r.Context(), chi.URLParam(r, "session"))
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "failed to finish game", err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (s *Server) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.historySvc.List(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "failed to load games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"games": games,
		"count": len(games),
	})
}

func (s *Server) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid game id", err)
		return
	}

	if err := s.historySvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, r, http.StatusNotFound, "game not found", err)
			return
		}
		respondError(w, r, http.StatusBadGateway, "failed to delete game", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ExportCSV(w http.ResponseWriter, r *http.Request) {
	csv, err := s.historySvc.ExportCSV(r.Context())
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "failed to export games", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="hockey_stats_`+time.Now().UTC().Format("2006-01-02")+`.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csv)); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to write csv response")
	}
}

type combineRequest struct {
	Team string  `json:"team"`
	IDs  []int64 `json:"ids"`
}

func (s *Server) Combine(w http.ResponseWriter, r *http.Request) {
	var req combineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Team == "" {
		respondError(w, r, http.StatusBadRequest, "team is required", nil)
		return
	}

	combined, err := s.historySvc.Combine(r.Context(), req.Team, req.IDs)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "failed to combine games", err)
		return
	}

	respondJSON(w, http.StatusOK, combined)
}

type addPlayerRequest struct {
	TeamType string `json:"teamType"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

func (s *Server) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" {
		respondError(w, r, http.StatusBadRequest, "name is required", nil)
		return
	}

	player, err := s.rosterSvc.AddPlayer(r.Context(), req.TeamType, domain.Player{
		Number:   req.Number,
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "failed to add player", err)
		return
	}

	respondJSON(w, http.StatusCreated, player)
}

func (s *Server) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamType := r.URL.Query().Get("team_type")
	if teamType != "home" && teamType != "away" {
		respondError(w, r, http.StatusBadRequest, "team_type must be home or away", nil)
		return
	}

	players, err := s.rosterSvc.Players(r.Context(), teamType)
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "failed to load players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"players": players,
		"count":   len(players),
	})
}

func (s *Server) ClearPlayers(w http.ResponseWriter, r *http.Request) {
	teamType := r.URL.Query().Get("team_type")
	if err := s.rosterSvc.Clear(r.Context(), teamType); err != nil {
		respondError(w, r, http.StatusBadRequest, "failed to clear players", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logger := zerolog.Ctx(r.Context())
	if err != nil {
		logger.Error().Err(err).Int("status", status).Msg(message)
	} else {
		logger.Warn().Int("status", status).Msg(message)
	}

	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	respondJSON(w, status, body)
}
