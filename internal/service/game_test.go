package service

import (
	"context"
	"path/filepath"
	"testing"

	"hockey-tracker/internal/api"
	"hockey-tracker/internal/config"
	"hockey-tracker/internal/database"
	"hockey-tracker/internal/domain"
	"hockey-tracker/internal/repository"

	"github.com/rs/zerolog"
)

func newTestServices(t *testing.T) (*GameService, *RosterService) {
	t.Helper()
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "hockey.db")}
	db, err := database.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	logger := zerolog.Nop()
	roster := NewRosterService(repository.NewPlayerRepository(db, logger), logger)
	games := repository.NewGameRepository(db, logger)
	return NewGameService(games, roster, api.NewShareClient(cfg), logger), roster
}

func TestGameServiceLifecycle(t *testing.T) {
	svc, roster := newTestServices(t)
	ctx := context.Background()

	goalie, err := roster.AddPlayer(ctx, "home", domain.Player{Number: "31", Name: "Price", Position: "G"})
	if err != nil {
		t.Fatalf("add goalie: %v", err)
	}

	session, err := svc.StartGame(ctx, "Tigers", "Sharks", "2025-11-02")
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	if session == "" {
		t.Fatal("expected a session id")
	}

	if err := svc.SetGoalie(session, "home", &goalie); err != nil {
		t.Fatalf("set goalie: %v", err)
	}

	loc := domain.Location{X: 50, Y: 40}
	for _, rec := range []struct{ team, action string }{
		{"Tigers", "GOAL"},
		{"Tigers", "REBOUND"},
		{"Tigers", "MISSED"},
		{"Sharks", "GOAL"},
		{"Sharks", "BLOCKED"},
	} {
		if err := svc.RecordAction(session, rec.team, rec.action, loc); err != nil {
			t.Fatalf("record %s %s: %v", rec.team, rec.action, err)
		}
	}

	view, err := svc.View(session)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.CurrentPeriod != 1 || view.PeriodLabel != "Period 1" {
		t.Errorf("period = %d %q, want 1 Period 1", view.CurrentPeriod, view.PeriodLabel)
	}
	if view.Home.Goals != 1 || view.Home.TotalShots != 3 || view.Home.ShotsOnGoal != 2 {
		t.Errorf("home line = %+v", view.Home)
	}
	if view.Away.Goals != 1 || view.Away.TotalShots != 2 || view.Away.ShotsOnGoal != 1 {
		t.Errorf("away line = %+v", view.Away)
	}

	if err := svc.Advance(session); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := svc.RecordAction(session, "Tigers", "GOAL", loc); err != nil {
		t.Fatalf("record in period 2: %v", err)
	}

	view, err = svc.View(session)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.CurrentPeriod != 2 || len(view.PeriodLines) != 2 {
		t.Errorf("after advance: period %d, %d lines", view.CurrentPeriod, len(view.PeriodLines))
	}
	if view.HomeTotals.Goals != 2 || view.HomeTotals.TotalShots != 4 {
		t.Errorf("home totals = %+v", view.HomeTotals)
	}

	stored, err := svc.FinishGame(ctx, session)
	if err != nil {
		t.Fatalf("finish game: %v", err)
	}
	if stored.ID == 0 {
		t.Error("expected a stored game id")
	}
	if stored.HomeTeam.Name != "Tigers" || stored.AwayTeam.Name != "Sharks" {
		t.Errorf("stored teams = %q vs %q", stored.HomeTeam.Name, stored.AwayTeam.Name)
	}
	if stored.Date != "2025-11-02" {
		t.Errorf("stored date = %q, want 2025-11-02", stored.Date)
	}
	if stored.HomeTotal.Goals != 2 || stored.AwayTotal.Goals != 1 {
		t.Errorf("stored totals = %d-%d, want 2-1", stored.HomeTotal.Goals, stored.AwayTotal.Goals)
	}
	if stored.SelectedHomeGoalie == nil || stored.SelectedHomeGoalie.Name != "Price" {
		t.Errorf("stored home goalie = %+v", stored.SelectedHomeGoalie)
	}

	if err := svc.RecordAction(session, "Tigers", "GOAL", loc); err == nil {
		t.Error("expected an error recording into a finished session")
	}
}

func TestGameServiceUnknownSession(t *testing.T) {
	svc, _ := newTestServices(t)

	if err := svc.RecordAction("missing", "Tigers", "GOAL", domain.Location{}); err == nil {
		t.Error("RecordAction on unknown session should fail")
	}
	if err := svc.Advance("missing"); err == nil {
		t.Error("Advance on unknown session should fail")
	}
	if _, err := svc.View("missing"); err == nil {
		t.Error("View on unknown session should fail")
	}
	if _, err := svc.FinishGame(context.Background(), "missing"); err == nil {
		t.Error("FinishGame on unknown session should fail")
	}
}

func TestGameServiceDefaultsDate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	session, err := svc.StartGame(ctx, "Tigers", "Sharks", "")
	if err != nil {
		t.Fatalf("start game: %v", err)
	}

	stored, err := svc.FinishGame(ctx, session)
	if err != nil {
		t.Fatalf("finish game: %v", err)
	}
	if stored.Date == "" {
		t.Error("finished game should carry a defaulted date")
	}
}
