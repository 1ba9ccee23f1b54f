package fx

import (
	"hockey-tracker/internal/api"
	"hockey-tracker/internal/config"
	"hockey-tracker/internal/database"
	"hockey-tracker/internal/logger"
	"hockey-tracker/internal/repository"
	"hockey-tracker/internal/server"
	"hockey-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewGameRepository),
	// outbound client
	fx.Provide(api.NewShareClient),
	// svc
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewHistoryService),
	// server
	fx.Provide(server.New),
)
