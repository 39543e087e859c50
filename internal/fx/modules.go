package fx

import (
	"database/sql"

	"go.uber.org/fx"

	"github.com/funfight/challenge-tracker/internal/config"
	"github.com/funfight/challenge-tracker/internal/database"
	"github.com/funfight/challenge-tracker/internal/db"
	"github.com/funfight/challenge-tracker/internal/logger"
	"github.com/funfight/challenge-tracker/internal/repository"
	"github.com/funfight/challenge-tracker/internal/riot"
	"github.com/funfight/challenge-tracker/internal/server"
	"github.com/funfight/challenge-tracker/internal/service"
	"github.com/funfight/challenge-tracker/internal/session"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewSummonerRepository),
	fx.Provide(repository.NewMatchRepository),
	// riot client
	fx.Provide(riot.NewClient),
	// session store
	fx.Provide(session.NewStore),
	// svc
	fx.Provide(service.NewSummonerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewSessionService),
	// server
	fx.Provide(server.NewServer),
)
