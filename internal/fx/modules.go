package fx

import (
	"database/sql"

	"battle-of-monsters/internal/config"
	"battle-of-monsters/internal/database"
	"battle-of-monsters/internal/db"
	"battle-of-monsters/internal/logger"
	"battle-of-monsters/internal/repository"
	"battle-of-monsters/internal/server"
	"battle-of-monsters/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvidePinger(sqlDB *sql.DB) server.Pinger {
	return sqlDB
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(ProvidePinger),
	// repos
	fx.Provide(fx.Annotate(repository.NewMonsterRepository, fx.As(new(service.MonsterStore)))),
	fx.Provide(fx.Annotate(repository.NewBattleRepository, fx.As(new(service.BattleStore)))),
	// svc
	fx.Provide(service.NewMonsterService),
	fx.Provide(service.NewBattleService),
	// server
	fx.Provide(server.NewServer),
)
