package bootstrap

import (
	"context"

	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewQueryer,
		NewPool,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewQueryer(pool *pgxpool.Pool) db.Queryer {
	return pool
}

func NewPool(pool *pgxpool.Pool) db.Pool {
	return pool
}
