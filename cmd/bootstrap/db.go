package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Fox-16s/reservat-io/internal/infra/db"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"
	"github.com/Fox-16s/reservat-io/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool and, with DB_AUTO_MIGRATE set, brings the schema up to
// date before any handler can run a query.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.DB.AutoMigrate {
				return nil
			}
			if err := migrations.Up(ctx, db.OpenSQL(pool)); err != nil {
				return errs.Wrap(err, "auto migrate")
			}
			slog.Info("schema migrations applied", "database", cfg.DB.DBName)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return pool, nil
}
