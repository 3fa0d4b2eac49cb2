package components

import (
	"time"

	"github.com/Fox-16s/reservat-io/internal/pkg/clock"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"
	"github.com/Fox-16s/reservat-io/internal/pkg/jwt"
	"github.com/Fox-16s/reservat-io/internal/usecase"
	"github.com/Fox-16s/reservat-io/internal/usecase/commands"
	"github.com/Fox-16s/reservat-io/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *time.Location {
		return cfg.Business.Location()
	},
	func(s *jwt.Service) commands.TokenIssuer {
		return s
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		// One cache per process: the read side snapshots it, the write side refreshes it.
		fx.Annotate(
			queries.NewReservationCache,
			fx.As(new(queries.Snapshotter)),
			fx.As(new(commands.ReservationCache)),
		),
		queries.NewUserQueries,
		queries.NewReservationQueries,
		func(cfg config.Config) queries.BankingQueries {
			return queries.NewBankingQueries(cfg.Business.BankingAliases)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
