package components

import (
	"github.com/Fox-16s/reservat-io/internal/handler"
	"github.com/Fox-16s/reservat-io/internal/handler/api"
	"github.com/Fox-16s/reservat-io/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewPropertyHandler,
		api.NewReportHandler,
		api.NewBankingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
