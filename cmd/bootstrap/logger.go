package bootstrap

import (
	"log/slog"

	"github.com/Fox-16s/reservat-io/internal/handler/middleware"
	"github.com/Fox-16s/reservat-io/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog's default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
