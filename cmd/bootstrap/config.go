package bootstrap

import (
	"log/slog"

	"github.com/Fox-16s/reservat-io/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(checkBusinessConfig),
)

// checkBusinessConfig surfaces the silent UTC fallback of an unknown
// BUSINESS_TIMEZONE, since every stored date depends on it.
func checkBusinessConfig(cfg config.Config) {
	if _, err := cfg.Business.LoadLocation(); err != nil {
		slog.Warn("unknown business timezone, calendar days resolve in UTC",
			"timezone", cfg.Business.TimeZone, "error", err)
	}
	if len(cfg.Business.BankingAliases) == 0 {
		slog.Warn("no banking aliases configured")
	}
}
