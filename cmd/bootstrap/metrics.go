package bootstrap

import (
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(func(cfg config.Config) {
		if cfg.Metrics.Enabled {
			metrics.Register()
		}
	}),
)
