package bootstrap

import (
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	ttl, err := cfg.JWT.AccessTTL()
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, ttl, clk), nil
}
