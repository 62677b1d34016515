package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/handler/validation"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewBookingHandler,
		api.NewItemRequestHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(a *api.AuthHandler, u *api.UserHandler, i *api.ItemHandler, b *api.BookingHandler, r *api.ItemRequestHandler) handler.Handlers {
			return handler.Handlers{Auth: a, User: u, Item: i, Booking: b, ItemRequest: r}
		},
	),
	fx.Invoke(
		func(clk clock.Clock) error {
			return validation.Register(clk)
		},
		handler.NewRouter,
	),
)
