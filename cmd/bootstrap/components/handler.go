package components

import (
	"webmall/internal/handler"
	"webmall/internal/handler/api"
	"webmall/internal/handler/middleware"
	"webmall/internal/pkg/config"
	"webmall/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewCouponHandler,
		api.NewInventoryHandler,
		api.NewOrderHandler,
		api.NewMessageHandler,
		api.NewBannerHandler,
		api.NewReportHandler,
		middleware.NewAuthMiddleware,
		NewCSRFMiddleware,
		NewRateLimitMiddleware,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCSRFMiddleware(cfg config.Config) *middleware.CSRFMiddleware {
	return middleware.NewCSRFMiddleware(cfg.Security)
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter, cfg config.Config) *middleware.RateLimitMiddleware {
	return middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit)
}

func NewHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	coupon *api.CouponHandler,
	inventory *api.InventoryHandler,
	order *api.OrderHandler,
	message *api.MessageHandler,
	banner *api.BannerHandler,
	report *api.ReportHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Product:   product,
		Category:  category,
		Coupon:    coupon,
		Inventory: inventory,
		Order:     order,
		Message:   message,
		Banner:    banner,
		Report:    report,
	}
}

func NewMiddlewares(
	auth *middleware.AuthMiddleware,
	csrf *middleware.CSRFMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
) handler.Middlewares {
	return handler.Middlewares{
		Auth:      auth,
		CSRF:      csrf,
		RateLimit: rateLimit,
	}
}
