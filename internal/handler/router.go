package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"webmall/internal/domain/user"
	"webmall/internal/handler/api"
	"webmall/internal/handler/middleware"
	"webmall/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Product   *api.ProductHandler
	Category  *api.CategoryHandler
	Coupon    *api.CouponHandler
	Inventory *api.InventoryHandler
	Order     *api.OrderHandler
	Message   *api.MessageHandler
	Banner    *api.BannerHandler
	Report    *api.ReportHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	CSRF      *middleware.CSRFMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.CSRF.Validate())
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{mw.RateLimit.LoginLimit()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Storefront catalog is readable without a token.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Product.Get},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/categories/:id", Handler: h.Category.Get},
			{Method: http.MethodGet, Path: "/banners", Handler: h.Banner.ListActive},
		})

		customer := apiGroup.Group("")
		customer.Use(mw.Auth.RequireAuth())
		{
			addRoutes(customer, []route{
				{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate},
				{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Place},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListOwn},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/messages", Handler: h.Message.Create},
				{Method: http.MethodGet, Path: "/messages", Handler: h.Message.ListOwn},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth(), mw.Auth.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/products/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: h.Product.Delete},
				{Method: http.MethodPost, Path: "/products/:id/image", Handler: h.Product.UploadImage},

				{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Category.Delete},

				{Method: http.MethodGet, Path: "/coupons", Handler: h.Coupon.List},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Coupon.Create},
				{Method: http.MethodPut, Path: "/coupons/:id", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/coupons/:id", Handler: h.Coupon.Delete},

				{Method: http.MethodGet, Path: "/inventory", Handler: h.Inventory.List},
				{Method: http.MethodGet, Path: "/inventory/:productId", Handler: h.Inventory.Get},
				{Method: http.MethodPut, Path: "/inventory/:productId", Handler: h.Inventory.Upsert},
				{Method: http.MethodPatch, Path: "/inventory/:productId", Handler: h.Inventory.Adjust},

				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListAll},
				{Method: http.MethodGet, Path: "/orders/export", Handler: h.Order.Export},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Order.UpdateStatus},

				{Method: http.MethodGet, Path: "/messages", Handler: h.Message.ListAll},
				{Method: http.MethodPost, Path: "/messages/:id/reply", Handler: h.Message.Reply},
				{Method: http.MethodPatch, Path: "/messages/:id/read", Handler: h.Message.MarkRead},

				{Method: http.MethodGet, Path: "/banners", Handler: h.Banner.ListAll},
				{Method: http.MethodPost, Path: "/banners", Handler: h.Banner.Create},
				{Method: http.MethodPut, Path: "/banners/:id", Handler: h.Banner.Update},
				{Method: http.MethodDelete, Path: "/banners/:id", Handler: h.Banner.Delete},
				{Method: http.MethodPost, Path: "/banners/:id/image", Handler: h.Banner.UploadImage},

				{Method: http.MethodGet, Path: "/reports/summary", Handler: h.Report.Summary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
