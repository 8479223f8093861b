package router

import (
	"net/http"
	"time"

	"github.com/Nirpat3/MSABC/internal/config"
	"github.com/Nirpat3/MSABC/internal/handler"
	"github.com/Nirpat3/MSABC/internal/infra"
	"github.com/Nirpat3/MSABC/internal/middleware"
	"github.com/Nirpat3/MSABC/internal/repository"
	"github.com/Nirpat3/MSABC/internal/service"
	"github.com/Nirpat3/MSABC/web"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB / AI client
func New(cfg *config.Config, db *gorm.DB, ai infra.CompletionClient) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	priceHistoryRepo := repository.NewPriceHistoryRepository(db)
	spaRepo := repository.NewSPARepository(db)
	orderRepo := repository.NewSpecialOrderRepository(db)
	forecastRepo := repository.NewForecastRepository(db)
	syncLogRepo := repository.NewSyncLogRepository(db)
	tokenUsageRepo := repository.NewTokenUsageRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(productRepo)
	dealSvc := service.NewDealService(spaRepo)
	orderSvc := service.NewSpecialOrderService(orderRepo)
	forecastSvc := service.NewForecastService(forecastRepo)
	billingSvc := service.NewBillingService(tokenUsageRepo)
	authSvc := service.NewAuthService(cfg)
	scraperSvc := service.NewScraperService(ai, cfg.AIModel,
		productRepo, spaRepo, priceHistoryRepo, syncLogRepo, tokenUsageRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	dealsH := handler.NewDealsHandler(dealSvc)
	ordersH := handler.NewSpecialOrdersHandler(orderSvc)
	forecastsH := handler.NewForecastsHandler(forecastSvc)
	billingH := handler.NewBillingHandler(billingSvc)
	authH := handler.NewAuthHandler(authSvc)
	scraperH := handler.NewScraperHandler(scraperSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	api := r.Group("/api")
	{
		api.GET("/health", handler.Health(db))

		api.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

		api.GET("/products", productsH.List)
		api.GET("/products/meta/categories", productsH.Categories)
		api.GET("/products/:id", productsH.GetByID)

		api.GET("/deals/summary", dealsH.Summary)
		api.GET("/deals/spas", dealsH.ListSPAs)

		api.GET("/special-orders", ordersH.List)
		api.POST("/special-orders", ordersH.Create)

		api.GET("/forecasts", forecastsH.List)
		api.GET("/billing/summary", billingH.Summary)

		scraper := api.Group("/scraper")
		{
			scraper.POST("/analyze", scraperH.Analyze)
			scraper.POST("/parse-products", scraperH.ParseProducts)
			scraper.POST("/parse-spas", scraperH.ParseSPAs)
			scraper.GET("/sync-logs", scraperH.SyncLogs)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Embedded SPA for everything else. Hash routing keeps the server-side
	// surface to the root document plus app.js.
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(web.Static()))))

	return r
}
