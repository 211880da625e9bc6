package api

import (
	"context"
	"net/http"
	"time"

	contentHandler "gluca-api/internal/api/handlers/content"
	glucoseHandler "gluca-api/internal/api/handlers/glucose"
	"gluca-api/internal/api/handlers/health"
	preferenceHandler "gluca-api/internal/api/handlers/preference"
	productHandler "gluca-api/internal/api/handlers/product"
	recipeHandler "gluca-api/internal/api/handlers/recipe"
	"gluca-api/internal/api/middleware"
	"gluca-api/internal/core/cache"
	"gluca-api/internal/core/openfoodfacts"
	"gluca-api/internal/core/preference"
	productService "gluca-api/internal/core/product"
	recipeService "gluca-api/internal/core/recipe"
	"gluca-api/internal/core/search"
	"gluca-api/internal/core/spoonacular"
	"gluca-api/internal/infrastructure/config"
	"gluca-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// Per-request deadline. Upstream calls carry their own shorter timeouts.
	timeoutDuration = 30 * time.Second
	// Request body limit (1MB). The API accepts only small JSON documents.
	maxBodySize = 1 << 20
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager, store *preference.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("spoonacular_base_url", cfg.Spoonacular.BaseURL),
		zap.String("openfoodfacts_base_url", cfg.OpenFoodFacts.BaseURL),
		zap.Duration("timeout", timeoutDuration),
	)

	spoonClient := spoonacular.NewClient(cfg)
	offClient := openfoodfacts.NewClient(cfg)

	productSvc := productService.NewService(offClient, cacheManager)
	detailSvc := recipeService.NewDetailService(spoonClient, cacheManager)
	orchestrator := search.NewOrchestrator(spoonClient)

	// Request deadline plus context injection for handlers that read shared
	// state from the gin context.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		productHandlerInstance := productHandler.NewHandler(productSvc)
		recipeHandlerInstance := recipeHandler.NewHandler(orchestrator, detailSvc, store)
		preferenceHandlerInstance := preferenceHandler.NewHandler(store)

		api.GET("/product/:barcode", productHandlerInstance.HandleLookup)

		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("/search", recipeHandlerInstance.HandleSearch)
			recipeGroup.GET("/fallback", recipeHandlerInstance.HandleFallback)
			recipeGroup.GET("/:id", recipeHandlerInstance.HandleDetail)
		}

		api.GET("/preferences", preferenceHandlerInstance.HandleGet)
		api.PUT("/preferences", preferenceHandlerInstance.HandlePut)

		api.GET("/glucose/target", glucoseHandler.HandleTarget)

		api.GET("/articles", contentHandler.HandleArticles)
		api.GET("/articles/:slug", contentHandler.HandleArticle)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
