package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gluca-api/internal/api"
	"gluca-api/internal/core/cache"
	"gluca-api/internal/core/preference"
	"gluca-api/internal/infrastructure/config"
	"gluca-api/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("configuration loaded",
		zap.String("spoonacular_base_url", cfg.Spoonacular.BaseURL),
		zap.String("openfoodfacts_base_url", cfg.OpenFoodFacts.BaseURL),
		zap.Bool("preferences_redis", cfg.Preferences.RedisEnabled),
	)

	cacheManager := cache.NewManager(&cfg.Cache)
	if cfg.Cache.Enabled && cacheManager == nil {
		common.LogFatal("Failed to initialize cache manager")
	}
	defer cacheManager.Close()

	store := newPreferenceStore(cfg)

	router, err := api.SetupRouter(cfg, cacheManager, store)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("starting application",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}

// newPreferenceStore builds the preference store on Redis when enabled,
// falling back to the in-memory backend when Redis is unreachable.
func newPreferenceStore(cfg *config.Config) *preference.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var backend preference.Backend
	if cfg.Preferences.RedisEnabled {
		redisBackend, err := preference.NewRedisBackend(ctx, cfg.Preferences.RedisAddr, cfg.Preferences.Key)
		if err != nil {
			common.LogWarn("Redis unavailable, using in-memory preference store",
				zap.String("addr", cfg.Preferences.RedisAddr),
				zap.Error(err),
			)
			backend = preference.NewMemoryBackend()
		} else {
			backend = redisBackend
		}
	} else {
		backend = preference.NewMemoryBackend()
	}

	return preference.NewStore(ctx, backend)
}
