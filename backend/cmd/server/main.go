package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"rabbithole/backend/internal/adapter"
	"rabbithole/backend/internal/api"
	"rabbithole/backend/internal/metrics"
	"rabbithole/backend/internal/storage"
	"rabbithole/backend/pkg/config"
	"rabbithole/backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...", zap.String("env", cfg.Env))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg, storage.NewMemStorage(storage.WithLogger(log)), log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// setupRouter wires the store, metrics and optional chat provider into the API
func setupRouter(cfg *config.Config, store storage.Storage, log *zap.Logger) *gin.Engine {
	var chat api.ChatProvider
	if cfg.ChatEnabled() {
		chat = adapter.NewLLMAdapter(cfg.ChatBaseURL, cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatProvider, cfg.ChatTimeout)
		log.Info("AI chat proxy enabled",
			zap.String("provider", cfg.ChatProvider),
			zap.String("model", cfg.ChatModel),
		)
	} else {
		log.Warn("AI chat proxy disabled; set CHAT_API_KEY to enable it")
	}

	m := metrics.New()
	if stats, err := store.Stats(context.Background()); err == nil {
		m.SetStoreStats(stats)
	}

	return api.NewRouter(api.Deps{
		Store:       store,
		Logger:      log,
		Metrics:     m,
		Chat:        chat,
		CORSOrigins: cfg.CORSOrigins,
	})
}
