package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rolecall/rolecall-backend/internal/config"
	"github.com/rolecall/rolecall-backend/internal/database"
	"github.com/rolecall/rolecall-backend/internal/handlers"
	"github.com/rolecall/rolecall-backend/internal/services"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		logger.Debugw("no .env file found, relying on environment")
	}
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 2. Database Connection + Migrations
	db, err := database.Connect(cfg.DSN(), logger)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db, logger); err != nil {
			logger.Fatalw("failed to seed demo data", "error", err)
		}
	}

	// 3. Initialize Core Services
	postingService := services.NewJobPostingService(db, logger)
	applicationService := services.NewApplicationService(db, logger)

	// 4. Initialize Handlers
	postingHandler := handlers.NewJobPostingHandler(postingService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 5. Setup Router & CORS
	r := handlers.NewRouter(postingHandler, applicationHandler, logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	// 6. Run until interrupted, then drain in-flight requests
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("shutdown did not complete cleanly", "error", err)
	}
}
