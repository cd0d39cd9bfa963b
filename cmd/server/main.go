package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/maxviazov/auction-display-service/internal/config"
	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/handler"
	"github.com/maxviazov/auction-display-service/internal/logger"
	"github.com/maxviazov/auction-display-service/internal/service"
)

func main() {
	// .env is optional; real environments inject APP_* directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ .env not loaded: %v", err)
	}

	// Load application config
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = cfg.App.Env
	}
	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		appLogger.Fatal().Err(err).Str("timezone", cfg.App.Timezone).Msg("invalid timezone")
	}

	countdownSvc := service.NewCountdownService(display.SystemClock, appLogger)
	paginationSvc := service.NewPaginationService(cfg.Display.MaxVisiblePages, appLogger)
	auctionSvc := service.NewAuctionService(display.SystemClock, loc, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(appLogger))
	handler.Register(router, cfg.App.Version, countdownSvc, paginationSvc, auctionSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	appLogger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("✅ Server stopped")
}
