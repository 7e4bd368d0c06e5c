package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lyn1194/hsk1-app/internal/api"
	"github.com/Lyn1194/hsk1-app/internal/config"
	"github.com/Lyn1194/hsk1-app/internal/db"
	"github.com/Lyn1194/hsk1-app/internal/logger"
	"github.com/Lyn1194/hsk1-app/internal/repository/sqlite"
	"github.com/Lyn1194/hsk1-app/internal/services"
	"github.com/Lyn1194/hsk1-app/internal/vocab"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("HSK1 Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("quiz_option_count=%d", cfg.QuizOptionCount)
	log.Debug("strict_pinyin=%t", cfg.StrictPinyin)
	log.Debug("request_timeout=%ds", cfg.RequestTimeout)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load the vocabulary catalog
	log.Debug("loading vocabulary catalog")
	catalog, err := vocab.Load()
	if err != nil {
		log.Error("failed to load vocabulary: %v", err)
		os.Exit(1)
	}
	log.Info("vocabulary loaded: %d words across %d levels",
		len(catalog.AllWords()), len(catalog.Levels()))

	// Initialize repositories and services
	profileRepo := sqlite.NewProfileRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	profileService := services.NewProfileService(profileRepo)
	statsService := services.NewStatsService(statsRepo)
	sessionService := services.NewSessionService(catalog, statsService, services.SessionConfig{
		OptionCount:  cfg.QuizOptionCount,
		StrictPinyin: cfg.StrictPinyin,
	})

	srv := &api.Server{
		Catalog:  catalog,
		Profiles: profileService,
		Sessions: sessionService,
		Stats:    statsService,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(time.Duration(cfg.RequestTimeout) * time.Second),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("HSK1 Server Stopped")
	log.Info("===========================================")
}
