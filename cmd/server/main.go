package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrienb/vocabflash/internal/api"
	"github.com/adrienb/vocabflash/internal/config"
	"github.com/adrienb/vocabflash/internal/db"
	"github.com/adrienb/vocabflash/internal/logger"
	"github.com/adrienb/vocabflash/internal/repository/sqlite"
	"github.com/adrienb/vocabflash/internal/review"
	"github.com/adrienb/vocabflash/internal/services"
	"github.com/adrienb/vocabflash/internal/worker"
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
	log.Info("VocabFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("max_folder_depth=%d", cfg.MaxFolderDepth)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)

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

	// Initialize repositories
	itemRepo := sqlite.NewItemRepository(database.DB)
	folderRepo := sqlite.NewFolderRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)

	// Initialize worker pool and session store
	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessionStore := review.NewStore(sessionTTL)

	// Initialize services
	vocabularyService := services.NewVocabularyService(itemRepo, folderRepo)
	folderService := services.NewFolderService(folderRepo, cfg.MaxFolderDepth)
	reviewService := services.NewReviewService(progressRepo, folderRepo, cfg.MaxFolderDepth)
	sessionService := services.NewSessionService(reviewService, itemRepo, sessionStore)
	statsService := services.NewStatsService(progressRepo)

	srv := api.NewServer(
		database.DB,
		vocabularyService,
		folderService,
		reviewService,
		sessionService,
		statsService,
		sessionStore,
		importPool,
	)

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)
	sessionStore.StartSweeper(ctx, sessionTTL/2)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
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

	log.Debug("stopping background workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping import pool")
	importPool.Stop()

	log.Info("===========================================")
	log.Info("VocabFlash Server Stopped")
	log.Info("===========================================")
}
