package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gestac/gestac-backend/internal/config"
	"github.com/gestac/gestac-backend/internal/database"
	"github.com/gestac/gestac-backend/internal/handler"
	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/logger"
	"github.com/gestac/gestac-backend/internal/repository"
	"github.com/gestac/gestac-backend/internal/router"
	"github.com/gestac/gestac-backend/internal/service"
	"github.com/gestac/gestac-backend/internal/store"
	"github.com/gestac/gestac-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Gestac Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Restore Persisted State ───────────────────────────────────────
	snapshotRepo := repository.NewSnapshotRepository(pool)
	ids := identity.UUID{}
	scheduleStore := store.New(ids)

	snap, err := snapshotRepo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}
	if snap != nil {
		// Conflicts are not persisted; Restore recomputes them.
		scheduleStore.Restore(*snap)
		log.Info().
			Int("components", len(snap.Components)).
			Int("instructors", len(snap.Instructors)).
			Int("programs", len(snap.Programs)).
			Int("assignments", len(snap.Assignments)).
			Msg("Snapshot restored")
	}

	// ─── Initialize Services ──────────────────────────────────────────
	importService := service.NewImportService(scheduleStore, snapshotRepo, ids, log)
	catalogService := service.NewCatalogService(scheduleStore, snapshotRepo, log)
	allocationService := service.NewAllocationService(scheduleStore, snapshotRepo, log)
	exportService := service.NewExportService(scheduleStore, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Import:     handler.NewImportHandler(importService, cfg.MaxUploadBytes),
		Component:  handler.NewComponentHandler(catalogService),
		Instructor: handler.NewInstructorHandler(catalogService),
		Program:    handler.NewProgramHandler(catalogService),
		Allocation: handler.NewAllocationHandler(allocationService),
		Export:     handler.NewExportHandler(exportService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
