// Command import bulk-loads a catalog file (CSV or XLSX) into the
// persisted snapshot without running the server. Useful for seeding a
// fresh deployment from an institutional export.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gestac/gestac-backend/internal/config"
	"github.com/gestac/gestac-backend/internal/database"
	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/logger"
	"github.com/gestac/gestac-backend/internal/repository"
	"github.com/gestac/gestac-backend/internal/service"
	"github.com/gestac/gestac-backend/internal/store"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "", "Catalog file to import (.csv, .xlsx or .xls)")
	flag.Parse()

	if file == "" {
		fmt.Fprintln(os.Stderr, "Usage: import -file catalogo.csv")
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	snapshotRepo := repository.NewSnapshotRepository(pool)
	ids := identity.UUID{}
	scheduleStore := store.New(ids)

	// Keep existing assignments: import only replaces the catalog.
	snap, err := snapshotRepo.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}
	if snap != nil {
		scheduleStore.Restore(*snap)
	}

	f, err := os.Open(file)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog file")
	}
	defer f.Close()

	importService := service.NewImportService(scheduleStore, snapshotRepo, ids, log)
	stats, err := importService.Import(ctx, filepath.Base(file), f)
	if err != nil {
		log.Fatal().Err(err).Msg("Import failed")
	}

	fmt.Printf("Imported %d of %d rows (%d invalid)\n", stats.Processed, stats.TotalRows, stats.Invalid)
	fmt.Printf("Programs: %d, instructors: %d, semesters: %d\n",
		len(stats.Programs), len(stats.Instructors), len(stats.Semesters))
}
