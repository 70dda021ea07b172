package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/gestac/gestac-backend/internal/identity"
	"github.com/gestac/gestac-backend/internal/importer"
	"github.com/gestac/gestac-backend/internal/store"
)

// ImportService runs the import pipeline: decode, canonicalize,
// materialize, replace the catalog collections, persist.
type ImportService struct {
	store     *store.Store
	snapshots SnapshotPersister
	ids       identity.Generator
	log       zerolog.Logger
}

func NewImportService(st *store.Store, snapshots SnapshotPersister, ids identity.Generator, log zerolog.Logger) *ImportService {
	return &ImportService{
		store:     st,
		snapshots: snapshots,
		ids:       ids,
		log:       log.With().Str("component", "import_service").Logger(),
	}
}

// Import decodes a catalog file and replaces the three import-derived
// collections. Decode failures abort before any state is touched; once
// decoding succeeds the materializer never fails, it only drops and
// counts invalid rows.
func (s *ImportService) Import(ctx context.Context, filename string, r io.Reader) (importer.Stats, error) {
	rows, err := importer.ReadFile(filename, r)
	if err != nil {
		return importer.Stats{}, err
	}

	res := importer.Materialize(rows, s.ids)
	s.store.ReplaceImported(res.Components, res.Instructors, res.Programs)

	s.log.Info().
		Int("total_rows", res.Stats.TotalRows).
		Int("processed", res.Stats.Processed).
		Int("invalid", res.Stats.Invalid).
		Int("programs", len(res.Programs)).
		Int("instructors", len(res.Instructors)).
		Msg("Catalog imported")

	if err := persist(ctx, s.store, s.snapshots); err != nil {
		return res.Stats, err
	}
	return res.Stats, nil
}

// Clear drops every collection and persists the empty state.
func (s *ImportService) Clear(ctx context.Context) error {
	s.store.Clear()
	s.log.Info().Msg("All data cleared")
	return persist(ctx, s.store, s.snapshots)
}
