package service

import (
	"bytes"
	"context"

	"github.com/rs/zerolog"

	"github.com/gestac/gestac-backend/internal/export"
	"github.com/gestac/gestac-backend/internal/store"
)

// ExportService renders the allocation table for download.
type ExportService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewExportService(st *store.Store, log zerolog.Logger) *ExportService {
	return &ExportService{
		store: st,
		log:   log.With().Str("component", "export_service").Logger(),
	}
}

func (s *ExportService) AllocationsCSV(ctx context.Context) ([]byte, error) {
	return export.AssignmentsCSV(s.store.Assignments(), s.store.Components(), s.store.Instructors())
}

func (s *ExportService) AllocationsXLSX(ctx context.Context) (*bytes.Buffer, error) {
	return export.AssignmentsXLSX(s.store.Assignments(), s.store.Components(), s.store.Instructors())
}
