package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gestac/gestac-backend/internal/model"
	"github.com/gestac/gestac-backend/internal/store"
)

// CatalogService handles direct CRUD on the three import-derived
// collections: course components, instructors and programs.
type CatalogService struct {
	store     *store.Store
	snapshots SnapshotPersister
	log       zerolog.Logger
}

func NewCatalogService(st *store.Store, snapshots SnapshotPersister, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		store:     st,
		snapshots: snapshots,
		log:       log.With().Str("component", "catalog_service").Logger(),
	}
}

// ─── Course components ─────────────────────────────────────────────────

func (s *CatalogService) ListComponents(ctx context.Context) []model.CourseComponent {
	return s.store.Components()
}

func (s *CatalogService) CreateComponent(ctx context.Context, c model.CourseComponent) (model.CourseComponent, error) {
	created := s.store.AddComponent(c)
	return created, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) UpdateComponent(ctx context.Context, id string, patch model.ComponentPatch) (model.CourseComponent, error) {
	updated, err := s.store.UpdateComponent(id, patch)
	if err != nil {
		return model.CourseComponent{}, err
	}
	return updated, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) DeleteComponent(ctx context.Context, id string) error {
	s.store.RemoveComponent(id)
	return persist(ctx, s.store, s.snapshots)
}

// ─── Instructors ───────────────────────────────────────────────────────

func (s *CatalogService) ListInstructors(ctx context.Context) []model.Instructor {
	return s.store.Instructors()
}

func (s *CatalogService) CreateInstructor(ctx context.Context, d model.Instructor) (model.Instructor, error) {
	created := s.store.AddInstructor(d)
	return created, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) UpdateInstructor(ctx context.Context, id string, patch model.InstructorPatch) (model.Instructor, error) {
	updated, err := s.store.UpdateInstructor(id, patch)
	if err != nil {
		return model.Instructor{}, err
	}
	return updated, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) DeleteInstructor(ctx context.Context, id string) error {
	s.store.RemoveInstructor(id)
	return persist(ctx, s.store, s.snapshots)
}

// ─── Programs ──────────────────────────────────────────────────────────

func (s *CatalogService) ListPrograms(ctx context.Context) []model.Program {
	return s.store.Programs()
}

func (s *CatalogService) CreateProgram(ctx context.Context, p model.Program) (model.Program, error) {
	created := s.store.AddProgram(p)
	return created, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) UpdateProgram(ctx context.Context, id string, patch model.ProgramPatch) (model.Program, error) {
	updated, err := s.store.UpdateProgram(id, patch)
	if err != nil {
		return model.Program{}, err
	}
	return updated, persist(ctx, s.store, s.snapshots)
}

func (s *CatalogService) DeleteProgram(ctx context.Context, id string) error {
	s.store.RemoveProgram(id)
	return persist(ctx, s.store, s.snapshots)
}
