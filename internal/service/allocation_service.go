package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gestac/gestac-backend/internal/model"
	"github.com/gestac/gestac-backend/internal/store"
)

// AllocationService handles assignment mutations and conflict reads.
// Conflict recomputation happens inside the store, synchronously with
// each mutation; this layer only adds persistence and logging.
type AllocationService struct {
	store     *store.Store
	snapshots SnapshotPersister
	log       zerolog.Logger
}

func NewAllocationService(st *store.Store, snapshots SnapshotPersister, log zerolog.Logger) *AllocationService {
	return &AllocationService{
		store:     st,
		snapshots: snapshots,
		log:       log.With().Str("component", "allocation_service").Logger(),
	}
}

func (s *AllocationService) List(ctx context.Context) []model.Assignment {
	return s.store.Assignments()
}

func (s *AllocationService) Create(ctx context.Context, a model.Assignment) (model.Assignment, error) {
	created, err := s.store.CreateAssignment(a)
	if err != nil {
		return model.Assignment{}, err
	}

	s.log.Debug().
		Str("assignment_id", created.ID).
		Int("conflicts", len(s.store.Conflicts())).
		Msg("Assignment created")

	return created, persist(ctx, s.store, s.snapshots)
}

func (s *AllocationService) Update(ctx context.Context, id string, patch model.AssignmentPatch) (model.Assignment, error) {
	updated, err := s.store.UpdateAssignment(id, patch)
	if err != nil {
		return model.Assignment{}, err
	}
	return updated, persist(ctx, s.store, s.snapshots)
}

func (s *AllocationService) Delete(ctx context.Context, id string) error {
	s.store.DeleteAssignment(id)
	return persist(ctx, s.store, s.snapshots)
}

// Conflicts returns the current derived conflict set.
func (s *AllocationService) Conflicts(ctx context.Context) []model.Conflict {
	return s.store.Conflicts()
}

// Recheck forces a detection pass without mutating assignments.
func (s *AllocationService) Recheck(ctx context.Context) []model.Conflict {
	return s.store.Recheck()
}
