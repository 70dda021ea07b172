package service

import (
	"context"
	"fmt"

	"github.com/gestac/gestac-backend/internal/model"
	"github.com/gestac/gestac-backend/internal/store"
)

// SnapshotPersister is the persistence collaborator: it durably stores
// the live collections after each mutation and hands them back on
// startup. Durability itself is the collaborator's problem, not the
// store's.
type SnapshotPersister interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}

// persist writes the store's current snapshot through the persister.
// The in-memory mutation has already been applied when this runs; a
// save failure is surfaced so the caller can report it, but it does not
// roll the mutation back.
func persist(ctx context.Context, st *store.Store, snapshots SnapshotPersister) error {
	snap := st.Snapshot()
	if err := snapshots.Save(ctx, &snap); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
