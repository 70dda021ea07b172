package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestac/gestac-backend/internal/model"
)

// SnapshotRepository persists the live scheduling collections as a
// single JSONB document. The conflict set is never stored: it is
// derived state, rebuilt when the snapshot is restored.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Load returns the persisted snapshot, or nil when none has been saved
// yet.
func (r *SnapshotRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	var data []byte
	err := r.pool.QueryRow(ctx,
		`SELECT data FROM schedule_snapshots WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Save upserts the snapshot document.
func (r *SnapshotRepository) Save(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO schedule_snapshots (id, data, updated_at) VALUES (1, $1, NOW())
		 ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		data)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
