package repositories

import (
	"context"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
)

// SnapshotPersister loads and saves the whole application snapshot.
// Persistence is best-effort: the store logs and swallows Save errors, so the
// in-memory state may be ahead of the persisted copy.
type SnapshotPersister interface {
	// Load reads the persisted snapshot. Returns apperrors.ErrNotFound when
	// no snapshot has ever been written.
	Load(ctx context.Context) (*domain.Snapshot, error)
	// Save writes the snapshot wholesale, replacing any previous copy
	// (last write wins, no merge).
	Save(ctx context.Context, snap *domain.Snapshot) error
}
