package localfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
)

// Persister stores the whole snapshot as one JSON document at a well-known
// path. Writes replace the previous copy wholesale: concurrent processes
// pointed at the same file are last-write-wins with no merge or conflict
// detection.
type Persister struct {
	path string
}

var _ portsrepo.SnapshotPersister = (*Persister)(nil)

func New(path string) *Persister {
	return &Persister{path: path}
}

func (p *Persister) Load(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", p.path, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", p.path, err)
	}
	return &snap, nil
}

func (p *Persister) Save(_ context.Context, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file %s: %w", p.path, err)
	}
	return nil
}
