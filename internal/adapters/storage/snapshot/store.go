package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ecclesia-hq/ecclesia_backend/internal/apperrors"
	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	portsrepo "github.com/ecclesia-hq/ecclesia_backend/internal/core/ports/repositories"
)

// Store is the tenant store: a single immutable snapshot replaced wholesale
// on each mutation. A mutex serializes writers, so no reader ever observes a
// partially applied mutation (e.g. mixed-currency amounts mid-rescale).
// Every mutation persists the new snapshot synchronously; persistence
// failures are logged and swallowed, so the in-memory state can run ahead of
// the stored copy.
type Store struct {
	mu        sync.RWMutex
	snap      *domain.Snapshot
	persister portsrepo.SnapshotPersister
	logger    *slog.Logger
}

// Ensure Store satisfies the full facade.
var _ portsrepo.TenantStoreFacade = (*Store)(nil)

// New hydrates the store from the persister, seeding demo data when no
// snapshot has been written yet.
func New(ctx context.Context, persister portsrepo.SnapshotPersister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{persister: persister, logger: logger}

	snap, err := persister.Load(ctx)
	switch {
	case err == nil:
		s.snap = snap
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("No persisted snapshot found, seeding demo data")
		s.snap = SeedSnapshot()
		s.persist()
	default:
		logger.Error("Failed to load persisted snapshot, starting from seed data",
			slog.String("error", err.Error()))
		s.snap = SeedSnapshot()
	}
	return s
}

// Snapshot returns the current snapshot. The returned value is shared and
// must be treated as read-only.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// mutate runs fn against a shallow copy of the current snapshot. fn must
// replace, never modify in place, any slice it changes. Returning false makes
// the whole operation a no-op: no swap and no persistence write.
func (s *Store) mutate(fn func(next *domain.Snapshot) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.snap
	if !fn(&next) {
		return
	}
	refreshSession(&next)
	s.snap = &next
	s.persist()
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), s.snap); err != nil {
		// Best-effort only: memory has already moved on.
		s.logger.Error("Failed to persist snapshot", slog.String("error", err.Error()))
	}
}

// refreshSession recomputes the derived session views after a mutation, so
// they always point into the current collections.
func refreshSession(next *domain.Snapshot) {
	if next.CurrentUser != nil {
		next.CurrentUser = findUser(next.Users, next.CurrentUser.ID)
	}
	if next.CurrentChurch != nil {
		next.CurrentChurch = findChurch(next.Churches, next.CurrentChurch.ID)
	} else if next.CurrentUser != nil && next.CurrentUser.ChurchID != domain.PlatformChurchID {
		next.CurrentChurch = findChurch(next.Churches, next.CurrentUser.ChurchID)
	}
}

func findUser(users []domain.User, id string) *domain.User {
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u
		}
	}
	return nil
}

func findChurch(churches []domain.Church, id string) *domain.Church {
	for i := range churches {
		if churches[i].ID == id {
			c := churches[i]
			return &c
		}
	}
	return nil
}
