package audit

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberflow/internal/models"
	"github.com/BruksfildServices01/barberflow/internal/store"
)

// StoreKey holds the trail next to the domain collections.
const StoreKey = "audit-trail"

// maxEntries caps the trail; oldest entries are dropped first.
const maxEntries = 500

// Logger appends audit entries to the store. It keeps its own lock since the
// dispatcher worker writes outside the application-state mutex.
type Logger struct {
	mu sync.Mutex
	st store.Store
}

func New(st store.Store) *Logger {
	return &Logger{st: st}
}

func (l *Logger) Log(ctx context.Context, actorID, actorRole, action, entity, entityID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read(ctx)
	if err != nil {
		return err
	}

	entries = append(entries, models.AuditEntry{
		ID:        uuid.NewString(),
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now(),
	})

	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	return l.st.Set(ctx, StoreKey, entries)
}

// List returns the trail newest-first.
func (l *Logger) List(ctx context.Context) ([]models.AuditEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.AuditEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

func (l *Logger) read(ctx context.Context) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := l.st.Get(ctx, StoreKey, &entries); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return entries, nil
}
