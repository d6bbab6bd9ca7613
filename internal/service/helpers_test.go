package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/repository"
	"github.com/alexanderramin/timeline/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*sql.DB, *repository.SQLiteItemRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLiteItemRepo(database)
}

func seedItems(t *testing.T, repo repository.ItemRepo, items ...domain.Item) {
	t.Helper()
	for i, item := range items {
		require.NoError(t, repo.Create(context.Background(), item, i))
	}
}

func ptrStr(s string) *string { return &s }

func ptrDate(s string) *time.Time {
	d := domain.MustParseDate(s)
	return &d
}

// recordingObserver collects use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}
