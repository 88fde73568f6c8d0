package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/repository"
	"github.com/alexanderramin/quorum/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupRepos returns SQLite repos sharing one in-memory database.
func setupRepos(t *testing.T) (*sql.DB, repository.PersonRepo, repository.BusyRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, repository.NewSQLitePersonRepo(database), repository.NewSQLiteBusyRepo(database)
}

func mustCreatePeople(t *testing.T, repo repository.PersonRepo, people ...*domain.Person) {
	t.Helper()
	for _, p := range people {
		require.NoError(t, repo.Create(context.Background(), p))
	}
}

func mustCreateBusy(t *testing.T, repo repository.BusyRepo, busy ...*domain.BusyInterval) {
	t.Helper()
	for _, b := range busy {
		require.NoError(t, repo.Create(context.Background(), b))
	}
}

type recordingObserver struct {
	mu       sync.Mutex
	useCases []UseCaseEvent
	degraded []DegradedEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.useCases = append(o.useCases, e)
}

func (o *recordingObserver) ObserveDegraded(_ context.Context, e DegradedEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.degraded = append(o.degraded, e)
}

func (o *recordingObserver) Degraded() []DegradedEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]DegradedEvent(nil), o.degraded...)
}

func (o *recordingObserver) UseCases() []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]UseCaseEvent(nil), o.useCases...)
}
