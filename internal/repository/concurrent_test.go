package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite checks that List never sees a
// half-written item while another connection is inserting.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteItemRepo(database)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			it := testutil.NewTestItem(fmt.Sprintf("Item-%d", i))
			if err := repo.Create(ctx, it, i); err != nil {
				t.Errorf("writer: create item %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				items, err := repo.List(ctx)
				if err != nil {
					t.Errorf("reader %d: list: %v", reader, err)
					return
				}
				for _, it := range items {
					if it.ID == "" || it.Name == "" || it.StartDate.IsZero() {
						t.Errorf("reader %d: got partial item %+v", reader, it)
					}
				}
			}
		}(r)
	}

	wg.Wait()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

// TestConcurrentAccess_AppendsGetDistinctPositions runs many
// NextPosition+Create transactions at once with no retries. Each must
// succeed and land on its own position.
func TestConcurrentAccess_AppendsGetDistinctPositions(t *testing.T) {
	database := newConcurrentTestDB(t)
	ctx := context.Background()
	uow := db.NewSQLiteUnitOfWork(database)

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				txItems := NewSQLiteItemRepo(tx)
				pos, err := txItems.NextPosition(ctx)
				if err != nil {
					return err
				}
				return txItems.Create(ctx, testutil.NewTestItem(fmt.Sprintf("Item-%d", i)), pos)
			})
			if err != nil {
				errCh <- err
			}
		}(i)
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	rows, err := database.QueryContext(ctx, `SELECT position FROM items ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var p int
		require.NoError(t, rows.Scan(&p))
		positions = append(positions, p)
	}
	require.NoError(t, rows.Err())

	require.Len(t, positions, workers)
	for i, p := range positions {
		assert.Equal(t, i, p, "positions are dense and unique")
	}
}
