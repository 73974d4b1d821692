package edgerecords

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/migrations"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) (*SQLiteRepository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	p, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Edge())
	require.NoError(t, err)
	_, err = p.Up(context.Background())
	require.NoError(t, err)

	return NewSQLiteRepository(db), db
}

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newRecord(terminal, key string, minor int64) *models.EdgeRecord {
	price := models.FromMinorUnits(minor)
	return &models.EdgeRecord{
		TerminalID:     terminal,
		IdempotencyKey: key,
		AmountTotal:    price,
		Payment:        models.PaymentMetadata{Currency: "SEK", Method: "card"},
		LineItems:      []models.LineItem{{SKU: "A1", Name: "Coffee", Quantity: 1, UnitPrice: price}},
		CreatedAt:      t0,
	}
}

func TestInsert_AndGetByKey(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	rec := newRecord("T1", "key-0001", 1250)
	out, err := repo.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, common.Inserted, out)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, models.SyncStatePending, rec.SyncState)

	got, err := repo.GetByKey(ctx, "T1", "key-0001")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.AmountTotal))
	assert.Equal(t, "SEK", got.Payment.Currency)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Coffee", got.LineItems[0].Name)
	assert.True(t, t0.Equal(got.CreatedAt))
	assert.Equal(t, models.SyncStatePending, got.SyncState)
	assert.Nil(t, got.SyncedAt)
}

func TestInsert_DuplicateKeyIsNotWritten(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newRecord("T1", "key-0001", 100))
	require.NoError(t, err)

	out, err := repo.Insert(ctx, newRecord("T1", "key-0001", 999))
	require.NoError(t, err)
	assert.Equal(t, common.AlreadyExists, out)

	got, err := repo.GetByKey(ctx, "T1", "key-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(100), models.MinorUnits(got.AmountTotal))

	// same key on another terminal is a different transaction
	out, err = repo.Insert(ctx, newRecord("T2", "key-0001", 100))
	require.NoError(t, err)
	assert.Equal(t, common.Inserted, out)
}

func TestGetByKey_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetByKey(context.Background(), "T1", "missing-key")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListPending_OrderAndMarkSynced(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	var ids []int64
	for _, k := range []string{"key-0001", "key-0002", "key-0003"} {
		rec := newRecord("T1", k, 100)
		_, err := repo.Insert(ctx, rec)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	_, err := repo.Insert(ctx, newRecord("T2", "key-0001", 100))
	require.NoError(t, err)

	pending, err := repo.ListPending(ctx, "T1")
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for i, rec := range pending {
		assert.Equal(t, ids[i], rec.ID)
	}

	syncedAt := t0.Add(time.Minute)
	require.NoError(t, repo.MarkSynced(ctx, ids[0], syncedAt))
	// second call is a no-op and keeps the first timestamp
	require.NoError(t, repo.MarkSynced(ctx, ids[0], syncedAt.Add(time.Hour)))

	n, err := repo.CountPending(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := repo.List(ctx, models.EdgeFilter{TerminalID: "T1"})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, models.SyncStateSynced, all[0].SyncState)
	require.NotNil(t, all[0].SyncedAt)
	assert.True(t, syncedAt.Equal(*all[0].SyncedAt))

	pending, err = repo.List(ctx, models.EdgeFilter{PendingOnly: true})
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestList_NoFilterReturnsEverything(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, newRecord("T1", "key-0001", 100))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newRecord("T2", "key-0001", 100))
	require.NoError(t, err)

	all, err := repo.List(ctx, models.EdgeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	empty, err := repo.List(ctx, models.EdgeFilter{TerminalID: "T9"})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatsByTerminal(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	a := newRecord("T1", "key-0001", 1000)
	_, err := repo.Insert(ctx, a)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newRecord("T1", "key-0002", 550))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, newRecord("T2", "key-0001", 1))
	require.NoError(t, err)
	require.NoError(t, repo.MarkSynced(ctx, a.ID, t0))

	stats, err := repo.StatsByTerminal(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 2, stats["T1"].Count)
	assert.Equal(t, 1, stats["T1"].Pending)
	assert.True(t, decimal.RequireFromString("15.50").Equal(stats["T1"].Amount))
	assert.Equal(t, 1, stats["T2"].Count)
	assert.True(t, decimal.RequireFromString("0.01").Equal(stats["T2"].Amount))
}

func TestStatsByTerminal_Empty(t *testing.T) {
	repo, _ := setupRepo(t)

	stats, err := repo.StatsByTerminal(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
