package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/degreeplan/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertValue(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, '2026-01-01T00:00:00Z')`, key, value)
	return err
}

func readValue(t *testing.T, database *sql.DB, key string) (string, bool) {
	t.Helper()
	var val string
	err := database.QueryRow(`SELECT value FROM session_values WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return val, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertValue(ctx, tx, "a", "1"); err != nil {
			return err
		}
		return insertValue(ctx, tx, "b", "2")
	})
	require.NoError(t, err)

	val, found := readValue(t, database, "b")
	assert.True(t, found)
	assert.Equal(t, "2", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertValue(ctx, tx, "a", "1"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := readValue(t, database, "a")
	assert.False(t, found, "first write is rolled back with the failing group")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertValue(ctx, tx, "p", "1")
			panic("boom")
		})
	})

	_, found := readValue(t, database, "p")
	assert.False(t, found)
}
