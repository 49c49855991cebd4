package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func columnNames(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	require.NoError(t, err)
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSessionValues(t *testing.T) {
	db := openTestDB(t)

	assert.Equal(t, []string{"key", "value", "updated_at"}, columnNames(t, db, "session_values"))
}

func TestMigrate_UpgradesStoreWithoutUpdatedAt(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE session_values (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session_values (key, value) VALUES ('firstYearSpringCredits', '11')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	assert.Contains(t, columnNames(t, db, "session_values"), "updated_at")
	var value, updated string
	require.NoError(t, db.QueryRow(`SELECT value, updated_at FROM session_values WHERE key = 'firstYearSpringCredits'`).
		Scan(&value, &updated))
	assert.Equal(t, "11", value)
	assert.Equal(t, "", updated)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/someone")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/someone", ".degreeplan", "session.db"), path)
}
