package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), "nested", "advisor.db"),
		Name: "advisor",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew_CreatesDirectoryAndDefaultsProfile(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, ProfileStandard, db.profile)
	assert.Equal(t, "advisor", db.Name())
	assert.FileExists(t, db.Path())
}

func TestBuildConnectionString(t *testing.T) {
	connStr := buildConnectionString("/data/advisor.db")
	assert.Contains(t, connStr, "/data/advisor.db?_pragma=journal_mode(WAL)")
	assert.Contains(t, connStr, "_pragma=synchronous(NORMAL)")
	assert.Contains(t, connStr, "_pragma=busy_timeout(5000)")

	memory := buildConnectionString("file:advisor?mode=memory")
	assert.Contains(t, memory, "mode=memory&_pragma=journal_mode(WAL)")
}

func TestMigrate_AppliesSchemaIdempotently(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Migrate())
	require.NoError(t, db.Migrate())

	var count int
	err := db.Conn().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('user_profiles', 'market_quotes')`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMigrate_UnknownNameIsNoop(t *testing.T) {
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "x.db"), Name: "unknown"})
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Migrate())
}

func TestWithTransaction(t *testing.T) {
	db := newTestDB(t)
	_, err := db.Conn().Exec(`CREATE TABLE items (name TEXT)`)
	require.NoError(t, err)

	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (name) VALUES ('kept')`)
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (name) VALUES ('discarded')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		panic("unexpected")
	})
	assert.ErrorContains(t, err, "panic in transaction")

	var count int
	require.NoError(t, db.Conn().QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count))
	assert.Equal(t, 1, count)

	assert.Error(t, WithTransaction(nil, func(*sql.Tx) error { return nil }))
}

func TestWALCheckpointAndStats(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrate())

	assert.NoError(t, db.WALCheckpoint(""))
	assert.NoError(t, db.WALCheckpoint("PASSIVE"))
	assert.Error(t, db.WALCheckpoint("DROP TABLE"))

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Positive(t, stats.PageCount)
	assert.Positive(t, stats.PageSize)
}

func TestSnapshot(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrate())
	_, err := db.Conn().Exec(`INSERT INTO user_profiles (user_id, risk_tolerance, investment_goal, preferred_assets, created_at, updated_at) VALUES ('u1', 'low', 'income', 'BTC', 1, 1)`)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, db.Snapshot(context.Background(), dest))
	assert.FileExists(t, dest)

	copyDB, err := New(Config{Path: dest, Name: "snapshot"})
	require.NoError(t, err)
	defer copyDB.Close()

	var risk string
	require.NoError(t, copyDB.Conn().QueryRow(`SELECT risk_tolerance FROM user_profiles WHERE user_id = 'u1'`).Scan(&risk))
	assert.Equal(t, "low", risk)

	assert.Error(t, db.Snapshot(context.Background(), dest), "existing destination is rejected")
}
