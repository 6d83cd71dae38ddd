package clientdata

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupJobName(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	job := NewCleanupJob(NewRepository(db), zerolog.Nop())
	assert.Equal(t, "client_data_cleanup", job.Name())
}

func TestCleanupJobRun(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	repo := NewRepository(db)
	require.NoError(t, repo.Store(TableMarketQuotes, "bitcoin", testQuote{USD: 1}, time.Hour))
	require.NoError(t, repo.Store(TableMarketQuotes, "ethereum", testQuote{USD: 2}, -time.Hour))

	job := NewCleanupJob(repo, zerolog.Nop())
	require.NoError(t, job.Run())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM market_quotes").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCleanupJobRun_ClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, db.Close())

	assert.Error(t, NewCleanupJob(repo, zerolog.Nop()).Run())
}
