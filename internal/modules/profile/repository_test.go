package profile

import (
	"context"
	"fmt"
	"sync"
	"testing"

	testingpkg "github.com/aristath/cryptoadvisor/internal/testing"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db := testingpkg.NewTestDB(t, "advisor")
	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestGetOrCreate_Defaults(t *testing.T) {
	repo := newTestRepository(t)

	p, err := repo.GetOrCreate(context.Background(), DefaultUserID)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserID, p.UserID)
	assert.Equal(t, DefaultRiskTolerance, p.RiskTolerance)
	assert.Equal(t, DefaultInvestmentGoal, p.InvestmentGoal)
	assert.Equal(t, DefaultPreferredAssets, p.PreferredAssets)
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, DefaultUserID)
	require.NoError(t, err)
	second, err := repo.GetOrCreate(ctx, DefaultUserID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int
	require.NoError(t, repo.db.QueryRow("SELECT COUNT(*) FROM user_profiles").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUpdate_CreatesAndPreservesAssets(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, DefaultUserID, ProfileUpdate{
		RiskTolerance:  "high",
		InvestmentGoal: "speculation",
	}))

	p, err := repo.GetOrCreate(ctx, DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, "high", p.RiskTolerance)
	assert.Equal(t, "speculation", p.InvestmentGoal)
	assert.Equal(t, DefaultPreferredAssets, p.PreferredAssets)

	assets := "SOL,LINK"
	require.NoError(t, repo.Update(ctx, DefaultUserID, ProfileUpdate{
		RiskTolerance:   "low",
		InvestmentGoal:  "income",
		PreferredAssets: &assets,
	}))
	require.NoError(t, repo.Update(ctx, DefaultUserID, ProfileUpdate{
		RiskTolerance:  "medium",
		InvestmentGoal: "income",
	}))

	p, err = repo.GetOrCreate(ctx, DefaultUserID)
	require.NoError(t, err)
	assert.Equal(t, "medium", p.RiskTolerance)
	assert.Equal(t, "SOL,LINK", p.PreferredAssets)
}

func TestUpdate_ConcurrentWritesKeepRowsConsistent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Update(ctx, DefaultUserID, ProfileUpdate{
				RiskTolerance:  fmt.Sprintf("risk-%d", i),
				InvestmentGoal: fmt.Sprintf("goal-%d", i),
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	p, err := repo.GetOrCreate(ctx, DefaultUserID)
	require.NoError(t, err)

	var n int
	_, err = fmt.Sscanf(p.RiskTolerance, "risk-%d", &n)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("goal-%d", n), p.InvestmentGoal)

	var count int
	require.NoError(t, repo.db.QueryRow("SELECT COUNT(*) FROM user_profiles").Scan(&count))
	assert.Equal(t, 1, count)
}
