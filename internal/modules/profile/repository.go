package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aristath/cryptoadvisor/internal/database"
	"github.com/rs/zerolog"
)

// Store persists user profiles.
type Store interface {
	GetOrCreate(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, userID string, update ProfileUpdate) error
}

// Repository handles profile database operations.
// Profiles live in the user_profiles table of advisor.db, one row per user_id.
// Rows are created lazily on first read or write and never deleted.
type Repository struct {
	db  *sql.DB
	now func() time.Time
	log zerolog.Logger
}

// NewRepository creates a new profile repository.
//
// Parameters:
//   - db: Database connection to advisor.db
//   - log: Structured logger
//
// Returns:
//   - *Repository: Initialized repository instance
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
		log: log.With().Str("repository", "profile").Logger(),
	}
}

// GetOrCreate returns the profile of userID, inserting the defaults first if
// the user has no row yet. Insert and read happen in one transaction, so
// concurrent first reads create exactly one row.
//
// Parameters:
//   - ctx: Request context
//   - userID: Profile owner
//
// Returns:
//   - *UserProfile: The stored profile
//   - error: Error if the database operation fails
func (r *Repository) GetOrCreate(ctx context.Context, userID string) (*UserProfile, error) {
	var profile *UserProfile

	err := database.WithTransactionContext(ctx, r.db, func(tx *sql.Tx) error {
		now := r.now().Unix()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_profiles (user_id, risk_tolerance, investment_goal, preferred_assets, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(user_id) DO NOTHING
		`, userID, DefaultRiskTolerance, DefaultInvestmentGoal, DefaultPreferredAssets, now, now)
		if err != nil {
			return fmt.Errorf("failed to insert default profile: %w", err)
		}

		row := tx.QueryRowContext(ctx, `
			SELECT id, user_id, risk_tolerance, investment_goal, preferred_assets, created_at, updated_at
			FROM user_profiles
			WHERE user_id = ?
		`, userID)

		profile, err = scanProfile(row)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", userID, err)
	}

	return profile, nil
}

// Update writes the risk tolerance and investment goal of userID in a single
// upsert, creating the row if needed. Preferred assets are replaced only when
// the update carries them.
//
// Parameters:
//   - ctx: Request context
//   - userID: Profile owner
//   - update: New field values
//
// Returns:
//   - error: Error if the database operation fails
func (r *Repository) Update(ctx context.Context, userID string, update ProfileUpdate) error {
	now := r.now().Unix()

	var assets sql.NullString
	if update.PreferredAssets != nil {
		assets = sql.NullString{String: *update.PreferredAssets, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_profiles (user_id, risk_tolerance, investment_goal, preferred_assets, created_at, updated_at)
		VALUES (?, ?, ?, COALESCE(?, ?), ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			risk_tolerance = excluded.risk_tolerance,
			investment_goal = excluded.investment_goal,
			preferred_assets = COALESCE(?, user_profiles.preferred_assets),
			updated_at = excluded.updated_at
	`, userID, update.RiskTolerance, update.InvestmentGoal, assets, DefaultPreferredAssets, now, now, assets)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", userID, err)
	}

	r.log.Debug().
		Str("user_id", userID).
		Str("risk_tolerance", update.RiskTolerance).
		Msg("Profile updated")

	return nil
}

func scanProfile(row *sql.Row) (*UserProfile, error) {
	var p UserProfile
	var createdAt, updatedAt int64

	err := row.Scan(&p.ID, &p.UserID, &p.RiskTolerance, &p.InvestmentGoal, &p.PreferredAssets, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &p, nil
}
