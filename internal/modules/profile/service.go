package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aristath/cryptoadvisor/internal/utils"
	"github.com/rs/zerolog"
)

// ErrInvalidProfile is returned when an update is missing required fields.
var ErrInvalidProfile = errors.New("invalid profile")

// Service exposes the profile of the single default user.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a new profile service
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.With().Str("service", "profile").Logger(),
	}
}

// Get returns the default user's profile, creating it on first access.
func (s *Service) Get(ctx context.Context) (*UserProfile, error) {
	return s.store.GetOrCreate(ctx, DefaultUserID)
}

// Update validates and stores a profile update for the default user.
func (s *Service) Update(ctx context.Context, update ProfileUpdate) error {
	update.RiskTolerance = strings.TrimSpace(update.RiskTolerance)
	update.InvestmentGoal = strings.TrimSpace(update.InvestmentGoal)

	if update.RiskTolerance == "" {
		return fmt.Errorf("%w: risk_tolerance is required", ErrInvalidProfile)
	}
	if update.InvestmentGoal == "" {
		return fmt.Errorf("%w: investment_goal is required", ErrInvalidProfile)
	}
	if update.PreferredAssets != nil {
		normalized := strings.Join(splitAssets(*update.PreferredAssets), ",")
		update.PreferredAssets = &normalized
	}

	return s.store.Update(ctx, DefaultUserID, update)
}

func splitAssets(s string) []string {
	assets := utils.ParseCSV(s)
	for i := range assets {
		assets[i] = strings.ToUpper(assets[i])
	}
	return assets
}
