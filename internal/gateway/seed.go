package gateway

import (
	"context"

	"github.com/shopspring/decimal"

	"nexus-bank/internal/domain"
)

// SeedUserRepository serves the built-in demo users. Every call returns a
// fresh set, so separate sessions never share balances.
type SeedUserRepository struct{}

// NewSeedUserRepository creates a new repository instance.
func NewSeedUserRepository() *SeedUserRepository {
	return &SeedUserRepository{}
}

// GetUsers returns the demo users.
func (r *SeedUserRepository) GetUsers(ctx context.Context) ([]*domain.User, error) {
	return []*domain.User{
		domain.NewUser("Astaad", "astaad@nexus.com", "1234", "1001", decimal.NewFromInt(125000)),
		domain.NewUser("Rahul", "rahul@nexus.com", "1234", "1002", decimal.NewFromInt(85000)),
	}, nil
}
