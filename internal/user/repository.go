package user

import (
	"context"

	"marketplace-backend/internal/model"
)

// Repository lookups exclude soft-deleted (inactive) users.
type Repository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAllActive(ctx context.Context) ([]model.User, error)

	// Create assigns the prefixed sequential id and enforces email
	// uniqueness.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	IncrementSalesCount(ctx context.Context, id string) (bool, error)
}
