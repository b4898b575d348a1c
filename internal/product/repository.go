package product

import (
	"context"

	"marketplace-backend/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByIDOrSlug(ctx context.Context, identifier string) (*model.Product, error)
	FindBySellerID(ctx context.Context, sellerID string) ([]model.Product, error)

	// Slug uniqueness; excludeID skips the entity being updated.
	IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error)
	GenerateUniqueSlug(ctx context.Context, base, excludeID string) (string, error)

	// Create assigns a fresh id and a disambiguated slug; client-supplied
	// ids are ignored.
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	// Update shallow-merges fields; a requested slug is re-disambiguated
	// rather than rejected.
	Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}
