// Package repository implements the product repository over a JSON
// collection file.
package repository

import (
	"context"
	"fmt"
	"math/rand"

	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/product"
	"marketplace-backend/internal/storage/jsonstore"
)

// maxIDAttempts bounds the random-id retry loop.
const maxIDAttempts = 1000

type JSONRepository struct {
	col *jsonstore.Collection[model.Product]
}

var _ product.Repository = (*JSONRepository)(nil)

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{col: jsonstore.NewCollection[model.Product](dataDir, "products.json")}
}

func (r *JSONRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.col.FindAll(ctx)
}

func (r *JSONRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.col.FindByID(ctx, id)
}

func (r *JSONRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.col.FindOneBy(ctx, map[string]any{"slug": slug})
}

// FindByIDOrSlug returns the first product whose id or slug matches.
func (r *JSONRepository) FindByIDOrSlug(ctx context.Context, identifier string) (*model.Product, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == identifier || items[i].Slug == identifier {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *JSONRepository) FindBySellerID(ctx context.Context, sellerID string) ([]model.Product, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	matched := []model.Product{}
	for i := range items {
		if items[i].Seller.ID == sellerID {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

func (r *JSONRepository) IsSlugUnique(ctx context.Context, slug, excludeID string) (bool, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].Slug == slug && items[i].ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

// GenerateUniqueSlug appends -1, -2, ... to base until no other product
// holds the slug. Increments are tried in order, never randomized.
func (r *JSONRepository) GenerateUniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		unique, err := r.IsSlugUnique(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if unique {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

// generateUniqueID draws prefix+9-digit ids until one is free, within a
// bounded attempt budget.
func (r *JSONRepository) generateUniqueID(ctx context.Context) (string, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(items))
	for i := range items {
		taken[items[i].ID] = true
	}

	for attempts := 0; attempts < maxIDAttempts; attempts++ {
		id := fmt.Sprintf("%s%d", model.ProductIDPrefix, 100000000+rand.Intn(900000000))
		if !taken[id] {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: unable to generate unique product id after %d attempts", errs.ErrInternal, maxIDAttempts)
}

// Create ignores any supplied id, assigns a fresh one and resolves the
// final slug through GenerateUniqueSlug.
func (r *JSONRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	id, err := r.generateUniqueID(ctx)
	if err != nil {
		return nil, err
	}
	slug, err := r.GenerateUniqueSlug(ctx, p.Slug, "")
	if err != nil {
		return nil, err
	}

	candidate := *p
	candidate.ID = id
	candidate.Slug = slug
	return r.col.Create(ctx, candidate)
}

// Update re-disambiguates a requested slug (excluding the entity's own
// id) so a colliding slug is adjusted rather than rejected.
func (r *JSONRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.Product, error) {
	if requested, ok := updates["slug"].(string); ok {
		slug, err := r.GenerateUniqueSlug(ctx, requested, id)
		if err != nil {
			return nil, err
		}
		updates["slug"] = slug
	}
	return r.col.Update(ctx, id, updates)
}

func (r *JSONRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *JSONRepository) Exists(ctx context.Context, id string) (bool, error) {
	return r.col.Exists(ctx, id)
}
