// Package repository implements the user repository over a JSON
// collection file.
package repository

import (
	"context"
	"fmt"

	"marketplace-backend/internal/errs"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/storage/jsonstore"
	"marketplace-backend/internal/user"
)

type JSONRepository struct {
	col *jsonstore.Collection[model.User]
}

var _ user.Repository = (*JSONRepository)(nil)

func NewJSONRepository(dataDir string) *JSONRepository {
	return &JSONRepository{col: jsonstore.NewCollection[model.User](dataDir, "users.json")}
}

// FindByID skips inactive users; soft-deleted accounts are invisible.
func (r *JSONRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id && items[i].IsActive {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *JSONRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Email == email && items[i].IsActive {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *JSONRepository) FindAllActive(ctx context.Context) ([]model.User, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	active := []model.User{}
	for i := range items {
		if items[i].IsActive {
			active = append(active, items[i])
		}
	}
	return active, nil
}

// Create enforces email uniqueness and assigns the next sequential id.
// The sequence counts all records including inactive ones, so ids are
// never reused after a soft delete.
func (r *JSONRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	items, err := r.col.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Email == u.Email {
			return nil, fmt.Errorf("%w: user with email %s", errs.ErrConflict, u.Email)
		}
	}

	candidate := *u
	candidate.ID = fmt.Sprintf("%s%03d", model.UserIDPrefix, len(items)+1)
	candidate.IsActive = true
	return r.col.Create(ctx, candidate)
}

// IncrementSalesCount bumps the counter for an active user; a missing
// or inactive id reports false without error.
func (r *JSONRepository) IncrementSalesCount(ctx context.Context, id string) (bool, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	if _, err := r.col.Update(ctx, id, map[string]any{"salesCount": u.SalesCount + 1}); err != nil {
		return false, err
	}
	return true, nil
}
