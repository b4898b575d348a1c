// Package jsonstore persists an entity collection as a single JSON
// document on disk. The whole collection is read, mutated in memory and
// written back on every mutation; there is no locking and no transaction
// boundary, so concurrent writers to the same file can overwrite each
// other. That limitation is inherent to the format and accepted.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"marketplace-backend/internal/errs"
)

// Entity is anything with a unique string id.
type Entity interface {
	EntityID() string
}

// Collection is a file-backed repository for one entity type. Concrete
// stores compose it rather than subclassing it.
type Collection[T Entity] struct {
	path string
}

func NewCollection[T Entity](dataDir, fileName string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dataDir, fileName)}
}

// Path returns the location of the backing file.
func (c *Collection[T]) Path() string { return c.path }

// Load reads the whole collection. On first access the containing
// directory is created and an empty collection is persisted.
func (c *Collection[T]) Load(_ context.Context) ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		if err := c.Save(context.Background(), []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", errs.ErrInternal, filepath.Base(c.path), err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", errs.ErrInternal, filepath.Base(c.path), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save rewrites the collection file in full.
func (c *Collection[T]) Save(_ context.Context, items []T) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("%w: creating data dir: %v", errs.ErrInternal, err)
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", errs.ErrInternal, filepath.Base(c.path), err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: saving %s: %v", errs.ErrInternal, filepath.Base(c.path), err)
	}
	return nil
}

func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	return c.Load(ctx)
}

// FindByID returns nil without error when the id is absent.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].EntityID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// FindBy returns every entity matching all criteria fields. Nil-valued
// criteria are ignored; non-primitive values compare structurally.
func (c *Collection[T]) FindBy(ctx context.Context, criteria map[string]any) ([]T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	matched := []T{}
	for i := range items {
		ok, err := matchesCriteria(items[i], criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, items[i])
		}
	}
	return matched, nil
}

// FindOneBy returns the first match or nil.
func (c *Collection[T]) FindOneBy(ctx context.Context, criteria map[string]any) (*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		ok, err := matchesCriteria(items[i], criteria)
		if err != nil {
			return nil, err
		}
		if ok {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Create appends the entity, stamping createdAt/updatedAt. Fails with a
// conflict when the id is already taken.
func (c *Collection[T]) Create(ctx context.Context, entity T) (*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].EntityID() == entity.EntityID() {
			return nil, fmt.Errorf("%w: entity with id %s", errs.ErrConflict, entity.EntityID())
		}
	}

	stamped, err := stampTimestamps(entity)
	if err != nil {
		return nil, err
	}

	items = append(items, *stamped)
	if err := c.Save(ctx, items); err != nil {
		return nil, err
	}
	return stamped, nil
}

// Update shallow-merges the given fields onto the stored entity and
// refreshes updatedAt. Fails with not-found when the id is absent.
func (c *Collection[T]) Update(ctx context.Context, id string, updates map[string]any) (*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].EntityID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: entity with id %s", errs.ErrNotFound, id)
	}

	merged, err := mergeFields(items[idx], updates)
	if err != nil {
		return nil, err
	}

	items[idx] = *merged
	if err := c.Save(ctx, items); err != nil {
		return nil, err
	}
	return merged, nil
}

// Delete removes the entity if present and reports whether removal
// occurred. Absence is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].EntityID() == id {
			items = append(items[:i], items[i+1:]...)
			if err := c.Save(ctx, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	item, err := c.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// toMap round-trips an entity through JSON so merges and comparisons
// operate on the persisted field names and value shapes.
func toMap[T any](entity T) (map[string]any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding entity: %v", errs.ErrInternal, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: decoding entity: %v", errs.ErrInternal, err)
	}
	return m, nil
}

func fromMap[T any](m map[string]any) (*T, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding entity: %v", errs.ErrInternal, err)
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("%w: decoding entity: %v", errs.ErrInternal, err)
	}
	return out, nil
}

func stampTimestamps[T any](entity T) (*T, error) {
	m, err := toMap(entity)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	m["createdAt"] = now
	m["updatedAt"] = now
	return fromMap[T](m)
}

func mergeFields[T any](entity T, updates map[string]any) (*T, error) {
	m, err := toMap(entity)
	if err != nil {
		return nil, err
	}
	for k, v := range updates {
		m[k] = v
	}
	m["updatedAt"] = time.Now().UTC()
	return fromMap[T](m)
}

func matchesCriteria[T any](item T, criteria map[string]any) (bool, error) {
	m, err := toMap(item)
	if err != nil {
		return false, err
	}
	for key, want := range criteria {
		if want == nil {
			continue
		}
		got, ok := m[key]
		if !ok {
			return false, nil
		}
		if !jsonEqual(got, want) {
			return false, nil
		}
	}
	return true, nil
}

// jsonEqual compares two values by their canonical JSON encoding, which
// gives structural equality for maps/slices and tolerant numeric
// comparison for primitives.
func jsonEqual(a, b any) bool {
	da, errA := json.Marshal(a)
	db, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(da, db)
}
