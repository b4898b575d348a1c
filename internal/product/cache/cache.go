// Package cache implements the product read cache on top of a key/value
// store. Every backend failure is swallowed: reads degrade to a miss,
// writes and invalidations to a no-op, so the cache can never fail a
// request path.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	kv "marketplace-backend/internal/cache"
	"marketplace-backend/internal/model"
	"marketplace-backend/internal/product"
)

const (
	keyAllProducts = "products:all"

	ttlAllProducts   = 5 * time.Minute
	ttlSingleProduct = 10 * time.Minute
)

func keyProductByID(id string) string {
	return fmt.Sprintf("product:%s", id)
}

type ProductCache struct {
	store  kv.Store
	logger *zap.Logger
}

var _ product.Cache = (*ProductCache)(nil)

func NewProductCache(store kv.Store, logger *zap.Logger) *ProductCache {
	return &ProductCache{store: store, logger: logger}
}

func (c *ProductCache) GetAll(ctx context.Context) ([]model.Product, bool) {
	val, err := c.store.Get(ctx, keyAllProducts)
	if err != nil {
		c.miss(keyAllProducts, err)
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		c.miss(keyAllProducts, err)
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetAll(ctx context.Context, products []model.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, keyAllProducts, string(data), ttlAllProducts); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", keyAllProducts), zap.Error(err))
	}
}

func (c *ProductCache) GetByID(ctx context.Context, id string) (*model.Product, bool) {
	key := keyProductByID(id)
	val, err := c.store.Get(ctx, key)
	if err != nil {
		c.miss(key, err)
		return nil, false
	}
	var p model.Product
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		c.miss(key, err)
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) SetByID(ctx context.Context, p *model.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	key := keyProductByID(p.ID)
	if err := c.store.Set(ctx, key, string(data), ttlSingleProduct); err != nil {
		c.logger.Debug("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ProductCache) InvalidateAll(ctx context.Context) {
	if err := c.store.Del(ctx, keyAllProducts); err != nil {
		c.logger.Debug("cache invalidation failed", zap.String("key", keyAllProducts), zap.Error(err))
	}
}

func (c *ProductCache) InvalidateByID(ctx context.Context, id string) {
	key := keyProductByID(id)
	if err := c.store.Del(ctx, key); err != nil {
		c.logger.Debug("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ProductCache) miss(key string, err error) {
	if errors.Is(err, kv.ErrMiss) {
		return
	}
	c.logger.Debug("cache read degraded to miss", zap.String("key", key), zap.Error(err))
}
