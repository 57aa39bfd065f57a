package services

import (
	"context"
	"fmt"
	"time"

	"storeapi/dto"

	"github.com/redis/go-redis/v9"
)

const LastFiltersTTL = 30 * time.Minute

// Filter entities remembered per session.
const (
	FilterEntityCustomers = "customers"
	FilterEntityProducts  = "products"
	FilterEntityOrders    = "orders"
)

// NewFilterTarget returns an empty params value for entity, or nil when the
// entity has no search.
func NewFilterTarget(entity string) interface{} {
	switch entity {
	case FilterEntityCustomers:
		return &dto.CustomerSearchParams{}
	case FilterEntityProducts:
		return &dto.ProductSearchParams{}
	case FilterEntityOrders:
		return &dto.OrderSearchParams{}
	default:
		return nil
	}
}

// FilterCache remembers the last search filters of each session in Redis.
// A nil client disables it: saves are dropped and lookups find nothing.
type FilterCache struct {
	rdb *redis.Client
}

func NewFilterCache(rdb *redis.Client) *FilterCache {
	return &FilterCache{rdb: rdb}
}

func (f *FilterCache) Enabled() bool {
	return f != nil && f.rdb != nil
}

func lastFiltersKey(sessionID, entity string) string {
	return fmt.Sprintf("last_filters:%s:%s", sessionID, entity)
}

func (f *FilterCache) SaveLastFilters(ctx context.Context, sessionID, entity string, filters interface{}) error {
	if !f.Enabled() || sessionID == "" {
		return nil
	}
	return SetToRedis(ctx, f.rdb, lastFiltersKey(sessionID, entity), filters, LastFiltersTTL)
}

// GetLastFilters decodes the remembered filters into target.
func (f *FilterCache) GetLastFilters(ctx context.Context, sessionID, entity string, target interface{}) (bool, error) {
	if !f.Enabled() || sessionID == "" {
		return false, nil
	}
	return GetFromRedis(ctx, f.rdb, lastFiltersKey(sessionID, entity), target)
}

func (f *FilterCache) ClearLastFilters(ctx context.Context, sessionID, entity string) error {
	if !f.Enabled() {
		return nil
	}
	return DeleteFromRedis(ctx, f.rdb, lastFiltersKey(sessionID, entity))
}
