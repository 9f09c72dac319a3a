package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
)

// CachingClient wraps a registry client with the sqlite lookup cache.
// Repeated lookups for the same (normalized) name within the TTL are served
// locally. Cache failures fall through to the live client.
type CachingClient struct {
	inner brreg.Client
	store *Store
	ttl   time.Duration
}

// NewCachingClient wraps a registry client with cached lookups.
func NewCachingClient(inner brreg.Client, store *Store, ttl time.Duration) *CachingClient {
	return &CachingClient{inner: inner, store: store, ttl: ttl}
}

// FetchByName serves from cache when possible, otherwise fetches live and
// stores the result. Empty result sets are cached too, so a name that is not
// in the registry does not hit the API on every batch row.
func (c *CachingClient) FetchByName(ctx context.Context, name string) ([]brreg.Enhet, error) {
	enheter, hit, err := c.store.GetCached(ctx, name)
	if err != nil {
		zap.L().Warn("cache read failed, fetching live", zap.String("name", name), zap.Error(err))
	} else if hit {
		return enheter, nil
	}

	enheter, err = c.inner.FetchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if putErr := c.store.PutCached(ctx, name, enheter, c.ttl); putErr != nil {
		zap.L().Warn("cache write failed", zap.String("name", name), zap.Error(putErr))
	}
	return enheter, nil
}
