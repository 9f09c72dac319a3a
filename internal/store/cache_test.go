package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
)

type countingClient struct {
	enheter []brreg.Enhet
	err     error
	calls   int
}

func (c *countingClient) FetchByName(ctx context.Context, name string) ([]brreg.Enhet, error) {
	c.calls++
	return c.enheter, c.err
}

func TestCachingClient_SecondLookupServedLocally(t *testing.T) {
	s := openTestStore(t)
	inner := &countingClient{enheter: []brreg.Enhet{{Navn: "ACME RETAIL AS"}}}
	c := NewCachingClient(inner, s, time.Hour)
	ctx := context.Background()

	first, err := c.FetchByName(ctx, "Acme Retail AS")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	second, err := c.FetchByName(ctx, "Acme Retail AS")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls, "second lookup should not hit the API")
	assert.Equal(t, first, second)

	// Normalized variants share the cache entry.
	_, err = c.FetchByName(ctx, "acme retail")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingClient_CachesEmptyResults(t *testing.T) {
	s := openTestStore(t)
	inner := &countingClient{}
	c := NewCachingClient(inner, s, time.Hour)
	ctx := context.Background()

	got, err := c.FetchByName(ctx, "Finnes Ikke AS")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = c.FetchByName(ctx, "Finnes Ikke AS")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
}

func TestCachingClient_FetchErrorNotCached(t *testing.T) {
	s := openTestStore(t)
	inner := &countingClient{err: errors.New("registry unavailable")}
	c := NewCachingClient(inner, s, time.Hour)
	ctx := context.Background()

	_, err := c.FetchByName(ctx, "Acme AS")
	require.Error(t, err)

	inner.err = nil
	inner.enheter = []brreg.Enhet{{Navn: "ACME AS"}}

	got, err := c.FetchByName(ctx, "Acme AS")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, inner.calls)
}

func TestCachingClient_ExpiredEntryRefetches(t *testing.T) {
	s := openTestStore(t)
	inner := &countingClient{enheter: []brreg.Enhet{{Navn: "ACME AS"}}}
	c := NewCachingClient(inner, s, -time.Minute)
	ctx := context.Background()

	_, err := c.FetchByName(ctx, "Acme AS")
	require.NoError(t, err)
	_, err = c.FetchByName(ctx, "Acme AS")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}
