package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestCacheRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	enheter := []brreg.Enhet{{
		Organisasjonsnummer: "910000001",
		Navn:                "ACME RETAIL AS",
		Naeringskode1:       &brreg.Naeringskode{Kode: "47.71", Beskrivelse: "Butikkhandel med klær"},
		Aktivitet:           []string{"Salg av klær"},
	}}

	_, hit, err := s.GetCached(ctx, "Acme Retail AS")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, s.PutCached(ctx, "Acme Retail AS", enheter, time.Hour))

	got, hit, err := s.GetCached(ctx, "Acme Retail AS")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, enheter, got)
}

func TestCache_KeyIsNormalized(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutCached(ctx, "Acme Retail AS", []brreg.Enhet{{Navn: "ACME"}}, time.Hour))

	_, hit, err := s.GetCached(ctx, "acme retail")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCache_EmptyResultIsCached(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutCached(ctx, "Ghost Company AS", nil, time.Hour))

	got, hit, err := s.GetCached(ctx, "Ghost Company AS")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestCache_ExpiredEntryMisses(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A non-positive TTL produces an already-expired row.
	require.NoError(t, s.PutCached(ctx, "Acme Retail AS", []brreg.Enhet{{Navn: "ACME"}}, -time.Minute))

	_, hit, err := s.GetCached(ctx, "Acme Retail AS")
	require.NoError(t, err)
	assert.False(t, hit)

	pruned, err := s.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)
}

func TestCache_PutOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.PutCached(ctx, "Acme AS", []brreg.Enhet{{Navn: "OLD"}}, time.Hour))
	require.NoError(t, s.PutCached(ctx, "Acme AS", []brreg.Enhet{{Navn: "NEW"}}, time.Hour))

	got, hit, err := s.GetCached(ctx, "Acme AS")
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "NEW", got[0].Navn)
}

func TestRunLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.StartRun(ctx, "companies.csv", 42)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "companies.csv", runs[0].InputPath)
	assert.Equal(t, "running", runs[0].Status)
	assert.Equal(t, 42, runs[0].Companies)
	assert.Nil(t, runs[0].CompletedAt)

	require.NoError(t, s.CompleteRun(ctx, id, map[string]int{"total_companies": 42}))

	runs, err = s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "completed", runs[0].Status)
	assert.Contains(t, runs[0].Summary, "total_companies")
	assert.NotNil(t, runs[0].CompletedAt)
}

func TestListRuns_Limit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.StartRun(ctx, "input.csv", i)
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
