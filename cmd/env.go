package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/categorize"
	"github.com/nordkapp-group/categorize-cli/internal/store"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

// env bundles the categorizer with its optional backing store.
type env struct {
	Categorizer *categorize.Categorizer
	Store       *store.Store // nil when the cache is disabled
}

// Close releases the backing store, if any.
func (e *env) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

// initEnv builds the registry client (cached per config), loads any taxonomy
// override, and assembles the categorizer.
func initEnv(ctx context.Context, useCache bool) (*env, error) {
	client := brreg.NewClient(
		brreg.WithBaseURL(cfg.Brreg.BaseURL),
		brreg.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Brreg.TimeoutSecs) * time.Second}),
		brreg.WithRateLimit(cfg.Brreg.RatePerSec),
		brreg.WithPageSize(cfg.Brreg.PageSize),
	)

	var fetcher categorize.Fetcher = client
	var st *store.Store

	if useCache && cfg.Cache.Enabled {
		s, err := store.Open(cfg.Cache.Path)
		if err != nil {
			return nil, eris.Wrap(err, "init store")
		}
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, eris.Wrap(err, "migrate store")
		}
		st = s
		ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
		fetcher = store.NewCachingClient(client, s, ttl)
	}

	cats := taxonomy.Categories
	if cfg.Taxonomy.Path != "" {
		loaded, err := taxonomy.LoadFile(cfg.Taxonomy.Path)
		if err != nil {
			if st != nil {
				_ = st.Close()
			}
			return nil, err
		}
		cats = loaded
		zap.L().Info("loaded taxonomy override",
			zap.String("path", cfg.Taxonomy.Path),
			zap.Int("categories", len(loaded)),
		)
	}

	return &env{
		Categorizer: categorize.New(fetcher, cats),
		Store:       st,
	}, nil
}

// openStore opens the run-log store regardless of the cache setting.
func openStore(ctx context.Context) (*store.Store, error) {
	s, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, eris.Wrap(err, "migrate store")
	}
	return s, nil
}
