package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
)

// Store holds the lookup cache and run log in a single SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at the given path and configures
// WAL mode.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "store: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "store: exec %s", pragma)
		}
	}
	return &Store{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS lookup_cache (
	name_norm  TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	input_path   TEXT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'running',
	companies    INTEGER NOT NULL DEFAULT 0,
	summary      TEXT,
	started_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	completed_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_lookup_cache_expires_at ON lookup_cache(expires_at);
CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
`

// Migrate creates the schema if needed.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "store: migrate")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetCached returns the cached candidate list for a name, or (nil, false)
// on a miss or an expired entry.
func (s *Store) GetCached(ctx context.Context, name string) ([]brreg.Enhet, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM lookup_cache WHERE name_norm = ? AND expires_at > datetime('now')`,
		NormalizeName(name),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, eris.Wrap(err, "store: cache get")
	}

	var enheter []brreg.Enhet
	if err := json.Unmarshal([]byte(payload), &enheter); err != nil {
		return nil, false, eris.Wrap(err, "store: cache decode")
	}
	return enheter, true, nil
}

// PutCached stores a candidate list for a name with the given TTL.
func (s *Store) PutCached(ctx context.Context, name string, enheter []brreg.Enhet, ttl time.Duration) error {
	payload, err := json.Marshal(enheter)
	if err != nil {
		return eris.Wrap(err, "store: cache encode")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lookup_cache (name_norm, payload, fetched_at, expires_at)
		 VALUES (?, ?, datetime('now'), datetime('now', ?))
		 ON CONFLICT (name_norm) DO UPDATE SET
		   payload = excluded.payload,
		   fetched_at = excluded.fetched_at,
		   expires_at = excluded.expires_at`,
		NormalizeName(name), string(payload), ttlModifier(ttl),
	)
	return eris.Wrap(err, "store: cache put")
}

// PruneExpired removes expired cache entries and returns how many were removed.
func (s *Store) PruneExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM lookup_cache WHERE expires_at <= datetime('now')`)
	if err != nil {
		return 0, eris.Wrap(err, "store: prune")
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ttlModifier renders a duration as a SQLite datetime modifier, e.g. "+86400 seconds".
func ttlModifier(ttl time.Duration) string {
	return fmt.Sprintf("%+d seconds", int64(ttl.Seconds()))
}

// Run is one recorded batch run.
type Run struct {
	ID          string
	InputPath   string
	Status      string
	Companies   int
	Summary     string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// StartRun records the beginning of a batch run and returns its id.
func (s *Store) StartRun(ctx context.Context, inputPath string, companies int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, input_path, status, companies) VALUES (?, ?, 'running', ?)`,
		id, inputPath, companies,
	)
	if err != nil {
		return "", eris.Wrap(err, "store: start run")
	}
	return id, nil
}

// CompleteRun marks a run finished and attaches its summary JSON.
func (s *Store) CompleteRun(ctx context.Context, id string, summary any) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return eris.Wrap(err, "store: encode summary")
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE runs SET status = 'completed', summary = ?, completed_at = datetime('now') WHERE id = ?`,
		string(data), id,
	)
	return eris.Wrap(err, "store: complete run")
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, status, companies, COALESCE(summary, ''), started_at, completed_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "store: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var completed sql.NullTime
		if err := rows.Scan(&r.ID, &r.InputPath, &r.Status, &r.Companies, &r.Summary, &r.StartedAt, &completed); err != nil {
			return nil, eris.Wrap(err, "store: scan run")
		}
		if completed.Valid {
			t := completed.Time
			r.CompletedAt = &t
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "store: iterate runs")
}
