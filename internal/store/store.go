// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package store persists completed analyses in a local SQLite cache.
// The analysis pipeline itself is stateless; caching is owned by the
// CLI collaborator so repeated runs over the same question bank skip
// the generation cost. Implements: prd005-cache (R1-R3);
//
//	docs/ARCHITECTURE § Analysis Cache.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mindgrove/answer-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "answers.db"
)

// Cache wraps the SQLite database holding cached analyses.
type Cache struct {
	db *sql.DB
}

// Open creates or opens the cache database at cfg.Dir/index/answers.db
// and ensures the schema exists.
func Open(cfg types.CacheConfig) (*Cache, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "cache"
	}
	dbDir := filepath.Join(dir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dbDir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	c := &Cache{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		digest TEXT PRIMARY KEY,
		question TEXT NOT NULL,
		official_answer TEXT NOT NULL,
		analysis TEXT NOT NULL,
		model TEXT,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Digest returns the stable cache key for a request: the first 16 hex
// characters of SHA-256 over the question, options, and official
// answer. Identical requests hit the same row across runs.
func Digest(req types.AnalysisRequest) string {
	h := sha256.New()
	h.Write([]byte(req.QuestionText))
	h.Write([]byte(req.Options.A))
	h.Write([]byte(req.Options.B))
	h.Write([]byte(req.Options.C))
	h.Write([]byte(req.Options.D))
	h.Write([]byte(req.OfficialAnswer))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// Get looks up a cached analysis for the request. The second return is
// false on a miss.
func (c *Cache) Get(ctx context.Context, req types.AnalysisRequest) (types.Analysis, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT analysis FROM analyses WHERE digest = ?`, Digest(req),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Analysis{}, false, nil
	}
	if err != nil {
		return types.Analysis{}, false, fmt.Errorf("querying cache: %w", err)
	}

	var a types.Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		// A corrupt row behaves like a miss so the entry gets rewritten.
		return types.Analysis{}, false, nil
	}
	return a, true, nil
}

// Put stores an analysis for the request, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, req types.AnalysisRequest, a types.Analysis, model string) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling analysis: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO analyses (digest, question, official_answer, analysis, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		Digest(req), req.QuestionText, string(req.OfficialAnswer), string(raw), model,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}
	return nil
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries int
	Oldest  string
	Newest  string
}

// Stats reports entry count and the created_at range.
func (c *Cache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MIN(created_at), ''), COALESCE(MAX(created_at), '') FROM analyses`,
	).Scan(&s.Entries, &s.Oldest, &s.Newest)
	if err != nil {
		return Stats{}, fmt.Errorf("querying cache stats: %w", err)
	}
	return s, nil
}

// Clear removes all cached analyses.
func (c *Cache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM analyses`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}
