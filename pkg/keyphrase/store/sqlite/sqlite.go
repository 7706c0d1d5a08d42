package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w: %v", path, internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS dict_meta (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	version TEXT NOT NULL,
	docs INTEGER NOT NULL,
	avg_doc_len REAL NOT NULL DEFAULT 0,
	avg_idf REAL NOT NULL DEFAULT 0,
	avg_tdf REAL NOT NULL DEFAULT 0,
	epsilon REAL NOT NULL DEFAULT 0,
	digit_rate REAL NOT NULL DEFAULT 0,
	built_at TEXT
);

CREATE TABLE IF NOT EXISTS dict_terms (
	token TEXT PRIMARY KEY,
	df INTEGER NOT NULL,
	idf REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS stoplist (
	token TEXT PRIMARY KEY
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveDict replaces the stored dictionary in one transaction
func (s *sqliteStore) SaveDict(ctx context.Context, snap store.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dict_terms`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM dict_meta`); err != nil {
		return err
	}

	m := snap.Meta
	_, err = tx.ExecContext(ctx, `
INSERT INTO dict_meta (id, version, docs, avg_doc_len, avg_idf, avg_tdf, epsilon, digit_rate, built_at)
VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Version, m.Docs, m.AvgDocLen, m.AvgIDF, m.AvgTDF, m.Epsilon, m.DigitRate,
		m.BuiltAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO dict_terms (token, df, idf) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range snap.Terms {
		if t.Token == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, t.Token, t.DF, t.IDF); err != nil {
			return fmt.Errorf("insert term %q: %w", t.Token, err)
		}
	}

	return tx.Commit()
}

// LoadDict reads the stored dictionary, terms sorted by token
func (s *sqliteStore) LoadDict(ctx context.Context) (store.Snapshot, bool, error) {
	meta, found, err := s.Meta(ctx)
	if err != nil || !found {
		return store.Snapshot{}, found, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT token, df, idf FROM dict_terms ORDER BY token`)
	if err != nil {
		return store.Snapshot{}, false, err
	}
	defer rows.Close()

	snap := store.Snapshot{Meta: meta}
	for rows.Next() {
		var t store.Term
		if err := rows.Scan(&t.Token, &t.DF, &t.IDF); err != nil {
			return store.Snapshot{}, false, err
		}
		snap.Terms = append(snap.Terms, t)
	}
	if err := rows.Err(); err != nil {
		return store.Snapshot{}, false, err
	}

	return snap, true, nil
}

// Meta returns the header of the stored dictionary
func (s *sqliteStore) Meta(ctx context.Context) (store.Meta, bool, error) {
	var (
		m       store.Meta
		builtAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
SELECT version, docs, avg_doc_len, avg_idf, avg_tdf, epsilon, digit_rate, built_at
FROM dict_meta WHERE id = 1`).Scan(
		&m.Version, &m.Docs, &m.AvgDocLen, &m.AvgIDF, &m.AvgTDF, &m.Epsilon, &m.DigitRate, &builtAt,
	)
	if err == sql.ErrNoRows {
		return store.Meta{}, false, nil
	}
	if err != nil {
		return store.Meta{}, false, err
	}

	if builtAt.Valid && builtAt.String != "" {
		ts, err := time.Parse(time.RFC3339, builtAt.String)
		if err != nil {
			return store.Meta{}, false, fmt.Errorf("parse built_at: %w", err)
		}
		m.BuiltAt = ts
	}
	return m, true, nil
}

// LookupTerm fetches a single dictionary term
func (s *sqliteStore) LookupTerm(ctx context.Context, token string) (store.Term, bool, error) {
	t := store.Term{Token: token}
	err := s.db.QueryRowContext(ctx, `SELECT df, idf FROM dict_terms WHERE token = ?`, token).Scan(&t.DF, &t.IDF)
	if err == sql.ErrNoRows {
		return store.Term{}, false, nil
	}
	if err != nil {
		return store.Term{}, false, err
	}
	return t, true, nil
}

// UpsertStoplist adds tokens to the stoplist
func (s *sqliteStore) UpsertStoplist(ctx context.Context, tokens []string) error {
	tokens = uniqueStrings(tokens)
	if len(tokens) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stoplist (token) VALUES (?) ON CONFLICT(token) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, tok := range tokens {
		if _, err := stmt.ExecContext(ctx, tok); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Stoplist returns every stored stopword, sorted
func (s *sqliteStore) Stoplist(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT token FROM stoplist ORDER BY token`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	return out, rows.Err()
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
