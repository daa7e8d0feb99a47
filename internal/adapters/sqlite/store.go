// Package sqlite persists CRM records in a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
)

// Store implements ports.Store on a SQLite database.
type Store struct {
	conn   *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path and runs migrations.
// The pool is capped at a single connection, so statements serialize at
// the driver level and write contention surfaces as busy waits instead
// of SQLITE_BUSY errors.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite store: busy timeout: %w", err)
	}

	s := &Store{conn: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("sqlite store ready", "path", path)
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS customers (
			id             TEXT PRIMARY KEY,
			first_name     TEXT NOT NULL,
			last_name      TEXT NOT NULL,
			email          TEXT UNIQUE NOT NULL,
			phone          TEXT,
			company        TEXT,
			industry       TEXT,
			annual_revenue REAL,
			employee_count INTEGER,
			status         TEXT DEFAULT 'active',
			lead_source    TEXT,
			created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS interactions (
			id               TEXT PRIMARY KEY,
			customer_id      TEXT NOT NULL,
			interaction_type TEXT NOT NULL,
			subject          TEXT,
			notes            TEXT,
			interaction_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			created_at       TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (customer_id) REFERENCES customers (id)
		);

		CREATE TABLE IF NOT EXISTS deals (
			id                  TEXT PRIMARY KEY,
			customer_id         TEXT NOT NULL,
			deal_name           TEXT NOT NULL,
			value               REAL NOT NULL,
			stage               TEXT DEFAULT 'prospecting',
			probability         REAL DEFAULT 0.0,
			expected_close_date DATE,
			created_at          TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at          TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (customer_id) REFERENCES customers (id)
		);
	`)
	if err != nil {
		return fmt.Errorf("sqlite store: migrate: %w", err)
	}
	return nil
}

// Query runs a statement that returns rows and materializes every row
// keyed by column name.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]ports.Row, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify("query", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, classify("columns", err)
	}

	var out []ports.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, classify("scan", err)
		}

		row := make(ports.Row, len(cols))
		for i, col := range cols {
			// []byte would render as base64 in JSON output
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("rows", err)
	}
	return out, nil
}

// Exec runs a statement that returns no rows.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify("exec", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, classify("exec", err)
	}
	return affected, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	s.logger.Debug("sqlite store closed")
	return s.conn.Close()
}

// classify maps driver failures onto the domain taxonomy. SQLite reports
// constraint violations only through message text, so uniqueness is
// detected by substring.
func classify(op string, err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &domain.Error{Kind: domain.KindDuplicateKey, Message: err.Error(), Err: err}
	}
	return &domain.Error{
		Kind:    domain.KindBackendFailure,
		Message: fmt.Sprintf("sqlite store: %s: %v", op, err),
		Err:     err,
	}
}

var _ ports.Store = (*Store)(nil)
