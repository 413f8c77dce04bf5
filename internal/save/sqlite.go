package save

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/osse101/PixelFarm_Go/internal/domain"
)

// SQLiteStore keeps slots in a local SQLite database
type SQLiteStore struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates the database at path
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`
	_, err := s.conn.Exec(schema)
	return err
}

// Put replaces the slot contents
func (s *SQLiteStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	_, err := s.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO saves (slot, data, updated_at) VALUES (?, ?, ?)",
		slot, string(data), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write save %s: %w", slot, err)
	}
	return nil
}

// Get reads the slot contents
func (s *SQLiteStore) Get(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	var data string
	err := s.conn.GetContext(ctx, &data, "SELECT data FROM saves WHERE slot = ?", slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save %s: %w", slot, err)
	}
	return []byte(data), nil
}
