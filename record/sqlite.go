package record

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS complaints (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	fields     TEXT NOT NULL
);`

// SQLiteStore keeps complaint records in a local SQLite database, one row
// per completion event.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path, creating the parent directory and
// the schema when needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create record directory: %w", err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open record database: %w", err)
	}
	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init record schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, c Complaint) error {
	fields, err := sonic.Marshal(c.Fields)
	if err != nil {
		return fmt.Errorf("marshal record fields: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO complaints (id, created_at, fields) VALUES (?, ?, ?)`,
		c.ID, c.CreatedAt.UTC().Format(time.RFC3339Nano), string(fields),
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
