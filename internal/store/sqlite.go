package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// BlobStore is the key-value persistence layer underneath LogStore. The
// persisted format is two keys holding string blobs.
type BlobStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

type SQLiteBlobStore struct {
	db *sql.DB
}

func NewSQLiteBlobStore(dataSourceName string) (*SQLiteBlobStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteBlobStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteBlobStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteBlobStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS blobs (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteBlobStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil // Absent is a normal outcome
		}
		return "", false, fmt.Errorf("failed to query blob %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteBlobStore) Set(key, value string) error {
	stmt, err := s.db.Prepare(
		"INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) " +
			"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP")
	if err != nil {
		return fmt.Errorf("failed to prepare blob upsert: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(key, value); err != nil {
		return fmt.Errorf("failed to execute blob upsert: %w", err)
	}
	return nil
}

func (s *SQLiteBlobStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
