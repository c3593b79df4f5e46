package repository

import (
	"database/sql"
	"fmt"
)

// PortfolioStorageKey is the fixed key the holdings blob lives under.
const PortfolioStorageKey = "insider-portfolio"

// StorageRepository provides data access for the key-value storage
// table. The holdings list is a single JSON blob: it is read once at
// startup and overwritten in full on every add/remove.
type StorageRepository struct {
	db *sql.DB
}

// NewStorageRepository creates a new StorageRepository with the provided database connection.
func NewStorageRepository(db *sql.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

// Get returns the raw blob stored under key, or ok=false when absent.
func (r *StorageRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query storage table: %w", err)
	}
	return value, true, nil
}

// Put stores a blob under key, replacing any previous value.
func (r *StorageRepository) Put(key, value string) error {
	_, err := r.db.Exec(`
          INSERT INTO storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
      `, key, value)
	if err != nil {
		return fmt.Errorf("failed to write storage table: %w", err)
	}
	return nil
}
