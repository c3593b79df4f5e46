package repository

import (
	"database/sql"
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/insiderpocket/backend/internal/apperrors"
)

// SettingFinnhubAPIKey is the setting key for the stored market-data API key.
const SettingFinnhubAPIKey = "finnhub_api_key"

// SettingsRepository stores settings fernet-encrypted at rest. It is
// used for secrets like the market-data API key when the user saves it
// through the API instead of the environment.
type SettingsRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSettingsRepository creates a SettingsRepository. secretKey is the
// base64 fernet key; an invalid or empty key returns an error so that a
// misconfigured secret fails at startup rather than on first use.
func NewSettingsRepository(db *sql.DB, secretKey string) (*SettingsRepository, error) {
	key, err := fernet.DecodeKey(secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret key: %w", err)
	}
	return &SettingsRepository{db: db, key: key}, nil
}

// Get decrypts and returns the setting stored under key.
func (r *SettingsRepository) Get(key string) (string, error) {
	var stored string
	err := r.db.QueryRow("SELECT value FROM setting WHERE key = ?", key).Scan(&stored)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting table: %w", err)
	}

	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, []*fernet.Key{r.key})
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt setting %s", key)
	}
	return string(plain), nil
}

// Set encrypts and stores a setting value under key.
func (r *SettingsRepository) Set(key, value string) error {
	token, err := fernet.EncryptAndSign([]byte(value), r.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt setting %s: %w", key, err)
	}

	_, err = r.db.Exec(`
          INSERT INTO setting (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
          ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
      `, key, string(token))
	if err != nil {
		return fmt.Errorf("failed to write setting table: %w", err)
	}
	return nil
}
