package repository_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/repository"
	"github.com/insiderpocket/backend/internal/testutil"
)

func TestNewSettingsRepository(t *testing.T) {
	t.Run("rejects an invalid secret key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		_, err := repository.NewSettingsRepository(db, "not-a-fernet-key")

		if err == nil {
			t.Error("Expected error for invalid secret key")
		}
	})
}

func TestSettingsRepository(t *testing.T) {
	t.Run("set then get round-trips", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingsRepository(t, db)

		if err := repo.Set(repository.SettingFinnhubAPIKey, "secret-api-key"); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		value, err := repo.Get(repository.SettingFinnhubAPIKey)
		if err != nil {
			t.Fatalf("Get() returned unexpected error: %v", err)
		}
		if value != "secret-api-key" {
			t.Errorf("Expected decrypted value, got %q", value)
		}
	})

	t.Run("value is not stored in plaintext", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingsRepository(t, db)

		if err := repo.Set(repository.SettingFinnhubAPIKey, "secret-api-key"); err != nil {
			t.Fatalf("Set() returned unexpected error: %v", err)
		}

		var raw string
		if err := db.QueryRow("SELECT value FROM setting WHERE key = ?", repository.SettingFinnhubAPIKey).Scan(&raw); err != nil {
			t.Fatalf("Failed to read raw row: %v", err)
		}
		if strings.Contains(raw, "secret-api-key") {
			t.Error("Expected stored value to be encrypted")
		}
	})

	t.Run("absent key reports ErrSettingNotFound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := testutil.NewTestSettingsRepository(t, db)

		_, err := repo.Get("nope")

		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			t.Errorf("Expected ErrSettingNotFound, got %v", err)
		}
	})
}
