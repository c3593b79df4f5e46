package service

import (
	"errors"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/repository"
)

// APIKeyUpdater receives a new market-data API key at runtime.
type APIKeyUpdater interface {
	SetAPIKey(key string)
}

// SettingsService manages settings persisted encrypted at rest. Its one
// real job today is the market-data API key: the environment variable
// wins when set, otherwise the stored value is used, and updates
// propagate to the running Finnhub client.
type SettingsService struct {
	repo    *repository.SettingsRepository
	updater APIKeyUpdater
}

// NewSettingsService creates a SettingsService. repo may be nil when no
// SECRET_KEY is configured; settings then only live in the environment.
func NewSettingsService(repo *repository.SettingsRepository, updater APIKeyUpdater) *SettingsService {
	return &SettingsService{repo: repo, updater: updater}
}

// ResolveAPIKey returns the effective Finnhub API key: the environment
// value when non-empty, otherwise the stored one, otherwise "".
func (s *SettingsService) ResolveAPIKey(envKey string) string {
	if envKey != "" {
		return envKey
	}
	if s.repo == nil {
		return ""
	}
	stored, err := s.repo.Get(repository.SettingFinnhubAPIKey)
	if err != nil {
		return ""
	}
	return stored
}

// SetAPIKey stores the API key encrypted and applies it to the running
// client.
func (s *SettingsService) SetAPIKey(key string) error {
	if s.repo == nil {
		return errors.New("settings storage is not configured (set SECRET_KEY)")
	}
	if key == "" {
		return apperrors.ErrAPIKeyMissing
	}
	if err := s.repo.Set(repository.SettingFinnhubAPIKey, key); err != nil {
		return err
	}
	if s.updater != nil {
		s.updater.SetAPIKey(key)
	}
	return nil
}
