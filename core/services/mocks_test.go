package services

import (
	"context"
	"time"

	"runebot-api/core/domain"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockPreferenceStore is a mock implementation of the PreferenceStore interface
type mockPreferenceStore struct {
	colourModeFunc func(ctx context.Context, guildID, ownerID string) (bool, error)
	playerFunc     func(ctx context.Context, userID string) (*domain.PlayerIdentity, error)
}

func (m *mockPreferenceStore) ColourMode(ctx context.Context, guildID, ownerID string) (bool, error) {
	if m.colourModeFunc != nil {
		return m.colourModeFunc(ctx, guildID, ownerID)
	}
	return false, nil
}

func (m *mockPreferenceStore) Player(ctx context.Context, userID string) (*domain.PlayerIdentity, error) {
	if m.playerFunc != nil {
		return m.playerFunc(ctx, userID)
	}
	return nil, nil
}
