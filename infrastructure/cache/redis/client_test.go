package redis

import (
	"testing"

	"runebot-api/pkg/config"
)

func TestNewRedisCache_EmptyAddressReturnsError(t *testing.T) {
	_, err := NewRedisCache(config.RedisConfig{})
	if err == nil {
		t.Error("expected error for empty address")
	}
}

func TestNewRedisCache_UnreachableServerReturnsError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}
	_, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})
	if err == nil {
		t.Error("expected error for unreachable server")
	}
}
