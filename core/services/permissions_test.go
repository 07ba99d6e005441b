package services

import (
	"testing"

	coreerrors "runebot-api/core/errors"
)

func TestRequireAdministrator_Denied(t *testing.T) {
	err := RequireAdministrator("user1", false)
	if !coreerrors.IsPermissionDenied(err) {
		t.Errorf("expected PermissionDeniedError, got %v", err)
	}
}

func TestRequireAdministrator_Allowed(t *testing.T) {
	if err := RequireAdministrator("user1", true); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
