// ABOUTME: Permission guard for administrator-only operations
// ABOUTME: Guild settings such as colour mode may only be changed by administrators

package services

import (
	coreerrors "runebot-api/core/errors"
)

// RequireAdministrator returns a PermissionDeniedError when the caller is
// not an administrator. Frontends supply the permission bit; the guard
// keeps the error type uniform across commands.
func RequireAdministrator(userID string, isAdministrator bool) error {
	if !isAdministrator {
		return &coreerrors.PermissionDeniedError{UserID: userID}
	}
	return nil
}
