// ABOUTME: Custom error types for the core business logic
// ABOUTME: Every variant is an expected, user-facing condition rendered by the presentation layer

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError means the slug does not resolve to any wiki page.
type NotFoundError struct {
	Slug string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no article found for %q", e.Slug)
}

// StubArticleError means the page exists but has no machine-extractable
// content. Distinct from NotFoundError.
type StubArticleError struct {
	Title string
}

// Error implements the error interface
func (e *StubArticleError) Error() string {
	return fmt.Sprintf("article %q is a stub with insufficient content", e.Title)
}

// NoDataError means the page exists and has generic content but lacks the
// fields that define the requested content type. ContentType is one of
// "alchemy", "price", "monster", "quest", "minigame".
type NoDataError struct {
	ContentType string
	Title       string
	Cause       error
}

// Error implements the error interface
func (e *NoDataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no %s data for %q: %v", e.ContentType, e.Title, e.Cause)
	}
	return fmt.Sprintf("no %s data for %q", e.ContentType, e.Title)
}

// Unwrap returns the underlying cause, if any.
func (e *NoDataError) Unwrap() error {
	return e.Cause
}

// NoAlchemyData builds the alchemy variant of NoDataError.
func NoAlchemyData(title string) *NoDataError {
	return &NoDataError{ContentType: "alchemy", Title: title}
}

// NoPriceData builds the price variant of NoDataError, keeping the
// transport-level cause for logging.
func NoPriceData(title string, cause error) *NoDataError {
	return &NoDataError{ContentType: "price", Title: title, Cause: cause}
}

// NoMonsterData builds the monster variant of NoDataError.
func NoMonsterData(title string) *NoDataError {
	return &NoDataError{ContentType: "monster", Title: title}
}

// NoQuestData builds the quest variant of NoDataError.
func NoQuestData(title string) *NoDataError {
	return &NoDataError{ContentType: "quest", Title: title}
}

// NoMinigameData builds the minigame variant of NoDataError.
func NoMinigameData(title string) *NoDataError {
	return &NoDataError{ContentType: "minigame", Title: title}
}

// NoHiscoreDataError means the username was not found under any game mode.
type NoHiscoreDataError struct {
	Username string
}

// Error implements the error interface
func (e *NoHiscoreDataError) Error() string {
	return fmt.Sprintf("player %q does not exist on the hiscores", e.Username)
}

// NoGameModeDataError means the player exists, but not under the requested
// game mode. The Normal-mode data is deliberately not substituted.
type NoGameModeDataError struct {
	Username string
	GameMode string
}

// Error implements the error interface
func (e *NoGameModeDataError) Error() string {
	return fmt.Sprintf("player %q has no %s hiscores", e.Username, e.GameMode)
}

// UsernameInvalidError means the input failed local validation; no request
// was made.
type UsernameInvalidError struct {
	Username string
	Reason   string
}

// Error implements the error interface
func (e *UsernameInvalidError) Error() string {
	return fmt.Sprintf("username %q is invalid: %s", e.Username, e.Reason)
}

// SchemaMismatchError means the hiscores response field count does not
// match the expected schema length; fields would misalign if zipped.
type SchemaMismatchError struct {
	Expected int
	Got      int
}

// Error implements the error interface
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("hiscores response has %d fields, expected %d", e.Got, e.Expected)
}

// PermissionDeniedError means the caller lacks the role an
// administrator-only command requires.
type PermissionDeniedError struct {
	UserID string
}

// Error implements the error interface
func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("user %s lacks administrator permissions", e.UserID)
}

// DeadlineError means a pipeline invocation exceeded its deadline.
type DeadlineError struct {
	Operation string
	Cause     error
}

// Error implements the error interface
func (e *DeadlineError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Operation, e.Cause)
}

// Unwrap returns the underlying context error.
func (e *DeadlineError) Unwrap() error {
	return e.Cause
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsStubArticle checks if an error is a StubArticleError
func IsStubArticle(err error) bool {
	var target *StubArticleError
	return errors.As(err, &target)
}

// IsNoData checks if an error is a NoDataError, optionally of a specific
// content type (empty contentType matches any).
func IsNoData(err error, contentType string) bool {
	var target *NoDataError
	if !errors.As(err, &target) {
		return false
	}
	return contentType == "" || target.ContentType == contentType
}

// IsNoHiscoreData checks if an error is a NoHiscoreDataError
func IsNoHiscoreData(err error) bool {
	var target *NoHiscoreDataError
	return errors.As(err, &target)
}

// IsNoGameModeData checks if an error is a NoGameModeDataError
func IsNoGameModeData(err error) bool {
	var target *NoGameModeDataError
	return errors.As(err, &target)
}

// IsUsernameInvalid checks if an error is a UsernameInvalidError
func IsUsernameInvalid(err error) bool {
	var target *UsernameInvalidError
	return errors.As(err, &target)
}

// IsSchemaMismatch checks if an error is a SchemaMismatchError
func IsSchemaMismatch(err error) bool {
	var target *SchemaMismatchError
	return errors.As(err, &target)
}

// IsPermissionDenied checks if an error is a PermissionDeniedError
func IsPermissionDenied(err error) bool {
	var target *PermissionDeniedError
	return errors.As(err, &target)
}

// IsDeadline checks if an error is a DeadlineError
func IsDeadline(err error) bool {
	var target *DeadlineError
	return errors.As(err, &target)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
