// ABOUTME: Contracts for the external collaborators the core consumes
// ABOUTME: Suggestion titles and guild/player preferences live outside the core and are read-only here

package interfaces

import (
	"context"

	"runebot-api/core/domain"
)

// SuggestionSource supplies known article titles, used for autocomplete
// and for the "I'm feeling lucky" random pick.
type SuggestionSource interface {
	// GetSuggestions returns the known titles for the given categories,
	// e.g. "Tradeable items", "Quests", "Minigames".
	GetSuggestions(ctx context.Context, categories []string) ([]string, error)

	// GetAllSuggestions returns every known title wiki-wide, excluding the
	// dates category.
	GetAllSuggestions(ctx context.Context) ([]string, error)
}

// PreferenceStore exposes the read side of the bot's persistent store.
// Writes are owned by external collaborators; results may change between
// calls and no transactional guarantee is needed.
type PreferenceStore interface {
	// ColourMode reports whether thumbnail colour extraction is enabled
	// for the guild. When off, callers use the default brand colour and
	// skip the image fetch entirely.
	ColourMode(ctx context.Context, guildID, ownerID string) (bool, error)

	// Player returns the registered identity for a user, or nil when the
	// user has not set a username.
	Player(ctx context.Context, userID string) (*domain.PlayerIdentity, error)
}
