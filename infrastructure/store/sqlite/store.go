// ABOUTME: SQLite-backed store for suggestion titles and guild/player preferences
// ABOUTME: Provides the file-based persistence that survives bot restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"runebot-api/core/domain"
)

// DatesCategory is excluded from wiki-wide suggestion pulls; date pages
// are not useful lookup targets.
const DatesCategory = "Dates"

// Store implements SuggestionSource and PreferenceStore over SQLite.
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a SQLite store client at the given path.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "runebot.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the store tables if they don't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS suggestions (
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (title, category)
		);
		CREATE INDEX IF NOT EXISTS idx_suggestions_category ON suggestions(category);
		CREATE TABLE IF NOT EXISTS guilds (
			guild_id TEXT PRIMARY KEY,
			guild_owner_id TEXT NOT NULL,
			colour_mode INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS players (
			user_id TEXT PRIMARY KEY,
			username TEXT NOT NULL,
			account_type TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// GetSuggestions returns the known titles for the given categories.
func (s *Store) GetSuggestions(ctx context.Context, categories []string) ([]string, error) {
	if len(categories) == 0 {
		return nil, errors.New("at least one category is required")
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(categories)), ",")
	query := fmt.Sprintf(
		"SELECT DISTINCT title FROM suggestions WHERE category IN (%s) ORDER BY title",
		placeholders,
	)

	args := make([]interface{}, len(categories))
	for i, c := range categories {
		args[i] = c
	}

	return s.queryTitles(ctx, query, args...)
}

// GetAllSuggestions returns every known title except date pages.
func (s *Store) GetAllSuggestions(ctx context.Context) ([]string, error) {
	query := "SELECT DISTINCT title FROM suggestions WHERE category != ? ORDER BY title"
	return s.queryTitles(ctx, query, DatesCategory)
}

func (s *Store) queryTitles(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion row: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// ReplaceSuggestions replaces the title set of a category in one
// transaction, used by the periodic category refresh.
func (s *Store) ReplaceSuggestions(ctx context.Context, category string, titles []string) error {
	if category == "" {
		return errors.New("category cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM suggestions WHERE category = ?", category); err != nil {
		return fmt.Errorf("failed to clear category: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO suggestions (title, category) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, title := range titles {
		if _, err := stmt.ExecContext(ctx, title, category); err != nil {
			return fmt.Errorf("failed to insert suggestion: %w", err)
		}
	}

	return tx.Commit()
}

// ColourMode reports whether colour extraction is enabled for the guild.
// Unknown guilds are registered with colour mode off.
func (s *Store) ColourMode(ctx context.Context, guildID, ownerID string) (bool, error) {
	if guildID == "" {
		return false, errors.New("guild id cannot be empty")
	}

	var enabled int
	query := "SELECT colour_mode FROM guilds WHERE guild_id = ?"
	err := s.db.QueryRowContext(ctx, query, guildID).Scan(&enabled)

	if err == sql.ErrNoRows {
		if err := s.RegisterGuild(ctx, guildID, ownerID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get colour mode: %w", err)
	}

	return enabled != 0, nil
}

// RegisterGuild records a guild with colour mode off. Registering an
// already-known guild is a no-op.
func (s *Store) RegisterGuild(ctx context.Context, guildID, ownerID string) error {
	if guildID == "" {
		return errors.New("guild id cannot be empty")
	}

	query := "INSERT OR IGNORE INTO guilds (guild_id, guild_owner_id, colour_mode) VALUES (?, ?, 0)"
	if _, err := s.db.ExecContext(ctx, query, guildID, ownerID); err != nil {
		return fmt.Errorf("failed to register guild: %w", err)
	}
	return nil
}

// SetColourMode updates the colour mode flag for a guild.
func (s *Store) SetColourMode(ctx context.Context, guildID string, enabled bool) error {
	if guildID == "" {
		return errors.New("guild id cannot be empty")
	}

	value := 0
	if enabled {
		value = 1
	}

	query := "UPDATE guilds SET colour_mode = ? WHERE guild_id = ?"
	result, err := s.db.ExecContext(ctx, query, value, guildID)
	if err != nil {
		return fmt.Errorf("failed to set colour mode: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("guild %s is not registered", guildID)
	}
	return nil
}

// Player returns the registered identity for a user, or nil when the user
// has not set a username.
func (s *Store) Player(ctx context.Context, userID string) (*domain.PlayerIdentity, error) {
	if userID == "" {
		return nil, errors.New("user id cannot be empty")
	}

	var identity domain.PlayerIdentity
	var accountType string

	query := "SELECT user_id, username, account_type FROM players WHERE user_id = ?"
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&identity.UserID, &identity.Username, &accountType)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	identity.AccountType = domain.GameMode(accountType)
	return &identity, nil
}

// SetPlayer stores or replaces a user's registered identity.
func (s *Store) SetPlayer(ctx context.Context, identity domain.PlayerIdentity) error {
	if identity.UserID == "" {
		return errors.New("user id cannot be empty")
	}

	query := "INSERT OR REPLACE INTO players (user_id, username, account_type) VALUES (?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query, identity.UserID, identity.Username, string(identity.AccountType))
	if err != nil {
		return fmt.Errorf("failed to set player: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
