// ABOUTME: Hiscores client with positional response parsing and the game-mode fallback protocol
// ABOUTME: Distinguishes "player does not exist" from "player exists but not under this mode"

package hiscores

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
	"runebot-api/core/interfaces"
	"runebot-api/pkg/config"
)

// blacklistChars are characters that can never appear in a valid
// username; their presence fails validation before any request is made.
const blacklistChars = ",!:;[]{}?#@\\/`~"

// Service queries the per-game-mode leaderboard endpoints.
type Service struct {
	deps interfaces.Dependencies
	cfg  config.HiscoresConfig
}

// NewService creates a hiscores client.
func NewService(deps interfaces.Dependencies, cfg config.HiscoresConfig) *Service {
	return &Service{deps: deps, cfg: cfg}
}

// Lookup fetches the hiscore row for a username under the given game
// mode. For non-default modes an absent player triggers one retry against
// the Normal endpoint: success there means the player exists but not
// under the requested mode (NoGameModeDataError); failure there means the
// player does not exist at all (NoHiscoreDataError).
func (s *Service) Lookup(ctx context.Context, mode domain.GameMode, username string) (*domain.HiscoreRow, error) {
	if err := s.validateUsername(username); err != nil {
		return nil, err
	}

	row, err := s.fetchMode(ctx, mode, username)
	if err == nil {
		return row, nil
	}
	if !coreerrors.IsNotFound(err) {
		return nil, err
	}

	if mode == domain.GameModeNormal {
		return nil, &coreerrors.NoHiscoreDataError{Username: username}
	}

	// The requested mode has no data; check whether the player exists at
	// all before deciding which error to surface.
	if _, fallbackErr := s.fetchMode(ctx, domain.GameModeNormal, username); fallbackErr != nil {
		if coreerrors.IsNotFound(fallbackErr) {
			return nil, &coreerrors.NoHiscoreDataError{Username: username}
		}
		return nil, fallbackErr
	}

	s.deps.Logger.Debug("player exists only under Normal", map[string]interface{}{
		"username": username,
		"mode":     string(mode),
	})
	return nil, &coreerrors.NoGameModeDataError{Username: username, GameMode: string(mode)}
}

// validateUsername applies the local rules: length cap and character
// blacklist. No request is made for invalid input.
func (s *Service) validateUsername(username string) error {
	if username == "" {
		return &coreerrors.UsernameInvalidError{Username: username, Reason: "empty"}
	}
	if len(username) > s.cfg.MaxUsernameLength {
		return &coreerrors.UsernameInvalidError{
			Username: username,
			Reason:   fmt.Sprintf("longer than %d characters", s.cfg.MaxUsernameLength),
		}
	}
	if strings.ContainsAny(username, blacklistChars) {
		return &coreerrors.UsernameInvalidError{Username: username, Reason: "contains blacklisted characters"}
	}
	return nil
}

// fetchMode requests one mode-specific endpoint and parses the response.
func (s *Service) fetchMode(ctx context.Context, mode domain.GameMode, username string) (*domain.HiscoreRow, error) {
	endpoint, ok := s.cfg.LookupURL(string(mode), url.QueryEscape(username))
	if !ok {
		return nil, fmt.Errorf("unknown game mode %q", mode)
	}

	resp, err := s.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read hiscores response")
	}

	return parseResponse(mode, username, string(body))
}

// parseResponse zips the newline-delimited response positionally against
// FieldOrder. A line-count mismatch is a schema change upstream, not a
// missing player, and is surfaced distinctly.
func parseResponse(mode domain.GameMode, username, body string) (*domain.HiscoreRow, error) {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) != len(FieldOrder) {
		return nil, &coreerrors.SchemaMismatchError{Expected: len(FieldOrder), Got: len(lines)}
	}

	row := domain.NewHiscoreRow(mode, username)
	for i, field := range FieldOrder {
		if field == placeholderField {
			continue
		}
		entry, err := parseEntry(lines[i])
		if err != nil {
			return nil, coreerrors.WrapError(err, fmt.Sprintf("parse field %q", field))
		}
		row.Set(field, entry)
	}
	return row, nil
}

// parseEntry splits one "rank,level,experience" line. Activity fields
// come as "rank,count" pairs; the missing experience defaults to the
// unranked marker.
func parseEntry(line string) (domain.SkillEntry, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < 2 {
		return domain.SkillEntry{}, fmt.Errorf("malformed entry %q", line)
	}

	entry := domain.SkillEntry{Experience: domain.UnrankedMarker}
	var err error
	if entry.Rank, err = strconv.ParseInt(parts[0], 10, 64); err != nil {
		return domain.SkillEntry{}, fmt.Errorf("malformed rank %q", parts[0])
	}
	if entry.Level, err = strconv.ParseInt(parts[1], 10, 64); err != nil {
		return domain.SkillEntry{}, fmt.Errorf("malformed level %q", parts[1])
	}
	if len(parts) > 2 {
		if entry.Experience, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
			return domain.SkillEntry{}, fmt.Errorf("malformed experience %q", parts[2])
		}
	}
	return entry, nil
}
