// ABOUTME: Domain types for the hiscores leaderboard API
// ABOUTME: Defines game modes, per-skill entries, and the parsed hiscore row

package domain

import "strconv"

// GameMode is a partition of the hiscores leaderboard.
type GameMode string

const (
	GameModeNormal          GameMode = "Normal"
	GameModeIronman         GameMode = "Ironman"
	GameModeHardcoreIronman GameMode = "Hardcore Ironman"
	GameModeUltimateIronman GameMode = "Ultimate Ironman"
	GameModeSkiller         GameMode = "Skiller"
	GameModeOneDefence      GameMode = "1 Defence"
	GameModeFreshStart      GameMode = "Fresh Start Worlds"
)

// GameModes lists every supported mode, Normal first.
var GameModes = []GameMode{
	GameModeNormal,
	GameModeIronman,
	GameModeHardcoreIronman,
	GameModeUltimateIronman,
	GameModeSkiller,
	GameModeOneDefence,
	GameModeFreshStart,
}

// UnrankedMarker is the value the upstream API reports for rank and
// experience when a player is unranked in a field.
const UnrankedMarker = -1

// SkillEntry is one parsed hiscore field. The upstream wire format is a
// comma-joined "rank,level,experience" triple; it is split exactly once at
// the API boundary.
type SkillEntry struct {
	Rank       int64
	Level      int64
	Experience int64
}

// HiscoreRow maps the fixed hiscore field names to their parsed entries.
type HiscoreRow struct {
	// GameMode is the mode the data was actually served from.
	GameMode GameMode
	Username string
	entries  map[string]SkillEntry
}

// NewHiscoreRow builds a row for the given player.
func NewHiscoreRow(mode GameMode, username string) *HiscoreRow {
	return &HiscoreRow{
		GameMode: mode,
		Username: username,
		entries:  make(map[string]SkillEntry),
	}
}

// Set stores the entry for a field name.
func (r *HiscoreRow) Set(field string, entry SkillEntry) {
	r.entries[field] = entry
}

// Get returns the entry for a field name.
func (r *HiscoreRow) Get(field string) (SkillEntry, bool) {
	e, ok := r.entries[field]
	return e, ok
}

// Level returns the level (or count, for activities) of a field, or
// UnrankedMarker when absent.
func (r *HiscoreRow) Level(field string) int64 {
	if e, ok := r.entries[field]; ok {
		return e.Level
	}
	return UnrankedMarker
}

// CombatSkills are the skills that feed the combat calculators.
var CombatSkills = []string{
	"Attack",
	"Defence",
	"Hitpoints",
	"Magic",
	"Prayer",
	"Ranged",
	"Strength",
}

// CombatExperience is a tagged result: either a total experience value or
// the unranked sentinel, which the presentation layer renders as "N/A".
type CombatExperience struct {
	Unranked bool
	Value    int64
}

// String renders the experience total, or "N/A" when unranked.
func (c CombatExperience) String() string {
	if c.Unranked {
		return FieldNotAvailable
	}
	return groupDigits(c.Value)
}

// groupDigits renders n with thousands separators, e.g. 1234567 ->
// "1,234,567".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// PlayerIdentity is a persisted username registration, owned by the
// external preference store and consumed read-only here.
type PlayerIdentity struct {
	UserID      string
	Username    string
	AccountType GameMode
}
