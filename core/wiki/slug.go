// ABOUTME: Query normalization for wiki path slugs
// ABOUTME: Converts free-text search input into URL-path-safe slugs and handles the lucky-pick sentinel

package wiki

import (
	"context"
	"math/rand"
	"strings"

	"runebot-api/core/interfaces"
)

// AutocompleteMarker is appended by the presentation layer to values the
// user picked from an autocomplete list, distinguishing them from freehand
// text. It is a hair space, invisible in rendered suggestions.
const AutocompleteMarker = " "

// FeelingLucky is the sentinel query that requests a pseudo-random article
// instead of a lookup.
const FeelingLucky = "I'm feeling lucky" + AutocompleteMarker

// CaseMode selects the case-folding policy for normalization. Different
// content types expect different casing of the canonical slug, so the
// policy belongs to the call site.
type CaseMode int

const (
	// CasePreserve keeps the input casing. Used for autocomplete-selected
	// values, which already carry canonical title casing.
	CasePreserve CaseMode = iota

	// CaseLower folds the slug to lower case. Used for freehand input.
	CaseLower
)

// Slug is the URL-path-safe normalized form of a search query. A slug
// never contains whitespace.
type Slug string

// Normalize converts a raw search query into a Slug under the given case
// mode. Internal whitespace becomes underscores and the autocomplete
// marker is stripped. Normalize is idempotent.
func Normalize(raw string, mode CaseMode) Slug {
	s := strings.TrimSuffix(raw, AutocompleteMarker)
	s = strings.Join(strings.Fields(s), "_")
	if mode == CaseLower {
		s = strings.ToLower(s)
	}
	return Slug(s)
}

// NormalizeQuery applies the default policy: autocomplete-selected values
// keep their canonical casing, freehand text is lowercased.
func NormalizeQuery(raw string) Slug {
	if strings.HasSuffix(raw, AutocompleteMarker) {
		return Normalize(raw, CasePreserve)
	}
	return Normalize(raw, CaseLower)
}

// IsFeelingLucky reports whether the query is the random-pick sentinel.
func IsFeelingLucky(raw string) bool {
	return raw == FeelingLucky || raw == strings.TrimSuffix(FeelingLucky, AutocompleteMarker)
}

// LuckyTitle picks a pseudo-random title from the suggestion source for
// the given categories, skipping titles that contain any blacklisted
// fragment.
func LuckyTitle(ctx context.Context, source interfaces.SuggestionSource, categories, blacklist []string) (string, error) {
	titles, err := source.GetSuggestions(ctx, categories)
	if err != nil {
		return "", err
	}

	candidates := FilterBlacklisted(titles, blacklist)
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[rand.Intn(len(candidates))], nil
}

// FilterBlacklisted returns the titles that contain none of the
// blacklisted fragments, preserving order.
func FilterBlacklisted(titles, blacklist []string) []string {
	if len(blacklist) == 0 {
		return titles
	}
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		blocked := false
		for _, fragment := range blacklist {
			if strings.Contains(title, fragment) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, title)
		}
	}
	return out
}

// BlacklistItems are item-title fragments excluded from suggestions and
// lucky picks: untradeable variants and broken article stubs.
var BlacklistItems = []string{
	"(+)",
	"(-)",
	"(burnt)",
	"Anchovy paste",
	"Burning",
	"Burnt",
	"Cabbage (Draynor Manor)",
	"Ensouled",
	"Guthix balance (unf)",
	"Sigil of",
	"The great divide",
}

// BlacklistQuests are quest-title fragments that are list or meta pages,
// not quests.
var BlacklistQuests = []string{
	"Cutscene",
	"Quest items/",
	"Quest Difficulties",
	"Quest experience rewards",
	"Quests",
	"Quests/",
	"Quick guide",
}

// BlacklistMinigames are listing pages returned under the minigames
// category that are not themselves minigames.
var BlacklistMinigames = []string{
	"Minigames",
	"Barrows",
	"Creature Creation",
}
