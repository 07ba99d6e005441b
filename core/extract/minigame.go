// ABOUTME: Minigame extractor with the cross-page icon join
// ABOUTME: Type is the defining field; a static placeholder icon covers unmatched titles

package extract

import (
	"context"

	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// IconFinder resolves a minigame title to its listing icon URL, returning
// "" when no icon matches.
type IconFinder interface {
	Resolve(ctx context.Context, title string) string
}

// Minigame builds a MinigameRecord from a parsed page. The icon comes
// from a secondary lookup against the master minigames listing; when no
// match is found the fallbackIcon is used and IconMatched is false so the
// presentation layer applies the fixed no-icon colour.
func Minigame(ctx context.Context, page *domain.PageDocument, icons IconFinder, fallbackIcon string) (*domain.MinigameRecord, error) {
	if !page.Infobox.Has("Type") {
		return nil, coreerrors.NoMinigameData(page.Title)
	}

	record := &domain.MinigameRecord{
		Title:          page.Title,
		Description:    page.Description,
		Released:       page.Infobox.GetOr("Released", ""),
		Type:           page.Infobox.GetOr("Type", ""),
		Members:        page.Infobox.GetOr("Members", ""),
		Location:       page.Infobox.GetOr("Location", ""),
		Participants:   page.Infobox.GetOr("Participants", ""),
		RewardCurrency: page.Infobox.GetOr("Reward currency", ""),
		Tutorial:       page.Infobox.GetOr("Tutorial", ""),
		Skills:         page.Infobox.GetOr("Skills", ""),
		Requirements:   page.Infobox.GetOr("Requirements", ""),
	}

	if icons != nil {
		record.IconURL = icons.Resolve(ctx, page.Title)
	}
	if record.IconURL != "" {
		record.IconMatched = true
	} else {
		record.IconURL = fallbackIcon
	}

	return record, nil
}
