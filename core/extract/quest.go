// ABOUTME: Quest extractor joining the infobox with the quest-details sub-table
// ABOUTME: Admits pages carrying either a Quest series or an Official difficulty

package extract

import (
	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// Quest builds a QuestRecord from a parsed page. Historical revisions of
// the source keyed quest detection off "Quest series" or "Official
// difficulty" interchangeably; either is accepted. The description and
// start point come from the quest-details sub-table, not the generic
// infobox.
func Quest(page *domain.PageDocument) (*domain.QuestRecord, error) {
	series, hasSeries := page.Infobox.Get("Quest series")
	difficulty, hasDifficulty := page.Infobox.Get("Official difficulty")
	if !hasSeries && !hasDifficulty {
		return nil, coreerrors.NoQuestData(page.Title)
	}
	if page.QuestDetails == nil {
		return nil, coreerrors.NoQuestData(page.Title)
	}

	record := &domain.QuestRecord{
		Title:              page.Title,
		Series:             series,
		OfficialDifficulty: difficulty,
		Members:            page.Infobox.GetOr("Members", ""),
		Description:        page.QuestDetails.GetOr("Description", ""),
		StartPoint:         page.QuestDetails.GetOr("Start point", ""),
	}
	return record, nil
}
