// ABOUTME: Bestiary extractor for monster pages
// ABOUTME: Combat level is the type-defining field; enrichment fields default to "N/A"

package extract

import (
	"strings"

	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// Monster builds a MonsterRecord from a parsed page. The presence of a
// combat level is the canonical signal that the page describes a monster.
// Optional enrichment fields are filled with the "N/A" sentinel when
// absent; the presentation layer expects a fixed field set.
func Monster(page *domain.PageDocument) (*domain.MonsterRecord, error) {
	combatLevel, ok := page.Infobox.Get("Combat level")
	if !ok {
		return nil, coreerrors.NoMonsterData(page.Title)
	}

	record := &domain.MonsterRecord{
		Title:        page.Title,
		Description:  page.Description,
		CombatLevel:  combatLevel,
		Aggressive:   page.Infobox.GetOr("Aggressive", domain.FieldNotAvailable),
		Poison:       page.Infobox.GetOr("Poison", domain.FieldNotAvailable),
		Venom:        page.Infobox.GetOr("Venom", domain.FieldNotAvailable),
		Cannons:      page.Infobox.GetOr("Cannons", domain.FieldNotAvailable),
		Thralls:      page.Infobox.GetOr("Thralls", domain.FieldNotAvailable),
		AttackStyle:  page.Infobox.GetOr("Attack style", domain.FieldNotAvailable),
		Poisonous:    page.Infobox.GetOr("Poisonous", domain.FieldNotAvailable),
		RespawnTime:  page.Infobox.GetOr("Respawn time", domain.FieldNotAvailable),
		ThumbnailURL: page.ThumbnailURL,
	}

	if ids, ok := page.Infobox.Get("Monster ID"); ok {
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				record.MonsterIDs = append(record.MonsterIDs, id)
			}
		}
	}

	return record, nil
}
