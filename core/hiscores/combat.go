// ABOUTME: Pure combat calculators derived from hiscore fields
// ABOUTME: Combat level formula and aggregate combat experience with the unranked sentinel

package hiscores

import (
	"fmt"
	"math"

	"runebot-api/core/domain"
)

// unrankedExperienceSum is what the seven combat skills sum to when every
// one reports the upstream unranked marker. It is the only value that
// maps to the Unranked result.
const unrankedExperienceSum = -7

// CombatLevels are the skill levels feeding the combat level formula.
type CombatLevels struct {
	Attack    int64
	Strength  int64
	Defence   int64
	Hitpoints int64
	Prayer    int64
	Ranged    int64
	Magic     int64
}

// CombatLevelsFromRow reads the combat skills out of a hiscore row,
// applying the minimum-Hitpoints correction: new players report level 1
// but always have an effective minimum of 10. The row itself is not
// mutated; the correction only feeds this calculation.
func CombatLevelsFromRow(row *domain.HiscoreRow) CombatLevels {
	levels := CombatLevels{
		Attack:    row.Level("Attack"),
		Strength:  row.Level("Strength"),
		Defence:   row.Level("Defence"),
		Hitpoints: row.Level("Hitpoints"),
		Prayer:    row.Level("Prayer"),
		Ranged:    row.Level("Ranged"),
		Magic:     row.Level("Magic"),
	}
	if levels.Hitpoints < 10 {
		levels.Hitpoints = 10
	}
	return levels
}

// CombatLevel computes the combat level:
//
//	base   = 0.25 * (Defence + Hitpoints + floor(Prayer/2))
//	melee  = (Attack + Strength) * 0.325
//	ranged = (floor(Ranged/2) + Ranged) * 0.325
//	magic  = (floor(Magic/2) + Magic) * 0.325
//	level  = floor(base + max(melee, ranged, magic))
//
// Levels must be non-negative; the formula truncates toward zero and is
// undefined for negative inputs.
func CombatLevel(levels CombatLevels) (int64, error) {
	for name, v := range map[string]int64{
		"Attack":    levels.Attack,
		"Strength":  levels.Strength,
		"Defence":   levels.Defence,
		"Hitpoints": levels.Hitpoints,
		"Prayer":    levels.Prayer,
		"Ranged":    levels.Ranged,
		"Magic":     levels.Magic,
	} {
		if v < 0 {
			return 0, fmt.Errorf("negative %s level %d", name, v)
		}
	}

	base := 0.25 * (float64(levels.Defence+levels.Hitpoints) + math.Trunc(float64(levels.Prayer)*0.5))
	melee := float64(levels.Attack+levels.Strength) * 0.325
	ranged := (math.Trunc(float64(levels.Ranged)/2) + float64(levels.Ranged)) * 0.325
	magic := (math.Trunc(float64(levels.Magic)/2) + float64(levels.Magic)) * 0.325

	best := melee
	if ranged > best {
		best = ranged
	}
	if magic > best {
		best = magic
	}
	return int64(math.Trunc(base + best)), nil
}

// CombatExperience sums the experience of the named combat skills. The
// Unranked result is returned only when the sum equals the propagated
// unranked marker exactly; partial rankings still yield a value.
func CombatExperience(skills []string, row *domain.HiscoreRow) domain.CombatExperience {
	var total int64
	for _, skill := range skills {
		if entry, ok := row.Get(skill); ok {
			total += entry.Experience
		}
	}
	if total == unrankedExperienceSum {
		return domain.CombatExperience{Unranked: true}
	}
	return domain.CombatExperience{Value: total}
}
