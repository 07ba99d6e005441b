package extract

import (
	"context"
	"testing"

	coreerrors "runebot-api/core/errors"

	"runebot-api/core/domain"
)

func itemPage(t *testing.T, fields map[string]string) *domain.PageDocument {
	t.Helper()
	page := &domain.PageDocument{
		Title:        "Rune platebody",
		Description:  "The rune platebody is the best smithable platebody.",
		Infobox:      domain.NewInfobox(),
		ThumbnailURL: "https://oldschool.runescape.wiki/images/Rune_platebody.png",
	}
	for k, v := range fields {
		page.Infobox.Set(k, v)
	}
	return page
}

func TestAlchemy_BuildsRecord(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Value":     "39,000 coins",
		"Low alch":  "15,600 coins",
		"High alch": "23,400 coins",
		"Item ID":   "1127",
		"Examine":   "Provides excellent protection.",
	})

	record, err := Alchemy(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.HighAlch != "23,400 coins" {
		t.Errorf("unexpected high alch %q", record.HighAlch)
	}
	if record.ItemID != "1127" {
		t.Errorf("unexpected item id %q", record.ItemID)
	}
	if record.ThumbnailURL == "" {
		t.Error("expected thumbnail carried through")
	}
}

func TestAlchemy_MissingFieldReturnsNoData(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Value":   "39,000 coins",
		"Item ID": "1127",
	})

	_, err := Alchemy(page)
	if !coreerrors.IsNoData(err, "alchemy") {
		t.Errorf("expected alchemy NoDataError, got %v", err)
	}
}

func TestPrice_BuildsRecord(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Value":     "39,000 coins",
		"Exchange":  "38,500 coins",
		"Buy limit": "70",
		"Item ID":   "1127",
	})

	record, err := Price(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.BuyLimit != "70" {
		t.Errorf("unexpected buy limit %q", record.BuyLimit)
	}
}

func TestPrice_UntradeableReturnsNoData(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Value":   "1 coin",
		"Item ID": "1234",
	})

	_, err := Price(page)
	if !coreerrors.IsNoData(err, "price") {
		t.Errorf("expected price NoDataError, got %v", err)
	}
}

func TestMonster_OptionalFieldsDefaultToNA(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Combat level": "126",
		"Aggressive":   "Yes",
	})

	record, err := Monster(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Aggressive != "Yes" {
		t.Errorf("unexpected aggressive %q", record.Aggressive)
	}
	if record.Poison != domain.FieldNotAvailable {
		t.Errorf("expected N/A poison, got %q", record.Poison)
	}
	if record.AttackStyle != domain.FieldNotAvailable {
		t.Errorf("expected N/A attack style, got %q", record.AttackStyle)
	}
}

func TestMonster_SplitsMonsterIDs(t *testing.T) {
	page := itemPage(t, map[string]string{
		"Combat level": "303",
		"Monster ID":   "2042, 2043, 2044",
	})

	record, err := Monster(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2042", "2043", "2044"}
	if len(record.MonsterIDs) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), record.MonsterIDs)
	}
	for i, id := range want {
		if record.MonsterIDs[i] != id {
			t.Errorf("id %d: expected %q, got %q", i, id, record.MonsterIDs[i])
		}
	}
}

func TestMonster_NoCombatLevelReturnsNoData(t *testing.T) {
	page := itemPage(t, map[string]string{"Value": "100 coins"})

	_, err := Monster(page)
	if !coreerrors.IsNoData(err, "monster") {
		t.Errorf("expected monster NoDataError, got %v", err)
	}
}

func questPage(t *testing.T, infobox, details map[string]string) *domain.PageDocument {
	t.Helper()
	page := itemPage(t, infobox)
	page.Title = "Dragon Slayer I"
	if details != nil {
		questDetails := domain.NewInfobox()
		for k, v := range details {
			questDetails.Set(k, v)
		}
		page.QuestDetails = &questDetails
	}
	return page
}

func TestQuest_SeriesOnlyIsAdmitted(t *testing.T) {
	page := questPage(t,
		map[string]string{"Quest series": "Dragonkin"},
		map[string]string{"Start point": "Champions' Guild"},
	)

	record, err := Quest(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Series != "Dragonkin" {
		t.Errorf("unexpected series %q", record.Series)
	}
	if record.StartPoint != "Champions' Guild" {
		t.Errorf("unexpected start point %q", record.StartPoint)
	}
}

func TestQuest_DifficultyOnlyIsAdmitted(t *testing.T) {
	page := questPage(t,
		map[string]string{"Official difficulty": "Experienced"},
		map[string]string{"Description": "Prove yourself a true champion."},
	)

	record, err := Quest(page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.OfficialDifficulty != "Experienced" {
		t.Errorf("unexpected difficulty %q", record.OfficialDifficulty)
	}
}

func TestQuest_NoQuestFieldsReturnsNoData(t *testing.T) {
	page := questPage(t, map[string]string{"Value": "1"}, map[string]string{"Start point": "x"})

	_, err := Quest(page)
	if !coreerrors.IsNoData(err, "quest") {
		t.Errorf("expected quest NoDataError, got %v", err)
	}
}

func TestQuest_MissingDetailsTableReturnsNoData(t *testing.T) {
	page := questPage(t, map[string]string{"Quest series": "Dragonkin"}, nil)

	_, err := Quest(page)
	if !coreerrors.IsNoData(err, "quest") {
		t.Errorf("expected quest NoDataError, got %v", err)
	}
}

// staticIconFinder returns a fixed URL for every title.
type staticIconFinder struct {
	url string
}

func (f *staticIconFinder) Resolve(ctx context.Context, title string) string {
	return f.url
}

func TestMinigame_MatchedIcon(t *testing.T) {
	page := itemPage(t, map[string]string{"Type": "Combat"})
	page.Title = "Pest Control"

	record, err := Minigame(context.Background(), page, &staticIconFinder{url: "https://example/icon.png"}, "https://example/fallback.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !record.IconMatched {
		t.Error("expected IconMatched true")
	}
	if record.IconURL != "https://example/icon.png" {
		t.Errorf("unexpected icon %q", record.IconURL)
	}
}

func TestMinigame_UnmatchedIconUsesFallback(t *testing.T) {
	page := itemPage(t, map[string]string{"Type": "Combat"})

	record, err := Minigame(context.Background(), page, &staticIconFinder{url: ""}, "https://example/fallback.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.IconMatched {
		t.Error("expected IconMatched false")
	}
	if record.IconURL != "https://example/fallback.png" {
		t.Errorf("expected fallback icon, got %q", record.IconURL)
	}
}

func TestMinigame_NoTypeReturnsNoData(t *testing.T) {
	page := itemPage(t, map[string]string{"Released": "2006"})

	_, err := Minigame(context.Background(), page, nil, "")
	if !coreerrors.IsNoData(err, "minigame") {
		t.Errorf("expected minigame NoDataError, got %v", err)
	}
}
