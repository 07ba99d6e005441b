package domain

import (
	"testing"
)

func TestInfobox_PreservesInsertionOrder(t *testing.T) {
	box := NewInfobox()
	box.Set("Value", "100")
	box.Set("Exchange", "95")
	box.Set("Item ID", "1")

	keys := box.Keys()
	want := []string{"Value", "Exchange", "Item ID"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i, key := range want {
		if keys[i] != key {
			t.Errorf("key %d: expected %q, got %q", i, key, keys[i])
		}
	}
}

func TestInfobox_SetOverwritesWithoutDuplicatingKey(t *testing.T) {
	box := NewInfobox()
	box.Set("Value", "100")
	box.Set("Value", "200")

	if box.Len() != 1 {
		t.Errorf("expected 1 key, got %d", box.Len())
	}
	if v, _ := box.Get("Value"); v != "200" {
		t.Errorf("expected overwritten value, got %q", v)
	}
}

func TestInfobox_Has(t *testing.T) {
	box := NewInfobox()
	box.Set("Value", "100")
	box.Set("Item ID", "1")

	if !box.Has("Value", "Item ID") {
		t.Error("expected Has to report both keys")
	}
	if box.Has("Value", "Exchange") {
		t.Error("expected Has to fail on a missing key")
	}
}

func TestIsDisambiguation(t *testing.T) {
	page := PageDocument{Options: []string{"A", "B"}}
	if !page.IsDisambiguation() {
		t.Error("expected disambiguation with options")
	}
	summarised := PageDocument{Description: "text"}
	if summarised.IsDisambiguation() {
		t.Error("expected summarised page not to be a disambiguation")
	}
}

func TestCombatExperience_String(t *testing.T) {
	cases := []struct {
		exp  CombatExperience
		want string
	}{
		{CombatExperience{Unranked: true}, "N/A"},
		{CombatExperience{Value: 999}, "999"},
		{CombatExperience{Value: 13034431}, "13,034,431"},
	}
	for _, tc := range cases {
		if got := tc.exp.String(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestHiscoreRow_LevelOfMissingFieldIsUnranked(t *testing.T) {
	row := NewHiscoreRow(GameModeNormal, "Tester")
	if row.Level("Attack") != UnrankedMarker {
		t.Errorf("expected %d for missing field, got %d", UnrankedMarker, row.Level("Attack"))
	}
}
