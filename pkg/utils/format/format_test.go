package format

import (
	"testing"
	"time"
)

func TestCoins_PlainAmount(t *testing.T) {
	got := Coins(999)
	if got != "999 gp" {
		t.Errorf("expected '999 gp', got %q", got)
	}
}

func TestCoins_Thousands(t *testing.T) {
	got := Coins(550_000)
	if got != "550.0 K gp" {
		t.Errorf("expected '550.0 K gp', got %q", got)
	}
}

func TestCoins_Millions(t *testing.T) {
	got := Coins(2_350_000)
	if got != "2.4 M gp" {
		t.Errorf("expected '2.4 M gp', got %q", got)
	}
}

func TestCoins_Billions(t *testing.T) {
	got := Coins(1_250_000_000)
	if got != "1.25 B gp" {
		t.Errorf("expected '1.25 B gp', got %q", got)
	}
}

func TestGroupedInt_AddsSeparators(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-4521:    "-4,521",
		13034431: "13,034,431",
	}
	for n, want := range cases {
		if got := GroupedInt(n); got != want {
			t.Errorf("GroupedInt(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSigned_PositiveGetsPlus(t *testing.T) {
	if got := Signed(50); got != "+50" {
		t.Errorf("expected '+50', got %q", got)
	}
}

func TestSigned_NegativeKeepsMinus(t *testing.T) {
	if got := Signed(-50); got != "-50" {
		t.Errorf("expected '-50', got %q", got)
	}
}

func TestSigned_Zero(t *testing.T) {
	if got := Signed(0); got != "+0" {
		t.Errorf("expected '+0', got %q", got)
	}
}

func TestAgo_Units(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		delta time.Duration
		want  string
	}{
		{30 * time.Second, "30 seconds ago"},
		{time.Second, "1 second ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{49 * time.Hour, "2 days ago"},
	}
	for _, tc := range cases {
		got := Ago(now.Add(-tc.delta), now)
		if got != tc.want {
			t.Errorf("Ago(-%v) = %q, want %q", tc.delta, got, tc.want)
		}
	}
}

func TestAgo_FutureClampsToZero(t *testing.T) {
	now := time.Now()
	got := Ago(now.Add(time.Minute), now)
	if got != "0 seconds ago" {
		t.Errorf("expected '0 seconds ago', got %q", got)
	}
}
