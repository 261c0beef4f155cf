package datefmt

import (
	"testing"
	"time"
)

// refTime is Wednesday, March 5 2025, 14:30:45 UTC.
var refTime = time.Date(2025, time.March, 5, 14, 30, 45, 0, time.UTC)

func enNames(t *testing.T) NameTable {
	t.Helper()
	bundle, ok := builtinBundles()["en"]
	if !ok {
		t.Fatal("en bundle missing")
	}
	return bundle.Calendars["gregorian"].Names
}

func TestRenderPattern(t *testing.T) {
	names := enNames(t)

	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "M/d/y", want: "3/5/2025"},
		{pattern: "M/d/yy", want: "3/5/25"},
		{pattern: "MM/dd/y", want: "03/05/2025"},
		{pattern: "MMM d, y", want: "Mar 5, 2025"},
		{pattern: "MMMM d, y", want: "March 5, 2025"},
		{pattern: "EEEE, MMMM d, y", want: "Wednesday, March 5, 2025"},
		{pattern: "E, MMM d", want: "Wed, Mar 5"},
		{pattern: "h:mm a", want: "2:30 PM"},
		{pattern: "h:mm:ss a", want: "2:30:45 PM"},
		{pattern: "HH:mm", want: "14:30"},
		{pattern: "H:mm:ss", want: "14:30:45"},
		{pattern: "h B", want: "2 in the afternoon"},
		{pattern: "y G", want: "2025 AD"},
		{pattern: "y GGGG", want: "2025 Anno Domini"},
		{pattern: "QQQ y", want: "Q1 2025"},
		{pattern: "QQQQ 'of' y", want: "1st quarter of 2025"},
		{pattern: "mm:ss", want: "30:45"},
		{pattern: "MMMM d 'at' h:mm a", want: "March 5 at 2:30 PM"},
		{pattern: "h 'o''clock'", want: "2 o'clock"},
		{pattern: "D", want: "64"},
		{pattern: "F", want: "1"},
	}

	for _, tc := range tests {
		if got := RenderPattern(tc.pattern, names, refTime); got != tc.want {
			t.Errorf("RenderPattern(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestRenderPatternHourCycles(t *testing.T) {
	names := enNames(t)
	midnight := time.Date(2025, time.March, 5, 0, 10, 0, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{pattern: "h:mm a", want: "12:10 AM"},
		{pattern: "K:mm a", want: "0:10 AM"},
		{pattern: "H:mm", want: "0:10"},
		{pattern: "k:mm", want: "24:10"},
		{pattern: "B h:mm", want: "at night 12:10"},
	}

	for _, tc := range tests {
		if got := RenderPattern(tc.pattern, names, midnight); got != tc.want {
			t.Errorf("RenderPattern(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestRenderPatternZones(t *testing.T) {
	names := enNames(t)

	est := time.Date(2025, time.March, 5, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	if got := RenderPattern("h:mm a z", names, est); got != "9:30 AM EST" {
		t.Errorf("abbreviated zone = %q", got)
	}
	if got := RenderPattern("h:mm a zzzz", names, est); got != "9:30 AM GMT-05:00" {
		t.Errorf("long zone = %q", got)
	}
	if got := RenderPattern("HH:mm xxx", names, est); got != "09:30 -05:00" {
		t.Errorf("iso offset = %q", got)
	}
	if got := RenderPattern("HH:mm X", names, refTime); got != "14:30 Z" {
		t.Errorf("zulu offset = %q", got)
	}

	anon := time.Date(2025, time.March, 5, 9, 30, 0, 0, time.FixedZone("", -5*3600-1800))
	if got := RenderPattern("z", names, anon); got != "GMT-5:30" {
		t.Errorf("nameless zone = %q", got)
	}
}

func TestApplyGluePattern(t *testing.T) {
	got := applyGluePattern("{1} 'at' {0}", "MMM d, y", "h:mm a")
	if got != "MMM d, y 'at' h:mm a" {
		t.Fatalf("applyGluePattern = %q", got)
	}
}
