package datefmt

import (
	"testing"
	"time"
)

func TestFormatRange(t *testing.T) {
	f := newTestFormatter(t)

	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }
	clock := func(h, m int) time.Time { return time.Date(2025, time.March, 5, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		from, to time.Time
		skeleton string
		locale   string
		want     string
	}{
		{
			name: "same_month_days", from: day(5), to: day(10),
			skeleton: "yMMMd", locale: "en", want: "Mar 5 – 10, 2025",
		},
		{
			name: "cross_month", from: day(28), to: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
			skeleton: "yMMMd", locale: "en", want: "Mar 28 – Apr 2, 2025",
		},
		{
			name: "cross_year", from: day(5), to: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			skeleton: "yMMMd", locale: "en", want: "Mar 5, 2025 – Mar 5, 2026",
		},
		{
			name: "twenty_four_hour", from: clock(14, 30), to: clock(15, 45),
			skeleton: "Hm", locale: "en", want: "14:30 – 15:45",
		},
		{
			name: "twelve_hour_same_period", from: clock(14, 0), to: clock(15, 30),
			skeleton: "hm", locale: "en", want: "2:00 – 3:30 PM",
		},
		{
			name: "twelve_hour_crossing_noon", from: clock(9, 0), to: clock(14, 0),
			skeleton: "hm", locale: "en", want: "9:00 AM – 2:00 PM",
		},
		{
			name: "german_days", from: day(5), to: day(10),
			skeleton: "yMMMd", locale: "de", want: "5. – 10. März 2025",
		},
		{
			name: "localized_hours", from: clock(14, 30), to: clock(15, 45),
			skeleton: "Hm", locale: "de", want: "14:30 – 15:45 Uhr",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.FormatRange(tc.from, tc.to, tc.skeleton, tc.locale)
			if err != nil {
				t.Fatalf("FormatRange: %v", err)
			}
			if got != tc.want {
				t.Fatalf("FormatRange = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatRangeSwapsInvertedEndpoints(t *testing.T) {
	f := newTestFormatter(t)

	from := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	got, err := f.FormatRange(from, to, "yMMMd", "en")
	if err != nil {
		t.Fatalf("FormatRange: %v", err)
	}
	if got != "Mar 5 – 10, 2025" {
		t.Fatalf("FormatRange = %q", got)
	}
}

func TestFormatRangeFallbackJoin(t *testing.T) {
	f := newTestFormatter(t)

	// No interval format covers quarters, so both endpoints render in full.
	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	got, err := f.FormatRange(from, to, "yQQQ", "en")
	if err != nil {
		t.Fatalf("FormatRange: %v", err)
	}
	if got != "Q1 2025 – Q2 2025" {
		t.Fatalf("FormatRange = %q", got)
	}
}

func TestIntervalVariantReadPath(t *testing.T) {
	// The default sub-style drives FormatRange; the alternate sub-style is
	// available through Catalog.IntervalHalves.
	bundles := Bundles{
		"nl": {
			Locale: "nl",
			Calendars: map[string]*CalendarData{
				"gregorian": {
					AvailableFormats: map[string]PatternEntry{
						"yMMMd": {Pattern: "d MMM y"},
					},
					IntervalFormats: map[string]map[string]PatternEntry{
						"yMMMd": {
							"d": {Pattern: "d – d MMM y", Variant: "d MMM – d MMM y"},
						},
					},
					Names: NameTable{
						MonthsAbbrev: []string{
							"jan.", "feb.", "mrt.", "apr.", "mei", "jun.",
							"jul.", "aug.", "sep.", "okt.", "nov.", "dec.",
						},
					},
				},
			},
		},
	}

	f := newTestFormatter(t, WithBundles(bundles))

	from := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	got, err := f.FormatRange(from, to, "yMMMd", "nl")
	if err != nil {
		t.Fatalf("FormatRange: %v", err)
	}
	if got != "5 – 10 mrt. 2025" {
		t.Fatalf("FormatRange = %q", got)
	}

	catalog, err := f.Catalog("nl", "gregorian")
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	halves, ok := catalog.IntervalHalves("yMMMd", "d")
	if !ok {
		t.Fatal("IntervalHalves(yMMMd, d) not found")
	}
	if halves.Default.Left != "d – " || halves.Default.Right != "d MMM y" {
		t.Fatalf("default halves = %+v", halves.Default)
	}
	if halves.Variant == nil {
		t.Fatal("variant halves missing")
	}
	if halves.Variant.Left != "d MMM – " || halves.Variant.Right != "d MMM y" {
		t.Fatalf("variant halves = %+v", halves.Variant)
	}
}

func TestGreatestDifference(t *testing.T) {
	base := time.Date(2025, time.March, 5, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name       string
		to         time.Time
		twelveHour bool
		want       string
	}{
		{name: "year", to: base.AddDate(1, 0, 0), want: "y"},
		{name: "month", to: base.AddDate(0, 1, 0), want: "M"},
		{name: "day", to: base.AddDate(0, 0, 1), want: "d"},
		{name: "hour_24", to: base.Add(time.Hour), want: "H"},
		{name: "hour_12", to: base.Add(time.Hour), twelveHour: true, want: "h"},
		{name: "period_flip", to: base.Add(-3 * time.Hour), twelveHour: true, want: "a"},
		{name: "minute", to: base.Add(time.Minute), want: "m"},
		{name: "second", to: base.Add(10 * time.Second), want: "s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := greatestDifference(base, tc.to, tc.twelveHour); got != tc.want {
				t.Fatalf("greatestDifference = %q, want %q", got, tc.want)
			}
		})
	}
}
