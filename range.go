package datefmt

import (
	"strings"
	"time"
)

// greatestDifference finds the most significant field that differs between the
// two instants, expressed as the CLDR difference symbol the interval catalog
// is keyed by. twelveHour selects between the h and H keys for hour changes.
func greatestDifference(from, to time.Time, twelveHour bool) string {
	switch {
	case from.Year() != to.Year():
		return "y"
	case from.Month() != to.Month():
		return "M"
	case from.Day() != to.Day():
		return "d"
	case from.Hour()/12 != to.Hour()/12 && twelveHour:
		return "a"
	case from.Hour() != to.Hour():
		if twelveHour {
			return "h"
		}
		return "H"
	case from.Minute() != to.Minute():
		return "m"
	default:
		return "s"
	}
}

// diffPreference orders the difference keys tried when the exact one is
// missing from an interval entry, widest change first.
var diffPreference = []string{"y", "M", "d", "a", "h", "H", "m", "s"}

// FormatRange renders a from/to range for a skeleton. The skeleton is matched
// against the locale's interval formats; when none applies, both endpoints are
// rendered in full and joined through the interval fallback pattern.
func (f *Formatter) FormatRange(from, to time.Time, skeleton, locale string) (string, error) {
	return f.FormatRangeCalendar(from, to, skeleton, locale, "")
}

// FormatRangeCalendar is FormatRange for an explicit calendar.
func (f *Formatter) FormatRangeCalendar(from, to time.Time, skeleton, locale, calendar string) (string, error) {
	catalog, err := f.Catalog(locale, calendar)
	if err != nil {
		return "", err
	}

	normalized := NormalizeSkeleton(skeleton, locale)
	if to.Before(from) {
		from, to = to, from
	}

	id, ok, err := matchSingle(catalog.intervalEntries, normalized)
	if err != nil {
		return "", err
	}
	if ok {
		twelveHour := strings.ContainsAny(normalized, "hK")
		diff := greatestDifference(from, to, twelveHour)
		halves, found := catalog.IntervalHalves(id, diff)
		if !found {
			for _, candidate := range diffPreference {
				if halves, found = catalog.IntervalHalves(id, candidate); found {
					break
				}
			}
		}
		if found {
			left := RenderPattern(halves.Default.Left, catalog.data.Names, from)
			right := RenderPattern(halves.Default.Right, catalog.data.Names, to)
			return left + right, nil
		}
	}

	fromOut, err := f.FormatCalendar(from, skeleton, locale, calendar)
	if err != nil {
		return "", err
	}
	toOut, err := f.FormatCalendar(to, skeleton, locale, calendar)
	if err != nil {
		return "", err
	}

	fallback := catalog.data.IntervalFallback
	if fallback == "" {
		fallback = "{0} – {1}"
	}
	result := strings.ReplaceAll(fallback, "{0}", fromOut)
	return strings.ReplaceAll(result, "{1}", toOut), nil
}
