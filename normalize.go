package datefmt

import "strings"

// hourSymbols are the four concrete hour-cycle symbols; flexSymbols are the
// locale-flexible placeholders resolved during normalization.
const (
	hourSymbols    = "hHKk"
	flexSymbols    = "jJC"
	dayPeriodRunes = "abB"
)

func isHourSymbol(c byte) bool      { return strings.IndexByte(hourSymbols, c) >= 0 }
func isFlexHourSymbol(c byte) bool  { return strings.IndexByte(flexSymbols, c) >= 0 }
func isDayPeriodSymbol(c byte) bool { return strings.IndexByte(dayPeriodRunes, c) >= 0 }

func isTwelveHourSymbol(c byte) bool    { return c == 'h' || c == 'K' }
func isTwentyFourHourSymbol(c byte) bool { return c == 'H' || c == 'k' }

// NormalizeSkeleton rewrites the locale-flexible hour symbols j, J and C into
// concrete ones using the locale's hour-cycle preferences, honoring an
// explicit "hc" extension on the locale. When the resolved cycle is 12-hour a
// day-period field is injected unless J asked for its suppression; when it is
// 24-hour any day-period fields are stripped. Skeletons without flexible
// symbols on locales without an hc override pass through unchanged, which
// makes the function idempotent.
func NormalizeSkeleton(skeleton, locale string) string {
	override, hasOverride := hourCycleOverride(locale)
	flexible := strings.ContainsAny(skeleton, flexSymbols)
	if !hasOverride && !flexible {
		return skeleton
	}

	suppressDayPeriod := strings.IndexByte(skeleton, 'J') >= 0

	var resolved byte
	var b strings.Builder
	b.Grow(len(skeleton) + 1)
	for i := 0; i < len(skeleton); i++ {
		c := skeleton[i]
		switch {
		case isFlexHourSymbol(c):
			target := override
			if !hasOverride {
				if c == 'C' {
					target = fallbackAllowedHour(locale)
				} else {
					target = TimePreferences(locale).Preferred
				}
			}
			resolved = target
			b.WriteByte(target)
		case isHourSymbol(c):
			if hasOverride {
				resolved = override
				b.WriteByte(override)
			} else {
				resolved = c
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}

	out := b.String()
	switch {
	case resolved == 0:
		return out
	case isTwentyFourHourSymbol(resolved) || suppressDayPeriod:
		// 24-hour patterns never carry AM/PM; J drops it regardless of cycle.
		return stripDayPeriods(out)
	case isTwelveHourSymbol(resolved) && !strings.ContainsAny(out, dayPeriodRunes):
		return "a" + out
	default:
		return out
	}
}

// fallbackAllowedHour resolves the C skeleton field: the first symbol of the
// first entry in the locale's allowed hour-cycle list.
func fallbackAllowedHour(locale string) byte {
	pref := TimePreferences(locale)
	if len(pref.Allowed) > 0 && len(pref.Allowed[0]) > 0 {
		return pref.Allowed[0][0]
	}
	return pref.Preferred
}

func stripDayPeriods(skeleton string) string {
	if !strings.ContainsAny(skeleton, dayPeriodRunes) {
		return skeleton
	}
	var b strings.Builder
	b.Grow(len(skeleton))
	for i := 0; i < len(skeleton); i++ {
		if isDayPeriodSymbol(skeleton[i]) {
			continue
		}
		b.WriteByte(skeleton[i])
	}
	return b.String()
}
