package datefmt

import (
	"golang.org/x/text/language"
)

// HourCyclePreference captures the CLDR time data for one locale or territory:
// the preferred hour symbol substituted for j, and the allowed cycles whose
// first entry resolves the C skeleton field.
type HourCyclePreference struct {
	Preferred byte
	Allowed   []string
}

// TimePreferences resolves the hour-cycle preference for a locale via the
// locale -> territory -> world ("001") chain. The hourCycleData table lives
// in bundle_data.go, keyed by territory code, and is emitted by
// cmd/datefmt-gen from CLDR supplemental time data.
func TimePreferences(locale string) HourCyclePreference {
	normalized := normalizeLocale(locale)
	if pref, ok := hourCycleData[normalized]; ok {
		return pref
	}
	if territory := territoryForLocale(normalized); territory != "" {
		if pref, ok := hourCycleData[territory]; ok {
			return pref
		}
	}
	return hourCycleData["001"]
}

// territoryForLocale derives the likely territory of a locale, e.g.
// "en" -> "US", "en-GB" -> "GB".
func territoryForLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	region, confidence := tag.Region()
	if confidence == language.No {
		return ""
	}
	code := region.String()
	if len(code) != 2 {
		// Numeric (aggregate) regions carry no time data beyond "001".
		return ""
	}
	return code
}

// LocaleSpecifiesHourCycle reports whether the locale identifier carries an
// explicit "hc" hour-cycle extension.
func LocaleSpecifiesHourCycle(locale string) bool {
	_, ok := hourCycleOverride(locale)
	return ok
}

// hourCycleOverride reads the BCP 47 "hc" extension from a locale identifier
// and maps it onto its hour symbol. ok is false when the locale does not
// specify an hour cycle.
func hourCycleOverride(locale string) (byte, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0, false
	}
	switch tag.TypeForKey("hc") {
	case "h11":
		return 'K', true
	case "h12":
		return 'h', true
	case "h23":
		return 'H', true
	case "h24":
		return 'k', true
	default:
		return 0, false
	}
}
