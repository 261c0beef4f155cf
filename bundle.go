package datefmt

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultCalendar is assumed whenever a caller does not name one.
const DefaultCalendar = "gregorian"

// PatternEntry is one available-format value: a plain pattern, optionally with
// a CLDR "variant" sub-style.
type PatternEntry struct {
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Variant string `json:"variant,omitempty" yaml:"variant,omitempty" toml:"variant,omitempty"`
}

// SplitIntervalEntry mirrors PatternEntry after interval splitting. Variant
// is nil when the locale carries no alternate sub-style; when present it is
// exposed through Catalog.IntervalHalves for callers that prefer it over the
// default the range formatter renders.
type SplitIntervalEntry struct {
	Default RangeHalves
	Variant *RangeHalves
}

// UnmarshalJSON accepts either a bare pattern string or a
// {"pattern": ..., "variant": ...} object.
func (e *PatternEntry) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*e = PatternEntry{Pattern: plain}
		return nil
	}

	type alias PatternEntry
	var full alias
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("pattern entry: %w", err)
	}
	*e = PatternEntry(full)
	return nil
}

// UnmarshalYAML accepts the same dual shape as UnmarshalJSON.
func (e *PatternEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*e = PatternEntry{Pattern: node.Value}
		return nil
	}

	type alias PatternEntry
	var full alias
	if err := node.Decode(&full); err != nil {
		return fmt.Errorf("pattern entry: %w", err)
	}
	*e = PatternEntry(full)
	return nil
}

// UnmarshalTOML accepts the same dual shape as UnmarshalJSON.
func (e *PatternEntry) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*e = PatternEntry{Pattern: v}
		return nil
	case map[string]any:
		out := PatternEntry{}
		if pattern, ok := v["pattern"].(string); ok {
			out.Pattern = pattern
		}
		if variant, ok := v["variant"].(string); ok {
			out.Variant = variant
		}
		if out.Pattern == "" {
			return fmt.Errorf("pattern entry: missing pattern")
		}
		*e = out
		return nil
	default:
		return fmt.Errorf("pattern entry: unsupported value %T", value)
	}
}

// StyleTable holds the four standard-style patterns of a calendar.
type StyleTable struct {
	Full   string `json:"full" yaml:"full" toml:"full"`
	Long   string `json:"long" yaml:"long" toml:"long"`
	Medium string `json:"medium" yaml:"medium" toml:"medium"`
	Short  string `json:"short" yaml:"short" toml:"short"`
}

// Style selects one entry of a StyleTable; unknown names fall back to medium.
func (t StyleTable) Style(name string) string {
	switch name {
	case "full":
		return t.Full
	case "long":
		return t.Long
	case "short":
		return t.Short
	default:
		return t.Medium
	}
}

// NameTable carries the display names the renderer substitutes for alpha-width
// fields. Weekday slices are Sunday-first; day periods are keyed by CLDR
// period identifiers ("am", "pm", "morning1", ...).
type NameTable struct {
	MonthsWide     []string          `json:"months_wide" yaml:"months_wide" toml:"months_wide"`
	MonthsAbbrev   []string          `json:"months_abbrev" yaml:"months_abbrev" toml:"months_abbrev"`
	MonthsNarrow   []string          `json:"months_narrow,omitempty" yaml:"months_narrow,omitempty" toml:"months_narrow,omitempty"`
	WeekdaysWide   []string          `json:"weekdays_wide" yaml:"weekdays_wide" toml:"weekdays_wide"`
	WeekdaysAbbrev []string          `json:"weekdays_abbrev" yaml:"weekdays_abbrev" toml:"weekdays_abbrev"`
	WeekdaysNarrow []string          `json:"weekdays_narrow,omitempty" yaml:"weekdays_narrow,omitempty" toml:"weekdays_narrow,omitempty"`
	DayPeriods     map[string]string `json:"day_periods" yaml:"day_periods" toml:"day_periods"`
	Eras           []string          `json:"eras" yaml:"eras" toml:"eras"`
	ErasWide       []string          `json:"eras_wide,omitempty" yaml:"eras_wide,omitempty" toml:"eras_wide,omitempty"`
	Quarters       []string          `json:"quarters,omitempty" yaml:"quarters,omitempty" toml:"quarters,omitempty"`
	QuartersWide   []string          `json:"quarters_wide,omitempty" yaml:"quarters_wide,omitempty" toml:"quarters_wide,omitempty"`
}

// CalendarData is the locale data of one calendar system within a bundle.
// IntervalFormats maps format ID -> greatest-difference field -> pattern.
type CalendarData struct {
	DateFormats      StyleTable                         `json:"date_formats" yaml:"date_formats" toml:"date_formats"`
	TimeFormats      StyleTable                         `json:"time_formats" yaml:"time_formats" toml:"time_formats"`
	DateTimeFormats  StyleTable                         `json:"datetime_formats" yaml:"datetime_formats" toml:"datetime_formats"`
	AvailableFormats map[string]PatternEntry            `json:"available_formats" yaml:"available_formats" toml:"available_formats"`
	IntervalFormats  map[string]map[string]PatternEntry `json:"interval_formats,omitempty" yaml:"interval_formats,omitempty" toml:"interval_formats,omitempty"`
	IntervalFallback string                             `json:"interval_fallback,omitempty" yaml:"interval_fallback,omitempty" toml:"interval_fallback,omitempty"`
	Names            NameTable                          `json:"names" yaml:"names" toml:"names"`
}

// Bundle is the full locale-data snapshot for one locale.
type Bundle struct {
	Locale    string                   `json:"locale" yaml:"locale" toml:"locale"`
	Calendars map[string]*CalendarData `json:"calendars" yaml:"calendars" toml:"calendars"`
}

// Bundles maps locale code to bundle.
type Bundles map[string]*Bundle

// Calendar returns the named calendar data, or nil when absent.
func (b *Bundle) Calendar(name string) *CalendarData {
	if b == nil || b.Calendars == nil {
		return nil
	}
	return b.Calendars[name]
}

// Clone deep-copies a bundle so store snapshots stay immutable.
func (b *Bundle) Clone() *Bundle {
	if b == nil {
		return nil
	}
	out := &Bundle{Locale: b.Locale}
	if len(b.Calendars) == 0 {
		return out
	}
	out.Calendars = make(map[string]*CalendarData, len(b.Calendars))
	for name, data := range b.Calendars {
		out.Calendars[name] = data.clone()
	}
	return out
}

func (d *CalendarData) clone() *CalendarData {
	if d == nil {
		return nil
	}
	out := &CalendarData{
		DateFormats:      d.DateFormats,
		TimeFormats:      d.TimeFormats,
		DateTimeFormats:  d.DateTimeFormats,
		IntervalFallback: d.IntervalFallback,
		Names:            d.Names.clone(),
	}
	if len(d.AvailableFormats) > 0 {
		out.AvailableFormats = make(map[string]PatternEntry, len(d.AvailableFormats))
		for id, entry := range d.AvailableFormats {
			out.AvailableFormats[id] = entry
		}
	}
	if len(d.IntervalFormats) > 0 {
		out.IntervalFormats = make(map[string]map[string]PatternEntry, len(d.IntervalFormats))
		for id, byDiff := range d.IntervalFormats {
			cloned := make(map[string]PatternEntry, len(byDiff))
			for diff, entry := range byDiff {
				cloned[diff] = entry
			}
			out.IntervalFormats[id] = cloned
		}
	}
	return out
}

func (n NameTable) clone() NameTable {
	out := n
	out.MonthsWide = cloneStrings(n.MonthsWide)
	out.MonthsAbbrev = cloneStrings(n.MonthsAbbrev)
	out.MonthsNarrow = cloneStrings(n.MonthsNarrow)
	out.WeekdaysWide = cloneStrings(n.WeekdaysWide)
	out.WeekdaysAbbrev = cloneStrings(n.WeekdaysAbbrev)
	out.WeekdaysNarrow = cloneStrings(n.WeekdaysNarrow)
	out.Eras = cloneStrings(n.Eras)
	out.ErasWide = cloneStrings(n.ErasWide)
	out.Quarters = cloneStrings(n.Quarters)
	out.QuartersWide = cloneStrings(n.QuartersWide)
	if len(n.DayPeriods) > 0 {
		out.DayPeriods = make(map[string]string, len(n.DayPeriods))
		for key, value := range n.DayPeriods {
			out.DayPeriods[key] = value
		}
	}
	return out
}

func cloneStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	return append([]string(nil), src...)
}
