// Command datefmt-gen regenerates the built-in locale bundles and the
// hour-cycle preference table from a CLDR core data directory.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg         string
	out         string
	cldrPath    string
	locales     []string
	territories []string
}

type patternValue struct {
	Pattern string
	Variant string
}

type bundlePayload struct {
	Locale    string
	Calendars map[string]*calendarPayload
}

type calendarPayload struct {
	DateFormats      map[string]string
	TimeFormats      map[string]string
	DateTimeFormats  map[string]string
	AvailableFormats map[string]patternValue
	IntervalFormats  map[string]map[string]patternValue
	IntervalFallback string
	MonthsWide       []string
	MonthsAbbrev     []string
	MonthsNarrow     []string
	WeekdaysWide     []string
	WeekdaysAbbrev   []string
	WeekdaysNarrow   []string
	DayPeriods       map[string]string
	Eras             []string
	ErasWide         []string
	Quarters         []string
	QuartersWide     []string
}

type hourCyclePayload struct {
	Preferred string
	Allowed   []string
}

var emptyRegion language.Region

type stringListFlag struct {
	items []string
}

func (f *stringListFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *stringListFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList, territoryList stringListFlag

	flag.StringVar(&cfg.pkg, "pkg", "datefmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "bundle_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag to add more.")
	flag.Var(&territoryList, "territory", "extra territory for the hour-cycle table. Repeat flag to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, item := range localeList.items {
		tag, err := language.Parse(strings.ReplaceAll(item, "_", "-"))
		if err != nil {
			return generatorConfig{}, fmt.Errorf("invalid locale %q: %w", item, err)
		}
		cfg.locales = append(cfg.locales, tag.String())
	}

	for _, item := range territoryList.items {
		cfg.territories = append(cfg.territories, strings.ToUpper(item))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var bundles []bundlePayload
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	hourCycles := extractHourCycles(data.Supplemental(), hourCycleTerritories(cfg))

	source, err := renderSource(cfg.pkg, bundles, hourCycles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// buildBundle walks the locale chain root-first so more specific LDML files
// override inherited values.
func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{
		Locale:    locale,
		Calendars: make(map[string]*calendarPayload),
	}

	chain := []string{"root"}
	parts := strings.Split(locale, "-")
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], "_"))
	}

	found := false
	for _, name := range chain {
		ldml := data.RawLDML(name)
		if ldml == nil {
			continue
		}
		mergeLDML(&payload, ldml)
		if name != "root" {
			found = true
		}
	}

	if !found {
		return payload, errors.New("missing LDML data")
	}
	return payload, nil
}

func mergeLDML(payload *bundlePayload, ldml *cldr.LDML) {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal == nil || cal.Type == "" {
			continue
		}
		target := payload.Calendars[cal.Type]
		if target == nil {
			target = &calendarPayload{
				DateFormats:      make(map[string]string),
				TimeFormats:      make(map[string]string),
				DateTimeFormats:  make(map[string]string),
				AvailableFormats: make(map[string]patternValue),
				IntervalFormats:  make(map[string]map[string]patternValue),
				DayPeriods:       make(map[string]string),
			}
			payload.Calendars[cal.Type] = target
		}
		mergeCalendar(target, cal)
	}
}

func mergeCalendar(target *calendarPayload, cal *cldr.Calendar) {
	if cal.DateFormats != nil {
		for _, length := range cal.DateFormats.DateFormatLength {
			if length == nil || length.Type == "" {
				continue
			}
			for _, form := range length.DateFormat {
				if form == nil {
					continue
				}
				for _, pattern := range form.Pattern {
					if pattern == nil || pattern.Alt != "" {
						continue
					}
					if value := pattern.Data(); value != "" {
						target.DateFormats[length.Type] = value
					}
					break
				}
			}
		}
	}

	if cal.TimeFormats != nil {
		for _, length := range cal.TimeFormats.TimeFormatLength {
			if length == nil || length.Type == "" {
				continue
			}
			for _, form := range length.TimeFormat {
				if form == nil {
					continue
				}
				for _, pattern := range form.Pattern {
					if pattern == nil || pattern.Alt != "" {
						continue
					}
					if value := pattern.Data(); value != "" {
						target.TimeFormats[length.Type] = value
					}
					break
				}
			}
		}
	}

	if cal.DateTimeFormats != nil {
		for _, length := range cal.DateTimeFormats.DateTimeFormatLength {
			if length == nil || length.Type == "" {
				continue
			}
			for _, form := range length.DateTimeFormat {
				if form == nil {
					continue
				}
				for _, pattern := range form.Pattern {
					if pattern == nil || pattern.Alt != "" {
						continue
					}
					if value := pattern.Data(); value != "" {
						target.DateTimeFormats[length.Type] = value
					}
					break
				}
			}
		}

		for _, formats := range cal.DateTimeFormats.AvailableFormats {
			if formats == nil {
				continue
			}
			for _, item := range formats.DateFormatItem {
				if item == nil || item.Id == "" {
					continue
				}
				entry := target.AvailableFormats[item.Id]
				if item.Alt == "variant" {
					entry.Variant = item.Data()
				} else if item.Alt == "" {
					entry.Pattern = item.Data()
				} else {
					continue
				}
				target.AvailableFormats[item.Id] = entry
			}
		}

		for _, formats := range cal.DateTimeFormats.IntervalFormats {
			if formats == nil {
				continue
			}
			for _, fallback := range formats.IntervalFormatFallback {
				if fallback == nil || fallback.Alt != "" {
					continue
				}
				if value := fallback.Data(); value != "" {
					target.IntervalFallback = value
				}
			}
			for _, item := range formats.IntervalFormatItem {
				if item == nil || item.Id == "" {
					continue
				}
				byDiff := target.IntervalFormats[item.Id]
				if byDiff == nil {
					byDiff = make(map[string]patternValue)
					target.IntervalFormats[item.Id] = byDiff
				}
				for _, diff := range item.GreatestDifference {
					if diff == nil || diff.Id == "" {
						continue
					}
					entry := byDiff[diff.Id]
					if diff.Alt == "variant" {
						entry.Variant = diff.Data()
					} else if diff.Alt == "" {
						entry.Pattern = diff.Data()
					} else {
						continue
					}
					byDiff[diff.Id] = entry
				}
			}
		}
	}

	if cal.Months != nil {
		for _, context := range cal.Months.MonthContext {
			if context == nil || context.Type != "format" {
				continue
			}
			for _, width := range context.MonthWidth {
				if width == nil {
					continue
				}
				names := make([]string, 12)
				for _, month := range width.Month {
					if month == nil || month.Alt != "" || month.Yeartype != "" {
						continue
					}
					if idx := numericType(month.Type); idx >= 1 && idx <= 12 {
						names[idx-1] = month.Data()
					}
				}
				switch width.Type {
				case "wide":
					target.MonthsWide = names
				case "abbreviated":
					target.MonthsAbbrev = names
				case "narrow":
					target.MonthsNarrow = names
				}
			}
		}
	}

	weekdayIndex := map[string]int{"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6}
	if cal.Days != nil {
		for _, context := range cal.Days.DayContext {
			if context == nil || context.Type != "format" {
				continue
			}
			for _, width := range context.DayWidth {
				if width == nil {
					continue
				}
				names := make([]string, 7)
				for _, day := range width.Day {
					if day == nil || day.Alt != "" {
						continue
					}
					if idx, ok := weekdayIndex[day.Type]; ok {
						names[idx] = day.Data()
					}
				}
				switch width.Type {
				case "wide":
					target.WeekdaysWide = names
				case "abbreviated":
					target.WeekdaysAbbrev = names
				case "narrow":
					target.WeekdaysNarrow = names
				}
			}
		}
	}

	if cal.Quarters != nil {
		for _, context := range cal.Quarters.QuarterContext {
			if context == nil || context.Type != "format" {
				continue
			}
			for _, width := range context.QuarterWidth {
				if width == nil {
					continue
				}
				names := make([]string, 4)
				for _, quarter := range width.Quarter {
					if quarter == nil || quarter.Alt != "" {
						continue
					}
					if idx := numericType(quarter.Type); idx >= 1 && idx <= 4 {
						names[idx-1] = quarter.Data()
					}
				}
				switch width.Type {
				case "abbreviated":
					target.Quarters = names
				case "wide":
					target.QuartersWide = names
				}
			}
		}
	}

	if cal.DayPeriods != nil {
		for _, context := range cal.DayPeriods.DayPeriodContext {
			if context == nil || context.Type != "format" {
				continue
			}
			for _, width := range context.DayPeriodWidth {
				if width == nil || width.Type != "abbreviated" {
					continue
				}
				for _, period := range width.DayPeriod {
					if period == nil || period.Type == "" || period.Alt != "" {
						continue
					}
					target.DayPeriods[period.Type] = period.Data()
				}
			}
		}
	}

	if cal.Eras != nil {
		if cal.Eras.EraAbbr != nil {
			if eras := eraNames(cal.Eras.EraAbbr.Era); len(eras) > 0 {
				target.Eras = eras
			}
		}
		if cal.Eras.EraNames != nil {
			if eras := eraNames(cal.Eras.EraNames.Era); len(eras) > 0 {
				target.ErasWide = eras
			}
		}
	}
}

func numericType(value string) int {
	n := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func eraNames(eras []*cldr.Common) []string {
	out := make([]string, 0, 2)
	for _, wanted := range []string{"0", "1"} {
		for _, era := range eras {
			if era == nil || era.Type != wanted || era.Alt != "" {
				continue
			}
			out = append(out, era.Data())
			break
		}
	}
	if len(out) != 2 {
		return nil
	}
	return out
}

// hourCycleTerritories collects the territories the hour-cycle table covers:
// the world fallback, the likely territory of every requested locale, and any
// extra -territory values.
func hourCycleTerritories(cfg generatorConfig) map[string]bool {
	want := map[string]bool{"001": true}
	for _, locale := range cfg.locales {
		if tag, err := language.Parse(locale); err == nil {
			if region, _ := tag.Region(); region != emptyRegion {
				want[strings.ToUpper(region.String())] = true
			}
		}
	}
	for _, territory := range cfg.territories {
		want[territory] = true
	}
	return want
}

func extractHourCycles(supplemental *cldr.SupplementalData, want map[string]bool) map[string]hourCyclePayload {
	if supplemental == nil || supplemental.TimeData == nil {
		return nil
	}

	out := make(map[string]hourCyclePayload)
	for _, hours := range supplemental.TimeData.Hours {
		if hours == nil || hours.Preferred == "" {
			continue
		}
		allowed := strings.Fields(hours.Allowed)
		for _, region := range strings.Fields(hours.Regions) {
			if !want[region] {
				continue
			}
			out[region] = hourCyclePayload{
				Preferred: hours.Preferred,
				Allowed:   allowed,
			}
		}
	}
	return out
}

func renderSource(pkg string, bundles []bundlePayload, hourCycles map[string]hourCyclePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datefmt-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	writeHourCycles(&buf, hourCycles)

	buf.WriteString("func builtinBundles() Bundles {\n")
	buf.WriteString("\treturn Bundles{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t\t%q: {\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\t\tLocale: %q,\n", bundle.Locale)
		buf.WriteString("\t\t\tCalendars: map[string]*CalendarData{\n")

		var calendars []string
		for name := range bundle.Calendars {
			calendars = append(calendars, name)
		}
		sort.Strings(calendars)
		for _, name := range calendars {
			cal := bundle.Calendars[name]
			fmt.Fprintf(&buf, "\t\t\t\t%q: {\n", name)
			writeStyleTable(&buf, "DateFormats", cal.DateFormats)
			writeStyleTable(&buf, "TimeFormats", cal.TimeFormats)
			writeStyleTable(&buf, "DateTimeFormats", cal.DateTimeFormats)
			writePatternMap(&buf, "AvailableFormats", "map[string]PatternEntry", cal.AvailableFormats)
			writeIntervalMap(&buf, cal.IntervalFormats)
			if cal.IntervalFallback != "" {
				fmt.Fprintf(&buf, "\t\t\t\t\tIntervalFallback: %q,\n", cal.IntervalFallback)
			}
			writeNames(&buf, cal)
			buf.WriteString("\t\t\t\t},\n")
		}

		buf.WriteString("\t\t\t},\n")
		buf.WriteString("\t\t},\n")
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeHourCycles(buf *bytes.Buffer, hourCycles map[string]hourCyclePayload) {
	if len(hourCycles) == 0 {
		return
	}

	buf.WriteString("var hourCycleData = map[string]HourCyclePreference{\n")
	var regions []string
	for region := range hourCycles {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	for _, region := range regions {
		entry := hourCycles[region]
		fmt.Fprintf(buf, "\t%q: {Preferred: '%c', Allowed: []string{", region, entry.Preferred[0])
		for i, allowed := range entry.Allowed {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%q", allowed)
		}
		buf.WriteString("}},\n")
	}
	buf.WriteString("}\n\n")
}

func writeStyleTable(buf *bytes.Buffer, field string, styles map[string]string) {
	if len(styles) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t\t\t%s: StyleTable{\n", field)
	fields := []struct{ name, style string }{
		{"Full", "full"}, {"Long", "long"}, {"Medium", "medium"}, {"Short", "short"},
	}
	for _, entry := range fields {
		if value, ok := styles[entry.style]; ok && value != "" {
			fmt.Fprintf(buf, "\t\t\t\t\t\t%s: %q,\n", entry.name, value)
		}
	}
	buf.WriteString("\t\t\t\t\t},\n")
}

func writePatternMap(buf *bytes.Buffer, field, typ string, values map[string]patternValue) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t\t\t%s: %s{\n", field, typ)
	var keys []string
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		writePatternEntry(buf, "\t\t\t\t\t\t", key, values[key])
	}
	buf.WriteString("\t\t\t\t\t},\n")
}

func writePatternEntry(buf *bytes.Buffer, indent, key string, value patternValue) {
	if value.Pattern == "" {
		return
	}
	if value.Variant != "" {
		fmt.Fprintf(buf, "%s%q: {Pattern: %q, Variant: %q},\n", indent, key, value.Pattern, value.Variant)
		return
	}
	fmt.Fprintf(buf, "%s%q: {Pattern: %q},\n", indent, key, value.Pattern)
}

func writeIntervalMap(buf *bytes.Buffer, intervals map[string]map[string]patternValue) {
	if len(intervals) == 0 {
		return
	}
	buf.WriteString("\t\t\t\t\tIntervalFormats: map[string]map[string]PatternEntry{\n")
	var ids []string
	for id := range intervals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(buf, "\t\t\t\t\t\t%q: {\n", id)
		var diffs []string
		for diff := range intervals[id] {
			diffs = append(diffs, diff)
		}
		sort.Strings(diffs)
		for _, diff := range diffs {
			writePatternEntry(buf, "\t\t\t\t\t\t\t", diff, intervals[id][diff])
		}
		buf.WriteString("\t\t\t\t\t\t},\n")
	}
	buf.WriteString("\t\t\t\t\t},\n")
}

func writeNames(buf *bytes.Buffer, cal *calendarPayload) {
	buf.WriteString("\t\t\t\t\tNames: NameTable{\n")
	writeStringSlice(buf, "MonthsWide", cal.MonthsWide)
	writeStringSlice(buf, "MonthsAbbrev", cal.MonthsAbbrev)
	writeStringSlice(buf, "MonthsNarrow", cal.MonthsNarrow)
	writeStringSlice(buf, "WeekdaysWide", cal.WeekdaysWide)
	writeStringSlice(buf, "WeekdaysAbbrev", cal.WeekdaysAbbrev)
	writeStringSlice(buf, "WeekdaysNarrow", cal.WeekdaysNarrow)
	if len(cal.DayPeriods) > 0 {
		buf.WriteString("\t\t\t\t\t\tDayPeriods: map[string]string{\n")
		var keys []string
		for key := range cal.DayPeriods {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Fprintf(buf, "\t\t\t\t\t\t\t%q: %q,\n", key, cal.DayPeriods[key])
		}
		buf.WriteString("\t\t\t\t\t\t},\n")
	}
	writeStringSlice(buf, "Eras", cal.Eras)
	writeStringSlice(buf, "ErasWide", cal.ErasWide)
	writeStringSlice(buf, "Quarters", cal.Quarters)
	writeStringSlice(buf, "QuartersWide", cal.QuartersWide)
	buf.WriteString("\t\t\t\t\t},\n")
}

func writeStringSlice(buf *bytes.Buffer, field string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t\t\t\t%s: []string{", field)
	for i, value := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q", value)
	}
	buf.WriteString("},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
