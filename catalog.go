package datefmt

import (
	"fmt"
	"sort"
)

// Catalog is the compiled matching view of one locale+calendar: available
// formats tokenized and sorted for the matcher, interval formats split into
// their halves. Built once, immutable and safe for concurrent use.
type Catalog struct {
	locale   string
	calendar string
	data     *CalendarData

	entries         []catalogEntry
	intervalEntries []catalogEntry
	intervals       map[FormatID]map[string]SplitIntervalEntry
}

// compileCatalog tokenizes the available-format IDs and eagerly splits every
// interval pattern. Malformed locale data fails compilation; per the error
// policy this is a configuration-time fault, not a request-time one.
func compileCatalog(locale, calendar string, data *CalendarData) (*Catalog, error) {
	if data == nil {
		return nil, fmt.Errorf("datefmt: %s: %w: %q", locale, ErrUnknownCalendar, calendar)
	}

	catalog := &Catalog{
		locale:   locale,
		calendar: calendar,
		data:     data,
	}

	entries, err := compileEntries(locale, calendar, availableFormatIDs(data.AvailableFormats))
	if err != nil {
		return nil, err
	}
	catalog.entries = entries

	if len(data.IntervalFormats) > 0 {
		ids := make([]string, 0, len(data.IntervalFormats))
		for id := range data.IntervalFormats {
			ids = append(ids, id)
		}
		intervalEntries, err := compileEntries(locale, calendar, ids)
		if err != nil {
			return nil, err
		}
		catalog.intervalEntries = intervalEntries

		catalog.intervals = make(map[FormatID]map[string]SplitIntervalEntry, len(data.IntervalFormats))
		for id, byDiff := range data.IntervalFormats {
			split := make(map[string]SplitIntervalEntry, len(byDiff))
			for diff, entry := range byDiff {
				halves, err := splitIntervalEntry(entry)
				if err != nil {
					return nil, fmt.Errorf("datefmt: %s/%s interval %s[%s]: %w", locale, calendar, id, diff, err)
				}
				split[diff] = halves
			}
			catalog.intervals[FormatID(id)] = split
		}
	}

	return catalog, nil
}

func availableFormatIDs(formats map[string]PatternEntry) []string {
	ids := make([]string, 0, len(formats))
	for id := range formats {
		ids = append(ids, id)
	}
	return ids
}

// compileEntries tokenizes format IDs as skeletons and orders them by ID so
// the matcher's first-seen tie-break is deterministic.
func compileEntries(locale, calendar string, ids []string) ([]catalogEntry, error) {
	sort.Strings(ids)
	entries := make([]catalogEntry, 0, len(ids))
	for _, id := range ids {
		tokens, err := TokenizeSkeleton(id)
		if err != nil {
			return nil, fmt.Errorf("datefmt: %s/%s format id %q: %w", locale, calendar, id, err)
		}
		sorted := sortByCanonicalKey(tokens)
		entries = append(entries, catalogEntry{
			id:        FormatID(id),
			sorted:    sorted,
			signature: canonicalSignature(sorted),
		})
	}
	return entries, nil
}

// AvailableFormatTokens exposes the tokenized available formats in format-ID order.
func (c *Catalog) AvailableFormatTokens() []FormatCatalogEntry {
	out := make([]FormatCatalogEntry, len(c.entries))
	for i, entry := range c.entries {
		tokens := make(TokenizedSequence, len(entry.sorted))
		copy(tokens, entry.sorted)
		out[i] = FormatCatalogEntry{ID: entry.id, Tokens: tokens}
	}
	return out
}

// Pattern returns the pattern entry behind a format ID.
func (c *Catalog) Pattern(id FormatID) (PatternEntry, bool) {
	entry, ok := c.data.AvailableFormats[string(id)]
	return entry, ok
}

// IntervalHalves returns the split interval entry for a format ID and greatest
// difference field. FormatRange renders the Default halves; callers wanting
// the alternate sub-style read the entry's Variant here and assemble the
// output themselves with RenderPattern.
func (c *Catalog) IntervalHalves(id FormatID, diff string) (SplitIntervalEntry, bool) {
	byDiff, ok := c.intervals[id]
	if !ok {
		return SplitIntervalEntry{}, false
	}
	entry, ok := byDiff[diff]
	return entry, ok
}

// DateFormat, TimeFormat and DateTimeFormat return the standard-style tables.
func (c *Catalog) DateFormat(style string) string     { return c.data.DateFormats.Style(style) }
func (c *Catalog) TimeFormat(style string) string     { return c.data.TimeFormats.Style(style) }
func (c *Catalog) DateTimeFormat(style string) string { return c.data.DateTimeFormats.Style(style) }
