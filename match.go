package datefmt

// FormatID is the stable key of one entry in a locale's available-formats
// catalog (e.g. "yMMMd"), independent of the locale-specific pattern string.
type FormatID string

// FormatCatalogEntry pairs a format ID with its tokenized skeleton. One per
// available format in a locale+calendar, computed once and immutable.
type FormatCatalogEntry struct {
	ID     FormatID
	Tokens TokenizedSequence
}

// Match identifies the catalog format(s) satisfying a skeleton request.
// TimeFormat is set only when the matcher fell back to resolving the date and
// time halves of the skeleton separately.
type Match struct {
	Format     FormatID
	TimeFormat FormatID
}

// Split reports whether the match resolved through the date/time split fallback.
func (m Match) Split() bool {
	return m.TimeFormat != ""
}

// Distance penalties. Same-class symbol swaps are close, numeric/alpha width
// flips are far, and fields that disagree on category after filtering (which
// the signature check should preclude) are farthest.
const (
	penaltySimilarSymbol  = 5
	penaltyWidthMismatch  = 10
	penaltyUnmatchedField = 15
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// tokenDistance scores one aligned token pair. Rule order matters: the first
// rule that claims a pair wins.
func tokenDistance(a, b FormatToken) int {
	sameWidth := isNumericWidth(a.Count) == isNumericWidth(b.Count)
	switch {
	case a.Symbol == b.Symbol && sameWidth:
		return absInt(a.Count - b.Count)
	case a.Symbol == b.Symbol:
		return penaltyWidthMismatch
	case sameCategory(a.Symbol, b.Symbol) && sameWidth:
		return absInt(a.Count-b.Count) + penaltySimilarSymbol
	case sameCategory(a.Symbol, b.Symbol):
		return absInt(a.Count-b.Count) + penaltyWidthMismatch
	default:
		return penaltyUnmatchedField
	}
}

// sequenceDistance accumulates the pairwise distance of two sequences that are
// already sorted by canonical key and of equal length.
func sequenceDistance(skeleton, candidate TokenizedSequence) int {
	total := 0
	for i := range skeleton {
		total += tokenDistance(candidate[i], skeleton[i])
	}
	return total
}

// catalogEntry is a FormatCatalogEntry compiled for matching: tokens sorted by
// canonical key with the signature precomputed.
type catalogEntry struct {
	id        FormatID
	sorted    TokenizedSequence
	signature string
}

// matchSingle resolves a normalized skeleton against the compiled entries.
// Candidates must carry the same canonical-key signature and the same field
// count; the minimum-distance survivor wins, ties going to the earliest entry
// (entries are kept in ascending format-ID order).
func matchSingle(entries []catalogEntry, skeleton string) (FormatID, bool, error) {
	tokens, err := TokenizeSkeleton(skeleton)
	if err != nil {
		return "", false, err
	}
	if len(tokens) == 0 {
		return "", false, nil
	}

	ordered := sortByCanonicalKey(tokens)
	signature := canonicalSignature(ordered)

	var bestID FormatID
	bestDistance := -1
	for _, entry := range entries {
		if len(entry.sorted) != len(ordered) || entry.signature != signature {
			continue
		}
		distance := sequenceDistance(ordered, entry.sorted)
		if bestDistance < 0 || distance < bestDistance {
			bestID = entry.id
			bestDistance = distance
		}
	}

	if bestDistance < 0 {
		return "", false, nil
	}
	return bestID, true, nil
}

// splitDateTimeFields partitions a skeleton into its pure-date and pure-time
// characters, preserving relative order within each subset.
func splitDateTimeFields(skeleton string) (datePart, timePart string) {
	var date, clock []byte
	for i := 0; i < len(skeleton); i++ {
		c := skeleton[i]
		switch {
		case isDateFieldSymbol(c):
			date = append(date, c)
		case isTimeFieldSymbol(c):
			clock = append(clock, c)
		}
	}
	return string(date), string(clock)
}

// bestMatch resolves a normalized skeleton to a single format or, failing
// that, to a (date, time) pair via the split fallback. ok is false when
// neither strategy produced a match.
func bestMatch(entries []catalogEntry, skeleton string) (Match, bool, error) {
	id, ok, err := matchSingle(entries, skeleton)
	if err != nil {
		return Match{}, false, err
	}
	if ok {
		return Match{Format: id}, true, nil
	}

	datePart, timePart := splitDateTimeFields(skeleton)
	if datePart == "" || timePart == "" {
		return Match{}, false, nil
	}

	dateID, dateOK, err := matchSingle(entries, datePart)
	if err != nil {
		return Match{}, false, err
	}
	timeID, timeOK, err := matchSingle(entries, timePart)
	if err != nil {
		return Match{}, false, err
	}
	if !dateOK || !timeOK {
		return Match{}, false, nil
	}
	return Match{Format: dateID, TimeFormat: timeID}, true, nil
}
