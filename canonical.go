package datefmt

import (
	"sort"
	"strings"
)

// canonicalKey maps a format symbol to its equivalence-class representative.
// Symbols in the same class describe the same field category and are considered
// compatible when filtering candidates; scoring still sees the exact symbols.
func canonicalKey(symbol byte) byte {
	switch symbol {
	case 'L':
		return 'M'
	case 'c':
		return 'E'
	case 'b', 'B':
		return 'a'
	case 'k', 'h', 'K':
		return 'H'
	case 'x', 'X', 'V', 'z', 'Z', 'O':
		return 'v'
	default:
		return symbol
	}
}

const (
	// dateFieldSymbols covers era, year, quarter, month, week, day and weekday
	// fields; timeFieldSymbols covers day period, hour, minute, second and
	// timezone fields. Together they drive the date/time split fallback.
	dateFieldSymbols = "GyYuUrQqMLlwWdDFgEec"
	timeFieldSymbols = "abBhHKkjJCmsSAzZOvVXx"
)

func isDateFieldSymbol(c byte) bool {
	return strings.IndexByte(dateFieldSymbols, c) >= 0
}

func isTimeFieldSymbol(c byte) bool {
	return strings.IndexByte(timeFieldSymbols, c) >= 0
}

// isNumericWidth reports whether a repeat count renders as digits. Counts above
// two select abbreviated/wide/narrow names instead.
func isNumericWidth(count int) bool {
	return count <= 2
}

func sameCategory(a, b byte) bool {
	return canonicalKey(a) == canonicalKey(b)
}

// sortByCanonicalKey orders skeleton tokens by canonical key ascending so that
// same-category fields align positionally during scoring. The sort is stable;
// a well-formed skeleton carries at most one field per category anyway.
func sortByCanonicalKey(seq TokenizedSequence) TokenizedSequence {
	out := make(TokenizedSequence, len(seq))
	copy(out, seq)
	sort.SliceStable(out, func(i, j int) bool {
		return canonicalKey(out[i].Symbol) < canonicalKey(out[j].Symbol)
	})
	return out
}

// canonicalSignature returns the sorted canonical keys of a sequence, the
// order-normalized multiset used by the candidate filter.
func canonicalSignature(seq TokenizedSequence) string {
	keys := make([]byte, len(seq))
	for i, tok := range seq {
		keys[i] = canonicalKey(tok.Symbol)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return string(keys)
}
