package datefmt

import "strings"

// formatSymbols is the CLDR date field symbol alphabet. Anything else in a
// skeleton, or unquoted in a pattern, is a lex error.
const formatSymbols = "GyYuUrQqMLlwWdDFgEecabBhHKkjJCmsSAzZOvVXx"

// FormatToken is one maximal run of an identical format character, e.g.
// "MMM" -> {'M', 3}.
type FormatToken struct {
	Symbol byte
	Count  int
}

// TokenizedSequence is an ordered list of maximal symbol runs. Patterns keep
// their source order; skeletons are later sorted by canonical key, not here.
type TokenizedSequence []FormatToken

// String reconstructs the run-length-encoded source of the sequence.
func (seq TokenizedSequence) String() string {
	var b strings.Builder
	for _, tok := range seq {
		for i := 0; i < tok.Count; i++ {
			b.WriteByte(tok.Symbol)
		}
	}
	return b.String()
}

func isFormatSymbol(c byte) bool {
	return strings.IndexByte(formatSymbols, c) >= 0
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// TokenizeSkeleton splits a skeleton string into maximal symbol runs. Every
// character must belong to the format-symbol alphabet.
func TokenizeSkeleton(skeleton string) (TokenizedSequence, error) {
	var seq TokenizedSequence
	for i := 0; i < len(skeleton); {
		c := skeleton[i]
		if !isFormatSymbol(c) {
			return nil, &LexError{Input: skeleton, Position: i, Rune: rune(c)}
		}
		n := 1
		for i+n < len(skeleton) && skeleton[i+n] == c {
			n++
		}
		seq = append(seq, FormatToken{Symbol: c, Count: n})
		i += n
	}
	return seq, nil
}

// TokenizePattern extracts the field runs of a concrete pattern, skipping
// quoted literal text and non-letter separators. Unquoted letters outside the
// format-symbol alphabet are rejected.
func TokenizePattern(pattern string) (TokenizedSequence, error) {
	var seq TokenizedSequence
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			// Quoted literal run; '' inside is an escaped apostrophe.
			j := i + 1
			for j < len(pattern) {
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						j += 2
						continue
					}
					break
				}
				j++
			}
			i = j + 1
		case isASCIILetter(c):
			if !isFormatSymbol(c) {
				return nil, &LexError{Input: pattern, Position: i, Rune: rune(c)}
			}
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			seq = append(seq, FormatToken{Symbol: c, Count: n})
			i += n
		default:
			i++
		}
	}
	return seq, nil
}
