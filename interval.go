package datefmt

// intervalClass collapses the symbols an interval pattern treats as the same
// field when detecting repetition: month, weekday and quarter variants fold
// together, everything else stands for itself.
func intervalClass(symbol byte) byte {
	switch symbol {
	case 'L', 'M':
		return 'M'
	case 'E', 'e', 'c':
		return 'E'
	case 'Q', 'q':
		return 'Q'
	default:
		return symbol
	}
}

// RangeHalves are the two sub-patterns of a combined interval pattern, left
// rendered against the start of the range and right against the end.
type RangeHalves struct {
	Left  string
	Right string
}

// SplitInterval partitions a combined CLDR interval pattern (e.g. "MMM d – d")
// at the first field whose class already occurred earlier in the pattern.
// Quoted literals copy through verbatim and never terminate the scan. A
// pattern in which no field repeats is malformed interval data.
func SplitInterval(pattern string) (RangeHalves, error) {
	seen := make(map[byte]struct{}, 8)

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
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
			if j < len(pattern) {
				j++
			}
			i = j
		case isASCIILetter(c):
			// Maximal run, longest first: a field is 1-5 repeats of one symbol.
			n := 1
			for n < 5 && i+n < len(pattern) && pattern[i+n] == c {
				n++
			}
			class := intervalClass(c)
			if _, repeated := seen[class]; repeated {
				return RangeHalves{Left: pattern[:i], Right: pattern[i:]}, nil
			}
			seen[class] = struct{}{}
			i += n
		default:
			i++
		}
	}

	return RangeHalves{}, &IntervalFormatError{Pattern: pattern}
}

// splitIntervalEntry splits a pattern entry, recursing into the variant
// sub-style when the locale defines one.
func splitIntervalEntry(entry PatternEntry) (SplitIntervalEntry, error) {
	halves, err := SplitInterval(entry.Pattern)
	if err != nil {
		return SplitIntervalEntry{}, err
	}
	out := SplitIntervalEntry{Default: halves}
	if entry.Variant != "" {
		variant, err := SplitInterval(entry.Variant)
		if err != nil {
			return SplitIntervalEntry{}, err
		}
		out.Variant = &variant
	}
	return out, nil
}
