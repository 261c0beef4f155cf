package datefmt

import (
	"errors"
	"testing"
)

func TestTokenizeSkeleton(t *testing.T) {
	tests := []struct {
		skeleton string
		want     TokenizedSequence
	}{
		{skeleton: "yMMMd", want: TokenizedSequence{{'y', 1}, {'M', 3}, {'d', 1}}},
		{skeleton: "hms", want: TokenizedSequence{{'h', 1}, {'m', 1}, {'s', 1}}},
		{skeleton: "HHmm", want: TokenizedSequence{{'H', 2}, {'m', 2}}},
		{skeleton: "EEEEMd", want: TokenizedSequence{{'E', 4}, {'M', 1}, {'d', 1}}},
		{skeleton: "", want: nil},
		{skeleton: "MdM", want: TokenizedSequence{{'M', 1}, {'d', 1}, {'M', 1}}},
	}

	for _, tc := range tests {
		got, err := TokenizeSkeleton(tc.skeleton)
		if err != nil {
			t.Fatalf("TokenizeSkeleton(%q): %v", tc.skeleton, err)
		}
		if !tokenSequencesEqual(got, tc.want) {
			t.Fatalf("TokenizeSkeleton(%q) = %v, want %v", tc.skeleton, got, tc.want)
		}
		if got.String() != tc.skeleton {
			t.Fatalf("String() round-trip of %q gave %q", tc.skeleton, got.String())
		}
	}
}

func TestTokenizeSkeletonRejectsForeignRunes(t *testing.T) {
	for _, bad := range []string{"yMd ", "y-M", "yMpd", "M/d"} {
		_, err := TokenizeSkeleton(bad)
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Fatalf("TokenizeSkeleton(%q) err = %v, want LexError", bad, err)
		}
	}
}

func TestTokenizePattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    TokenizedSequence
	}{
		{pattern: "MMM d, y", want: TokenizedSequence{{'M', 3}, {'d', 1}, {'y', 1}}},
		{pattern: "h:mm:ss a", want: TokenizedSequence{{'h', 1}, {'m', 2}, {'s', 2}, {'a', 1}}},
		{pattern: "EEEE, MMMM d, y 'at' h:mm a", want: TokenizedSequence{
			{'E', 4}, {'M', 4}, {'d', 1}, {'y', 1}, {'h', 1}, {'m', 2}, {'a', 1},
		}},
		{pattern: "'o''clock' H", want: TokenizedSequence{{'H', 1}}},
		{pattern: "d 'd' d", want: TokenizedSequence{{'d', 1}, {'d', 1}}},
		{pattern: "", want: nil},
	}

	for _, tc := range tests {
		got, err := TokenizePattern(tc.pattern)
		if err != nil {
			t.Fatalf("TokenizePattern(%q): %v", tc.pattern, err)
		}
		if !tokenSequencesEqual(got, tc.want) {
			t.Fatalf("TokenizePattern(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestTokenizePatternRejectsUnquotedLetters(t *testing.T) {
	_, err := TokenizePattern("MMM d. t y")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("err = %v, want LexError", err)
	}
	if lexErr.Rune != 't' {
		t.Fatalf("LexError.Rune = %q, want 't'", lexErr.Rune)
	}
}

func tokenSequencesEqual(a, b TokenizedSequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
