package datefmt

import (
	"errors"
	"testing"
)

func TestSplitInterval(t *testing.T) {
	tests := []struct {
		pattern string
		left    string
		right   string
	}{
		{pattern: "MMM d – d", left: "MMM d – ", right: "d"},
		{pattern: "MMM d – MMM d", left: "MMM d – ", right: "MMM d"},
		{pattern: "h:mm a – h:mm a", left: "h:mm a – ", right: "h:mm a"},
		{pattern: "h – h a", left: "h – ", right: "h a"},
		{pattern: "HH:mm – HH:mm", left: "HH:mm – ", right: "HH:mm"},
		{pattern: "y – y", left: "y – ", right: "y"},
		// L and M are the same field class, so the L run starts the right half.
		{pattern: "MMM – LLL", left: "MMM – ", right: "LLL"},
		// E, e and c fold together as weekday.
		{pattern: "E d – c d", left: "E d – ", right: "c d"},
	}

	for _, tc := range tests {
		halves, err := SplitInterval(tc.pattern)
		if err != nil {
			t.Fatalf("SplitInterval(%q): %v", tc.pattern, err)
		}
		if halves.Left != tc.left || halves.Right != tc.right {
			t.Fatalf("SplitInterval(%q) = %q|%q, want %q|%q",
				tc.pattern, halves.Left, halves.Right, tc.left, tc.right)
		}
		if halves.Left+halves.Right != tc.pattern {
			t.Fatalf("SplitInterval(%q) halves do not reassemble the input", tc.pattern)
		}
	}
}

func TestSplitIntervalQuotedLiterals(t *testing.T) {
	// The quoted "d" is literal text and must not count as a field.
	halves, err := SplitInterval("d 'd' – d")
	if err != nil {
		t.Fatalf("SplitInterval: %v", err)
	}
	if halves.Left != "d 'd' – " || halves.Right != "d" {
		t.Fatalf("halves = %q|%q", halves.Left, halves.Right)
	}

	// An escaped apostrophe inside a literal stays inside it.
	halves, err = SplitInterval("h 'o''clock' – h")
	if err != nil {
		t.Fatalf("SplitInterval: %v", err)
	}
	if halves.Left != "h 'o''clock' – " || halves.Right != "h" {
		t.Fatalf("halves = %q|%q", halves.Left, halves.Right)
	}
}

func TestSplitIntervalNoRepeatedField(t *testing.T) {
	for _, pattern := range []string{"MMM d", "h:mm a", "y M d", ""} {
		_, err := SplitInterval(pattern)
		var intervalErr *IntervalFormatError
		if !errors.As(err, &intervalErr) {
			t.Fatalf("SplitInterval(%q) err = %v, want IntervalFormatError", pattern, err)
		}
		if intervalErr.Pattern != pattern {
			t.Fatalf("IntervalFormatError.Pattern = %q, want %q", intervalErr.Pattern, pattern)
		}
	}
}

func TestSplitIntervalEntryVariant(t *testing.T) {
	entry := PatternEntry{Pattern: "MMM d – d", Variant: "d – d MMM"}
	split, err := splitIntervalEntry(entry)
	if err != nil {
		t.Fatalf("splitIntervalEntry: %v", err)
	}
	if split.Default.Left != "MMM d – " || split.Default.Right != "d" {
		t.Fatalf("default halves = %q|%q", split.Default.Left, split.Default.Right)
	}
	if split.Variant == nil || split.Variant.Left != "d – " || split.Variant.Right != "d MMM" {
		t.Fatalf("variant halves = %+v", split.Variant)
	}

	if _, err := splitIntervalEntry(PatternEntry{Pattern: "MMM d"}); err == nil {
		t.Fatal("expected error for pattern without a repeated field")
	}
}
