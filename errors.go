package datefmt

import (
	"errors"
	"fmt"
)

// ErrUnknownLocale indicates that no bundle exists for the requested locale or
// any of its fallback candidates.
var ErrUnknownLocale = errors.New("datefmt: unknown locale")

// ErrUnknownCalendar indicates the locale bundle does not carry the requested calendar.
var ErrUnknownCalendar = errors.New("datefmt: unknown calendar")

// NoMatchError reports that no available format (nor a date/time split pair)
// covers the requested skeleton. Skeleton holds the original, pre-normalization
// request for diagnostics.
type NoMatchError struct {
	Skeleton string
	Locale   string
	Calendar string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("datefmt: no format matches skeleton %q for %s/%s", e.Skeleton, e.Locale, e.Calendar)
}

// IntervalFormatError reports a malformed interval pattern: end of input was
// reached before any field repeated. It surfaces while building a catalog, not
// while serving a request, and indicates bad locale data.
type IntervalFormatError struct {
	Pattern string
}

func (e *IntervalFormatError) Error() string {
	return fmt.Sprintf("datefmt: invalid interval format %q: no repeated field", e.Pattern)
}

// LexError reports a character outside the format-symbol alphabet.
type LexError struct {
	Input    string
	Position int
	Rune     rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("datefmt: illegal character %q at position %d in %q", e.Rune, e.Position, e.Input)
}
