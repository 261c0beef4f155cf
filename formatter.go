package datefmt

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Formatter is the lookup facade: it resolves locales against the store,
// compiles catalogs on first use and answers skeleton requests. Safe for
// concurrent use; compiled catalogs are cached behind a read/write lock.
type Formatter struct {
	store           Store
	resolver        FallbackResolver
	defaultLocale   string
	defaultCalendar string

	mu       sync.RWMutex
	catalogs map[string]*Catalog
}

// New builds a Formatter from functional options. With no options it serves
// the built-in locale bundles.
func New(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter()
}

// BuildFormatter assembles the formatter from a prepared Config.
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil || cfg.Store == nil {
		return nil, fmt.Errorf("datefmt: nil config")
	}
	return &Formatter{
		store:           cfg.Store,
		resolver:        cfg.Resolver,
		defaultLocale:   cfg.DefaultLocale,
		defaultCalendar: cfg.DefaultCalendar,
		catalogs:        make(map[string]*Catalog),
	}, nil
}

// Locales lists the locales served by the underlying store.
func (f *Formatter) Locales() []string {
	return f.store.Locales()
}

// Catalog resolves and compiles the catalog for a locale+calendar, walking the
// locale's fallback chain. An empty calendar selects the configured default.
func (f *Formatter) Catalog(locale, calendar string) (*Catalog, error) {
	if calendar == "" {
		calendar = f.defaultCalendar
	}
	key := normalizeLocale(locale) + "\x00" + calendar

	f.mu.RLock()
	cached, ok := f.catalogs[key]
	f.mu.RUnlock()
	if ok {
		return cached, nil
	}

	bundle, err := f.resolveBundle(locale)
	if err != nil {
		return nil, err
	}
	data := bundle.Calendar(calendar)
	if data == nil {
		return nil, fmt.Errorf("datefmt: %s: %w: %q", bundle.Locale, ErrUnknownCalendar, calendar)
	}

	catalog, err := compileCatalog(bundle.Locale, calendar, data)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.catalogs[key]; ok {
		return existing, nil
	}
	f.catalogs[key] = catalog
	return catalog, nil
}

// resolveBundle walks the candidate chain: the locale, its parents, any
// configured fallback chain, finally the default locale.
func (f *Formatter) resolveBundle(locale string) (*Bundle, error) {
	if locale == "" {
		locale = f.defaultLocale
	}

	seen := make(map[string]struct{}, 8)
	try := func(candidate string) (*Bundle, bool) {
		if candidate == "" {
			return nil, false
		}
		if _, dup := seen[candidate]; dup {
			return nil, false
		}
		seen[candidate] = struct{}{}
		return f.store.Bundle(candidate)
	}

	for _, candidate := range localeCandidates(locale) {
		if bundle, ok := try(candidate); ok {
			return bundle, nil
		}
	}

	if f.resolver != nil {
		for _, fallback := range f.resolver.Resolve(stripExtensions(normalizeLocale(locale))) {
			for _, candidate := range localeCandidates(fallback) {
				if bundle, ok := try(candidate); ok {
					return bundle, nil
				}
			}
		}
	}

	if f.defaultLocale != "" {
		for _, candidate := range localeCandidates(f.defaultLocale) {
			if bundle, ok := try(candidate); ok {
				return bundle, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// BestMatch resolves a skeleton to the closest available format of the
// locale+calendar, falling back to a (date, time) pair when no single format
// covers the request.
func (f *Formatter) BestMatch(skeleton, locale, calendar string) (Match, error) {
	catalog, err := f.Catalog(locale, calendar)
	if err != nil {
		return Match{}, err
	}

	normalized := NormalizeSkeleton(skeleton, locale)
	match, ok, err := bestMatch(catalog.entries, normalized)
	if err != nil {
		return Match{}, err
	}
	if !ok {
		return Match{}, &NoMatchError{Skeleton: skeleton, Locale: catalog.locale, Calendar: catalog.calendar}
	}
	return match, nil
}

// Pattern resolves a skeleton to the concrete pattern string of the winning
// format. Split matches are joined through the calendar's glue pattern, its
// style chosen by the width of the requested month field.
func (f *Formatter) Pattern(skeleton, locale, calendar string) (string, error) {
	catalog, err := f.Catalog(locale, calendar)
	if err != nil {
		return "", err
	}

	match, err := f.BestMatch(skeleton, locale, calendar)
	if err != nil {
		return "", err
	}

	entry, ok := catalog.Pattern(match.Format)
	if !ok {
		return "", &NoMatchError{Skeleton: skeleton, Locale: catalog.locale, Calendar: catalog.calendar}
	}
	if !match.Split() {
		return entry.Pattern, nil
	}

	timeEntry, ok := catalog.Pattern(match.TimeFormat)
	if !ok {
		return "", &NoMatchError{Skeleton: skeleton, Locale: catalog.locale, Calendar: catalog.calendar}
	}

	glue := catalog.DateTimeFormat(glueStyleForSkeleton(skeleton))
	if glue == "" {
		glue = "{1} {0}"
	}
	return applyGluePattern(glue, entry.Pattern, timeEntry.Pattern), nil
}

// glueStyleForSkeleton picks the datetime glue style from the month width of
// the request: wide month with a weekday reads as a full date, wide month as
// long, abbreviated as medium, anything else as short.
func glueStyleForSkeleton(skeleton string) string {
	switch {
	case strings.Contains(skeleton, "MMMM") && strings.ContainsAny(skeleton, "Ec"):
		return "full"
	case strings.Contains(skeleton, "MMMM"):
		return "long"
	case strings.Contains(skeleton, "MMM"):
		return "medium"
	default:
		return "short"
	}
}

// Format renders t using the pattern resolved for the skeleton under the
// default calendar.
func (f *Formatter) Format(t time.Time, skeleton, locale string) (string, error) {
	return f.FormatCalendar(t, skeleton, locale, "")
}

// FormatCalendar is Format for an explicit calendar.
func (f *Formatter) FormatCalendar(t time.Time, skeleton, locale, calendar string) (string, error) {
	catalog, err := f.Catalog(locale, calendar)
	if err != nil {
		return "", err
	}
	pattern, err := f.Pattern(skeleton, locale, calendar)
	if err != nil {
		return "", err
	}
	return RenderPattern(pattern, catalog.data.Names, t), nil
}

// FormatDate renders t with the locale's standard date style
// (full, long, medium or short).
func (f *Formatter) FormatDate(t time.Time, style, locale string) (string, error) {
	catalog, err := f.Catalog(locale, "")
	if err != nil {
		return "", err
	}
	return RenderPattern(catalog.DateFormat(style), catalog.data.Names, t), nil
}

// FormatTime renders t with the locale's standard time style.
func (f *Formatter) FormatTime(t time.Time, style, locale string) (string, error) {
	catalog, err := f.Catalog(locale, "")
	if err != nil {
		return "", err
	}
	return RenderPattern(catalog.TimeFormat(style), catalog.data.Names, t), nil
}

// FormatDateTime renders t with the standard date and time styles joined by
// the locale's glue pattern.
func (f *Formatter) FormatDateTime(t time.Time, style, locale string) (string, error) {
	catalog, err := f.Catalog(locale, "")
	if err != nil {
		return "", err
	}
	glue := catalog.DateTimeFormat(style)
	if glue == "" {
		glue = "{1} {0}"
	}
	pattern := applyGluePattern(glue, catalog.DateFormat(style), catalog.TimeFormat(style))
	return RenderPattern(pattern, catalog.data.Names, t), nil
}
