package datefmt

import (
	"sort"
)

// Store exposes read only access to locale data bundles
type Store interface {
	// Bundle returns the locale bundle and ok=false if missing
	Bundle(locale string) (*Bundle, bool)
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the bundles used to seed a Store
type Loader interface {
	Load() (Bundles, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Bundles, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Bundles, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	bundles Bundles
	locales []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given bundles
func NewStaticStore(data Bundles) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{bundles: make(Bundles)}
	}

	bundles := make(Bundles, len(data))
	locales := make([]string, 0, len(data))

	for locale, bundle := range data {
		if bundle == nil {
			continue
		}
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}

		clone := bundle.Clone()
		if clone.Locale == "" {
			clone.Locale = normalized
		}
		bundles[normalized] = clone
		locales = append(locales, normalized)
	}

	sort.Strings(locales)
	return &StaticStore{bundles: bundles, locales: locales}
}

// NewStaticStoreFromLoader seeds a static store by invoking the loader once
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	data, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewStaticStore(data), nil
}

// Bundle returns the bundle for a locale code
func (s *StaticStore) Bundle(locale string) (*Bundle, bool) {
	bundle, ok := s.bundles[normalizeLocale(locale)]
	return bundle, ok
}

// Locales lists the locales in the snapshot, sorted ascending
func (s *StaticStore) Locales() []string {
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}
