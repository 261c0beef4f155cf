package datefmt

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver keeps explicitly configured chains; locales without
// an entry fall back to parent derivation in the formatter.
type StaticFallbackResolver struct {
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set registers the fallback chain for a locale, replacing any previous one.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil || locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	normalized := normalizeLocale(locale)
	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if value := normalizeLocale(fallback); value != "" {
			chain = append(chain, value)
		}
	}
	s.chains[normalized] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || s.chains == nil {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
