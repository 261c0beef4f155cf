package datefmt

import "fmt"

// Config captures formatter setup
type Config struct {
	DefaultLocale   string
	DefaultCalendar string
	Locales         []string
	Loader          Loader
	Store           Store
	Resolver        FallbackResolver
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.Locales = normalizeLocales(cfg.Locales)

	if cfg.Store == nil {
		if cfg.Loader != nil {
			store, err := NewStaticStoreFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Store = store
		} else {
			cfg.Store = NewStaticStore(builtinBundles())
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.DefaultCalendar == "" {
		cfg.DefaultCalendar = DefaultCalendar
	}

	if cfg.DefaultLocale == "" {
		if len(cfg.Locales) > 0 {
			cfg.DefaultLocale = cfg.Locales[0]
		} else if known := cfg.Store.Locales(); len(known) > 0 {
			cfg.DefaultLocale = known[0]
		}
	} else {
		cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
	}

	for _, locale := range cfg.Locales {
		if !storeCovers(cfg.Store, locale) {
			return nil, fmt.Errorf("datefmt: locale %q is not defined in the store", locale)
		}
	}

	return cfg, nil
}

func storeCovers(store Store, locale string) bool {
	for _, candidate := range localeCandidates(locale) {
		if _, ok := store.Bundle(candidate); ok {
			return true
		}
	}
	return false
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithDefaultCalendar overrides the gregorian default calendar
func WithDefaultCalendar(calendar string) Option {
	return func(c *Config) error {
		c.DefaultCalendar = calendar
		return nil
	}
}

// WithLocales registers supported locales; each must resolve to a stored bundle
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithStore(store Store) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithBundles seeds the store from in memory bundles
func WithBundles(bundles Bundles) Option {
	return func(c *Config) error {
		c.Store = NewStaticStore(bundles)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}
