package datefmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileLoader reads locale bundles from JSON, YAML or TOML files. Each file
// holds a map of locale code to bundle; when several files define the same
// locale their calendars are merged, later files winning per calendar.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Bundles, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datefmt: no loader paths configured")
	}

	bundles := make(Bundles)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
		}

		src, err := decodeBundleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
		}
		mergeBundles(bundles, src)
	}

	return bundles, nil
}

func decodeBundleFile(path string, data []byte) (Bundles, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]*Bundle
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	bundles := make(Bundles, len(raw))
	for locale, bundle := range raw {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}
		if bundle == nil {
			return nil, fmt.Errorf("empty bundle for %s in %s", locale, path)
		}
		if bundle.Locale == "" {
			bundle.Locale = normalized
		}
		if err := validateBundle(bundle); err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		bundles[normalized] = bundle
	}
	return bundles, nil
}

func validateBundle(bundle *Bundle) error {
	if len(bundle.Calendars) == 0 {
		return errors.New("bundle defines no calendars")
	}
	for name, data := range bundle.Calendars {
		if name == "" {
			return errors.New("empty calendar name")
		}
		if data == nil {
			return fmt.Errorf("calendar %q is empty", name)
		}
	}
	return nil
}

func mergeBundles(dest, src Bundles) {
	for locale, bundle := range src {
		existing, ok := dest[locale]
		if !ok {
			dest[locale] = bundle
			continue
		}
		if existing.Calendars == nil {
			existing.Calendars = make(map[string]*CalendarData, len(bundle.Calendars))
		}
		for name, data := range bundle.Calendars {
			existing.Calendars[name] = data
		}
	}
}
