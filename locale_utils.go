package datefmt

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a locale identifier by replacing underscores with
// hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}

	sort.Strings(result)
	return result
}

// stripExtensions removes BCP 47 extension and private-use subtags, e.g.
// "de-u-hc-h12" -> "de". Bundles are keyed without extensions; the hc
// extension is consumed separately by the normalizer.
func stripExtensions(locale string) string {
	for _, marker := range []string{"-u-", "-t-", "-x-"} {
		if idx := strings.Index(locale, marker); idx >= 0 {
			locale = locale[:idx]
		}
	}
	return locale
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeCandidates returns the lookup chain for a locale: the locale itself,
// its extension-free base, then parents up to the root, most specific first.
func localeCandidates(locale string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	var chain []string

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}

	appendLocale(normalized)

	base := stripExtensions(normalized)
	appendLocale(base)

	if tag, err := language.Parse(base); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, exists := seen[value]; exists {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := localeParentTag(base); current != ""; current = localeParentTag(current) {
		appendLocale(current)
	}

	return chain
}
