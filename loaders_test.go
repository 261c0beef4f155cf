package datefmt

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoaderJSON(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "fr.json"))
	bundles, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	bundle, ok := bundles["fr"]
	if !ok {
		t.Fatal("fr bundle missing")
	}
	calendar := bundle.Calendar("gregorian")
	if calendar == nil {
		t.Fatal("gregorian calendar missing")
	}

	if got := calendar.AvailableFormats["Md"].Pattern; got != "dd/MM" {
		t.Fatalf("Md pattern = %q", got)
	}
	entry := calendar.AvailableFormats["MMMd"]
	if entry.Pattern != "d MMM" || entry.Variant != "MMM d" {
		t.Fatalf("MMMd entry = %+v", entry)
	}
	if got := calendar.DateFormats.Short; got != "dd/MM/y" {
		t.Fatalf("short date = %q", got)
	}
	if got := calendar.Names.MonthsWide[0]; got != "janvier" {
		t.Fatalf("first wide month = %q", got)
	}
}

func TestFileLoaderTOML(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "pt.toml"))
	bundles, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	calendar := bundles["pt"].Calendar("gregorian")
	if calendar == nil {
		t.Fatal("gregorian calendar missing")
	}
	if got := calendar.AvailableFormats["Hm"].Pattern; got != "HH:mm" {
		t.Fatalf("Hm pattern = %q", got)
	}
	entry := calendar.AvailableFormats["MMMd"]
	if entry.Pattern != "d 'de' MMM" || entry.Variant != "MMM d" {
		t.Fatalf("MMMd entry = %+v", entry)
	}
}

func TestFileLoaderMergesCalendars(t *testing.T) {
	loader := NewFileLoader(
		filepath.Join("testdata", "fr.json"),
		filepath.Join("testdata", "fr_buddhist.yaml"),
	)
	bundles, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	bundle := bundles["fr"]
	if bundle == nil {
		t.Fatal("fr bundle missing")
	}
	if bundle.Calendar("gregorian") == nil {
		t.Fatal("gregorian calendar lost during merge")
	}
	buddhist := bundle.Calendar("buddhist")
	if buddhist == nil {
		t.Fatal("buddhist calendar missing after merge")
	}
	if got := buddhist.AvailableFormats["yMd"].Pattern; got != "dd/MM/y G" {
		t.Fatalf("buddhist yMd pattern = %q", got)
	}
}

func TestFileLoaderErrors(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error for loader without paths")
	}

	if _, err := NewFileLoader(filepath.Join("testdata", "missing.json")).Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	_, err := decodeBundleFile("fr.ini", []byte("fr = {}"))
	if err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Fatalf("err = %v, want unsupported extension", err)
	}
}

func TestFormatterFromLoader(t *testing.T) {
	f := newTestFormatter(t,
		WithLoader(NewFileLoader(
			filepath.Join("testdata", "fr.json"),
			filepath.Join("testdata", "fr_buddhist.yaml"),
		)),
		WithDefaultLocale("fr"),
	)

	pattern, err := f.Pattern("yMd", "fr", "gregorian")
	if err != nil {
		t.Fatalf("Pattern: %v", err)
	}
	if pattern != "dd/MM/y" {
		t.Fatalf("pattern = %q", pattern)
	}

	pattern, err = f.Pattern("yMd", "fr", "buddhist")
	if err != nil {
		t.Fatalf("Pattern(buddhist): %v", err)
	}
	if pattern != "dd/MM/y G" {
		t.Fatalf("buddhist pattern = %q", pattern)
	}

	if _, err := f.Pattern("yMd", "fr", "japanese"); err == nil {
		t.Fatal("expected error for unknown calendar")
	}
}
