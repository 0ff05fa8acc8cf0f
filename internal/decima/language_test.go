package decima

import "testing"

func TestLanguageTables(t *testing.T) {
	t.Parallel()

	if n := GameHZD.LanguageCount(); n != 21 {
		t.Fatalf("HZD table has %d languages, want 21", n)
	}
	if n := GameDS.LanguageCount(); n != 25 {
		t.Fatalf("DS table has %d languages, want 25", n)
	}
	if GameUnknown.LanguageCount() != 0 {
		t.Fatal("unknown game must have an empty table")
	}
}

func TestLanguageCodeLookup(t *testing.T) {
	t.Parallel()

	code, ok := GameHZD.LanguageCode("japanese")
	if !ok || code != 15 {
		t.Fatalf("japanese: got (%d, %v)", code, ok)
	}
	if _, ok := GameHZD.LanguageCode("Greek"); ok {
		t.Fatal("Greek is DS-only but resolved for HZD")
	}
	code, ok = GameDS.LanguageCode("Greek")
	if !ok || code != 22 {
		t.Fatalf("Greek: got (%d, %v)", code, ok)
	}
	if name := GameHZD.LanguageName(99); name != "language(99)" {
		t.Fatalf("out-of-table name: %q", name)
	}
}

func TestLanguageCodes(t *testing.T) {
	t.Parallel()

	all, unknown := GameHZD.LanguageCodes(nil)
	if len(all) != 21 || len(unknown) != 0 {
		t.Fatalf("nil selection: %d codes, unknown %v", len(all), unknown)
	}

	some, unknown := GameHZD.LanguageCodes([]string{"English", "Elvish", "french"})
	if len(some) != 2 {
		t.Fatalf("expected 2 codes, got %d", len(some))
	}
	if len(unknown) != 1 || unknown[0] != "Elvish" {
		t.Fatalf("unexpected unknown list: %v", unknown)
	}
}

func TestParseGame(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"hzd", "HZD", "horizon"} {
		g, err := ParseGame(name)
		if err != nil || g != GameHZD {
			t.Fatalf("%s: got (%v, %v)", name, g, err)
		}
	}
	if _, err := ParseGame("zelda"); err == nil {
		t.Fatal("expected error for unsupported game")
	}
}
