package decima

import (
	"fmt"
	"strings"
)

// Language tables are pinned per game from reference files. The numeric
// engine code doubles as the canonical ordering: exports and re-encoded
// payloads always emit languages in code order, regardless of edit order.

var hzdLanguages = []string{
	"English",
	"French",
	"Spanish",
	"German",
	"Italian",
	"Dutch",
	"Portuguese",
	"TraditionalChinese",
	"Korean",
	"Russian",
	"Polish",
	"Danish",
	"Finnish",
	"Norwegian",
	"Swedish",
	"Japanese",
	"LatinAmericanSpanish",
	"BrazilianPortuguese",
	"Turkish",
	"Arabic",
	"SimplifiedChinese",
}

var dsLanguages = []string{
	"English",
	"French",
	"Spanish",
	"German",
	"Italian",
	"Dutch",
	"Portuguese",
	"TraditionalChinese",
	"Korean",
	"Russian",
	"Polish",
	"Danish",
	"Finnish",
	"Norwegian",
	"Swedish",
	"Japanese",
	"LatinAmericanSpanish",
	"BrazilianPortuguese",
	"Turkish",
	"Arabic",
	"SimplifiedChinese",
	"EnglishUK",
	"Greek",
	"Czech",
	"Hungarian",
}

// Languages returns the canonical language table for the game, indexed by
// engine language code.
func (g Game) Languages() []string {
	switch g {
	case GameHZD:
		return hzdLanguages
	case GameDS:
		return dsLanguages
	default:
		return nil
	}
}

// LanguageCount returns the number of language entries every text resource
// of this game carries.
func (g Game) LanguageCount() int {
	return len(g.Languages())
}

// LanguageName returns the name for an engine language code, or a numeric
// placeholder for codes outside the table.
func (g Game) LanguageName(code int) string {
	langs := g.Languages()
	if code < 0 || code >= len(langs) {
		return fmt.Sprintf("language(%d)", code)
	}
	return langs[code]
}

// LanguageCode resolves a language name to its engine code,
// case-insensitively.
func (g Game) LanguageCode(name string) (int, bool) {
	for code, n := range g.Languages() {
		if strings.EqualFold(n, name) {
			return code, true
		}
	}
	return 0, false
}

// LanguageCodes resolves a list of names to a code set. Nil or empty names
// selects every language. Unknown names are returned for reporting.
func (g Game) LanguageCodes(names []string) (map[int]bool, []string) {
	codes := make(map[int]bool, g.LanguageCount())
	if len(names) == 0 {
		for code := range g.Languages() {
			codes[code] = true
		}
		return codes, nil
	}
	var unknown []string
	for _, name := range names {
		code, ok := g.LanguageCode(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		codes[code] = true
	}
	return codes, unknown
}
