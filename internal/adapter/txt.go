package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decima-tools/coreloc/internal/decima"
)

// Text renders entries as a self-describing plain-text document:
//
//	@resource 3
//	English:: Hello
//	French:: Bonjour
//
// Line breaks inside a text are escaped, so one line always equals one
// entry and translators can edit with nothing but a text editor.
type Text struct{}

const (
	txtResourceMarker = "@resource "
	txtLangSeparator  = ":: "
)

func (Text) Extension() string { return "txt" }

func (Text) Render(entries []decima.Entry) ([]byte, error) {
	var b strings.Builder
	current := -1
	for _, e := range entries {
		if e.Resource != current {
			if current != -1 {
				b.WriteByte('\n')
			}
			b.WriteString(txtResourceMarker)
			b.WriteString(strconv.Itoa(e.Resource))
			b.WriteByte('\n')
			current = e.Resource
		}
		b.WriteString(e.Language)
		b.WriteString(txtLangSeparator)
		b.WriteString(escapeEOL(e.Text))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func (Text) Parse(data []byte) ([]decima.Entry, error) {
	var entries []decima.Entry
	resource := -1
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(line, txtResourceMarker); ok {
			idx, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad resource index %q", ErrParse, n+1, rest)
			}
			resource = idx
			continue
		}
		lang, text, ok := strings.Cut(line, txtLangSeparator)
		if !ok {
			// Tolerate a separator with no trailing space before an empty text.
			lang, ok = strings.CutSuffix(line, strings.TrimSuffix(txtLangSeparator, " "))
			if !ok {
				return nil, fmt.Errorf("%w: line %d: expected %q separator", ErrParse, n+1, txtLangSeparator)
			}
			text = ""
		}
		if resource < 0 {
			return nil, fmt.Errorf("%w: line %d: entry before any %q header", ErrParse, n+1, strings.TrimSpace(txtResourceMarker))
		}
		entries = append(entries, decima.Entry{
			Resource: resource,
			Language: lang,
			Text:     unescapeEOL(text),
		})
	}
	return entries, nil
}
