package adapter

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/decima-tools/coreloc/internal/decima"
)

var sampleEntries = []decima.Entry{
	{Resource: 1, Language: "English", Text: "Hello"},
	{Resource: 1, Language: "French", Text: "Bonjour"},
	{Resource: 4, Language: "English", Text: "line one\nline two"},
	{Resource: 4, Language: "French", Text: ""},
}

func sortEntries(entries []decima.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Resource != entries[j].Resource {
			return entries[i].Resource < entries[j].Resource
		}
		return entries[i].Language < entries[j].Language
	})
}

func TestAdapterRoundTrips(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "yaml", "txt"} {
		a, err := ForFormat(format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		rendered, err := a.Render(sampleEntries)
		if err != nil {
			t.Fatalf("%s render: %v", format, err)
		}
		parsed, err := a.Parse(rendered)
		if err != nil {
			t.Fatalf("%s parse: %v", format, err)
		}

		want := append([]decima.Entry(nil), sampleEntries...)
		sortEntries(want)
		sortEntries(parsed)
		if !reflect.DeepEqual(parsed, want) {
			t.Fatalf("%s round trip mismatch:\ngot  %+v\nwant %+v", format, parsed, want)
		}
	}
}

func TestForFormatUnknown(t *testing.T) {
	t.Parallel()

	if _, err := ForFormat("xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestJSONParseError(t *testing.T) {
	t.Parallel()

	_, err := JSON{}.Parse([]byte("{not json"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestYAMLParseError(t *testing.T) {
	t.Parallel()

	_, err := YAML{}.Parse([]byte(":\n -\tbroken"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestTextRenderLayout(t *testing.T) {
	t.Parallel()

	out, err := Text{}.Render(sampleEntries)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "@resource 1\n") || !strings.Contains(text, "@resource 4\n") {
		t.Fatalf("missing resource headers:\n%s", text)
	}
	if !strings.Contains(text, "English:: line one<lf>line two\n") {
		t.Fatalf("newline not escaped:\n%s", text)
	}
}

func TestTextParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"entry before header", "English:: Hello\n"},
		{"bad resource index", "@resource abc\n"},
		{"missing separator", "@resource 0\njust some words\n"},
	}
	for _, tc := range cases {
		if _, err := (Text{}).Parse([]byte(tc.input)); !errors.Is(err, ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", tc.name, err)
		}
	}
}

func TestTextParseSkipsBlankLines(t *testing.T) {
	t.Parallel()

	entries, err := Text{}.Parse([]byte("\n@resource 2\n\nEnglish:: Hi\n\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 || entries[0].Resource != 2 || entries[0].Text != "Hi" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestEscapeEOL(t *testing.T) {
	t.Parallel()

	in := "a\nb\rc\r\nd"
	escaped := escapeEOL(in)
	if escaped != "a<lf>b<cr>c<cf>d" {
		t.Fatalf("unexpected escape: %q", escaped)
	}
	if got := unescapeEOL(escaped); got != in {
		t.Fatalf("unescape mismatch: %q", got)
	}
	// Unknown codes pass through.
	if got := unescapeEOL("keep<hf>this"); got != "keep<hf>this" {
		t.Fatalf("unknown code mangled: %q", got)
	}
}
