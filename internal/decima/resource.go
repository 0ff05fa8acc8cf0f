package decima

import (
	"strings"

	"github.com/google/uuid"
)

// ResourceKind distinguishes the text resource layouts a container can
// carry.
type ResourceKind uint8

const (
	KindLocalized ResourceKind = iota
	KindCutscene
)

func (k ResourceKind) String() string {
	switch k {
	case KindLocalized:
		return "Localized"
	case KindCutscene:
		return "Cutscene"
	default:
		return "Unknown"
	}
}

// CutsceneLine is one timed subtitle line. The timing value is opaque
// round-trip metadata.
type CutsceneLine struct {
	Text   string
	Timing uint64
}

// TextResource is the decoded view of one text resource chunk. Fields not
// used by a given game/kind stay nil and are ignored on encode.
//
// Localized resources hold one string per language in Strings. DS localized
// resources additionally carry a translator note and a mode byte per
// language; both are preserved untouched. Cutscene resources hold a group
// of timed lines per language plus two opaque byte regions.
type TextResource struct {
	ChunkIndex int
	Kind       ResourceKind
	GUID       uuid.UUID

	Strings []string // indexed by language code
	Notes   []string // DS only
	Modes   []byte   // DS only

	Block  []byte           // cutscene: leading opaque block (its u32 length prefix is recomputed on encode)
	Groups [][]CutsceneLine // cutscene: indexed by language code
	Tail   [5]byte          // cutscene: trailing opaque bytes
}

// cutsceneJoin separates the lines of a cutscene language in the flat entry
// view. Embedded newlines inside lines are escaped by the format adapters,
// so the separator is unambiguous at this layer.
const cutsceneJoin = "\n"

// Text returns the flat text for one language: the string itself for
// localized resources, the joined lines for cutscenes.
func (r *TextResource) Text(code int) string {
	switch r.Kind {
	case KindCutscene:
		if code < 0 || code >= len(r.Groups) {
			return ""
		}
		parts := make([]string, len(r.Groups[code]))
		for i, line := range r.Groups[code] {
			parts[i] = line.Text
		}
		return strings.Join(parts, cutsceneJoin)
	default:
		if code < 0 || code >= len(r.Strings) {
			return ""
		}
		return r.Strings[code]
	}
}

// SetText replaces the text for one language. A cutscene edit must supply
// exactly as many lines as the original holds; timings stay untouched.
func (r *TextResource) SetText(code int, text string) error {
	switch r.Kind {
	case KindCutscene:
		if code < 0 || code >= len(r.Groups) {
			return ErrUnsupportedResourceVersion
		}
		lines := strings.Split(text, cutsceneJoin)
		if text == "" && len(r.Groups[code]) == 0 {
			return nil
		}
		if len(lines) != len(r.Groups[code]) {
			return ErrLineCountMismatch
		}
		for i := range lines {
			r.Groups[code][i].Text = lines[i]
		}
		return nil
	default:
		if code < 0 || code >= len(r.Strings) {
			return ErrUnsupportedResourceVersion
		}
		r.Strings[code] = text
		return nil
	}
}
