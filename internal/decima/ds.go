package decima

import (
	"fmt"

	"github.com/google/uuid"
)

// MagicDSLocalized tags Death Stranding localized text chunks.
const MagicDSLocalized uint64 = 0x31BE502435317445

// decodeDSLocalized decodes a DS localized resource: a 16-byte GUID, then
// per language a text string, a translator note and a mode byte. Notes and
// modes are never interpreted, only carried back on encode.
func decodeDSLocalized(index int, payload []byte) (*TextResource, error) {
	c := &cursor{data: payload}
	guid, err := c.readN(16)
	if err != nil {
		return nil, fmt.Errorf("%w: localized guid", ErrTruncatedPayload)
	}
	n := GameDS.LanguageCount()
	strs := make([]string, n)
	notes := make([]string, n)
	modes := make([]byte, n)
	for code := 0; code < n; code++ {
		lang := GameDS.LanguageName(code)
		if strs[code], err = c.readString8(); err != nil {
			return nil, fmt.Errorf("%w: %s text", ErrTruncatedPayload, lang)
		}
		if notes[code], err = c.readString8(); err != nil {
			return nil, fmt.Errorf("%w: %s note", ErrTruncatedPayload, lang)
		}
		if modes[code], err = c.readU8(); err != nil {
			return nil, fmt.Errorf("%w: %s mode", ErrTruncatedPayload, lang)
		}
	}
	if c.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d unconsumed bytes after string groups", ErrUnsupportedResourceVersion, c.remaining())
	}
	return &TextResource{
		ChunkIndex: index,
		Kind:       KindLocalized,
		GUID:       uuid.UUID(guid),
		Strings:    strs,
		Notes:      notes,
		Modes:      modes,
	}, nil
}

func encodeDSLocalized(r *TextResource) ([]byte, error) {
	size := 16
	for code := range r.Strings {
		size += string8Size(r.Strings[code]) + string8Size(r.Notes[code]) + 1
	}
	out := make([]byte, 0, size)
	out = append(out, r.GUID[:]...)
	for code := range r.Strings {
		var err error
		if out, err = appendString8(out, r.Strings[code]); err != nil {
			return nil, fmt.Errorf("%w: %s text is %d bytes", err, GameDS.LanguageName(code), len(r.Strings[code]))
		}
		if out, err = appendString8(out, r.Notes[code]); err != nil {
			return nil, fmt.Errorf("%w: %s note is %d bytes", err, GameDS.LanguageName(code), len(r.Notes[code]))
		}
		out = append(out, r.Modes[code])
	}
	return out, nil
}
