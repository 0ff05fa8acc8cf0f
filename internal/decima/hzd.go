package decima

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// Horizon Zero Dawn text resource chunk magics.
const (
	MagicHZDLocalized uint64 = 0xB89A596B420BB2E2
	MagicHZDCutscene  uint64 = 0x5A3ECD4ADA693D7F
)

// The cutscene block length prefix undercounts the stored block by four
// bytes; the extra four always belong to the block.
const hzdCutsceneBlockSlack = 4

// decodeHZDLocalized decodes a localized string map: a 16-byte GUID
// followed by one u16-prefixed UTF-8 string per language in code order.
func decodeHZDLocalized(index int, payload []byte) (*TextResource, error) {
	c := &cursor{data: payload}
	guid, err := c.readN(16)
	if err != nil {
		return nil, fmt.Errorf("%w: localized guid", ErrTruncatedPayload)
	}
	n := GameHZD.LanguageCount()
	strs := make([]string, n)
	for code := 0; code < n; code++ {
		s, err := c.readString8()
		if err != nil {
			return nil, fmt.Errorf("%w: localized string %s", ErrTruncatedPayload, GameHZD.LanguageName(code))
		}
		strs[code] = s
	}
	if c.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d unconsumed bytes after localized strings", ErrUnsupportedResourceVersion, c.remaining())
	}
	return &TextResource{
		ChunkIndex: index,
		Kind:       KindLocalized,
		GUID:       uuid.UUID(guid),
		Strings:    strs,
	}, nil
}

func encodeHZDLocalized(r *TextResource) ([]byte, error) {
	out := make([]byte, 0, 16+len(r.Strings)*8)
	out = append(out, r.GUID[:]...)
	for code, s := range r.Strings {
		var err error
		out, err = appendString8(out, s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s string is %d bytes", err, GameHZD.LanguageName(code), len(s))
		}
	}
	return out, nil
}

// decodeHZDCutscene decodes a cutscene dialog resource: GUID, an opaque
// block, a language count that must match the pinned table, then one group
// of timed UTF-16 lines per language. Groups are stored by language code so
// encode always emits the canonical order regardless of file order.
func decodeHZDCutscene(index int, payload []byte) (*TextResource, error) {
	c := &cursor{data: payload}
	guid, err := c.readN(16)
	if err != nil {
		return nil, fmt.Errorf("%w: cutscene guid", ErrTruncatedPayload)
	}
	blockLen, err := c.readU32()
	if err != nil {
		return nil, fmt.Errorf("%w: cutscene block length", ErrTruncatedPayload)
	}
	if uint64(blockLen)+hzdCutsceneBlockSlack > uint64(c.remaining()) {
		return nil, fmt.Errorf("%w: cutscene block of %d bytes", ErrTruncatedPayload, blockLen)
	}
	block, err := c.readN(int(blockLen) + hzdCutsceneBlockSlack)
	if err != nil {
		return nil, fmt.Errorf("%w: cutscene block", ErrTruncatedPayload)
	}
	langCount, err := c.readU32()
	if err != nil {
		return nil, fmt.Errorf("%w: cutscene language count", ErrTruncatedPayload)
	}
	if int(langCount) != GameHZD.LanguageCount() {
		return nil, fmt.Errorf("%w: cutscene declares %d languages, layout is pinned at %d", ErrUnsupportedResourceVersion, langCount, GameHZD.LanguageCount())
	}

	groups := make([][]CutsceneLine, langCount)
	seen := make([]bool, langCount)
	for range langCount {
		code, err := c.readU32()
		if err != nil {
			return nil, fmt.Errorf("%w: cutscene group header", ErrTruncatedPayload)
		}
		if int(code) >= int(langCount) {
			return nil, fmt.Errorf("%w: cutscene group language code %d", ErrUnsupportedResourceVersion, code)
		}
		if seen[code] {
			return nil, fmt.Errorf("%w: duplicate cutscene group for %s", ErrUnsupportedResourceVersion, GameHZD.LanguageName(int(code)))
		}
		seen[code] = true
		count, err := c.readU32()
		if err != nil {
			return nil, fmt.Errorf("%w: cutscene group count", ErrTruncatedPayload)
		}
		lines := make([]CutsceneLine, 0, count)
		for range count {
			text, err := c.readString16()
			if err != nil {
				return nil, fmt.Errorf("%w: cutscene line for %s", ErrTruncatedPayload, GameHZD.LanguageName(int(code)))
			}
			timing, err := c.readU64()
			if err != nil {
				return nil, fmt.Errorf("%w: cutscene line timing", ErrTruncatedPayload)
			}
			lines = append(lines, CutsceneLine{Text: text, Timing: timing})
		}
		groups[code] = lines
	}

	tail, err := c.readN(5)
	if err != nil {
		return nil, fmt.Errorf("%w: cutscene tail", ErrTruncatedPayload)
	}
	if c.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d unconsumed bytes after cutscene tail", ErrUnsupportedResourceVersion, c.remaining())
	}

	res := &TextResource{
		ChunkIndex: index,
		Kind:       KindCutscene,
		GUID:       uuid.UUID(guid),
		Block:      append([]byte(nil), block...),
		Groups:     groups,
	}
	copy(res.Tail[:], tail)
	return res, nil
}

func encodeHZDCutscene(r *TextResource) ([]byte, error) {
	size := 16 + 4 + len(r.Block) + 4 + 5
	for _, group := range r.Groups {
		size += 8
		for _, line := range group {
			size += string16Size(line.Text) + 8
		}
	}
	out := make([]byte, 0, size)
	out = append(out, r.GUID[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(r.Block)-hzdCutsceneBlockSlack))
	out = append(out, r.Block...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(r.Groups)))
	for code, group := range r.Groups {
		out = binary.LittleEndian.AppendUint32(out, uint32(code))
		out = binary.LittleEndian.AppendUint32(out, uint32(len(group)))
		for _, line := range group {
			out = appendString16(out, line.Text)
			out = binary.LittleEndian.AppendUint64(out, line.Timing)
		}
	}
	out = append(out, r.Tail[:]...)
	return out, nil
}
