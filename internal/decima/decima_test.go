package decima

import (
	"encoding/binary"
	"unicode/utf16"
)

// Test fixtures build container bytes by hand so the pinned layout is
// asserted against independent encoders, not against the code under test.

func fxStr8(s string) []byte {
	b := binary.LittleEndian.AppendUint16(nil, uint16(len(s)))
	return append(b, s...)
}

func fxStr16(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := binary.LittleEndian.AppendUint32(nil, uint32(len(units)))
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

func fxChunk(magic uint64, payload []byte) []byte {
	b := binary.LittleEndian.AppendUint64(nil, magic)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	return append(b, payload...)
}

func fxGUID(seed byte) []byte {
	guid := make([]byte, 16)
	for i := range guid {
		guid[i] = seed + byte(i)
	}
	return guid
}

// fxHZDLocalized builds a localized payload with the given texts by
// language name; unnamed languages get empty strings.
func fxHZDLocalized(seed byte, texts map[string]string) []byte {
	payload := fxGUID(seed)
	for _, lang := range hzdLanguages {
		payload = append(payload, fxStr8(texts[lang])...)
	}
	return payload
}

func fxDSLocalized(seed byte, texts, notes map[string]string, mode byte) []byte {
	payload := fxGUID(seed)
	for _, lang := range dsLanguages {
		payload = append(payload, fxStr8(texts[lang])...)
		payload = append(payload, fxStr8(notes[lang])...)
		payload = append(payload, mode)
	}
	return payload
}

type fxCutsceneGroup struct {
	code  uint32
	lines []CutsceneLine
}

func fxHZDCutscene(seed byte, block []byte, groups []fxCutsceneGroup, tail [5]byte) []byte {
	payload := fxGUID(seed)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(len(block)))
	payload = append(payload, block...)
	payload = append(payload, 0xAA, 0xBB, 0xCC, 0xDD) // block slack bytes
	payload = binary.LittleEndian.AppendUint32(payload, uint32(len(groups)))
	for _, g := range groups {
		payload = binary.LittleEndian.AppendUint32(payload, g.code)
		payload = binary.LittleEndian.AppendUint32(payload, uint32(len(g.lines)))
		for _, line := range g.lines {
			payload = append(payload, fxStr16(line.Text)...)
			payload = binary.LittleEndian.AppendUint64(payload, line.Timing)
		}
	}
	return append(payload, tail[:]...)
}

// fxFullCutsceneGroups returns one single-line group per HZD language, in
// the given code order.
func fxFullCutsceneGroups(order []uint32) []fxCutsceneGroup {
	groups := make([]fxCutsceneGroup, 0, len(order))
	for _, code := range order {
		groups = append(groups, fxCutsceneGroup{
			code:  code,
			lines: []CutsceneLine{{Text: hzdLanguages[code] + " line", Timing: uint64(code) * 100}},
		})
	}
	return groups
}

func fxCodeOrder(n int) []uint32 {
	order := make([]uint32, n)
	for i := range order {
		order[i] = uint32(i)
	}
	return order
}
