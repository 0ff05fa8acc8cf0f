package decima

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseChunksRoundTrip(t *testing.T) {
	t.Parallel()

	raw := fxChunk(0x1111, []byte{1, 2, 3})
	raw = append(raw, fxChunk(0x2222, nil)...)
	raw = append(raw, fxChunk(0x3333, []byte{9})...)

	chunks, err := ParseChunks(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].Magic != 0x1111 || !bytes.Equal(chunks[0].Payload, []byte{1, 2, 3}) {
		t.Fatalf("unexpected first chunk: %+v", chunks[0])
	}
	if len(chunks[1].Payload) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(chunks[1].Payload))
	}

	out := SerializeChunks(chunks)
	if !bytes.Equal(out, raw) {
		t.Fatalf("round trip mismatch:\n in: %x\nout: %x", raw, out)
	}
}

func TestParseChunksEmptyInput(t *testing.T) {
	t.Parallel()

	chunks, err := ParseChunks(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
	if len(SerializeChunks(chunks)) != 0 {
		t.Fatal("expected empty serialization")
	}
}

func TestParseChunksTrailingHeaderFragment(t *testing.T) {
	t.Parallel()

	raw := fxChunk(0x1111, []byte{1})
	raw = append(raw, 0xFF, 0xFF) // not enough for another header

	_, err := ParseChunks(raw)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Fatalf("expected ErrMalformedContainer, got %v", err)
	}
}

func TestParseChunksSizeOverrun(t *testing.T) {
	t.Parallel()

	raw := fxChunk(0x1111, []byte{1, 2, 3})
	// Declared size is larger than the remaining bytes.
	raw[8] = 0xFF

	_, err := ParseChunks(raw)
	if !errors.Is(err, ErrMalformedContainer) {
		t.Fatalf("expected ErrMalformedContainer, got %v", err)
	}
}

func TestSerializeChunksRecomputesSize(t *testing.T) {
	t.Parallel()

	chunks, err := ParseChunks(fxChunk(0x1111, []byte{1, 2, 3}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	chunks[0].Payload = []byte{7, 7, 7, 7, 7}

	reparsed, err := ParseChunks(SerializeChunks(chunks))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if len(reparsed[0].Payload) != 5 {
		t.Fatalf("size not recomputed: got %d", len(reparsed[0].Payload))
	}
}

func TestParseChunksDetachesFromInput(t *testing.T) {
	t.Parallel()

	raw := fxChunk(0x1111, []byte{1, 2, 3})
	chunks, err := ParseChunks(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	raw[chunkHeaderSize] = 0xEE
	if chunks[0].Payload[0] != 1 {
		t.Fatal("chunk payload aliases the input buffer")
	}
}
