package decima

import (
	"encoding/binary"
	"fmt"
)

// chunkHeaderSize covers the u64 magic and u32 payload size.
const chunkHeaderSize = 12

// Chunk is one typed, length-delimited unit of a core container. The magic
// never changes once parsed; the payload of a text resource chunk is
// replaced wholesale on save, everything else is carried verbatim.
type Chunk struct {
	Magic   uint64
	Payload []byte
}

// ParseChunks splits a raw container into its chunk sequence. Every byte of
// the input must be consumed exactly once: trailing bytes that do not form
// a complete chunk, or a payload size overrunning the buffer, are framing
// errors.
func ParseChunks(data []byte) ([]Chunk, error) {
	var chunks []Chunk
	c := &cursor{data: data}
	for c.remaining() > 0 {
		if c.remaining() < chunkHeaderSize {
			return nil, fmt.Errorf("%w: %d trailing bytes do not form a chunk header", ErrMalformedContainer, c.remaining())
		}
		magic, _ := c.readU64()
		size, _ := c.readU32()
		payload, err := c.readN(int(size))
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %#016x declares %d bytes, %d remain", ErrMalformedContainer, magic, size, c.remaining())
		}
		// Copy out so chunks stay valid after the source buffer is released.
		chunks = append(chunks, Chunk{Magic: magic, Payload: append([]byte(nil), payload...)})
	}
	return chunks, nil
}

// SerializeChunks reassembles a chunk sequence into container bytes. Sizes
// are recomputed from the current payloads; identical chunk sequences
// always produce identical output.
func SerializeChunks(chunks []Chunk) []byte {
	total := 0
	for i := range chunks {
		total += chunkHeaderSize + len(chunks[i].Payload)
	}
	out := make([]byte, 0, total)
	for i := range chunks {
		out = binary.LittleEndian.AppendUint64(out, chunks[i].Magic)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(chunks[i].Payload)))
		out = append(out, chunks[i].Payload...)
	}
	return out
}
