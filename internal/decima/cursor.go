package decima

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf16"
)

// cursor is a bounds-checked little-endian reader over an in-memory buffer.
// Reads past the end return io.ErrUnexpectedEOF; callers wrap that into the
// error kind appropriate for their layer.
type cursor struct {
	data []byte
	off  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) readN(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) readU8() (uint8, error) {
	b, err := c.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readU16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) readU64() (uint64, error) {
	b, err := c.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// readString8 reads a u16 length prefix followed by UTF-8 bytes.
func (c *cursor) readString8() (string, error) {
	n, err := c.readU16()
	if err != nil {
		return "", err
	}
	b, err := c.readN(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readString16 reads a u32 code-unit count followed by UTF-16LE bytes.
func (c *cursor) readString16() (string, error) {
	n, err := c.readU32()
	if err != nil {
		return "", err
	}
	if uint64(n)*2 > uint64(c.remaining()) {
		return "", io.ErrUnexpectedEOF
	}
	b, err := c.readN(int(n) * 2)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return string(utf16.Decode(units)), nil
}

// appendString8 writes a u16 length prefix and UTF-8 bytes. Strings longer
// than the field can express are rejected, never truncated.
func appendString8(b []byte, s string) ([]byte, error) {
	if len(s) > math.MaxUint16 {
		return nil, ErrEntryTooLarge
	}
	b = binary.LittleEndian.AppendUint16(b, uint16(len(s)))
	return append(b, s...), nil
}

// appendString16 writes a u32 code-unit count and UTF-16LE bytes.
func appendString16(b []byte, s string) []byte {
	units := utf16.Encode([]rune(s))
	b = binary.LittleEndian.AppendUint32(b, uint32(len(units)))
	for _, u := range units {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

// string8Size returns the serialized size of a u16-prefixed UTF-8 string.
func string8Size(s string) int {
	return 2 + len(s)
}

// string16Size returns the serialized size of a u32-prefixed UTF-16 string.
func string16Size(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return 4 + n*2
}
