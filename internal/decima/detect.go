package decima

import "fmt"

// Detection is the outcome of a magic census over a container.
type Detection uint8

const (
	DetectUnknown Detection = iota
	DetectHZD
	DetectDS
	DetectMixed
)

func (d Detection) String() string {
	switch d {
	case DetectHZD:
		return "hzd"
	case DetectDS:
		return "ds"
	case DetectMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Game maps a conclusive detection to its game.
func (d Detection) Game() (Game, bool) {
	switch d {
	case DetectHZD:
		return GameHZD, true
	case DetectDS:
		return GameDS, true
	default:
		return GameUnknown, false
	}
}

// DetectGame walks the chunk headers of a container and counts known text
// resource magics. Payloads are skipped, not decoded, so detection is cheap
// even for large containers.
func DetectGame(data []byte) (Detection, error) {
	var hzd, ds int
	c := &cursor{data: data}
	for c.remaining() > 0 {
		if c.remaining() < chunkHeaderSize {
			return DetectUnknown, fmt.Errorf("%w: %d trailing bytes do not form a chunk header", ErrMalformedContainer, c.remaining())
		}
		magic, _ := c.readU64()
		size, _ := c.readU32()
		if _, err := c.readN(int(size)); err != nil {
			return DetectUnknown, fmt.Errorf("%w: chunk %#016x declares %d bytes, %d remain", ErrMalformedContainer, magic, size, c.remaining())
		}
		switch magic {
		case MagicHZDLocalized, MagicHZDCutscene:
			hzd++
		case MagicDSLocalized:
			ds++
		}
	}
	switch {
	case hzd > 0 && ds > 0:
		return DetectMixed, nil
	case hzd > 0:
		return DetectHZD, nil
	case ds > 0:
		return DetectDS, nil
	default:
		return DetectUnknown, nil
	}
}
