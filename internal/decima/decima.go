// Package decima reads and writes localized text embedded in Decima engine
// core containers.
//
// A core file is a bare concatenation of chunks, each framed as a little
// endian u64 magic, a u32 payload size and the payload bytes. Chunks whose
// magic identifies a known text resource are decoded into an editable model;
// every other chunk is carried as an opaque byte blob so that a load/save
// cycle reproduces the input byte for byte.
package decima

import "fmt"

// Game selects the layout tables used to decode text resources.
type Game uint8

const (
	GameUnknown Game = iota
	GameHZD
	GameDS
)

func (g Game) String() string {
	switch g {
	case GameHZD:
		return "hzd"
	case GameDS:
		return "ds"
	default:
		return "unknown"
	}
}

// ParseGame resolves a user supplied game name.
func ParseGame(name string) (Game, error) {
	switch name {
	case "hzd", "HZD", "horizon":
		return GameHZD, nil
	case "ds", "DS", "deathstranding":
		return GameDS, nil
	default:
		return GameUnknown, fmt.Errorf("%w: %q (expected hzd or ds)", ErrUnknownGame, name)
	}
}
