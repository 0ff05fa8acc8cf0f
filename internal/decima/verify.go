package decima

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// RoundTrip summarises a load→save reproduction check of one container.
type RoundTrip struct {
	Input     string // blake3 digest of the original bytes
	Output    string // blake3 digest of the reserialized bytes
	Clean     bool   // digests match
	Resources int    // decoded text resources
	Warnings  []Warning
}

// VerifyRoundTrip loads a container with no edits, saves it back and
// compares content digests. A clean result proves the codec reproduces
// this file byte for byte.
func VerifyRoundTrip(game Game, data []byte) (RoundTrip, error) {
	doc, err := Load(game, data)
	if err != nil {
		return RoundTrip{}, err
	}
	out, err := doc.Save()
	if err != nil {
		return RoundTrip{}, err
	}
	in := blake3.Sum256(data)
	re := blake3.Sum256(out)
	return RoundTrip{
		Input:     hex.EncodeToString(in[:]),
		Output:    hex.EncodeToString(re[:]),
		Clean:     in == re,
		Resources: len(doc.Resources),
		Warnings:  doc.Warnings,
	}, nil
}
