package decima

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedContainer reports a framing error: a truncated chunk
	// header or a declared payload size that overruns the file.
	ErrMalformedContainer = errors.New("malformed core container")

	// ErrUnsupportedResourceVersion reports a text resource whose internal
	// layout does not match the pinned format for the selected game.
	ErrUnsupportedResourceVersion = errors.New("unsupported text resource layout")

	// ErrTruncatedPayload reports an internal count or length that points
	// outside the text resource payload.
	ErrTruncatedPayload = errors.New("truncated text resource payload")

	// ErrEntryTooLarge reports a string whose encoded form does not fit the
	// format's length field. Entries are never silently truncated.
	ErrEntryTooLarge = errors.New("entry exceeds length field range")

	// ErrLineCountMismatch reports a cutscene edit that supplies a
	// different number of lines than the original entry holds.
	ErrLineCountMismatch = errors.New("cutscene line count mismatch")

	// ErrNoTextResource reports a structurally valid container that holds
	// no decodable text resource.
	ErrNoTextResource = errors.New("no text resource in container")

	// ErrUnknownGame reports an unrecognised game name.
	ErrUnknownGame = errors.New("unknown game")
)

// Warning records a recoverable per-document condition: an edit addressing
// a target that does not exist, or a text-magic chunk whose payload could
// not be decoded and was kept opaque instead.
type Warning struct {
	Resource int
	Language string
	Reason   string
}

func (w Warning) String() string {
	if w.Language == "" {
		return fmt.Sprintf("resource %d: %s", w.Resource, w.Reason)
	}
	return fmt.Sprintf("resource %d [%s]: %s", w.Resource, w.Language, w.Reason)
}
