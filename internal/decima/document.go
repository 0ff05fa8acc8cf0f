package decima

import "fmt"

// Entry is the flat addressable view of one language's text in one
// resource. Resource is the owning chunk's index in the document.
type Entry struct {
	Resource int    `json:"resource" yaml:"resource"`
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text" yaml:"text"`
}

// Document is the in-memory form of one core container: the full chunk
// sequence plus decoded views of its text resource chunks. A document lives
// for a single load/operate/save cycle.
type Document struct {
	Game      Game
	Chunks    []Chunk
	Resources []*TextResource

	// Warnings holds text-magic chunks that failed to decode and were kept
	// opaque instead.
	Warnings []Warning

	dirty map[int]bool
}

// IsTextResource reports whether a chunk magic identifies a text resource
// of the given game.
func IsTextResource(game Game, magic uint64) bool {
	switch game {
	case GameHZD:
		return magic == MagicHZDLocalized || magic == MagicHZDCutscene
	case GameDS:
		return magic == MagicDSLocalized
	default:
		return false
	}
}

func decodeResource(game Game, index int, ch Chunk) (*TextResource, error) {
	switch {
	case game == GameHZD && ch.Magic == MagicHZDLocalized:
		return decodeHZDLocalized(index, ch.Payload)
	case game == GameHZD && ch.Magic == MagicHZDCutscene:
		return decodeHZDCutscene(index, ch.Payload)
	case game == GameDS && ch.Magic == MagicDSLocalized:
		return decodeDSLocalized(index, ch.Payload)
	default:
		return nil, fmt.Errorf("%w: chunk magic %#016x", ErrUnsupportedResourceVersion, ch.Magic)
	}
}

func encodeResource(game Game, r *TextResource) ([]byte, error) {
	switch {
	case game == GameHZD && r.Kind == KindLocalized:
		return encodeHZDLocalized(r)
	case game == GameHZD && r.Kind == KindCutscene:
		return encodeHZDCutscene(r)
	case game == GameDS && r.Kind == KindLocalized:
		return encodeDSLocalized(r)
	default:
		return nil, fmt.Errorf("%w: %s resource for %s", ErrUnsupportedResourceVersion, r.Kind, game)
	}
}

// Load parses container bytes into a document. Only framing errors fail the
// load; a text-magic chunk whose payload does not decode stays opaque and
// is recorded in Warnings, so an otherwise valid file still round-trips.
func Load(game Game, data []byte) (*Document, error) {
	chunks, err := ParseChunks(data)
	if err != nil {
		return nil, err
	}
	doc := &Document{Game: game, Chunks: chunks, dirty: make(map[int]bool)}
	for i := range chunks {
		if !IsTextResource(game, chunks[i].Magic) {
			continue
		}
		res, err := decodeResource(game, i, chunks[i])
		if err != nil {
			doc.Warnings = append(doc.Warnings, Warning{Resource: i, Reason: err.Error()})
			continue
		}
		doc.Resources = append(doc.Resources, res)
	}
	return doc, nil
}

// Entries flattens every decoded resource into (resource, language, text)
// triples, ordered by chunk position then canonical language order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, 0, len(d.Resources)*d.Game.LanguageCount())
	for _, r := range d.Resources {
		for code := 0; code < d.Game.LanguageCount(); code++ {
			out = append(out, Entry{
				Resource: r.ChunkIndex,
				Language: d.Game.LanguageName(code),
				Text:     r.Text(code),
			})
		}
	}
	return out
}

func (d *Document) resourceAt(chunkIndex int) *TextResource {
	for _, r := range d.Resources {
		if r.ChunkIndex == chunkIndex {
			return r
		}
	}
	return nil
}

// Apply replaces entry texts addressed by (resource, language). Edits whose
// target does not exist in this document are reported as warnings and
// skipped; the rest of the batch still applies. An edit matching the
// current text is a no-op and does not mark the resource dirty.
func (d *Document) Apply(edits []Entry) []Warning {
	var warns []Warning
	for _, e := range edits {
		r := d.resourceAt(e.Resource)
		if r == nil {
			warns = append(warns, Warning{Resource: e.Resource, Language: e.Language, Reason: "no text resource at this index"})
			continue
		}
		code, ok := d.Game.LanguageCode(e.Language)
		if !ok {
			warns = append(warns, Warning{Resource: e.Resource, Language: e.Language, Reason: "language not in " + d.Game.String() + " table"})
			continue
		}
		if r.Text(code) == e.Text {
			continue
		}
		if err := r.SetText(code, e.Text); err != nil {
			warns = append(warns, Warning{Resource: e.Resource, Language: e.Language, Reason: err.Error()})
			continue
		}
		d.dirty[r.ChunkIndex] = true
	}
	return warns
}

// Dirty reports whether any edit changed the document since load.
func (d *Document) Dirty() bool {
	return len(d.dirty) > 0
}

// Save re-encodes every edited resource into its owning chunk and
// reassembles the container. Untouched chunks keep their parsed bytes, so
// a save without edits reproduces the input exactly.
func (d *Document) Save() ([]byte, error) {
	for _, r := range d.Resources {
		if !d.dirty[r.ChunkIndex] {
			continue
		}
		payload, err := encodeResource(d.Game, r)
		if err != nil {
			return nil, fmt.Errorf("resource %d: %w", r.ChunkIndex, err)
		}
		d.Chunks[r.ChunkIndex].Payload = payload
	}
	return SerializeChunks(d.Chunks), nil
}
