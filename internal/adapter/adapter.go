// Package adapter converts the flat entry model to and from editable file
// formats. The core knows nothing about syntax; adapters know nothing about
// chunk layout.
package adapter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decima-tools/coreloc/internal/decima"
)

// ErrParse reports a syntactically invalid exported file. It wraps the
// underlying decoder error where one exists.
var ErrParse = errors.New("cannot parse exported file")

// Adapter renders entries into an editable representation and parses the
// edited representation back into entries.
type Adapter interface {
	Extension() string
	Render(entries []decima.Entry) ([]byte, error)
	Parse(data []byte) ([]decima.Entry, error)
}

// ForFormat returns the adapter for a format name (json, yaml, txt).
func ForFormat(name string) (Adapter, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	case "txt", "text":
		return Text{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected json, yaml or txt)", name)
	}
}

// resourceBlock is the on-disk grouping shared by the JSON and YAML
// adapters: one block per resource, languages keyed by name.
type resourceBlock struct {
	Resource int               `json:"resource" yaml:"resource"`
	Strings  map[string]string `json:"strings" yaml:"strings"`
}

type exportFile struct {
	Resources []resourceBlock `json:"resources" yaml:"resources"`
}

func groupEntries(entries []decima.Entry) exportFile {
	byResource := make(map[int]map[string]string)
	for _, e := range entries {
		if byResource[e.Resource] == nil {
			byResource[e.Resource] = make(map[string]string)
		}
		byResource[e.Resource][e.Language] = e.Text
	}
	indices := make([]int, 0, len(byResource))
	for idx := range byResource {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	var doc exportFile
	for _, idx := range indices {
		doc.Resources = append(doc.Resources, resourceBlock{Resource: idx, Strings: byResource[idx]})
	}
	return doc
}

func flattenFile(doc exportFile) []decima.Entry {
	var entries []decima.Entry
	for _, block := range doc.Resources {
		langs := make([]string, 0, len(block.Strings))
		for lang := range block.Strings {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			entries = append(entries, decima.Entry{
				Resource: block.Resource,
				Language: lang,
				Text:     block.Strings[lang],
			})
		}
	}
	return entries
}
