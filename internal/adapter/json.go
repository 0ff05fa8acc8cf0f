package adapter

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/decima-tools/coreloc/internal/decima"
)

// JSON renders entries as an indented, resource-grouped JSON document.
type JSON struct{}

func (JSON) Extension() string { return "json" }

func (JSON) Render(entries []decima.Entry) ([]byte, error) {
	out, err := json.MarshalIndent(groupEntries(entries), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func (JSON) Parse(data []byte) ([]decima.Entry, error) {
	var doc exportFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return flattenFile(doc), nil
}
