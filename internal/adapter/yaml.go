package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/decima-tools/coreloc/internal/decima"
)

// YAML renders entries as a resource-grouped YAML document.
type YAML struct{}

func (YAML) Extension() string { return "yaml" }

func (YAML) Render(entries []decima.Entry) ([]byte, error) {
	return yaml.Marshal(groupEntries(entries))
}

func (YAML) Parse(data []byte) ([]decima.Entry, error) {
	var doc exportFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return flattenFile(doc), nil
}
