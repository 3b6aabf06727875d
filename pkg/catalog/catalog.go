package catalog

import (
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed destinations.yaml
var destinationsRaw []byte

// Destination is one entry of the curated sustainable-destination list
// shown on the recommendations surface.
type Destination struct {
	Name        string   `json:"name" yaml:"name"`
	Country     string   `json:"country" yaml:"country"`
	Description string   `json:"description" yaml:"description"`
	Events      []string `json:"events" yaml:"events"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Load parses the embedded destination catalog.
func Load() ([]Destination, error) {
	var doc struct {
		Destinations []Destination `yaml:"destinations"`
	}

	if err := yaml.Unmarshal(destinationsRaw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse destination catalog")
	}
	if len(doc.Destinations) == 0 {
		return nil, goerr.New("destination catalog is empty")
	}

	return doc.Destinations, nil
}
