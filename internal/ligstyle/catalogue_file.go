package ligstyle

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// catalogueFile mirrors the YAML layout. Lists keep the tag order that a
// mapping would lose.
type catalogueFile struct {
	Sets       []LigationSet `yaml:"sets"`
	Vocabulary *Vocabulary   `yaml:"vocabulary"`
	Sites      []SitePattern `yaml:"sites"`
}

// ParseCatalogue decodes a YAML catalogue. Missing vocabulary or sites
// sections fall back to the built-in ones.
func ParseCatalogue(data []byte) (Catalogue, error) {
	var raw catalogueFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Catalogue{}, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	cat := Catalogue{Sets: raw.Sets}
	if raw.Vocabulary != nil {
		cat.Vocabulary = *raw.Vocabulary
	} else {
		cat.Vocabulary = DefaultVocabulary()
	}
	if raw.Sites != nil {
		cat.Sites = raw.Sites
	} else {
		cat.Sites = DefaultSites()
	}

	if err := cat.Validate(); err != nil {
		return Catalogue{}, err
	}
	return cat, nil
}

// LoadCatalogueFile reads and validates a catalogue from path.
func LoadCatalogueFile(path string) (Catalogue, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("read catalogue: %w", err)
	}
	cat, err := ParseCatalogue(data)
	if err != nil {
		return Catalogue{}, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}
