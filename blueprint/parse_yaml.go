package blueprint

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlBlueprint mirrors one structured record.
type yamlBlueprint struct {
	ID    int                       `yaml:"id"`
	Costs map[string]map[string]int `yaml:"costs"`
}

// yamlDocument is the keyed form "blueprints: [...]".
type yamlDocument struct {
	Blueprints []yamlBlueprint `yaml:"blueprints"`
}

// ParseYAML reads blueprints from YAML, either a top-level sequence or a
// mapping with a "blueprints" sequence. Same shape as ParseJSON.
func ParseYAML(data []byte) ([]Blueprint, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if len(root.Content) == 0 {
		return nil, ErrNoBlueprints
	}

	var records []yamlBlueprint
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
	case yaml.MappingNode:
		var keyed yamlDocument
		if err := doc.Decode(&keyed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		records = keyed.Blueprints
	default:
		return nil, fmt.Errorf("%w: expected a list of blueprints", ErrSyntax)
	}

	out := make([]Blueprint, 0, len(records))
	for _, rec := range records {
		bp, err := fromCostMap(rec.ID, rec.Costs)
		if err != nil {
			return nil, err
		}
		out = append(out, bp)
	}
	if err := checkUniqueIDs(out); err != nil {
		return nil, err
	}

	return out, nil
}
