package brief

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ExportJSON renders a brief as indented JSON.
func ExportJSON(b *ContentBrief) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode brief: %w", err)
	}
	return data, nil
}

// ExportYAML renders a brief as YAML. Field names follow the JSON
// schema so the two exports stay interchangeable.
func ExportYAML(b *ContentBrief) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brief: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode brief: %w", err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode brief as yaml: %w", err)
	}
	return out, nil
}
