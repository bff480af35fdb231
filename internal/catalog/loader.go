package catalog

import (
	"encoding/json"
	"fmt"
)

// Document is the JSON-serializable catalog file format.
type Document struct {
	Items []*MenuItem `json:"items"`
}

// Load parses a catalog from JSON bytes and validates its structure.
func Load(data []byte) ([]*MenuItem, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}
	for _, item := range doc.Items {
		if err := validate(item); err != nil {
			return nil, err
		}
	}
	return doc.Items, nil
}

func validate(item *MenuItem) error {
	if item.ID == "" {
		return fmt.Errorf("catalog item %q has no id", item.Name)
	}
	for _, child := range item.Children {
		if err := validate(child); err != nil {
			return fmt.Errorf("under %s: %w", item.ID, err)
		}
	}
	return nil
}
