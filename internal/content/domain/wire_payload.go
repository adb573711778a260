package domain

import "fmt"

type FieldWire struct {
	Type        string         `json:"type"`
	Constraints map[string]any `json:"constraints"`
}

// WireStructure maps field names to their declared type and constraints.
type WireStructure map[string]FieldWire

// CreateCollectionPayload is the body of a create-collection request. A nil
// structure is omitted from the JSON and marks a schemaless collection.
type CreateCollectionPayload struct {
	CollectionName      string         `json:"collection_name"`
	CollectionStructure *WireStructure `json:"collection_structure,omitempty"`
}

// BuildWirePayload always produces a structure, empty when there are no
// fields. Duplicate field names are not checked: the last one wins.
func BuildWirePayload(name string, fields []CollectionField) (CreateCollectionPayload, error) {
	structure := make(WireStructure, len(fields))
	for _, field := range fields {
		constraints, err := EncodeWireConstraints(EncodeConstraints(field.Constraints))
		if err != nil {
			return CreateCollectionPayload{}, fmt.Errorf("encoding field %q: %w", field.Name, err)
		}
		structure[field.Name] = FieldWire{
			Type:        field.Type.String(),
			Constraints: constraints,
		}
	}
	return CreateCollectionPayload{
		CollectionName:      name,
		CollectionStructure: &structure,
	}, nil
}

// NewCreateCollectionPayload drops the structure key entirely for schemaless
// collections.
func NewCreateCollectionPayload(collection Collection) (CreateCollectionPayload, error) {
	payload, err := BuildWirePayload(collection.Name, collection.Structure)
	if err != nil {
		return CreateCollectionPayload{}, err
	}
	if collection.Schemaless {
		payload.CollectionStructure = nil
	}
	return payload, nil
}
