package domain

import (
	"fmt"
	"strings"
)

// CollectionDraft is what a schema author submits: field names, a type name,
// the chosen flags and any ordered value constraints typed as free text.
type CollectionDraft struct {
	Name   string
	Fields []FieldDraft
}

type FieldDraft struct {
	Name             string
	Type             string
	Flags            []string
	ValueConstraints []ValueConstraintDraft
}

type ValueConstraintDraft struct {
	Order string
	Value string
}

// ToCollection turns the draft into a collection. A draft without fields is a
// schemaless collection.
func (d CollectionDraft) ToCollection() (Collection, error) {
	builder := NewCollectionBuilder().WithName(strings.TrimSpace(d.Name))
	if len(d.Fields) == 0 {
		return builder.Schemaless().Build()
	}

	seen := make(map[string]struct{}, len(d.Fields))
	for _, fieldDraft := range d.Fields {
		field, err := fieldDraft.toField()
		if err != nil {
			return Collection{}, err
		}
		if _, ok := seen[field.Name]; ok {
			return Collection{}, fmt.Errorf("%w: %q", ErrDuplicateFieldName, field.Name)
		}
		seen[field.Name] = struct{}{}
		builder.WithField(field)
	}
	return builder.Build()
}

func (d FieldDraft) toField() (CollectionField, error) {
	fieldType, err := ParseFieldType(d.Type)
	if err != nil {
		return CollectionField{}, fmt.Errorf("field %q: %w", d.Name, err)
	}

	constraints := make([]Constraint, 0, len(d.Flags)+len(d.ValueConstraints))
	for _, flag := range d.Flags {
		if strings.TrimSpace(flag) == "" {
			continue
		}
		constraints = append(constraints, FlagConstraint(ConstraintKind(strings.TrimSpace(flag))))
	}
	for _, valueConstraint := range d.ValueConstraints {
		order, err := ParseOrder(valueConstraint.Order)
		if err != nil {
			return CollectionField{}, fmt.Errorf("field %q: %w", d.Name, err)
		}
		operand := strings.TrimSpace(valueConstraint.Value)
		if operand == "" {
			return CollectionField{}, fmt.Errorf("field %q: %w: empty operand", d.Name, ErrMalformedConstraint)
		}
		if fieldType.IsScalar() {
			if _, err := ToWire(fieldType, operand); err != nil {
				return CollectionField{}, fmt.Errorf("field %q: %w", d.Name, err)
			}
		}
		constraints = append(constraints, NewValueConstraint(order, operand, fieldType))
	}

	return CollectionField{
		Name:        strings.TrimSpace(d.Name),
		Type:        fieldType,
		Constraints: constraints,
	}, nil
}
