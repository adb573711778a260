package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyCollectionName = errors.New("collection name is required")
	ErrEmptyFieldName      = errors.New("field name is required")
	ErrDuplicateFieldName  = errors.New("duplicate field name")
)

type CollectionField struct {
	Name        string
	Type        FieldType
	Constraints []Constraint
}

func (f CollectionField) Has(kind ConstraintKind) bool {
	for _, constraint := range f.Constraints {
		if strings.EqualFold(string(constraint.Kind), string(kind)) {
			return true
		}
	}
	return false
}

func (f CollectionField) IsNullable() bool {
	return f.Has(ConstraintNullable)
}

func (f CollectionField) IsAny() bool {
	return f.Has(ConstraintAny)
}

func (f CollectionField) IsUnique() bool {
	return f.Has(ConstraintUnique)
}

func (f CollectionField) ValueConstraints() []Constraint {
	var result []Constraint
	for _, constraint := range f.Constraints {
		if constraint.IsValueConstraint() {
			result = append(result, constraint)
		}
	}
	return result
}

// DisplayType is "Any" for fields that skip type validation.
func (f CollectionField) DisplayType() string {
	if f.IsAny() {
		return "Any"
	}
	return f.Type.DisplayName()
}

func (f CollectionField) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyFieldName
	}
	if _, err := ParseFieldType(string(f.Type)); err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}
	for _, constraint := range f.ValueConstraints() {
		if !f.Type.IsScalar() {
			return fmt.Errorf("field %q: %w", f.Name, ErrValueConstraintOnComposite)
		}
		if _, err := ParseOrder(string(constraint.Order)); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}
	return nil
}

// Collection is a named schema. Schemaless collections have no structure at
// all, which is not the same as a structure with zero fields.
type Collection struct {
	Name       string
	Structure  []CollectionField
	Schemaless bool
}

func (c Collection) Field(name string) (CollectionField, bool) {
	for _, field := range c.Structure {
		if field.Name == name {
			return field, true
		}
	}
	return CollectionField{}, false
}

func (c Collection) FieldNames() []string {
	names := make([]string, len(c.Structure))
	for i, field := range c.Structure {
		names[i] = field.Name
	}
	return names
}

// DuplicateFieldNames lists names declared more than once, in first-seen order.
func (c Collection) DuplicateFieldNames() []string {
	seen := make(map[string]int, len(c.Structure))
	var duplicates []string
	for _, field := range c.Structure {
		seen[field.Name]++
		if seen[field.Name] == 2 {
			duplicates = append(duplicates, field.Name)
		}
	}
	return duplicates
}

func NewCollectionBuilder() *collectionBuilder {
	return &collectionBuilder{}
}

type collectionBuilder struct {
	actions []collectionHandler
}

type collectionHandler func(c *Collection) error

func (b *collectionBuilder) WithName(name string) *collectionBuilder {
	b.actions = append(b.actions, func(c *Collection) error {
		if strings.TrimSpace(name) == "" {
			return ErrEmptyCollectionName
		}
		c.Name = name
		return nil
	})
	return b
}

func (b *collectionBuilder) WithField(field CollectionField) *collectionBuilder {
	b.actions = append(b.actions, func(c *Collection) error {
		if err := field.Validate(); err != nil {
			return err
		}
		c.Structure = append(c.Structure, field)
		c.Schemaless = false
		return nil
	})
	return b
}

// Schemaless marks the collection as having no structure. Adding fields
// afterwards turns it back into a structured collection.
func (b *collectionBuilder) Schemaless() *collectionBuilder {
	b.actions = append(b.actions, func(c *Collection) error {
		c.Structure = nil
		c.Schemaless = true
		return nil
	})
	return b
}

func (b *collectionBuilder) Build() (Collection, error) {
	result := Collection{}
	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Collection{}, err
		}
	}
	if result.Name == "" {
		return Collection{}, ErrEmptyCollectionName
	}
	if !result.Schemaless && result.Structure == nil {
		result.Structure = []CollectionField{}
	}
	return result, nil
}
