package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyRecordName = errors.New("record name is required")
	ErrFieldIsKnown    = errors.New("field is declared by the collection structure")
	ErrFieldNotFound   = errors.New("field not found in record")
)

// KnownField is a value whose key is declared by the collection structure,
// held as the string the user edits.
type KnownField struct {
	Type     FieldType
	Value    string
	Nullable bool
	Any      bool
}

// Record is a document split into schema-declared and extra fields. The split
// is recomputed every time a record is loaded and is never sent back.
type Record struct {
	Name          string
	KnownFields   map[string]KnownField
	UnknownFields map[string]string
}

// RawRecord is a document as the content service returns it.
type RawRecord struct {
	Name string
	Data map[string]any
}

// Classify routes every key of data to the known or unknown map depending on
// whether schema declares it. A nil schema sends everything to unknown. data
// is never modified.
func Classify(data map[string]any, schema []CollectionField) (map[string]KnownField, map[string]string) {
	known := make(map[string]KnownField)
	unknown := make(map[string]string)

	declared := make(map[string]CollectionField, len(schema))
	for _, field := range schema {
		declared[field.Name] = field
	}

	for key, value := range data {
		field, ok := declared[key]
		if !ok {
			unknown[key] = StringifyWireValue(value)
			continue
		}
		known[key] = KnownField{
			Type:     field.Type,
			Value:    FromWire(field.Type, value),
			Nullable: field.IsNullable(),
			Any:      field.IsAny(),
		}
	}
	return known, unknown
}

func NewRecordFromWire(raw RawRecord, collection Collection) Record {
	known, unknown := Classify(raw.Data, collection.Structure)
	return Record{
		Name:          raw.Name,
		KnownFields:   known,
		UnknownFields: unknown,
	}
}

// NewRecordFromInput classifies edited text values the same way Classify does
// for wire values.
func NewRecordFromInput(name string, values map[string]string, collection Collection) Record {
	record := Record{
		Name:          name,
		KnownFields:   make(map[string]KnownField),
		UnknownFields: make(map[string]string),
	}
	for key, value := range values {
		field, ok := collection.Field(key)
		if !ok {
			record.UnknownFields[key] = value
			continue
		}
		record.KnownFields[key] = KnownField{
			Type:     field.Type,
			Value:    value,
			Nullable: field.IsNullable(),
			Any:      field.IsAny(),
		}
	}
	return record
}

// NewBlankRecord creates a record with an empty value for every declared field.
func NewBlankRecord(name string, collection Collection) (Record, error) {
	if strings.TrimSpace(name) == "" {
		return Record{}, ErrEmptyRecordName
	}
	known := make(map[string]KnownField, len(collection.Structure))
	for _, field := range collection.Structure {
		known[field.Name] = KnownField{
			Type:     field.Type,
			Nullable: field.IsNullable(),
			Any:      field.IsAny(),
		}
	}
	return Record{
		Name:          name,
		KnownFields:   known,
		UnknownFields: map[string]string{},
	}, nil
}

// SetValue replaces the edited string of an existing field.
func (r *Record) SetValue(name, value string) error {
	if field, ok := r.KnownFields[name]; ok {
		field.Value = value
		r.KnownFields[name] = field
		return nil
	}
	if _, ok := r.UnknownFields[name]; ok {
		r.UnknownFields[name] = value
		return nil
	}
	return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// AddExtraField adds or overwrites a field the structure does not declare.
func (r *Record) AddExtraField(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyFieldName
	}
	if _, ok := r.KnownFields[name]; ok {
		return fmt.Errorf("%w: %q", ErrFieldIsKnown, name)
	}
	if r.UnknownFields == nil {
		r.UnknownFields = map[string]string{}
	}
	r.UnknownFields[name] = value
	return nil
}

func (r *Record) RemoveExtraField(name string) error {
	if _, ok := r.UnknownFields[name]; !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	delete(r.UnknownFields, name)
	return nil
}

// FieldNames lists known fields first, then unknown ones, each sorted.
func (r Record) FieldNames() []string {
	known := make([]string, 0, len(r.KnownFields))
	for name := range r.KnownFields {
		known = append(known, name)
	}
	sort.Strings(known)

	unknown := make([]string, 0, len(r.UnknownFields))
	for name := range r.UnknownFields {
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)

	return append(known, unknown...)
}

// ToWireData builds the document data to persist. Unknown fields go out as
// their raw strings; known fields are converted to their declared type, with
// null-like values on nullable fields sent as null. Fields flagged any fall
// back to the raw string when they do not parse.
func (r Record) ToWireData() (map[string]any, error) {
	data := make(map[string]any, len(r.KnownFields)+len(r.UnknownFields))
	for name, value := range r.UnknownFields {
		data[name] = value
	}

	var fieldErrors FieldErrors
	for name, field := range r.KnownFields {
		value, err := field.toWire()
		if err != nil {
			fieldErrors = fieldErrors.With(name, err)
			continue
		}
		data[name] = value
	}
	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return data, nil
}

// toWire converts the value with its declared type first. Null-like text only
// becomes null when the type rejects it, so "null" stays a string on a
// String field.
func (f KnownField) toWire() (any, error) {
	value, err := ToWire(f.Type, f.Value)
	if err == nil {
		return value, nil
	}
	if f.Nullable && IsNullLike(f.Value) {
		return nil, nil
	}
	if f.Any {
		return f.Value, nil
	}
	return nil, err
}
