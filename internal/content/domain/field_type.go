package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrUnknownFieldType = errors.New("unknown field type")

// FieldType is the declared type of a collection field. The value is the
// lowercase form used for logic and when writing to the content service.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "bool"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

var FieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeInt,
	FieldTypeFloat,
	FieldTypeBool,
	FieldTypeArray,
	FieldTypeObject,
}

// ParseFieldType accepts any casing ("Int", "INT", "int").
func ParseFieldType(value string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(value)))
	for _, t := range FieldTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, value)
}

func (t FieldType) String() string {
	return string(t)
}

// DisplayName returns the type with its first letter capitalized, the form the
// content service echoes back when listing collections.
func (t FieldType) DisplayName() string {
	return UppercaseFirstLetter(string(t))
}

// IsScalar reports whether values of the type can carry an ordered value constraint.
func (t FieldType) IsScalar() bool {
	switch t {
	case FieldTypeString, FieldTypeInt, FieldTypeFloat, FieldTypeBool:
		return true
	}
	return false
}

func (t FieldType) IsComposite() bool {
	return t == FieldTypeArray || t == FieldTypeObject
}

func UppercaseFirstLetter(value string) string {
	if value == "" {
		return value
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + value[size:]
}
