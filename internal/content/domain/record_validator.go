package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrValueConstraintViolated = errors.New("value does not meet constraint")

// IsNullLike reports whether value stands for null on a nullable field.
func IsNullLike(value string) bool {
	return value == "" || strings.EqualFold(value, "null")
}

// CheckType is the primitive shape check behind live validation. Arrays and
// objects only need matching outer brackets here; full JSON parsing happens
// when the record is saved.
func CheckType(value string, fieldType FieldType) error {
	switch fieldType {
	case FieldTypeString:
		if value == "" {
			return ErrInvalidString
		}
		return nil
	case FieldTypeInt, FieldTypeFloat, FieldTypeBool:
		_, err := ToWire(fieldType, value)
		return err
	case FieldTypeArray:
		if !hasBrackets(value, '[', ']') {
			return fmt.Errorf("%w: expected [...]", ErrMalformedJSON)
		}
		return nil
	case FieldTypeObject:
		if !hasBrackets(value, '{', '}') {
			return fmt.Errorf("%w: expected {...}", ErrMalformedJSON)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
}

// Validate returns the reason value is rejected, or nil. The type check and
// the null check are independent: either one passing is enough.
func Validate(value string, fieldType FieldType, nullable, isAny bool) error {
	if isAny {
		return nil
	}
	err := CheckType(value, fieldType)
	if err == nil {
		return nil
	}
	if nullable && IsNullLike(value) {
		return nil
	}
	return err
}

func IsValid(value string, fieldType FieldType, nullable, isAny bool) bool {
	return Validate(value, fieldType, nullable, isAny) == nil
}

// CheckValueConstraint compares value against every ordered value constraint
// of field. Strings compare lexically, numbers numerically and bools only for
// equality whatever the order. Null-like values on nullable fields and fields
// flagged any are not checked.
func CheckValueConstraint(field CollectionField, value string) error {
	if field.IsAny() || (field.IsNullable() && IsNullLike(value)) {
		return nil
	}
	for _, constraint := range field.ValueConstraints() {
		actual, err := ToWire(field.Type, value)
		if err != nil {
			return err
		}
		operand, err := constraint.Operand.Parse()
		if err != nil {
			return fmt.Errorf("%w: operand %q: %w", ErrMalformedConstraint, constraint.Operand.Raw, err)
		}
		ok, err := compareValues(actual, operand, constraint.Order)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s %s %s", ErrValueConstraintViolated, value, constraint.Order, constraint.Operand.Raw)
		}
	}
	return nil
}

func compareValues(actual, operand any, order Order) (bool, error) {
	switch a := actual.(type) {
	case string:
		b, ok := operand.(string)
		if !ok {
			break
		}
		return byOrder(strings.Compare(a, b), order), nil
	case bool:
		b, ok := operand.(bool)
		if !ok {
			break
		}
		return a == b, nil
	case int64, float64, json.Number:
		x, _ := toFloat(a)
		y, ok := toFloat(operand)
		if !ok {
			break
		}
		switch {
		case x < y:
			return byOrder(-1, order), nil
		case x > y:
			return byOrder(1, order), nil
		}
		return byOrder(0, order), nil
	}
	return false, fmt.Errorf("%w: cannot compare %T with %T", ErrMalformedConstraint, actual, operand)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func byOrder(comparison int, order Order) bool {
	switch order {
	case OrderLess:
		return comparison < 0
	case OrderEqual:
		return comparison == 0
	case OrderGreater:
		return comparison > 0
	}
	return false
}

// ValidateRecord checks every known field of record against the collection
// it belongs to and returns the reasons keyed by field name.
func ValidateRecord(record Record, collection Collection) FieldErrors {
	var result FieldErrors
	for name, known := range record.KnownFields {
		if err := Validate(known.Value, known.Type, known.Nullable, known.Any); err != nil {
			result = result.With(name, err)
			continue
		}
		field, ok := collection.Field(name)
		if !ok {
			continue
		}
		if err := CheckValueConstraint(field, known.Value); err != nil {
			result = result.With(name, err)
		}
	}
	return result
}

// FieldErrors maps field names to the reason their value was rejected.
type FieldErrors map[string]error

func (e FieldErrors) With(name string, err error) FieldErrors {
	if e == nil {
		e = FieldErrors{}
	}
	e[name] = err
	return e
}

func (e FieldErrors) Fields() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reasons renders every error as text, keyed by field name.
func (e FieldErrors) Reasons() map[string]string {
	reasons := make(map[string]string, len(e))
	for name, err := range e {
		reasons[name] = err.Error()
	}
	return reasons
}

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, name := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e[name].Error()))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, name := range e.Fields() {
		errs = append(errs, e[name])
	}
	return errs
}
