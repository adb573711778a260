package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownOrder               = errors.New("unknown value constraint order")
	ErrMalformedConstraint        = errors.New("malformed constraint")
	ErrValueConstraintOnComposite = errors.New("value constraints are only allowed on scalar fields")
)

// ConstraintKind is the lowercase constraint key used on the wire. Flags
// outside the known set are carried through untouched.
type ConstraintKind string

const (
	ConstraintNullable ConstraintKind = "nullable"
	ConstraintUnique   ConstraintKind = "unique"
	ConstraintAny      ConstraintKind = "any"
	ConstraintValue    ConstraintKind = "value constraint"
)

// Flags offered when authoring a field.
var ConstraintFlags = []ConstraintKind{ConstraintAny, ConstraintUnique, ConstraintNullable}

type Order string

const (
	OrderLess    Order = "<"
	OrderEqual   Order = "="
	OrderGreater Order = ">"
)

func ParseOrder(value string) (Order, error) {
	switch Order(strings.TrimSpace(value)) {
	case OrderLess:
		return OrderLess, nil
	case OrderEqual:
		return OrderEqual, nil
	case OrderGreater:
		return OrderGreater, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, value)
}

// TypedValue is a raw operand together with the type it must be parsed as.
type TypedValue struct {
	Raw  string
	Type FieldType
}

func (v TypedValue) Parse() (any, error) {
	return ToWire(v.Type, v.Raw)
}

type Constraint struct {
	Kind    ConstraintKind
	Order   Order
	Operand TypedValue
}

func NullableConstraint() Constraint {
	return Constraint{Kind: ConstraintNullable}
}

func UniqueConstraint() Constraint {
	return Constraint{Kind: ConstraintUnique}
}

func AnyConstraint() Constraint {
	return Constraint{Kind: ConstraintAny}
}

func FlagConstraint(kind ConstraintKind) Constraint {
	return Constraint{Kind: ConstraintKind(strings.ToLower(string(kind)))}
}

func NewValueConstraint(order Order, raw string, fieldType FieldType) Constraint {
	return Constraint{
		Kind:    ConstraintValue,
		Order:   order,
		Operand: TypedValue{Raw: raw, Type: fieldType},
	}
}

func (c Constraint) IsValueConstraint() bool {
	return c.Kind == ConstraintValue
}

// Key is the lowercase constraint key in the structured wire form. Two
// constraints with the same key collapse into one entry, the last one winning.
func (c Constraint) Key() string {
	return strings.ToLower(string(c.Kind))
}
