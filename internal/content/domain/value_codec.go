package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var (
	ErrInvalidInt    = errors.New("value is not an int")
	ErrInvalidFloat  = errors.New("value is not a float")
	ErrInvalidBool   = errors.New("value is not a bool")
	ErrInvalidString = errors.New("value must be a non-empty string")
	ErrMalformedJSON = errors.New("value is not well-formed json")
)

const (
	minInt64AsFloat = -9223372036854775808.0
	maxInt64AsFloat = 9223372036854775808.0
)

// ToWire converts the editable string form of a value into the JSON value
// sent to the content service.
func ToWire(fieldType FieldType, raw string) (any, error) {
	switch fieldType {
	case FieldTypeInt:
		number, ok := parseNumber(raw)
		if !ok || number != math.Trunc(number) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidInt, raw)
		}
		if number < minInt64AsFloat || number >= maxInt64AsFloat {
			return bigInteger(raw, number), nil
		}
		return int64(number), nil
	case FieldTypeFloat:
		number, ok := parseNumber(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFloat, raw)
		}
		return number, nil
	case FieldTypeBool:
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidBool, raw)
	case FieldTypeString:
		return raw, nil
	case FieldTypeArray, FieldTypeObject:
		return parseJSON(fieldType, raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
}

// FromWire renders a JSON value from the content service as the string shown
// in an editable field. Scalars come out in canonical form ("3", "true").
func FromWire(fieldType FieldType, value any) string {
	switch fieldType {
	case FieldTypeInt, FieldTypeFloat:
		if number, ok := value.(json.Number); ok {
			if integer, err := number.Int64(); err == nil {
				return strconv.FormatInt(integer, 10)
			}
			if integer, ok := new(big.Int).SetString(number.String(), 10); ok {
				return integer.String()
			}
			if float, err := number.Float64(); err == nil {
				return strconv.FormatFloat(float, 'f', -1, 64)
			}
		}
	}
	return StringifyWireValue(value)
}

// StringifyWireValue renders any decoded JSON value as text: strings are kept
// verbatim, everything else uses its compact JSON encoding.
func StringifyWireValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}

// bigInteger keeps integers beyond int64 as JSON numbers. Plain digits are
// sent exactly, exponent forms in their expanded float rendering.
func bigInteger(raw string, number float64) json.Number {
	if integer, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10); ok {
		return json.Number(integer.String())
	}
	return json.Number(strconv.FormatFloat(number, 'f', -1, 64))
}

// parseNumber accepts plain decimal notation with an optional exponent.
func parseNumber(raw string) (float64, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.ContainsAny(value, "xX_") {
		return 0, false
	}
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

func parseJSON(fieldType FieldType, raw string) (any, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err.Error())
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data after %s", ErrMalformedJSON, fieldType)
	}

	switch value.(type) {
	case []any:
		if fieldType == FieldTypeArray {
			return value, nil
		}
	case map[string]any:
		if fieldType == FieldTypeObject {
			return value, nil
		}
	}
	return nil, fmt.Errorf("%w: expected %s", ErrMalformedJSON, fieldType)
}

func hasBrackets(raw string, opening, closing byte) bool {
	value := strings.TrimSpace(raw)
	return len(value) >= 2 && value[0] == opening && value[len(value)-1] == closing
}
