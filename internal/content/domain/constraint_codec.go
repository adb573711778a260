package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueConstraintWire is the structured form of an ordered value constraint:
// {"order": ">", "value": {"data": "5", "type": "int"}}.
type ValueConstraintWire struct {
	Order string    `json:"order"`
	Value ValueWire `json:"value"`
}

type ValueWire struct {
	Data any    `json:"data"`
	Type string `json:"type"`
}

// Token is the compact form sent when creating a collection: flags use their
// lowercase name and value constraints read "<order> <value> <Type>".
func (c Constraint) Token() string {
	if c.IsValueConstraint() {
		return fmt.Sprintf("%s %s %s", c.Order, c.Operand.Raw, c.Operand.Type.DisplayName())
	}
	return strings.ToLower(string(c.Kind))
}

// DisplayToken is the form produced when reading a schema back: flags are
// capitalized and value constraints read " <order> <data> <Type>" with a
// leading space. It is not accepted by ParseConstraintToken.
func (c Constraint) DisplayToken() string {
	if c.IsValueConstraint() {
		return fmt.Sprintf(" %s %s %s", c.Order, c.Operand.Raw, c.Operand.Type.DisplayName())
	}
	return UppercaseFirstLetter(string(c.Kind))
}

func EncodeConstraints(constraints []Constraint) []string {
	tokens := make([]string, len(constraints))
	for i, constraint := range constraints {
		tokens[i] = constraint.Token()
	}
	return tokens
}

// IsValueConstraintToken is a purely lexical check on the first byte.
func IsValueConstraintToken(token string) bool {
	if token == "" {
		return false
	}
	switch token[0] {
	case '=', '>', '<':
		return true
	}
	return false
}

// ParseConstraintToken reads one compact token. The operand is everything
// between the order and the trailing type name.
func ParseConstraintToken(token string) (Constraint, error) {
	if !IsValueConstraintToken(token) {
		flag := strings.TrimSpace(token)
		if flag == "" {
			return Constraint{}, fmt.Errorf("%w: empty token", ErrMalformedConstraint)
		}
		return FlagConstraint(ConstraintKind(flag)), nil
	}

	order, err := ParseOrder(token[:1])
	if err != nil {
		return Constraint{}, err
	}
	rest := strings.TrimSpace(token[1:])
	cut := strings.LastIndex(rest, " ")
	if cut < 0 {
		return Constraint{}, fmt.Errorf("%w: %q has no operand type", ErrMalformedConstraint, token)
	}
	fieldType, err := ParseFieldType(rest[cut+1:])
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
	}

	return NewValueConstraint(order, strings.TrimSpace(rest[:cut]), fieldType), nil
}

// EncodeWireConstraints turns compact tokens into the constraint object of
// the create-collection payload. Later tokens overwrite earlier ones with the
// same key.
func EncodeWireConstraints(tokens []string) (map[string]any, error) {
	result := make(map[string]any, len(tokens))
	for _, token := range tokens {
		constraint, err := ParseConstraintToken(token)
		if err != nil {
			return nil, err
		}
		if constraint.IsValueConstraint() {
			result[constraint.Key()] = ValueConstraintWire{
				Order: string(constraint.Order),
				Value: ValueWire{
					Data: constraint.Operand.Raw,
					Type: constraint.Operand.Type.String(),
				},
			}
			continue
		}
		result[constraint.Key()] = true
	}
	return result, nil
}

type fieldWire struct {
	Type        string          `json:"type"`
	Constraints json.RawMessage `json:"constraints"`
}

// DecodeStructure reads the structure object returned by the collections
// listing, keeping the fields in document order.
func DecodeStructure(raw json.RawMessage) ([]CollectionField, error) {
	entries, err := decodeOrderedObject(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding structure: %w", err)
	}

	fields := make([]CollectionField, 0, len(entries))
	for _, entry := range entries {
		var wire fieldWire
		if err := json.Unmarshal(entry.value, &wire); err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", entry.key, err)
		}
		fieldType, err := ParseFieldType(wire.Type)
		if err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", entry.key, err)
		}
		constraints, err := decodeConstraints(wire.Constraints, fieldType)
		if err != nil {
			return nil, fmt.Errorf("decoding field %q: %w", entry.key, err)
		}
		fields = append(fields, CollectionField{
			Name:        entry.key,
			Type:        fieldType,
			Constraints: constraints,
		})
	}
	return fields, nil
}

// DecodeConstraintTokens renders a structured constraint object as display
// tokens ("Nullable", " > 5 Int").
func DecodeConstraintTokens(raw json.RawMessage, fieldType FieldType) ([]string, error) {
	constraints, err := decodeConstraints(raw, fieldType)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(constraints))
	for i, constraint := range constraints {
		tokens[i] = constraint.DisplayToken()
	}
	return tokens, nil
}

func decodeConstraints(raw json.RawMessage, fieldType FieldType) ([]Constraint, error) {
	if isNullOrEmpty(raw) {
		return nil, nil
	}
	entries, err := decodeOrderedObject(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding constraints: %w", err)
	}

	constraints := make([]Constraint, 0, len(entries))
	for _, entry := range entries {
		if !strings.EqualFold(entry.key, string(ConstraintValue)) {
			// keep the key as sent, DisplayToken only capitalizes its first letter
			constraints = append(constraints, Constraint{Kind: ConstraintKind(entry.key)})
			continue
		}
		constraint, err := decodeValueConstraint(entry.value, fieldType)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, constraint)
	}
	return constraints, nil
}

func decodeValueConstraint(raw json.RawMessage, fieldType FieldType) (Constraint, error) {
	var wire struct {
		Order string          `json:"order"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
	}
	order, err := ParseOrder(wire.Order)
	if err != nil {
		return Constraint{}, err
	}

	operandType := fieldType
	var data any
	if isJSONObject(wire.Value) {
		var value struct {
			Data json.RawMessage `json:"data"`
			Type string          `json:"type"`
		}
		if err := json.Unmarshal(wire.Value, &value); err != nil {
			return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
		}
		if value.Type != "" {
			if operandType, err = ParseFieldType(value.Type); err != nil {
				return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
			}
		}
		if data, err = decodeJSONValue(value.Data); err != nil {
			return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
		}
	} else if data, err = decodeJSONValue(wire.Value); err != nil {
		return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
	}

	return NewValueConstraint(order, StringifyWireValue(data), operandType), nil
}

type objectEntry struct {
	key   string
	value json.RawMessage
}

// decodeOrderedObject splits a JSON object into its members without losing
// their order.
func decodeOrderedObject(raw json.RawMessage) ([]objectEntry, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a json object, got %v", token)
	}

	var entries []objectEntry
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", token)
		}
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}
		entries = append(entries, objectEntry{key: key, value: value})
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeJSONValue(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func isNullOrEmpty(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
