package internal

import "cms-console/internal/content/domain"

type RecordRequest struct {
	Name   string            `json:"name" validate:"required"`
	Values map[string]string `json:"values"`
}

// RecordUpdateRequest takes the record name from the path.
type RecordUpdateRequest struct {
	Values map[string]string `json:"values"`
}

type RecordListResponse struct {
	Data []RecordResponse `json:"data"`
}

type RecordResponse struct {
	Name          string                        `json:"name"`
	Fields        []string                      `json:"fields"`
	KnownFields   map[string]KnownFieldResponse `json:"known_fields"`
	UnknownFields map[string]string             `json:"unknown_fields"`
}

type KnownFieldResponse struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Nullable bool   `json:"nullable"`
	Any      bool   `json:"any"`
}

func ToRecordResponse(record domain.Record) RecordResponse {
	known := make(map[string]KnownFieldResponse, len(record.KnownFields))
	for name, field := range record.KnownFields {
		known[name] = KnownFieldResponse{
			Type:     field.Type.DisplayName(),
			Value:    field.Value,
			Nullable: field.Nullable,
			Any:      field.Any,
		}
	}
	unknown := record.UnknownFields
	if unknown == nil {
		unknown = map[string]string{}
	}
	return RecordResponse{
		Name:          record.Name,
		Fields:        record.FieldNames(),
		KnownFields:   known,
		UnknownFields: unknown,
	}
}

func ToRecordListResponse(records []domain.Record) RecordListResponse {
	data := make([]RecordResponse, len(records))
	for i, record := range records {
		data[i] = ToRecordResponse(record)
	}
	return RecordListResponse{Data: data}
}

type RecordValidationResponse struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

type FieldValidationRequest struct {
	Value    string `json:"value"`
	Type     string `json:"type" validate:"required"`
	Nullable bool   `json:"nullable"`
	Any      bool   `json:"any"`
}

type FieldValidationResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
