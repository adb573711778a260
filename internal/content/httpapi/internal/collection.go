package internal

import "cms-console/internal/content/domain"

type CollectionDraftRequest struct {
	Name   string              `json:"name" validate:"required,max=128"`
	Fields []FieldDraftRequest `json:"fields" validate:"dive"`
}

type FieldDraftRequest struct {
	Name             string                   `json:"name" validate:"required"`
	Type             string                   `json:"type" validate:"required"`
	Flags            []string                 `json:"flags"`
	ValueConstraints []ValueConstraintRequest `json:"value_constraints" validate:"dive"`
}

type ValueConstraintRequest struct {
	Order string `json:"order" validate:"required,oneof=< = >"`
	Value string `json:"value" validate:"required"`
}

func (r CollectionDraftRequest) ToDraft() domain.CollectionDraft {
	fields := make([]domain.FieldDraft, len(r.Fields))
	for i, field := range r.Fields {
		constraints := make([]domain.ValueConstraintDraft, len(field.ValueConstraints))
		for j, constraint := range field.ValueConstraints {
			constraints[j] = domain.ValueConstraintDraft{Order: constraint.Order, Value: constraint.Value}
		}
		fields[i] = domain.FieldDraft{
			Name:             field.Name,
			Type:             field.Type,
			Flags:            field.Flags,
			ValueConstraints: constraints,
		}
	}
	return domain.CollectionDraft{Name: r.Name, Fields: fields}
}

type CollectionListResponse struct {
	Data []CollectionResponse `json:"data"`
}

type CollectionResponse struct {
	Name       string          `json:"name"`
	Schemaless bool            `json:"schemaless"`
	Fields     []FieldResponse `json:"fields"`
}

type FieldResponse struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	DisplayType string   `json:"display_type"`
	Nullable    bool     `json:"nullable"`
	Unique      bool     `json:"unique"`
	Any         bool     `json:"any"`
	Constraints []string `json:"constraints"`
}

func ToCollectionResponse(collection domain.Collection) CollectionResponse {
	fields := make([]FieldResponse, len(collection.Structure))
	for i, field := range collection.Structure {
		tokens := make([]string, len(field.Constraints))
		for j, constraint := range field.Constraints {
			tokens[j] = constraint.DisplayToken()
		}
		fields[i] = FieldResponse{
			Name:        field.Name,
			Type:        field.Type.DisplayName(),
			DisplayType: field.DisplayType(),
			Nullable:    field.IsNullable(),
			Unique:      field.IsUnique(),
			Any:         field.IsAny(),
			Constraints: tokens,
		}
	}
	return CollectionResponse{
		Name:       collection.Name,
		Schemaless: collection.Schemaless,
		Fields:     fields,
	}
}

func ToCollectionListResponse(collections []domain.Collection) CollectionListResponse {
	data := make([]CollectionResponse, len(collections))
	for i, collection := range collections {
		data[i] = ToCollectionResponse(collection)
	}
	return CollectionListResponse{Data: data}
}
