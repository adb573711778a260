package internal

import "encoding/json"

type UserResponse struct {
	UserID  json.Number `json:"user_id"`
	Message string      `json:"message,omitempty"`
}

type RegisterRequest struct {
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Permissions map[string]any `json:"permissions"`
}

type CollectionsResponse struct {
	Collections []map[string]CollectionInfo `json:"collections"`
	Message     string                      `json:"message,omitempty"`
}

// CollectionInfo keeps the structure raw so field order survives decoding.
type CollectionInfo struct {
	Structure json.RawMessage `json:"structure"`
}

type DocumentsResponse struct {
	Documents []Document `json:"documents"`
	Message   string     `json:"message,omitempty"`
}

type Document struct {
	DocumentName string         `json:"document_name"`
	Data         map[string]any `json:"data"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
