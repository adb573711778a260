package httpapi

import (
	"net/http"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/httpapi/internal"
	"cms-console/internal/infra/httpserver"
)

// FieldController serves the per-keystroke check used while a value is being
// typed. It needs no session.
type FieldController struct{}

func NewFieldController() *FieldController {
	return &FieldController{}
}

var _ httpserver.Controller = &FieldController{}

func (c *FieldController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/fields/validate", c.validateField())
}

func (c *FieldController) validateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FieldValidationRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if err := internal.Validate(body); err != nil {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, invalidBodyErrMessage, internal.ValidationReasons(err))
			return
		}

		fieldType, err := domain.ParseFieldType(body.Type)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		response := internal.FieldValidationResponse{Valid: true}
		if err := domain.Validate(body.Value, fieldType, body.Nullable, body.Any); err != nil {
			response = internal.FieldValidationResponse{Valid: false, Reason: err.Error()}
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}
