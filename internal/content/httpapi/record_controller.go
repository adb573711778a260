package httpapi

import (
	"net/http"

	"cms-console/internal/content/httpapi/internal"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/httpserver"
)

func NewRecordController(service usecases.RecordService) *RecordController {
	return &RecordController{
		service,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	service usecases.RecordService
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/collections/{name}/records", c.listRecords())
	router.Handle("POST /v1/collections/{name}/records", c.createRecord())
	router.Handle("GET /v1/collections/{name}/records/new", c.newRecord())
	router.Handle("POST /v1/collections/{name}/records/validate", c.validateRecord())
	router.Handle("PUT /v1/collections/{name}/records/{record}", c.updateRecord())
	router.Handle("DELETE /v1/collections/{name}/records/{record}", c.deleteRecord())
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		records, err := c.service.ListRecords(r.Context(), id, httpserver.GetPathParam(r, "name"))
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordListResponse(records))
	}
}

func (c *RecordController) newRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		record, err := c.service.NewRecord(
			r.Context(),
			id,
			httpserver.GetPathParam(r, "name"),
			httpserver.GetQueryParam(r, "name"),
		)
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) validateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var body internal.RecordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		fieldErrors, err := c.service.ValidateRecord(r.Context(), id, httpserver.GetPathParam(r, "name"), usecases.RecordInput{
			Name:   body.Name,
			Values: body.Values,
		})
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		response := internal.RecordValidationResponse{Valid: len(fieldErrors) == 0}
		if !response.Valid {
			response.Fields = fieldErrors.Reasons()
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var body internal.RecordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if err := internal.Validate(body); err != nil {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, invalidBodyErrMessage, internal.ValidationReasons(err))
			return
		}

		record, err := c.service.SaveRecord(r.Context(), id, httpserver.GetPathParam(r, "name"), usecases.RecordInput{
			Name:   body.Name,
			Values: body.Values,
			Create: true,
		})
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var body internal.RecordUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		record, err := c.service.SaveRecord(r.Context(), id, httpserver.GetPathParam(r, "name"), usecases.RecordInput{
			Name:   httpserver.GetPathParam(r, "record"),
			Values: body.Values,
		})
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		err := c.service.DeleteRecord(
			r.Context(),
			id,
			httpserver.GetPathParam(r, "name"),
			httpserver.GetPathParam(r, "record"),
		)
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
