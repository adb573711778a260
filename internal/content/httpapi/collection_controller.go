package httpapi

import (
	"net/http"

	"cms-console/internal/content/httpapi/internal"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/httpserver"
)

func NewCollectionController(service usecases.CollectionService) *CollectionController {
	return &CollectionController{
		service,
	}
}

var _ httpserver.Controller = &CollectionController{}

type CollectionController struct {
	service usecases.CollectionService
}

func (c *CollectionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/collections", c.listCollections())
	router.Handle("POST /v1/collections", c.createCollection())
	router.Handle("GET /v1/collections/{name}", c.getCollection())
}

func (c *CollectionController) listCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		collections, err := c.service.ListCollections(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCollectionListResponse(collections))
	}
}

func (c *CollectionController) getCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		collection, err := c.service.GetCollection(r.Context(), id, httpserver.GetPathParam(r, "name"))
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToCollectionResponse(collection))
	}
}

func (c *CollectionController) createCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		var body internal.CollectionDraftRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if err := internal.Validate(body); err != nil {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, invalidBodyErrMessage, internal.ValidationReasons(err))
			return
		}

		collection, err := c.service.CreateCollection(r.Context(), id, body.ToDraft())
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToCollectionResponse(collection))
	}
}
