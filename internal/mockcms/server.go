package mockcms

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"cms-console/internal/content/domain"
	"cms-console/internal/infra/httpserver"
)

type registerRequest struct {
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Permissions map[string]any `json:"permissions"`
}

type createCollectionRequest struct {
	CollectionName      string          `json:"collection_name"`
	CollectionStructure json.RawMessage `json:"collection_structure"`
}

type documentBody struct {
	DocumentName string         `json:"document_name"`
	Data         map[string]any `json:"data"`
}

type structureEntry struct {
	Structure json.RawMessage `json:"structure"`
}

// Controller serves the content service API on top of a Store.
type Controller struct {
	store *Store
}

func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

var _ httpserver.Controller = &Controller{}

func (c *Controller) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /login", c.login())
	router.Handle("POST /register", c.register())
	router.Handle("GET /logout", c.logout())
	router.Handle("POST /logout", c.logout())
	router.Handle("POST /create_new_collection", c.createCollection())
	router.Handle("GET /collections", c.listCollections())
	router.Handle("GET /collection", c.getDocuments())
	router.Handle("POST /collection", c.insertDocument())
	router.Handle("PUT /collection", c.updateDocument())
	router.Handle("DELETE /collection", c.deleteDocument())
}

func (c *Controller) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := c.store.Login(
			httpserver.GetQueryParam(r, "username"),
			httpserver.GetQueryParam(r, "password"),
		)
		if err != nil {
			replyWithStoreError(w, err)
			return
		}
		replyWithUserID(w, id)
	}
}

func (c *Controller) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body registerRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil || body.Username == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid registration")
			return
		}

		id, err := c.store.Register(body.Username, body.Password, body.Permissions)
		if err != nil {
			replyWithStoreError(w, err)
			return
		}
		slog.Info("user registered", slog.String("username", body.Username))
		replyWithUserID(w, id)
	}
}

func (c *Controller) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}
		if err := c.store.Logout(id); err != nil {
			replyWithStoreError(w, err)
			return
		}
		replyWithUserID(w, id)
	}
}

func (c *Controller) createCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		var body createCollectionRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil || body.CollectionName == "" {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid collection")
			return
		}

		if err := c.store.CreateCollection(id, body.CollectionName, body.CollectionStructure); err != nil {
			replyWithStoreError(w, err)
			return
		}
		slog.Info("collection created", slog.String("name", body.CollectionName))
		w.WriteHeader(http.StatusOK)
	}
}

func (c *Controller) listCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := c.store.Collections()
		listing := make([]map[string]structureEntry, len(entries))
		for i, entry := range entries {
			structure := entry.Structure
			if structure == nil {
				structure = json.RawMessage("null")
			}
			listing[i] = map[string]structureEntry{entry.Name: {Structure: structure}}
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]any{"collections": listing})
	}
}

func (c *Controller) getDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}
		collectionName := httpserver.GetQueryParam(r, "collection_name")

		if name := httpserver.GetQueryParam(r, "document_name"); name != "" {
			document, err := c.store.Document(id, collectionName, name)
			if err != nil {
				replyWithStoreError(w, err)
				return
			}
			httpserver.ReplyJSONResponse(w, http.StatusOK, documentBody{DocumentName: document.Name, Data: document.Data})
			return
		}

		documents, err := c.store.Documents(id, collectionName)
		if err != nil {
			replyWithStoreError(w, err)
			return
		}
		bodies := make([]documentBody, len(documents))
		for i, document := range documents {
			bodies[i] = documentBody{DocumentName: document.Name, Data: document.Data}
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]any{"documents": bodies})
	}
}

func (c *Controller) insertDocument() http.HandlerFunc {
	return c.writeDocument(c.store.Insert)
}

func (c *Controller) updateDocument() http.HandlerFunc {
	return c.writeDocument(c.store.Update)
}

func (c *Controller) writeDocument(write func(domain.UserID, string, Document) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		body, err := decodeDocument(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid document")
			return
		}
		if body.Data == nil {
			body.Data = map[string]any{}
		}

		err = write(id, httpserver.GetQueryParam(r, "collection_name"), Document{Name: body.DocumentName, Data: body.Data})
		if err != nil {
			replyWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func (c *Controller) deleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		err := c.store.Delete(id,
			httpserver.GetQueryParam(r, "collection_name"),
			httpserver.GetQueryParam(r, "document_name"),
		)
		if err != nil {
			replyWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// decodeDocument keeps numbers as json.Number so ints and floats stay apart.
func decodeDocument(r *http.Request) (documentBody, error) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return documentBody{}, err
	}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var body documentBody
	if err := decoder.Decode(&body); err != nil {
		return documentBody{}, err
	}
	return body, nil
}

func userIDParam(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	id, err := domain.ParseUserID(httpserver.GetQueryParam(r, "user_id"))
	if err != nil || id.IsZero() {
		httpserver.ReplyWithError(w, http.StatusBadRequest, "invalid user_id")
		return "", false
	}
	return id, true
}

func replyWithUserID(w http.ResponseWriter, id domain.UserID) {
	httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]json.Number{"user_id": json.Number(id.String())})
}

func replyWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoSuchDocument), errors.Is(err, ErrNoSuchCollection):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownUser):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, err.Error())
	default:
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	}
}
