package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"cms-console/internal/content/domain"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/httpserver"
)

const (
	invalidBodyErrMessage     = "invalid request body"
	missingUserErrMessage     = "missing or invalid " + httpserver.UserIDHeader + " header"
	internalErrMessage        = "internal error"
	invalidRecordErrMessage   = "record has invalid fields"
	unauthenticatedErrMessage = "not logged in"
)

// userID reads the session identity. It replies 401 itself and returns false
// when the header is missing or malformed.
func userID(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	id, err := domain.ParseUserID(r.Header.Get(httpserver.UserIDHeader))
	if err != nil || id.IsZero() {
		httpserver.ReplyWithError(w, http.StatusUnauthorized, missingUserErrMessage)
		return "", false
	}
	return id, true
}

// replyWithServiceError maps use case errors to status codes. Content service
// failures carry the text the service returned.
func replyWithServiceError(w http.ResponseWriter, err error) {
	var fieldErrors domain.FieldErrors

	switch {
	case errors.Is(err, usecases.ErrUnauthenticated):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, unauthenticatedErrMessage)
	case errors.Is(err, usecases.ErrSchemaNotFound), errors.Is(err, usecases.ErrRecordNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, usecases.ErrorMessage(err))
	case errors.Is(err, usecases.ErrInvalidRecord) && errors.As(err, &fieldErrors):
		httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, invalidRecordErrMessage, fieldErrors.Reasons())
	case errors.Is(err, usecases.ErrInvalidRecord), errors.Is(err, usecases.ErrInvalidCollection):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecases.ErrNetwork):
		httpserver.ReplyWithError(w, http.StatusBadGateway, usecases.ErrorMessage(err))
	default:
		slog.Error("unexpected service error", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage)
	}
}
