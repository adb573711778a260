package httpapi

import (
	"net/http"

	"cms-console/internal/content/httpapi/internal"
	"cms-console/internal/content/usecases"
	"cms-console/internal/infra/httpserver"
)

func NewSessionController(service usecases.SessionService) *SessionController {
	return &SessionController{
		service,
	}
}

var _ httpserver.Controller = &SessionController{}

type SessionController struct {
	service usecases.SessionService
}

func (c *SessionController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/session/login", c.login())
	router.Handle("POST /v1/session/signup", c.signup())
	router.Handle("POST /v1/session/logout", c.logout())
	router.Handle("GET /v1/session/state", c.currentState())
}

func (c *SessionController) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.LoginRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if err := internal.Validate(body); err != nil {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, invalidBodyErrMessage, internal.ValidationReasons(err))
			return
		}

		user, err := c.service.Login(r.Context(), usecases.Credentials{
			Username: body.Username,
			Password: body.Password,
		})
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.UserResponse{
			UserID:   user.ID.String(),
			Username: user.Username,
		})
	}
}

func (c *SessionController) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SignupRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}
		if err := internal.Validate(body); err != nil {
			httpserver.ReplyWithFieldErrors(w, http.StatusBadRequest, invalidBodyErrMessage, internal.ValidationReasons(err))
			return
		}

		permissions := body.Permissions
		if permissions == nil {
			permissions = usecases.DefaultPermissions()
		}

		user, err := c.service.Signup(r.Context(), usecases.Registration{
			Username:    body.Username,
			Password:    body.Password,
			Permissions: permissions,
		})
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.UserResponse{
			UserID:   user.ID.String(),
			Username: user.Username,
		})
	}
}

func (c *SessionController) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		if err := c.service.Logout(r.Context(), id); err != nil {
			replyWithServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *SessionController) currentState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userID(w, r)
		if !ok {
			return
		}

		current, err := c.service.CurrentState(r.Context(), id)
		if err != nil {
			replyWithServiceError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToStateResponse(current))
	}
}
