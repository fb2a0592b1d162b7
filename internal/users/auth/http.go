// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/grandline/internal/platform/request"
	"github.com/taibuivan/grandline/internal/platform/respond"
)

// Handler implements the operator authentication endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns the /api/auth router.
//
// # Endpoints
//   - POST /login : Exchanges credentials for an access token (sensitive tier).
//   - GET  /me    : Returns the authenticated operator.
func (handler *Handler) Routes(sensitive, protected chi.Middlewares) chi.Router {
	router := chi.NewRouter()

	router.With(sensitive...).Post("/login", handler.login)
	router.With(protected...).Get("/me", handler.me)

	return router
}

/*
Login authenticates an operator.

POST /api/auth/login

Response:
  - 200: LoginSession
  - 400: INVALID_JSON, INVALID_USERNAME, INVALID_PASSWORD
  - 401: INVALID_CREDENTIALS
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Login successful", session)
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Me(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}
