// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package organization

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/grandline/internal/core/catalog"
	requestutil "github.com/taibuivan/grandline/internal/platform/request"
	"github.com/taibuivan/grandline/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts /api/organizations. protected guards every mutating route.
func (handler *Handler) Routes(protected chi.Middlewares) chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/members", handler.listMembers)

	// Mutations
	router.Group(func(r chi.Router) {
		r.Use(protected...)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Put("/{id}/members/{characterId}", handler.setMember)
		r.Delete("/{id}/members/{characterId}", handler.removeMember)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	organizations, meta, err := handler.service.List(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, organizations, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	organization, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, organization)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, "Organization created successfully", created)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Organization updated successfully", updated)
}

func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.Delete(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Organization deleted successfully", deleted)
}

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	members, err := handler.service.ListMembers(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, members)
}

func (handler *Handler) setMember(writer http.ResponseWriter, request *http.Request) {
	id, characterID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MemberInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	members, err := handler.service.SetMember(request.Context(), id, characterID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Member saved successfully", members)
}

func (handler *Handler) removeMember(writer http.ResponseWriter, request *http.Request) {
	id, characterID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveMember(request.Context(), id, characterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Member removed successfully", catalog.Deleted{ID: characterID})
}

func linkIDs(request *http.Request) (int, int, error) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	characterID, err := requestutil.PositiveID(request, "characterId")
	if err != nil {
		return 0, 0, err
	}
	return id, characterID, nil
}
