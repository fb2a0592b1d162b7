// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package character

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

// Routes mounts /api/characters. protected guards every mutating route.
func (handler *Handler) Routes(protected chi.Middlewares) chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/haki", handler.listHaki)

	// Mutations
	router.Group(func(r chi.Router) {
		r.Use(protected...)
		r.Post("/", handler.create)
		r.Put("/{id}", handler.update)
		r.Delete("/{id}", handler.remove)
		r.Put("/{id}/haki/{hakiTypeId}", handler.setHaki)
		r.Delete("/{id}/haki/{hakiTypeId}", handler.removeHaki)
	})

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	characters, meta, err := handler.service.List(request.Context(), request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, characters, meta)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	character, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, character)
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
	respond.Created(writer, "Character created successfully", created)
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
	respond.Message(writer, "Character updated successfully", updated)
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
	respond.Message(writer, "Character deleted successfully", deleted)
}

func (handler *Handler) listHaki(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	masteries, err := handler.service.ListHaki(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, masteries)
}

func (handler *Handler) setHaki(writer http.ResponseWriter, request *http.Request) {
	id, hakiTypeID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input HakiInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	masteries, err := handler.service.SetHaki(request.Context(), id, hakiTypeID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Haki mastery saved successfully", masteries)
}

func (handler *Handler) removeHaki(writer http.ResponseWriter, request *http.Request) {
	id, hakiTypeID, err := linkIDs(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveHaki(request.Context(), id, hakiTypeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Haki mastery removed successfully", catalog.Deleted{ID: hakiTypeID})
}

func linkIDs(request *http.Request) (int, int, error) {
	id, err := requestutil.PositiveID(request, "id")
	if err != nil {
		return 0, 0, err
	}
	hakiTypeID, err := requestutil.PositiveID(request, "hakiTypeId")
	if err != nil {
		return 0, 0, err
	}
	return id, hakiTypeID, nil
}
