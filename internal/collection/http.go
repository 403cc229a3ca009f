// Copyright (c) 2026 Apollo. All rights reserved.

package collection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/apollo/internal/platform/request"
	"github.com/taibuivan/apollo/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog details.
type Handler struct {
	service *Service
}

// NewHandler constructs a new collection [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving collection details.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{slug}", handler.getCollection)
	router.Get("/{slug}/objekts/{serial}", handler.getObjekt)
	return router
}

// GET /api/v1/collections/{slug}.
func (handler *Handler) getCollection(writer http.ResponseWriter, request *http.Request) {
	collection, err := handler.service.Get(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, collection)
}

/*
GET /api/v1/collections/{slug}/objekts/{serial}.

Response:
  - 200: objekt.Item: Collection with the objekt attached
  - 400: VALIDATION_ERROR: Serial is not a positive integer
  - 404: NOT_FOUND
*/
func (handler *Handler) getObjekt(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.Objekt(request.Context(),
		requestutil.Param(request, "slug"), requestutil.Param(request, "serial"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, item)
}

/*
GET /api/v1/filters.

Response:
  - 200: FilterData: Seasons, classes, members and collection numbers per artist
*/
func (handler *Handler) Filters(writer http.ResponseWriter, request *http.Request) {
	data, err := handler.service.Filters(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, data)
}
