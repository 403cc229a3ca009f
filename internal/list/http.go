// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package list provides the HTTP interface for objekt lists.

# Routing Strategy

  - Public: reading a list or a user's lists. Private lists resolve only for their owner.
  - Authenticated: creating lists. Modifying a list additionally requires ownership.
*/
package list

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/apollo/internal/platform/middleware"
	requestutil "github.com/taibuivan/apollo/internal/platform/request"
	"github.com/taibuivan/apollo/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for objekt lists.
type Handler struct {
	service *Service
}

// NewHandler constructs a new list [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the list endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Reads
	router.Get("/{listID}", handler.getList)

	// ## Owner Mutations
	router.Group(func(owner chi.Router) {
		owner.Use(middleware.RequireAuth)

		owner.Post("/", handler.createList)
		owner.Patch("/{listID}", handler.updateList)
		owner.Delete("/{listID}", handler.deleteList)
		owner.Post("/{listID}/entries", handler.addEntry)
		owner.Delete("/{listID}/entries/{collectionID}", handler.removeEntry)
	})

	return router
}

/*
GET /api/v1/lists/{listID}.

Response:
  - 200: List: Success
  - 404: NOT_FOUND: Missing or private to another user
*/
func (handler *Handler) getList(writer http.ResponseWriter, request *http.Request) {
	list, err := handler.service.Get(request.Context(), requestutil.Param(request, "listID"), requestutil.Claims(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list)
}

/*
GET /api/v1/users/{userID}/lists.

Response:
  - 200: []List: Public lists, plus private ones for the owner
*/
func (handler *Handler) UserLists(writer http.ResponseWriter, request *http.Request) {
	lists, err := handler.service.ListByUser(request.Context(), requestutil.Param(request, "userID"), requestutil.Claims(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lists)
}

/*
POST /api/v1/lists.

Request:
  - Body: CreateInput

Response:
  - 201: List: Created
  - 400: VALIDATION_ERROR
  - 409: CONFLICT: Name already used by this user
*/
func (handler *Handler) createList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Create(request.Context(), claims, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, list)
}

/*
PATCH /api/v1/lists/{listID}.

Request:
  - Body: UpdateInput

Response:
  - 200: List: Updated
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) updateList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Update(request.Context(), claims, requestutil.Param(request, "listID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, list)
}

/*
DELETE /api/v1/lists/{listID}.

Response:
  - 204: Deleted
  - 403: FORBIDDEN: Not the owner
*/
func (handler *Handler) deleteList(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), claims, requestutil.Param(request, "listID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/lists/{listID}/entries.

Request:
  - Body: EntryInput

Response:
  - 201: Entry: Saved
  - 404: NOT_FOUND: Unknown collection
  - 409: CONFLICT: Already in the list
*/
func (handler *Handler) addEntry(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input EntryInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.AddEntry(request.Context(), claims, requestutil.Param(request, "listID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entry)
}

// DELETE /api/v1/lists/{listID}/entries/{collectionID}.
func (handler *Handler) removeEntry(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.RemoveEntry(request.Context(), claims,
		requestutil.Param(request, "listID"), requestutil.Param(request, "collectionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
