// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package objekt provides the HTTP interface for browsing objekts.

# Routing Strategy

  - Catalog: GET /objekts browses every collection (a list query parameter narrows it to one list).
  - List: GET /lists/{listID}/objekts browses the collections saved in a list.
  - Ownership: GET /profiles/{address}/objekts browses the objekts an address holds.

All three are public reads. The session, when present, only unlocks the
caller's own private lists.
*/
package objekt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/apollo/internal/platform/request"
	"github.com/taibuivan/apollo/internal/platform/respond"
	"github.com/taibuivan/apollo/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for objekt queries.
type Handler struct {
	service *Service
}

// NewHandler constructs a new objekt [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] serving the catalog endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listObjekts)
	return router
}

/*
GET /api/v1/objekts.

Description: Browses the catalog. Supplying list switches to list scope.

Request:
  - artist, season, class, on_offline, collection: string (repeatable or comma-separated)
  - member, search, list: string
  - transferable, gridable: bool
  - sort: newest | oldest | noAscending | noDescending
  - page: int (zero-based cursor)

Response:
  - 200: Page: Success
  - 400: INVALID_FILTER: A filter value is outside its enumeration
  - 404: NOT_FOUND: The list does not exist or is private
  - 503: SOURCE_UNAVAILABLE: The backing store failed
*/
func (handler *Handler) listObjekts(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, func(query *Query) error {
		if query.Filters.ListID != "" {
			query.Scope = ScopeList
		}
		return nil
	})
}

/*
GET /api/v1/lists/{listID}/objekts.

Description: Browses the collections saved in one list.

Request:
  - listID: string (UUID)
  - Same filter parameters as GET /objekts

Response:
  - 200: Page: Success
  - 400: VALIDATION_ERROR / INVALID_FILTER
  - 404: NOT_FOUND: The list does not exist or is private
*/
func (handler *Handler) ListObjekts(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, func(query *Query) error {
		listID := requestutil.Param(request, "listID")
		if err := (&validate.Validator{}).UUID("listID", listID).Err(); err != nil {
			return err
		}

		query.Scope = ScopeList
		query.Filters.ListID = listID
		return nil
	})
}

/*
GET /api/v1/profiles/{address}/objekts.

Description: Browses the objekts currently held by an address.

Request:
  - address: string (0x-prefixed wallet address)
  - Same filter parameters as GET /objekts, plus sort serialAsc | serialDesc

Response:
  - 200: Page: Success (page size 30)
  - 400: VALIDATION_ERROR / INVALID_FILTER
*/
func (handler *Handler) ProfileObjekts(writer http.ResponseWriter, request *http.Request) {
	handler.serve(writer, request, func(query *Query) error {
		query.Scope = ScopeOwnership
		query.Address = requestutil.Param(request, "address")
		return nil
	})
}

// serve parses the shared query string, lets the route fix the scope, and
// writes the page.
func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request, scope func(*Query) error) {
	filters, sort, cursor, err := ParseFilters(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := Query{Scope: ScopeCollections, Filters: filters, Sort: sort, Cursor: cursor}
	if err := scope(&query); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Query(request.Context(), requestContext(request), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, page)
}

// requestContext copies the session and artist selection out of the
// transport layer.
func requestContext(request *http.Request) RequestContext {
	return RequestContext{
		Session: requestutil.Claims(request),
		Artists: ParseArtists(requestutil.Artists(request)),
	}
}
