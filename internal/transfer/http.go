// Copyright (c) 2026 Apollo. All rights reserved.

package transfer

import (
	"net/http"

	requestutil "github.com/taibuivan/apollo/internal/platform/request"
	"github.com/taibuivan/apollo/internal/platform/respond"
)

// Handler implements the HTTP layer for transfer history.
type Handler struct {
	service *Service
}

// NewHandler constructs a new transfer [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
GET /api/v1/profiles/{address}/transfers.

Request:
  - page: int (zero-based cursor)

Response:
  - 200: Page: Success (page size 30)
  - 400: VALIDATION_ERROR / INVALID_FILTER
  - 503: SOURCE_UNAVAILABLE
*/
func (handler *Handler) History(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.History(request.Context(),
		requestutil.Param(request, "address"), request.URL.Query().Get("page"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, page)
}
