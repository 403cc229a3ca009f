// Copyright (c) 2026 Apollo. All rights reserved.

package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/apollo/internal/collection"
	"github.com/taibuivan/apollo/internal/list"
	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/transfer"
)

// setupRoutes wires handlers without stores; every request below is rejected
// before a store is reached, so the status proves which handler matched.
func setupRoutes() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	listService := list.NewService(nil, logger)
	handlers := Handlers{
		Objekt:     objekt.NewHandler(objekt.NewService(nil, nil, listService, logger)),
		List:       list.NewHandler(listService),
		Collection: collection.NewHandler(collection.NewService(nil, nil, logger)),
		Transfer:   transfer.NewHandler(transfer.NewService(nil)),
	}

	router := chi.NewRouter()
	router.Route("/api/v1", func(api chi.Router) {
		registerRoutes(api, handlers)
	})
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := setupRoutes()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"CatalogFilter", http.MethodGet, "/api/v1/objekts?class=Legendary", "", http.StatusBadRequest, "INVALID_FILTER"},
		{"ListObjekts", http.MethodGet, "/api/v1/lists/not-a-uuid/objekts", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"ListDetail", http.MethodGet, "/api/v1/lists/not-a-uuid", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"ListCreate", http.MethodPost, "/api/v1/lists", `{"name":"x"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"ProfileObjekts", http.MethodGet, "/api/v1/profiles/nobody/objekts", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"ProfileSerialSort", http.MethodGet, "/api/v1/objekts?sort=serialAsc", "", http.StatusBadRequest, "INVALID_FILTER"},
		{"Transfers", http.MethodGet, "/api/v1/profiles/nobody/transfers", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"Collection", http.MethodGet, "/api/v1/collections/Not_A_Slug", "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"CollectionSerial", http.MethodGet, "/api/v1/collections/atom01-seoyeon-101z/objekts/x", "", http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))

			assert.Equal(t, tc.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.code)
		})
	}
}
