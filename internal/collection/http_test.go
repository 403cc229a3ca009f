// Copyright (c) 2026 Apollo. All rights reserved.

package collection_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/collection"
)

func setupRouter() http.Handler {
	service, _, _ := setupService()
	handler := collection.NewHandler(service)

	router := chi.NewRouter()
	router.Mount("/collections", handler.Routes())
	router.Get("/filters", handler.Filters)
	return router
}

func TestHandler_GetObjekt(t *testing.T) {
	router := setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collections/atom01-seoyeon-101z/objekts/7", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"serial":7`)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collections/atom01-seoyeon-101z/objekts/seven", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/collections/unknown-slug", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_Filters(t *testing.T) {
	router := setupRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/filters", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data collection.FilterData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Artists)
	assert.Equal(t, "tripleS", string(body.Data.Artists[0].Artist))
}
