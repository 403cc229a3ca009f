// Copyright (c) 2026 Apollo. All rights reserved.

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/respond"
	"github.com/taibuivan/apollo/pkg/pagination"
	"github.com/taibuivan/apollo/pkg/pointer"
)

func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]string{"slug": "atom01-heejin-101z"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"slug":"atom01-heejin-101z"}}`, recorder.Body.String())
}

/*
TestPage verifies that embedded cursor metadata is flattened beside the items key.
*/
func TestPage(t *testing.T) {
	body := struct {
		pagination.Meta
		Objekts []string `json:"objekts"`
	}{
		Meta:    pagination.Meta{Total: pointer.To(61), HasNext: true, NextCursor: pointer.To(1)},
		Objekts: []string{"a"},
	}

	recorder := httptest.NewRecorder()
	respond.Page(recorder, body)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"total":61,"hasNext":true,"nextCursor":1,"objekts":["a"]}`, recorder.Body.String())
}

/*
TestError covers application errors and unknown errors.
*/
func TestError(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/api/v1/objekts", nil)

	t.Run("app_error", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, apperr.InvalidFilter("Invalid filter value",
			apperr.FieldError{Field: "class", Message: "Unknown class"}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var envelope respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, apperr.CodeInvalidFilter, envelope.Code)
		assert.Equal(t, "class", envelope.Details[0].Field)
	})

	t.Run("source_unavailable", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, apperr.SourceUnavailable("search index", errors.New("dial tcp")))

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "dial tcp")
	})

	t.Run("unknown_error_is_internal", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		respond.Error(recorder, request, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "boom")
	})
}
