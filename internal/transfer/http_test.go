// Copyright (c) 2026 Apollo. All rights reserved.

package transfer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/transfer"
)

func TestHandler_History(t *testing.T) {
	repo := &fakeRepo{rows: 2, total: 2}
	handler := transfer.NewHandler(transfer.NewService(repo))

	router := chi.NewRouter()
	router.Get("/profiles/{address}/transfers", handler.History)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/profiles/"+address+"/transfers?page=0", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Total      *int              `json:"total"`
		HasNext    bool              `json:"hasNext"`
		NextCursor *int              `json:"nextCursor"`
		Transfers  []json.RawMessage `json:"transfers"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 2, *body.Total)
	assert.False(t, body.HasNext)
	assert.Nil(t, body.NextCursor)
	assert.Len(t, body.Transfers, 2)
}
