// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/platform/apperr"
	"github.com/taibuivan/grandline/internal/platform/ctxutil"
	"github.com/taibuivan/grandline/internal/platform/respond"
	"github.com/taibuivan/grandline/pkg/pagination"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

/*
TestOK_Envelope verifies the success envelope shape.
*/
func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]string{"name": "Zoan"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Zoan", body["data"].(map[string]any)["name"])
	assert.NotContains(t, body, "pagination")
}

/*
TestPaginated_Envelope verifies that count and pagination metadata are attached.
*/
func TestPaginated_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Paginated(recorder, []int{}, pagination.NewMeta(pagination.Params{Page: 1, Limit: 10}, 0))

	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
	assert.Equal(t, float64(10), body["pagination"].(map[string]any)["limit"])
}

/*
TestError_AppError verifies that reason codes and counts reach the client.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodDelete, "/api/fruit-types/1", nil)

	respond.Error(recorder, request, apperr.HasAssociations("Fruit type", 3, "devil fruits"))

	assert.Equal(t, http.StatusConflict, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "HAS_ASSOCIATIONS", body["error"])
	assert.Equal(t, float64(3), body["count"])
	assert.Contains(t, body["message"], "associated")
}

/*
TestError_HidesInternalCause verifies that raw errors are masked outside development mode.
*/
func TestError_HidesInternalCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/ships", nil)

	respond.Error(recorder, request, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decode(t, recorder)
	assert.Equal(t, "INTERNAL_ERROR", body["error"])
	assert.NotContains(t, body, "cause")
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}

/*
TestError_ExposesCauseInDevelopment verifies the development-mode escape hatch.
*/
func TestError_ExposesCauseInDevelopment(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/ships", nil)
	request = request.WithContext(ctxutil.WithExposeErrors(request.Context(), true))

	respond.Error(recorder, request, apperr.Internal(errors.New("relation \"ships\" does not exist")))

	body := decode(t, recorder)
	assert.Equal(t, "relation \"ships\" does not exist", body["cause"])
}
