// Copyright (c) 2026 Grandline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package taxonomy_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/grandline/internal/core/taxonomy"
	"github.com/taibuivan/grandline/internal/platform/middleware"
	"github.com/taibuivan/grandline/internal/platform/sec/sectest"
)

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

type server struct {
	*fixture
	router http.Handler
	bearer string
}

func newServer(t *testing.T, kind taxonomy.Kind) *server {
	t.Helper()
	f := newFixture(kind)
	tokens := sectest.TokenService(t)

	router := chi.NewRouter()
	router.Mount("/api/"+kind.Slug, taxonomy.NewHandler(f.service).Routes(chi.Middlewares{middleware.Authenticate(tokens)}))

	return &server{fixture: f, router: router, bearer: sectest.Bearer(t, tokens)}
}

func (s *server) do(t *testing.T, method, path, body string, authorized bool) (int, response) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if authorized {
		request.Header.Set("Authorization", s.bearer)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, request)

	var decoded response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return recorder.Code, decoded
}

/*
TestHTTP_CreateThenDuplicate creates "Paramecia" and repeats the same request.
*/
func TestHTTP_CreateThenDuplicate(t *testing.T) {
	s := newServer(t, taxonomy.FruitTypes)
	description := "Superhuman powers"

	s.store.On("Taken", mock.Anything, "fruit_types", "name", "Paramecia", 0).Return(false, nil).Once()
	s.store.On("Taken", mock.Anything, "fruit_types", "name", "Paramecia", 0).Return(true, nil).Once()
	s.repo.On("Create", mock.Anything, taxonomy.CreateInput{Name: "Paramecia", Description: &description}).
		Return(&taxonomy.Type{ID: 1, Name: "Paramecia", Description: &description}, nil).Once()

	body := `{"name": "Paramecia", "description": "Superhuman powers"}`

	status, first := s.do(t, http.MethodPost, "/api/fruit-types", body, true)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, first.Success)

	var created taxonomy.Type
	require.NoError(t, json.Unmarshal(first.Data, &created))
	assert.Equal(t, "Paramecia", created.Name)

	status, second := s.do(t, http.MethodPost, "/api/fruit-types", body, true)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, second.Success)
	assert.Equal(t, "DUPLICATE_NAME", second.Error)

	s.repo.AssertNumberOfCalls(t, "Create", 1)
}

/*
TestHTTP_UpdateNameTooLong verifies the 400 for a 51-character race name.
*/
func TestHTTP_UpdateNameTooLong(t *testing.T) {
	s := newServer(t, taxonomy.Races)
	s.store.On("Exists", mock.Anything, "races", 1).Return(true, nil)

	status, body := s.do(t, http.MethodPut, "/api/races/1", `{"name": "`+strings.Repeat("A", 51)+`"}`, true)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_NAME", body.Error)
	assert.Contains(t, body.Message, "50 characters")
}

/*
TestHTTP_DeleteWithDependents verifies the 409 when devil fruits use the fruit type.
*/
func TestHTTP_DeleteWithDependents(t *testing.T) {
	s := newServer(t, taxonomy.FruitTypes)
	s.store.On("Exists", mock.Anything, "fruit_types", 1).Return(true, nil)
	s.store.On("Count", mock.Anything, "devil_fruits", "type_id", 1).Return(2, nil)

	status, body := s.do(t, http.MethodDelete, "/api/fruit-types/1", "", true)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "HAS_ASSOCIATIONS", body.Error)
	assert.Equal(t, 2, body.Count)
	assert.Contains(t, body.Message, "associated")
	s.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

/*
TestHTTP_MutationsRequireToken verifies that no catalog call happens without a token.
*/
func TestHTTP_MutationsRequireToken(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/haki-types", `{"name": "Haoshoku"}`},
		{http.MethodPut, "/api/haki-types/1", `{"name": "Haoshoku"}`},
		{http.MethodDelete, "/api/haki-types/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			s := newServer(t, taxonomy.HakiTypes)

			status, body := s.do(t, tt.method, tt.path, tt.body, false)

			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "NO_TOKEN", body.Error)
			assert.Empty(t, s.repo.Calls)
			assert.Empty(t, s.store.Calls)
		})
	}
}

/*
TestHTTP_Reads verifies public reads, the id format check and the paginated envelope.
*/
func TestHTTP_Reads(t *testing.T) {
	s := newServer(t, taxonomy.OrganizationTypes)
	s.repo.On("List", mock.Anything, mock.Anything).Return([]*taxonomy.Type{{ID: 1, Name: "Pirate Crew"}}, 1, nil)

	status, body := s.do(t, http.MethodGet, "/api/organization-types?search=crew", "", false)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Count)

	status, body = s.do(t, http.MethodGet, "/api/organization-types/abc", "", false)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", body.Error)

	status, body = s.do(t, http.MethodGet, "/api/organization-types?page=0", "", false)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_PAGINATION", body.Error)
}

/*
TestHTTP_EmptyPatch verifies NO_FIELDS_PROVIDED on PUT {}.
*/
func TestHTTP_EmptyPatch(t *testing.T) {
	s := newServer(t, taxonomy.CharacterTypes)

	status, body := s.do(t, http.MethodPut, "/api/character-types/1", `{}`, true)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_FIELDS_PROVIDED", body.Error)
	assert.Empty(t, s.store.Calls)
}
