package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

const (
	projectID = "6f1c2a1e-4f7b-4bb0-9d0e-6c5d7e1a9b10"
	teamID    = "0b3f0d8e-55a1-4c64-8d8a-3d6f1b2e7c21"
	memberID  = "9a2e7c4d-1b6f-4e0a-a5c3-2f8d9e6b1a32"
	issueID   = "c7d1e5f9-3a2b-4c8d-9e0f-1a2b3c4d5e43"
)

var alice = entity.User{ID: "2d4f6a8c-0e1b-4d3f-8a5c-7e9b1d3f5a54", Email: "alice@example.com"}

// request собирает запрос, монтирует handler на pattern и выполняет его
type request struct {
	method  string
	pattern string
	target  string
	body    interface{}
	user    *entity.User
}

func (r request) serve(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	switch b := r.body.(type) {
	case nil:
	case string:
		body.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&body).Encode(b))
	}

	req := httptest.NewRequest(r.method, r.target, &body)
	if r.user != nil {
		req = req.WithContext(session.WithUser(req.Context(), r.user))
	}

	router := chi.NewRouter()
	router.MethodFunc(r.method, r.pattern, h)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, w).Error.Code
}
