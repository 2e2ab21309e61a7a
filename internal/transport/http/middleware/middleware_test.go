package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/middleware"
)

type authenticatorFunc func(ctx context.Context, rawToken string) (*entity.User, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	return f(ctx, rawToken)
}

func TestAuth(t *testing.T) {
	alice := &entity.User{ID: "alice", Email: "alice@example.com"}
	auth := authenticatorFunc(func(_ context.Context, token string) (*entity.User, error) {
		switch token {
		case "good":
			return alice, nil
		case "expired":
			return nil, domainErrors.NewDomainError(domainErrors.CodeUnauthenticated, "token expired", domainErrors.ErrUnauthenticated)
		default:
			return nil, errors.New("signature is invalid")
		}
	})

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedMsg    string
	}{
		{name: "success", header: "Bearer good", expectedStatus: http.StatusOK},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized, expectedMsg: "missing or invalid authorization header"},
		{name: "wrong scheme", header: "Basic good", expectedStatus: http.StatusUnauthorized, expectedMsg: "missing or invalid authorization header"},
		{name: "expired token", header: "Bearer expired", expectedStatus: http.StatusUnauthorized, expectedMsg: "token expired"},
		{name: "bad signature", header: "Bearer forged", expectedStatus: http.StatusUnauthorized, expectedMsg: "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *entity.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = session.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/projects", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			middleware.Auth(auth)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg == "" {
				assert.Equal(t, alice, seen)
				return
			}
			assert.Nil(t, seen)

			var response dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, domainErrors.CodeUnauthenticated, response.Error.Code)
			assert.Equal(t, tt.expectedMsg, response.Error.Message)
		})
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel zapcore.Level
	}{
		{name: "ok", status: http.StatusOK, expectedLevel: zapcore.InfoLevel},
		{name: "rejected", status: http.StatusForbidden, expectedLevel: zapcore.WarnLevel},
		{name: "failed", status: http.StatusInternalServerError, expectedLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodPost, "/teams", nil)
			middleware.Logger(zap.New(core))(next).ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expectedLevel, entries[0].Level)
			assert.Equal(t, "http", entries[0].LoggerName)

			fields := entries[0].ContextMap()
			assert.Equal(t, "POST", fields["method"])
			assert.Equal(t, "/teams", fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.EqualValues(t, 4, fields["bytes"])
		})
	}
}
