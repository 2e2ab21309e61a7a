package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

// Authenticator проверяет токен сервиса аутентификации
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*entity.User, error)
}

// Auth проверяет Bearer токен и кладет пользователя в контекст запроса
func Auth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if !strings.HasPrefix(authHeader, prefix) {
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthenticated, "missing or invalid authorization header")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				message := "invalid token"
				var domainErr *domainErrors.DomainError
				if errors.As(err, &domainErr) {
					message = domainErr.Message
				}
				respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthenticated, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithUser(r.Context(), user)))
		})
	}
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}

	json.NewEncoder(w).Encode(response)
}
