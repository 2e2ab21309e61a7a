package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// Claims токена сервиса аутентификации: sub содержит id пользователя
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewToken подписывает токен с теми же claims, что выдает сервис аутентификации.
// Используется для разработки и в тестах.
func NewToken(secret []byte, issuer string, user entity.User, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	ss, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return ss, nil
}
