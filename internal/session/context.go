package session

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

type userKey struct{}

// WithUser сохраняет пользователя в контекст запроса
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext извлекает пользователя из контекста
func UserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey{}).(*entity.User)
	if !ok || user == nil || user.ID == "" {
		return nil, false
	}
	return user, true
}
