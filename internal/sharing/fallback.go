package sharing

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

// Query загрузка данных из хранилища
type Query[T any] func(ctx context.Context) (T, error)

// WithFallback выполняет связанный запрос primary. Если хранилище не умеет
// его выполнить (ErrQueryUnsupported), повторяет загрузку упрощенным flat.
// Другие ошибки возвращаются сразу, повторов больше нет.
func WithFallback[T any](ctx context.Context, log *zap.Logger, name string, primary, flat Query[T]) (T, error) {
	var zero T

	result, err := primary(ctx)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, domainErrors.ErrQueryUnsupported) {
		return zero, err
	}

	if log != nil {
		log.Warn("relational query unsupported, using flat query",
			zap.String("query", name),
			zap.Error(err),
		)
	}

	result, err = flat(ctx)
	if err != nil {
		return zero, err
	}
	return result, nil
}
