package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

// Коды SQLSTATE, которые различает сервис
const (
	codeUniqueViolation       = "23505"
	codeForeignKeyViolation   = "23503"
	codeCheckViolation        = "23514"
	codeNotNullViolation      = "23502"
	codeInvalidText           = "22P02"
	codeInsufficientPrivilege = "42501"
	codeInfiniteRecursion     = "42P17"
)

// classify оборачивает ошибку драйвера в доменную ошибку по коду SQLSTATE.
// Исходная ошибка остается в цепочке.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domainErrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrConflict, err)
		case codeInsufficientPrivilege:
			return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrForbidden, err)
		case codeInfiniteRecursion:
			return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrQueryUnsupported, err)
		case codeForeignKeyViolation, codeCheckViolation, codeNotNullViolation, codeInvalidText:
			return fmt.Errorf("%s: %w: %w", op, domainErrors.ErrInvalidInput, err)
		}
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
