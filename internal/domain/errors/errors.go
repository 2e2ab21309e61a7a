package errors

import (
	"errors"
	"fmt"
)

// Коды ошибок API
const (
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeLastOwner        = "LAST_OWNER"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeQueryUnsupported = "QUERY_UNSUPPORTED"
	CodeDataLoadFailed   = "DATA_LOAD_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

var (
	ErrUnauthenticated  = errors.New(CodeUnauthenticated)
	ErrForbidden        = errors.New(CodeForbidden)
	ErrNotFound         = errors.New(CodeNotFound)
	ErrConflict         = errors.New(CodeConflict)
	ErrLastOwner        = errors.New(CodeLastOwner)
	ErrInvalidInput     = errors.New(CodeInvalidInput)
	ErrQueryUnsupported = errors.New(CodeQueryUnsupported)
	ErrDataLoad         = errors.New(CodeDataLoadFailed)
	// ErrClosed состояние сессии уже закрыто, результат записи не применяется
	ErrClosed = errors.New("STATE_CLOSED")
)

// DomainError представляет доменную ошибку с кодом и сообщением
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Forbidden ошибка отказа в доступе
func Forbidden(message string) *DomainError {
	return NewDomainError(CodeForbidden, message, ErrForbidden)
}

// NotFound ошибка отсутствующей сущности
func NotFound(message string) *DomainError {
	return NewDomainError(CodeNotFound, message, ErrNotFound)
}

// InvalidInput ошибка входных данных
func InvalidInput(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message, ErrInvalidInput)
}

// FromStore переводит классифицированную ошибку хранилища в доменную.
// Неизвестные ошибки только оборачиваются и становятся INTERNAL_ERROR.
func FromStore(err error, message string) error {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewDomainError(CodeNotFound, message, err)
	case errors.Is(err, ErrConflict):
		return NewDomainError(CodeConflict, message, err)
	case errors.Is(err, ErrForbidden):
		return NewDomainError(CodeForbidden, message, err)
	case errors.Is(err, ErrInvalidInput):
		return NewDomainError(CodeInvalidInput, message, err)
	case errors.Is(err, ErrQueryUnsupported):
		return NewDomainError(CodeQueryUnsupported, message, err)
	case errors.Is(err, ErrUnauthenticated):
		return NewDomainError(CodeUnauthenticated, message, err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
