package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// respondJSON отправляет JSON ответ
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// respondError отправляет ошибку в формате API
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// handleUseCaseError обрабатывает ошибки из usecase слоя
func handleUseCaseError(w http.ResponseWriter, err error) {
	detail := errorDetail(err)
	respondError(w, getStatusCodeByErrorCode(detail.Code), detail.Code, detail.Message)
}

// errorDetail код и сообщение ошибки; неизвестные ошибки не раскрываются
func errorDetail(err error) dto.ErrorDetail {
	var domainErr *domainErrors.DomainError
	if errors.As(err, &domainErr) {
		return dto.ErrorDetail{Code: domainErr.Code, Message: domainErr.Message}
	}
	return dto.ErrorDetail{Code: domainErrors.CodeInternal, Message: "internal server error"}
}

// getStatusCodeByErrorCode возвращает HTTP статус код по коду доменной ошибки
func getStatusCodeByErrorCode(code string) int {
	switch code {
	case domainErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case domainErrors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domainErrors.CodeForbidden:
		return http.StatusForbidden
	case domainErrors.CodeNotFound:
		return http.StatusNotFound
	case domainErrors.CodeConflict, domainErrors.CodeLastOwner:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeRequest читает JSON тело и проверяет его теги validate
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, "invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request"
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid uuid", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// currentUser возвращает пользователя запроса или отвечает 401
func currentUser(w http.ResponseWriter, r *http.Request) (entity.User, bool) {
	user, ok := session.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, domainErrors.CodeUnauthenticated, "not signed in")
		return entity.User{}, false
	}
	return *user, true
}

// pathID читает uuid из параметра пути
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, name+" must be a valid uuid")
		return "", false
	}
	return id, true
}
