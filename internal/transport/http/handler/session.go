package handler

import (
	"net/http"

	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

// SessionHandler обрабатывает запросы текущей сессии
type SessionHandler struct {
	sessions SessionService
}

// NewSessionHandler создает новый handler сессии
func NewSessionHandler(sessions SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Me обрабатывает GET /me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessions.CurrentUser(r.Context())
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToUserDTO(user))
}

// SignOut обрабатывает POST /auth/signout
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
