// Package workspace хранит согласованные коллекции сущностей каждого
// вошедшего пользователя на время его сессии.
package workspace

import (
	"sync"

	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	"github.com/DB3NJ4/StackFlow/internal/optimistic"
	"github.com/DB3NJ4/StackFlow/internal/session"
)

// Workspace коллекции одного пользователя
type Workspace struct {
	UserID   string
	Projects *optimistic.Collection[entity.VisibleProject]
	Issues   *optimistic.Collection[entity.Issue]
	Teams    *optimistic.Collection[entity.TeamWithMembers]
}

func newWorkspace(userID string, log *zap.Logger) *Workspace {
	log = log.With(zap.String("user_id", userID))
	return &Workspace{
		UserID: userID,
		Projects: optimistic.NewCollection("projects",
			func(p entity.VisibleProject) string { return p.ID }, log),
		Issues: optimistic.NewCollection("issues",
			func(i entity.Issue) string { return i.ID }, log),
		Teams: optimistic.NewCollection("teams",
			func(t entity.TeamWithMembers) string { return t.ID }, log),
	}
}

// Close отключает коллекции: незавершенные записи больше не меняют состояние
func (w *Workspace) Close() {
	w.Projects.Close()
	w.Issues.Close()
	w.Teams.Close()
}

// AuthNotifier источник событий сессий
type AuthNotifier interface {
	OnAuthChange(fn func(session.Event)) (unsubscribe func())
}

// Registry создает рабочие пространства по требованию и закрывает их при выходе пользователя
type Registry struct {
	mu          sync.Mutex
	spaces      map[string]*Workspace
	log         *zap.Logger
	unsubscribe func()
}

// NewRegistry создает реестр и подписывается на события сессий
func NewRegistry(auth AuthNotifier, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{
		spaces: make(map[string]*Workspace),
		log:    log.Named("workspace"),
	}
	if auth != nil {
		r.unsubscribe = auth.OnAuthChange(r.handleAuthChange)
	}
	return r
}

func (r *Registry) handleAuthChange(event session.Event) {
	if event.Type == session.SignedOut {
		r.Drop(event.User.ID)
	}
}

// Get возвращает рабочее пространство пользователя, создавая его при первом обращении
func (r *Registry) Get(userID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ws, ok := r.spaces[userID]; ok {
		return ws
	}
	ws := newWorkspace(userID, r.log)
	r.spaces[userID] = ws
	r.log.Debug("workspace created", zap.String("user_id", userID))
	return ws
}

// Drop закрывает и удаляет рабочее пространство пользователя
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	ws, ok := r.spaces[userID]
	delete(r.spaces, userID)
	r.mu.Unlock()

	if ok {
		ws.Close()
		r.log.Debug("workspace dropped", zap.String("user_id", userID))
	}
}

// Len число активных рабочих пространств
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spaces)
}

// Close отписывается от событий и закрывает все рабочие пространства
func (r *Registry) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
	}

	r.mu.Lock()
	spaces := r.spaces
	r.spaces = make(map[string]*Workspace)
	r.mu.Unlock()

	for _, ws := range spaces {
		ws.Close()
	}
}
