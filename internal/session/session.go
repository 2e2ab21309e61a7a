// Package session проверяет токены внешнего сервиса аутентификации и
// оповещает подписчиков о начале и конце сессий пользователей.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

type EventType string

const (
	SignedIn  EventType = "SIGNED_IN"
	SignedOut EventType = "SIGNED_OUT"
)

// Event изменение состояния аутентификации пользователя
type Event struct {
	Type EventType
	User entity.User
}

// Provider источник текущего пользователя
type Provider interface {
	Authenticate(ctx context.Context, rawToken string) (*entity.User, error)
	CurrentUser(ctx context.Context) (*entity.User, error)
	OnAuthChange(fn func(Event)) (unsubscribe func())
	SignOut(ctx context.Context) error
}

// MaxTokenLifetime наибольший допустимый срок жизни токена (exp - iat).
// Записи о выходе старше этого срока удаляются.
const MaxTokenLifetime = 7 * 24 * time.Hour

// signOut момент выхода и время выдачи последнего токена сессии
type signOut struct {
	at         time.Time
	lastIssued time.Time
}

// Manager реализует Provider поверх HS256 токенов
type Manager struct {
	secret []byte
	issuer string
	log    *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	active    map[string]time.Time
	signedOut map[string]signOut
	listeners map[int]func(Event)
	nextID    int
}

// NewManager создает менеджер сессий. Пустой issuer не проверяется.
func NewManager(secret, issuer string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		secret:    []byte(secret),
		issuer:    issuer,
		log:       log.Named("session"),
		now:       time.Now,
		active:    make(map[string]time.Time),
		signedOut: make(map[string]signOut),
		listeners: make(map[int]func(Event)),
	}
}

// Authenticate проверяет токен и возвращает пользователя.
// Первая успешная проверка начинает сессию и рассылает SignedIn.
func (m *Manager) Authenticate(ctx context.Context, rawToken string) (*entity.User, error) {
	claims, err := m.parse(rawToken)
	if err != nil {
		m.log.Debug("token rejected", zap.Error(err))
		return nil, unauthenticated("invalid or expired token")
	}

	user := &entity.User{ID: claims.Subject, Email: claims.Email}
	issuedAt := claims.IssuedAt.Time

	m.mu.Lock()
	if out, ok := m.signedOut[user.ID]; ok && !out.accepts(issuedAt) {
		m.mu.Unlock()
		return nil, unauthenticated("session ended")
	}
	last, known := m.active[user.ID]
	if !known || issuedAt.After(last) {
		m.active[user.ID] = issuedAt
	}
	m.mu.Unlock()

	if !known {
		m.log.Info("session started", zap.String("user_id", user.ID))
		m.emit(Event{Type: SignedIn, User: *user})
	}
	return user, nil
}

// CurrentUser возвращает пользователя запроса
func (m *Manager) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return nil, unauthenticated("not signed in")
	}
	return user, nil
}

// OnAuthChange подписывает fn на события сессий
func (m *Manager) OnAuthChange(fn func(Event)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.listeners, id)
			m.mu.Unlock()
		})
	}
}

// SignOut завершает сессию пользователя запроса.
// Токены, выданные до выхода, больше не принимаются.
func (m *Manager) SignOut(ctx context.Context) error {
	user, err := m.CurrentUser(ctx)
	if err != nil {
		return err
	}

	now := m.now()

	m.mu.Lock()
	m.signedOut[user.ID] = signOut{at: now, lastIssued: m.active[user.ID]}
	delete(m.active, user.ID)
	for id, out := range m.signedOut {
		if now.Sub(out.at) > MaxTokenLifetime {
			delete(m.signedOut, id)
		}
	}
	m.mu.Unlock()

	m.log.Info("session ended", zap.String("user_id", user.ID))
	m.emit(Event{Type: SignedOut, User: *user})
	return nil
}

func (m *Manager) parse(rawToken string) (*Claims, error) {
	if rawToken == "" {
		return nil, errors.New("empty token")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, errors.New("subject is not a user id")
	}
	if claims.IssuedAt == nil {
		return nil, errors.New("token has no issue time")
	}
	if claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time) > MaxTokenLifetime {
		return nil, errors.New("token lifetime is too long")
	}
	return claims, nil
}

// emit вызывает подписчиков вне блокировки
func (m *Manager) emit(event Event) {
	m.mu.Lock()
	fns := make([]func(Event), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

// accepts сообщает, выдан ли токен после выхода. iat хранится с точностью
// до секунды, поэтому токен той же секунды, что и выход, принимается,
// если он новее последнего токена завершенной сессии.
func (o signOut) accepts(issuedAt time.Time) bool {
	if issuedAt.Before(o.at.Truncate(time.Second)) {
		return false
	}
	return issuedAt.After(o.lastIssued)
}

func unauthenticated(message string) *domainErrors.DomainError {
	return domainErrors.NewDomainError(domainErrors.CodeUnauthenticated, message, domainErrors.ErrUnauthenticated)
}
