// Package events публикует события изменений сущностей для внешних подписчиков.
// Публикация best effort: ошибка логируется и не отменяет уже выполненную запись.
package events

import (
	"context"
	"time"
)

// Exchange topic-обменник, в который публикуются все события
const Exchange = "stackflow"

type Type string

const (
	IssueCreated      Type = "issue.created"
	IssueUpdated      Type = "issue.updated"
	IssueDeleted      Type = "issue.deleted"
	ProjectShared     Type = "project.shared"
	ProjectUnshared   Type = "project.unshared"
	TeamMemberAdded   Type = "team.member_added"
	TeamMemberRemoved Type = "team.member_removed"
	TeamDeleted       Type = "team.deleted"
)

// Event событие изменения; Type служит ключом маршрутизации
type Event struct {
	Type       Type              `json:"type"`
	EntityID   string            `json:"entity_id"`
	ActorID    string            `json:"actor_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// New создает событие с текущим временем
func New(t Type, entityID, actorID string, attrs map[string]string) Event {
	return Event{
		Type:       t,
		EntityID:   entityID,
		ActorID:    actorID,
		Attributes: attrs,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop публикатор для окружений без брокера
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
