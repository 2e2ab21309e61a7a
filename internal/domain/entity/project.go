package entity

import "time"

type AccessLevel string

const (
	AccessNone    AccessLevel = ""
	AccessView    AccessLevel = "view"
	AccessComment AccessLevel = "comment"
	AccessEdit    AccessLevel = "edit"
	// AccessOwner не хранится в project_teams, только вычисляется для создателя
	AccessOwner AccessLevel = "owner"
)

// IsValid проверяет уровень доступа, который можно выдать команде
func (l AccessLevel) IsValid() bool {
	return l == AccessView || l == AccessComment || l == AccessEdit
}

// Rank возвращает порядок уровня для сравнения
func (l AccessLevel) Rank() int {
	switch l {
	case AccessView:
		return 1
	case AccessComment:
		return 2
	case AccessEdit:
		return 3
	case AccessOwner:
		return 4
	default:
		return 0
	}
}

// AtLeast сообщает, что уровень не ниже other
func (l AccessLevel) AtLeast(other AccessLevel) bool {
	return l.Rank() >= other.Rank()
}

type Project struct {
	ID          string
	Name        string
	Description *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectPatch частичное обновление проекта, nil означает "не менять"
type ProjectPatch struct {
	Name        *string
	Description *string
}

// IsEmpty сообщает, что патч ничего не меняет
func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// Apply возвращает копию проекта с примененным патчем
func (p ProjectPatch) Apply(project Project, now time.Time) Project {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = p.Description
	}
	project.UpdatedAt = now
	return project
}

// ProjectTeam связь проекта с командой
type ProjectTeam struct {
	ID          string
	ProjectID   string
	TeamID      string
	AccessLevel AccessLevel
	AddedAt     time.Time
	AddedBy     string
}

// ProjectShare проект, доступный через команду, вместе с уровнем доступа
type ProjectShare struct {
	Project     *Project
	TeamID      string
	AccessLevel AccessLevel
}

// VisibleProject проект в списке пользователя с аннотациями владения
type VisibleProject struct {
	Project
	IsOwner     bool
	IsShared    bool
	AccessLevel AccessLevel
}
