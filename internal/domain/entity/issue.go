package entity

import "time"

type IssueStatus string

const (
	IssueStatusTodo       IssueStatus = "todo"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusReview     IssueStatus = "review"
	IssueStatusDone       IssueStatus = "done"
)

// IssueStatuses все статусы в порядке колонок доски
var IssueStatuses = []IssueStatus{
	IssueStatusTodo,
	IssueStatusInProgress,
	IssueStatusReview,
	IssueStatusDone,
}

// IsValid проверяет статус задачи
func (s IssueStatus) IsValid() bool {
	switch s {
	case IssueStatusTodo, IssueStatusInProgress, IssueStatusReview, IssueStatusDone:
		return true
	}
	return false
}

type IssuePriority string

const (
	IssuePriorityLow      IssuePriority = "low"
	IssuePriorityMedium   IssuePriority = "medium"
	IssuePriorityHigh     IssuePriority = "high"
	IssuePriorityCritical IssuePriority = "critical"
)

var IssuePriorities = []IssuePriority{
	IssuePriorityLow,
	IssuePriorityMedium,
	IssuePriorityHigh,
	IssuePriorityCritical,
}

// IsValid проверяет приоритет задачи
func (p IssuePriority) IsValid() bool {
	switch p {
	case IssuePriorityLow, IssuePriorityMedium, IssuePriorityHigh, IssuePriorityCritical:
		return true
	}
	return false
}

type Issue struct {
	ID          string
	Title       string
	Description *string
	Status      IssueStatus
	Priority    IssuePriority
	ProjectID   string
	AssignedTo  *string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IssuePatch частичное обновление задачи, nil означает "не менять".
// Проект и автор задачи через патч не меняются.
type IssuePatch struct {
	Title       *string
	Description *string
	Status      *IssueStatus
	Priority    *IssuePriority
	AssignedTo  *string
	// ClearAssignee снимает исполнителя
	ClearAssignee bool
}

// IsEmpty сообщает, что патч ничего не меняет
func (p IssuePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.AssignedTo == nil && !p.ClearAssignee
}

// Apply возвращает копию задачи с примененным патчем и обновленным updated_at
func (p IssuePatch) Apply(issue Issue, now time.Time) Issue {
	if p.Title != nil {
		issue.Title = *p.Title
	}
	if p.Description != nil {
		issue.Description = p.Description
	}
	if p.Status != nil {
		issue.Status = *p.Status
	}
	if p.Priority != nil {
		issue.Priority = *p.Priority
	}
	if p.ClearAssignee {
		issue.AssignedTo = nil
	} else if p.AssignedTo != nil {
		issue.AssignedTo = p.AssignedTo
	}
	issue.UpdatedAt = now
	return issue
}
