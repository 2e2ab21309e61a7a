package dto

import (
	"time"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит детали ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UserDTO текущий пользователь
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ProjectDTO представляет проект в списке пользователя
type ProjectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsOwner     bool      `json:"is_owner"`
	IsShared    bool      `json:"is_shared"`
	AccessLevel string    `json:"access_level"`
}

// ProjectListResponse список проектов; при ошибке загрузки список пустой
// и заполнено поле error
type ProjectListResponse struct {
	Projects []ProjectDTO `json:"projects"`
	Error    *ErrorDetail `json:"error,omitempty"`
}

// CreateProjectRequest запрос на создание проекта
type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateProjectRequest запрос на изменение проекта
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// ShareProjectRequest запрос на открытие проекта команде
type ShareProjectRequest struct {
	TeamID      string `json:"team_id" validate:"required,uuid"`
	AccessLevel string `json:"access_level" validate:"required,oneof=view comment edit"`
}

// ProjectTeamDTO связь проекта с командой
type ProjectTeamDTO struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	TeamID      string    `json:"team_id"`
	AccessLevel string    `json:"access_level"`
	AddedAt     time.Time `json:"added_at"`
	AddedBy     string    `json:"added_by"`
}

// TeamMemberDTO представляет участника команды
type TeamMemberDTO struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
	Email    string    `json:"email,omitempty"`
}

// TeamDTO представляет команду
type TeamDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Members     []TeamMemberDTO `json:"members"`
	UserRole    string          `json:"user_role,omitempty"`
}

// TeamListResponse список команд; при ошибке загрузки список пустой
type TeamListResponse struct {
	Teams []TeamDTO    `json:"teams"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// CreateTeamRequest запрос на создание команды
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// InviteMemberRequest запрос на приглашение в команду
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=owner admin member"`
}

// TeamProjectDTO проект, открытый команде
type TeamProjectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AccessLevel string    `json:"access_level"`
}

// TeamProjectsResponse проекты команды
type TeamProjectsResponse struct {
	Projects []TeamProjectDTO `json:"projects"`
}

// IssueDTO представляет задачу
type IssueDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ProjectID   string    `json:"project_id"`
	AssignedTo  *string   `json:"assigned_to"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IssueListResponse список задач
type IssueListResponse struct {
	Issues []IssueDTO `json:"issues"`
}

// CreateIssueRequest запрос на создание задачи
type CreateIssueRequest struct {
	Title       string  `json:"title" validate:"required,max=300"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	Status      string  `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	ProjectID   string  `json:"project_id" validate:"required,uuid"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateIssueRequest запрос на изменение задачи; clear_assignee снимает исполнителя
type UpdateIssueRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=300"`
	Description   *string `json:"description" validate:"omitempty,max=10000"`
	Status        *string `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	AssignedTo    *string `json:"assigned_to" validate:"omitempty,uuid"`
	ClearAssignee bool    `json:"clear_assignee"`
}

// IssueStatisticsDTO счетчики задач
type IssueStatisticsDTO struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPriority map[string]int `json:"by_priority"`
}

// RecentIssuesResponse последние задачи и счетчики
type RecentIssuesResponse struct {
	Issues     []IssueDTO         `json:"issues"`
	Statistics IssueStatisticsDTO `json:"statistics"`
}

// DashboardResponse сводка пользователя
type DashboardResponse struct {
	OwnedProjects  int                `json:"owned_projects"`
	SharedProjects int                `json:"shared_projects"`
	Teams          int                `json:"teams"`
	Issues         IssueStatisticsDTO `json:"issues"`
}
