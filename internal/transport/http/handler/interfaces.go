package handler

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	"github.com/DB3NJ4/StackFlow/internal/session"
	"github.com/DB3NJ4/StackFlow/internal/usecase"
)

type ProjectService interface {
	ListProjects(ctx context.Context, user entity.User) ([]entity.VisibleProject, error)
	CreateProject(ctx context.Context, user entity.User, name string, description *string) (*entity.VisibleProject, error)
	UpdateProject(ctx context.Context, user entity.User, projectID string, patch entity.ProjectPatch) (*entity.VisibleProject, error)
	DeleteProject(ctx context.Context, user entity.User, projectID string) error
	ShareWithTeam(ctx context.Context, user entity.User, projectID, teamID string, level entity.AccessLevel) (*entity.ProjectTeam, error)
	UnshareFromTeam(ctx context.Context, user entity.User, projectID, teamID string) error
}

type TeamService interface {
	ListTeams(ctx context.Context, user entity.User) ([]entity.TeamWithMembers, error)
	CreateTeam(ctx context.Context, user entity.User, name string, description *string) (*entity.TeamWithMembers, error)
	InviteMember(ctx context.Context, user entity.User, teamID, email string, role entity.Role) (*entity.TeamMember, error)
	RemoveMember(ctx context.Context, user entity.User, teamID, memberID string) error
	DeleteTeam(ctx context.Context, user entity.User, teamID string) error
	ListTeamProjects(ctx context.Context, user entity.User, teamID string) ([]entity.ProjectShare, error)
	RemoveProjectFromTeam(ctx context.Context, user entity.User, teamID, projectID string) error
}

type IssueService interface {
	ListIssues(ctx context.Context, user entity.User, projectID string) ([]entity.Issue, error)
	RecentIssues(ctx context.Context, user entity.User) (*entity.IssueOverview, error)
	CreateIssue(ctx context.Context, user entity.User, input usecase.CreateIssueInput) (*entity.Issue, error)
	UpdateIssue(ctx context.Context, user entity.User, issueID string, patch entity.IssuePatch) (*entity.Issue, error)
	DeleteIssue(ctx context.Context, user entity.User, issueID string) error
}

type StatisticsService interface {
	GetDashboard(ctx context.Context, user entity.User) (*entity.Dashboard, error)
}

type SessionService interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	SignOut(ctx context.Context) error
}

var (
	_ ProjectService    = (*usecase.ProjectUseCase)(nil)
	_ TeamService       = (*usecase.TeamUseCase)(nil)
	_ IssueService      = (*usecase.IssueUseCase)(nil)
	_ StatisticsService = (*usecase.StatisticsUseCase)(nil)
	_ SessionService    = (*session.Manager)(nil)
)
