package repository

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) (*entity.Project, error)
	Update(ctx context.Context, projectID string, patch entity.ProjectPatch) (*entity.Project, error)
	Delete(ctx context.Context, projectID string) error
	GetByID(ctx context.Context, projectID string) (*entity.Project, error)
	ListByOwner(ctx context.Context, userID string) ([]entity.Project, error)
	// ListVisible одним запросом возвращает собственные проекты и проекты команд
	// пользователя: по строке на каждую связь project_teams, без дедупликации
	ListVisible(ctx context.Context, userID string) ([]entity.VisibleProject, error)
}

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) (*entity.Team, error)
	GetByID(ctx context.Context, teamID string) (*entity.Team, error)
	ListByOwner(ctx context.Context, userID string) ([]entity.Team, error)
	Delete(ctx context.Context, teamID string) error
}

type TeamMemberRepository interface {
	Add(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error)
	GetByID(ctx context.Context, memberID string) (*entity.TeamMember, error)
	Remove(ctx context.Context, memberID string) error
	Exists(ctx context.Context, teamID, userID string) (bool, error)
	CountOwners(ctx context.Context, teamID string) (int, error)
	ListByTeam(ctx context.Context, teamID string) ([]entity.TeamMember, error)
	// ListByTeamWithProfiles дополнительно заполняет email из profiles
	ListByTeamWithProfiles(ctx context.Context, teamID string) ([]entity.TeamMember, error)
	ListTeamIDsByUser(ctx context.Context, userID string) ([]string, error)
	ListMemberships(ctx context.Context, userID string) ([]entity.Membership, error)
	DeleteByTeam(ctx context.Context, teamID string) error
}

type ProjectTeamRepository interface {
	Create(ctx context.Context, share *entity.ProjectTeam) (*entity.ProjectTeam, error)
	Delete(ctx context.Context, projectID, teamID string) error
	DeleteByTeam(ctx context.Context, teamID string) error
	ListByProject(ctx context.Context, projectID string) ([]entity.ProjectTeam, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]entity.ProjectTeam, error)
	// ListByTeam возвращает связи команды; Project равен nil, если проект уже удален
	ListByTeam(ctx context.Context, teamID string) ([]entity.ProjectShare, error)
	ListProjectsByTeams(ctx context.Context, teamIDs []string) ([]entity.ProjectShare, error)
}

type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error)
	Update(ctx context.Context, issueID string, patch entity.IssuePatch) (*entity.Issue, error)
	Delete(ctx context.Context, issueID string) error
	GetByID(ctx context.Context, issueID string) (*entity.Issue, error)
	ListByProjects(ctx context.Context, projectIDs []string) ([]entity.Issue, error)
}

type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StatisticsRepository interface {
	GetIssueStatistics(ctx context.Context, projectIDs []string) (*entity.IssueStatistics, error)
}
