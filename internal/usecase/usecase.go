package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/access"
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/events"
	"github.com/DB3NJ4/StackFlow/internal/repository"
	"github.com/DB3NJ4/StackFlow/internal/sharing"
)

// Repositories набор репозиториев, общий для всех usecase
type Repositories struct {
	Projects     repository.ProjectRepository
	Teams        repository.TeamRepository
	Members      repository.TeamMemberRepository
	ProjectTeams repository.ProjectTeamRepository
	Issues       repository.IssueRepository
	Profiles     repository.ProfileRepository
	Statistics   repository.StatisticsRepository
	TxManager    repository.TransactionManager
}

// loader общие загрузки и проверки прав
type loader struct {
	repos     Repositories
	publisher events.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func newLoader(repos Repositories, publisher events.Publisher, log *zap.Logger) loader {
	if log == nil {
		log = zap.NewNop()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return loader{
		repos:     repos,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func requireUser(user entity.User) error {
	if user.ID == "" {
		return domainErrors.NewDomainError(
			domainErrors.CodeUnauthenticated,
			"not signed in",
			domainErrors.ErrUnauthenticated,
		)
	}
	return nil
}

// storeError переводит ошибку хранилища или коллекции в доменную
func storeError(err error, message string) error {
	if errors.Is(err, domainErrors.ErrClosed) {
		return domainErrors.NewDomainError(domainErrors.CodeUnauthenticated, "session has ended", err)
	}
	return domainErrors.FromStore(err, message)
}

// userTeamIDs команды пользователя: где он участник и которые он создал
func (l *loader) userTeamIDs(ctx context.Context, userID string) ([]string, error) {
	memberOf, err := l.repos.Members.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	owned, err := l.repos.Teams.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned teams: %w", err)
	}

	seen := make(map[string]struct{}, len(memberOf)+len(owned))
	ids := make([]string, 0, len(memberOf)+len(owned))
	for _, id := range memberOf {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, team := range owned {
		if _, ok := seen[team.ID]; !ok {
			seen[team.ID] = struct{}{}
			ids = append(ids, team.ID)
		}
	}
	return ids, nil
}

// projectAccess загружает проект и уровень доступа пользователя к нему.
// Проект без доступа выглядит как отсутствующий.
func (l *loader) projectAccess(ctx context.Context, userID, projectID string) (*entity.Project, entity.AccessLevel, error) {
	project, err := l.repos.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, entity.AccessNone, domainErrors.NotFound("project not found")
		}
		return nil, entity.AccessNone, storeError(err, "failed to get project")
	}

	if access.IsOwner(project.CreatedBy, userID) {
		return project, entity.AccessOwner, nil
	}

	teamIDs, err := l.userTeamIDs(ctx, userID)
	if err != nil {
		return nil, entity.AccessNone, storeError(err, "failed to load teams")
	}
	var shares []entity.ProjectTeam
	if len(teamIDs) > 0 {
		shares, err = l.repos.ProjectTeams.ListByProject(ctx, projectID)
		if err != nil {
			return nil, entity.AccessNone, storeError(err, "failed to load project shares")
		}
	}

	level := access.ProjectAccess(project, userID, teamIDs, shares)
	if !access.CanReadProject(level) {
		return nil, entity.AccessNone, domainErrors.NotFound("project not found")
	}
	return project, level, nil
}

// loadMembers загружает участников с email, а если связанный запрос не
// поддерживается, то без email
func (l *loader) loadMembers(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	return sharing.WithFallback(ctx, l.log, "team_members",
		func(ctx context.Context) ([]entity.TeamMember, error) {
			return l.repos.Members.ListByTeamWithProfiles(ctx, teamID)
		},
		func(ctx context.Context) ([]entity.TeamMember, error) {
			return l.repos.Members.ListByTeam(ctx, teamID)
		},
	)
}

// loadTeam загружает команду с участниками и ролью пользователя
func (l *loader) loadTeam(ctx context.Context, userID, teamID string) (*entity.TeamWithMembers, error) {
	team, err := l.repos.Teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("team not found")
		}
		return nil, storeError(err, "failed to get team")
	}

	members, err := l.loadMembers(ctx, teamID)
	if err != nil {
		return nil, storeError(err, "failed to load team members")
	}

	result := &entity.TeamWithMembers{Team: *team, Members: members}
	result.UserRole = access.RoleOf(result, userID)
	return result, nil
}

// publish отправляет событие; ошибка только логируется
func (l *loader) publish(ctx context.Context, event events.Event) {
	if err := l.publisher.Publish(ctx, event); err != nil {
		l.log.Warn("failed to publish event",
			zap.String("type", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}

func visible(project entity.Project, userID string, level entity.AccessLevel) entity.VisibleProject {
	owner := access.IsOwner(project.CreatedBy, userID)
	if owner {
		level = entity.AccessOwner
	}
	return entity.VisibleProject{
		Project:     project,
		IsOwner:     owner,
		IsShared:    !owner,
		AccessLevel: level,
	}
}
