package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/access"
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/events"
	"github.com/DB3NJ4/StackFlow/internal/sharing"
	"github.com/DB3NJ4/StackFlow/internal/workspace"
)

// ProjectUseCase реализует бизнес-логику для проектов
type ProjectUseCase struct {
	loader
	resolver *sharing.Resolver
	spaces   *workspace.Registry
}

// NewProjectUseCase создает новый usecase для проектов
func NewProjectUseCase(
	repos Repositories,
	resolver *sharing.Resolver,
	spaces *workspace.Registry,
	publisher events.Publisher,
	log *zap.Logger,
) *ProjectUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProjectUseCase{
		loader:   newLoader(repos, publisher, log.Named("projects")),
		resolver: resolver,
		spaces:   spaces,
	}
}

// ListProjects возвращает видимые проекты и обновляет состояние сессии.
// При ошибке загрузки список пустой.
func (uc *ProjectUseCase) ListProjects(ctx context.Context, user entity.User) ([]entity.VisibleProject, error) {
	if err := requireUser(user); err != nil {
		return []entity.VisibleProject{}, err
	}

	projects, err := uc.resolver.Resolve(ctx, user.ID)
	uc.spaces.Get(user.ID).Projects.Replace(projects)
	return projects, err
}

// CreateProject создает проект; в состояние он попадает после подтверждения
func (uc *ProjectUseCase) CreateProject(ctx context.Context, user entity.User, name string, description *string) (*entity.VisibleProject, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.InvalidInput("project name is required")
	}

	ws := uc.spaces.Get(user.ID)
	created, err := ws.Projects.Insert(ctx, func(ctx context.Context) (entity.VisibleProject, error) {
		project, err := uc.repos.Projects.Create(ctx, &entity.Project{
			Name:        name,
			Description: description,
			CreatedBy:   user.ID,
		})
		if err != nil {
			return entity.VisibleProject{}, err
		}
		return visible(*project, user.ID, entity.AccessOwner), nil
	})
	if err != nil {
		return nil, storeError(err, "failed to create project")
	}

	uc.log.Info("project created", zap.String("project_id", created.ID), zap.String("user_id", user.ID))
	return &created, nil
}

// UpdateProject изменяет проект; доступно только владельцу
func (uc *ProjectUseCase) UpdateProject(ctx context.Context, user entity.User, projectID string, patch entity.ProjectPatch) (*entity.VisibleProject, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainErrors.InvalidInput("nothing to update")
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domainErrors.InvalidInput("project name cannot be empty")
		}
		patch.Name = &name
	}

	project, level, err := uc.projectAccess(ctx, user.ID, projectID)
	if err != nil {
		return nil, err
	}
	if !access.CanManageProject(level) {
		return nil, domainErrors.Forbidden("only the project owner can edit the project")
	}

	ws := uc.spaces.Get(user.ID)
	if _, ok := ws.Projects.Get(projectID); !ok {
		ws.Projects.Put(visible(*project, user.ID, level))
	}

	now := uc.now()
	updated, err := ws.Projects.Update(ctx, projectID,
		func(current entity.VisibleProject) entity.VisibleProject {
			current.Project = patch.Apply(current.Project, now)
			return current
		},
		func(ctx context.Context) (*entity.VisibleProject, error) {
			canonical, err := uc.repos.Projects.Update(ctx, projectID, patch)
			if err != nil {
				return nil, err
			}
			result := visible(*canonical, user.ID, level)
			return &result, nil
		},
	)
	if err != nil {
		return nil, storeError(err, "failed to update project")
	}
	return &updated, nil
}

// DeleteProject удаляет проект вместе с задачами и связями с командами
func (uc *ProjectUseCase) DeleteProject(ctx context.Context, user entity.User, projectID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	_, level, err := uc.projectAccess(ctx, user.ID, projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(level) {
		return domainErrors.Forbidden("only the project owner can delete the project")
	}

	ws := uc.spaces.Get(user.ID)
	err = ws.Projects.Remove(ctx, projectID, func(ctx context.Context) error {
		return uc.repos.Projects.Delete(ctx, projectID)
	})
	if err != nil {
		return storeError(err, "failed to delete project")
	}

	uc.log.Info("project deleted", zap.String("project_id", projectID), zap.String("user_id", user.ID))
	return nil
}

// ShareWithTeam открывает проект команде, в которой состоит владелец
func (uc *ProjectUseCase) ShareWithTeam(ctx context.Context, user entity.User, projectID, teamID string, level entity.AccessLevel) (*entity.ProjectTeam, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if !level.IsValid() {
		return nil, domainErrors.InvalidInput("access level must be one of view, comment, edit")
	}

	_, projectLevel, err := uc.projectAccess(ctx, user.ID, projectID)
	if err != nil {
		return nil, err
	}
	if !access.CanManageProject(projectLevel) {
		return nil, domainErrors.Forbidden("only the project owner can share the project")
	}

	team, err := uc.loadTeam(ctx, user.ID, teamID)
	if err != nil {
		return nil, err
	}
	if !access.IsMember(team, user.ID) {
		return nil, domainErrors.Forbidden("you can only share with teams you belong to")
	}

	share, err := uc.repos.ProjectTeams.Create(ctx, &entity.ProjectTeam{
		ProjectID:   projectID,
		TeamID:      teamID,
		AccessLevel: level,
		AddedBy:     user.ID,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrConflict) {
			return nil, domainErrors.NewDomainError(
				domainErrors.CodeConflict,
				"project is already shared with this team",
				err,
			)
		}
		return nil, storeError(err, "failed to share project")
	}

	uc.publish(ctx, events.New(events.ProjectShared, projectID, user.ID, map[string]string{
		"team_id":      teamID,
		"access_level": string(level),
	}))
	return share, nil
}

// UnshareFromTeam закрывает проект для команды
func (uc *ProjectUseCase) UnshareFromTeam(ctx context.Context, user entity.User, projectID, teamID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	_, level, err := uc.projectAccess(ctx, user.ID, projectID)
	if err != nil {
		return err
	}
	if !access.CanManageProject(level) {
		return domainErrors.Forbidden("only the project owner can unshare the project")
	}

	if err := uc.repos.ProjectTeams.Delete(ctx, projectID, teamID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("project is not shared with this team")
		}
		return storeError(err, "failed to unshare project")
	}

	uc.publish(ctx, events.New(events.ProjectUnshared, projectID, user.ID, map[string]string{"team_id": teamID}))
	return nil
}
