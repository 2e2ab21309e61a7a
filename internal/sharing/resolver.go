// Package sharing вычисляет проекты, видимые пользователю: собственные и
// доступные через команды.
package sharing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/access"
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/repository"
)

// Resolver собирает список видимых проектов
type Resolver struct {
	projectRepo     repository.ProjectRepository
	memberRepo      repository.TeamMemberRepository
	projectTeamRepo repository.ProjectTeamRepository
	log             *zap.Logger
}

// NewResolver создает новый resolver
func NewResolver(
	projectRepo repository.ProjectRepository,
	memberRepo repository.TeamMemberRepository,
	projectTeamRepo repository.ProjectTeamRepository,
	log *zap.Logger,
) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		projectRepo:     projectRepo,
		memberRepo:      memberRepo,
		projectTeamRepo: projectTeamRepo,
		log:             log.Named("sharing"),
	}
}

// Resolve возвращает проекты пользователя: сначала собственные, затем
// доступные через команды, без повторов. При ошибке загрузки возвращается
// пустой список вместе с ошибкой DATA_LOAD_FAILED.
func (r *Resolver) Resolve(ctx context.Context, userID string) ([]entity.VisibleProject, error) {
	if userID == "" {
		return []entity.VisibleProject{}, domainErrors.NewDomainError(
			domainErrors.CodeUnauthenticated,
			"not signed in",
			domainErrors.ErrUnauthenticated,
		)
	}

	rows, err := WithFallback(ctx, r.log, "visible_projects",
		func(ctx context.Context) ([]entity.VisibleProject, error) {
			return r.projectRepo.ListVisible(ctx, userID)
		},
		func(ctx context.Context) ([]entity.VisibleProject, error) {
			return r.listFlat(ctx, userID)
		},
	)
	if err != nil {
		r.log.Error("failed to resolve visible projects",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return []entity.VisibleProject{}, domainErrors.NewDomainError(
			domainErrors.CodeDataLoadFailed,
			"failed to load projects",
			fmt.Errorf("%w: %w", domainErrors.ErrDataLoad, err),
		)
	}

	return Merge(userID, rows), nil
}

// listFlat загружает те же данные тремя простыми запросами
func (r *Resolver) listFlat(ctx context.Context, userID string) ([]entity.VisibleProject, error) {
	owned, err := r.projectRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned projects: %w", err)
	}

	teamIDs, err := r.memberRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}

	var shares []entity.ProjectShare
	if len(teamIDs) > 0 {
		shares, err = r.projectTeamRepo.ListProjectsByTeams(ctx, teamIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to list team projects: %w", err)
		}
	}

	rows := make([]entity.VisibleProject, 0, len(owned)+len(shares))
	for _, p := range owned {
		rows = append(rows, entity.VisibleProject{Project: p})
	}
	for _, share := range shares {
		if share.Project == nil {
			continue
		}
		rows = append(rows, entity.VisibleProject{
			Project:     *share.Project,
			IsShared:    true,
			AccessLevel: share.AccessLevel,
		})
	}
	return rows, nil
}

// Merge убирает повторы по id и аннотирует проекты для userID.
// Собственные проекты идут первыми, порядок внутри групп сохраняется.
// Для проекта, доступного через несколько команд, берется наивысший уровень.
func Merge(userID string, rows []entity.VisibleProject) []entity.VisibleProject {
	result := make([]entity.VisibleProject, 0, len(rows))
	index := make(map[string]int, len(rows))

	add := func(row entity.VisibleProject) {
		if row.ID == "" {
			return
		}
		if i, ok := index[row.ID]; ok {
			if !result[i].IsOwner && row.AccessLevel.Rank() > result[i].AccessLevel.Rank() {
				result[i].AccessLevel = row.AccessLevel
			}
			return
		}

		owner := access.IsOwner(row.CreatedBy, userID)
		row.IsOwner = owner
		row.IsShared = !owner
		if owner {
			row.AccessLevel = entity.AccessOwner
		} else if !row.AccessLevel.IsValid() {
			row.AccessLevel = entity.AccessView
		}

		index[row.ID] = len(result)
		result = append(result, row)
	}

	for _, row := range rows {
		if access.IsOwner(row.CreatedBy, userID) {
			add(row)
		}
	}
	for _, row := range rows {
		if !access.IsOwner(row.CreatedBy, userID) {
			add(row)
		}
	}
	return result
}
