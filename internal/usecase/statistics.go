package usecase

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	"github.com/DB3NJ4/StackFlow/internal/sharing"
)

// StatisticsUseCase реализует бизнес-логику для статистики
type StatisticsUseCase struct {
	loader
	resolver *sharing.Resolver
}

// NewStatisticsUseCase создает новый usecase для статистики
func NewStatisticsUseCase(repos Repositories, resolver *sharing.Resolver, log *zap.Logger) *StatisticsUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatisticsUseCase{
		loader:   newLoader(repos, nil, log.Named("statistics")),
		resolver: resolver,
	}
}

// GetDashboard возвращает сводку пользователя: проекты, команды и задачи
func (uc *StatisticsUseCase) GetDashboard(ctx context.Context, user entity.User) (*entity.Dashboard, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	projects, err := uc.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	dashboard := &entity.Dashboard{}
	for _, p := range projects {
		if p.IsOwner {
			dashboard.OwnedProjects++
		} else {
			dashboard.SharedProjects++
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		teamIDs, err := uc.userTeamIDs(gctx, user.ID)
		if err != nil {
			return storeError(err, "failed to load teams")
		}
		dashboard.Teams = len(teamIDs)
		return nil
	})
	g.Go(func() error {
		stats, err := uc.repos.Statistics.GetIssueStatistics(gctx, projectIDs(projects))
		if err != nil {
			return storeError(err, "failed to load issue statistics")
		}
		dashboard.Issues = *stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dashboard, nil
}
