package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DB3NJ4/StackFlow/internal/access"
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/events"
	"github.com/DB3NJ4/StackFlow/internal/sharing"
	"github.com/DB3NJ4/StackFlow/internal/workspace"
)

// RecentIssuesLimit сколько последних задач показывается на главной
const RecentIssuesLimit = 10

// CreateIssueInput данные новой задачи
type CreateIssueInput struct {
	Title       string
	Description *string
	Status      entity.IssueStatus
	Priority    entity.IssuePriority
	ProjectID   string
	AssignedTo  *string
}

// IssueUseCase реализует бизнес-логику для задач
type IssueUseCase struct {
	loader
	resolver *sharing.Resolver
	spaces   *workspace.Registry
}

// NewIssueUseCase создает новый usecase для задач
func NewIssueUseCase(
	repos Repositories,
	resolver *sharing.Resolver,
	spaces *workspace.Registry,
	publisher events.Publisher,
	log *zap.Logger,
) *IssueUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &IssueUseCase{
		loader:   newLoader(repos, publisher, log.Named("issues")),
		resolver: resolver,
		spaces:   spaces,
	}
}

// ListIssues возвращает задачи видимых проектов, новые первыми.
// С projectID только задачи этого проекта.
func (uc *IssueUseCase) ListIssues(ctx context.Context, user entity.User, projectID string) ([]entity.Issue, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	ws := uc.spaces.Get(user.ID)

	if projectID != "" {
		var issues []entity.Issue

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			_, _, err := uc.projectAccess(gctx, user.ID, projectID)
			return err
		})
		g.Go(func() error {
			var err error
			issues, err = uc.repos.Issues.ListByProjects(gctx, []string{projectID})
			if err != nil {
				return storeError(err, "failed to load issues")
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, issue := range issues {
			ws.Issues.Put(issue)
		}
		return nonNil(issues), nil
	}

	projects, err := uc.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	issues, err := uc.repos.Issues.ListByProjects(ctx, projectIDs(projects))
	if err != nil {
		return nil, storeError(err, "failed to load issues")
	}

	ws.Projects.Replace(projects)
	ws.Issues.Replace(issues)
	return nonNil(issues), nil
}

// RecentIssues возвращает последние задачи и счетчики по всем видимым проектам
func (uc *IssueUseCase) RecentIssues(ctx context.Context, user entity.User) (*entity.IssueOverview, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	projects, err := uc.resolver.Resolve(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	ids := projectIDs(projects)

	var (
		issues []entity.Issue
		stats  *entity.IssueStatistics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		issues, err = uc.repos.Issues.ListByProjects(gctx, ids)
		if err != nil {
			return storeError(err, "failed to load issues")
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = uc.repos.Statistics.GetIssueStatistics(gctx, ids)
		if err != nil {
			return storeError(err, "failed to load issue statistics")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
	if len(issues) > RecentIssuesLimit {
		issues = issues[:RecentIssuesLimit]
	}

	return &entity.IssueOverview{Recent: nonNil(issues), Statistics: *stats}, nil
}

// CreateIssue создает задачу; нужен уровень edit или владение проектом
func (uc *IssueUseCase) CreateIssue(ctx context.Context, user entity.User, input CreateIssueInput) (*entity.Issue, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, domainErrors.InvalidInput("issue title is required")
	}
	if input.ProjectID == "" {
		return nil, domainErrors.InvalidInput("project is required")
	}
	if input.Status == "" {
		input.Status = entity.IssueStatusTodo
	}
	if input.Priority == "" {
		input.Priority = entity.IssuePriorityMedium
	}
	if !input.Status.IsValid() {
		return nil, domainErrors.InvalidInput("invalid issue status")
	}
	if !input.Priority.IsValid() {
		return nil, domainErrors.InvalidInput("invalid issue priority")
	}

	_, level, err := uc.projectAccess(ctx, user.ID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !access.CanWriteIssues(level) {
		return nil, domainErrors.Forbidden("you need edit access to create issues in this project")
	}

	ws := uc.spaces.Get(user.ID)
	created, err := ws.Issues.Insert(ctx, func(ctx context.Context) (entity.Issue, error) {
		issue, err := uc.repos.Issues.Create(ctx, &entity.Issue{
			Title:       input.Title,
			Description: input.Description,
			Status:      input.Status,
			Priority:    input.Priority,
			ProjectID:   input.ProjectID,
			AssignedTo:  input.AssignedTo,
			CreatedBy:   user.ID,
		})
		if err != nil {
			return entity.Issue{}, err
		}
		return *issue, nil
	})
	if err != nil {
		return nil, storeError(err, "failed to create issue")
	}

	uc.publish(ctx, events.New(events.IssueCreated, created.ID, user.ID, map[string]string{
		"project_id": created.ProjectID,
		"status":     string(created.Status),
	}))
	return &created, nil
}

// UpdateIssue применяет патч сразу в состоянии сессии и откатывает его,
// если хранилище отказало. Меняются только поля патча и updated_at.
func (uc *IssueUseCase) UpdateIssue(ctx context.Context, user entity.User, issueID string, patch entity.IssuePatch) (*entity.Issue, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}

	issue, err := uc.modifiableIssue(ctx, user.ID, issueID)
	if err != nil {
		return nil, err
	}

	ws := uc.spaces.Get(user.ID)
	if _, ok := ws.Issues.Get(issueID); !ok {
		ws.Issues.Put(*issue)
	}

	now := uc.now()
	updated, err := ws.Issues.Update(ctx, issueID,
		func(current entity.Issue) entity.Issue {
			return patch.Apply(current, now)
		},
		func(ctx context.Context) (*entity.Issue, error) {
			return uc.repos.Issues.Update(ctx, issueID, patch)
		},
	)
	if err != nil {
		return nil, storeError(err, "failed to update issue")
	}

	attrs := map[string]string{"project_id": updated.ProjectID}
	if patch.Status != nil {
		attrs["status"] = string(updated.Status)
	}
	uc.publish(ctx, events.New(events.IssueUpdated, issueID, user.ID, attrs))
	return &updated, nil
}

// DeleteIssue удаляет задачу после подтверждения хранилищем
func (uc *IssueUseCase) DeleteIssue(ctx context.Context, user entity.User, issueID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	issue, err := uc.modifiableIssue(ctx, user.ID, issueID)
	if err != nil {
		return err
	}

	err = uc.spaces.Get(user.ID).Issues.Remove(ctx, issueID, func(ctx context.Context) error {
		return uc.repos.Issues.Delete(ctx, issueID)
	})
	if err != nil {
		return storeError(err, "failed to delete issue")
	}

	uc.publish(ctx, events.New(events.IssueDeleted, issueID, user.ID, map[string]string{"project_id": issue.ProjectID}))
	return nil
}

// modifiableIssue загружает задачу и проверяет право ее менять
func (uc *IssueUseCase) modifiableIssue(ctx context.Context, userID, issueID string) (*entity.Issue, error) {
	issue, err := uc.repos.Issues.GetByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("issue not found")
		}
		return nil, storeError(err, "failed to get issue")
	}

	_, level, err := uc.projectAccess(ctx, userID, issue.ProjectID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("issue not found")
		}
		return nil, err
	}
	if !access.CanModifyIssue(issue, level, userID) {
		return nil, domainErrors.Forbidden("you cannot modify this issue")
	}
	return issue, nil
}

func validatePatch(patch *entity.IssuePatch) error {
	if patch.IsEmpty() {
		return domainErrors.InvalidInput("nothing to update")
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domainErrors.InvalidInput("issue title cannot be empty")
		}
		patch.Title = &title
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return domainErrors.InvalidInput("invalid issue status")
	}
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return domainErrors.InvalidInput("invalid issue priority")
	}
	return nil
}

func projectIDs(projects []entity.VisibleProject) []string {
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
