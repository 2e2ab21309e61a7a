package memory

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// IssueRepository задачи
type IssueRepository struct {
	s *Store
}

func (r *IssueRepository) Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error) {
	if err := r.s.begin("issues.Create"); err != nil {
		return nil, err
	}
	defer r.s.end()

	if _, ok := r.s.st.project(issue.ProjectID); !ok {
		return nil, violation("project does not exist")
	}

	now := r.s.Now()
	created := *issue
	created.ID = newID()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.st.issues = append(r.s.st.issues, created)
	return &created, nil
}

func (r *IssueRepository) Update(ctx context.Context, issueID string, patch entity.IssuePatch) (*entity.Issue, error) {
	if err := r.s.begin("issues.Update"); err != nil {
		return nil, err
	}
	defer r.s.end()

	for i := range r.s.st.issues {
		if r.s.st.issues[i].ID == issueID {
			updated := patch.Apply(r.s.st.issues[i], r.s.Now())
			r.s.st.issues[i] = updated
			return &updated, nil
		}
	}
	return nil, notFound("issue")
}

func (r *IssueRepository) Delete(ctx context.Context, issueID string) error {
	if err := r.s.begin("issues.Delete"); err != nil {
		return err
	}
	defer r.s.end()

	for i := range r.s.st.issues {
		if r.s.st.issues[i].ID == issueID {
			r.s.st.issues = append(r.s.st.issues[:i], r.s.st.issues[i+1:]...)
			return nil
		}
	}
	return notFound("issue")
}

func (r *IssueRepository) GetByID(ctx context.Context, issueID string) (*entity.Issue, error) {
	if err := r.s.begin("issues.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.end()

	for _, issue := range r.s.st.issues {
		if issue.ID == issueID {
			found := issue
			return &found, nil
		}
	}
	return nil, notFound("issue")
}

// ListByProjects новые задачи первыми
func (r *IssueRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]entity.Issue, error) {
	if err := r.s.begin("issues.ListByProjects"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var issues []entity.Issue
	for i := len(r.s.st.issues) - 1; i >= 0; i-- {
		if contains(projectIDs, r.s.st.issues[i].ProjectID) {
			issues = append(issues, r.s.st.issues[i])
		}
	}
	return issues, nil
}
