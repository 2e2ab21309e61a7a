package memory

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// ProjectRepository проекты
type ProjectRepository struct {
	s *Store
}

func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	if err := r.s.begin("projects.Create"); err != nil {
		return nil, err
	}
	defer r.s.end()

	now := r.s.Now()
	created := *project
	created.ID = newID()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.st.projects = append(r.s.st.projects, created)
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, projectID string, patch entity.ProjectPatch) (*entity.Project, error) {
	if err := r.s.begin("projects.Update"); err != nil {
		return nil, err
	}
	defer r.s.end()

	i, ok := r.s.st.project(projectID)
	if !ok {
		return nil, notFound("project")
	}
	updated := patch.Apply(r.s.st.projects[i], r.s.Now())
	r.s.st.projects[i] = updated
	return &updated, nil
}

// Delete удаляет проект вместе с его задачами и связями с командами
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	if err := r.s.begin("projects.Delete"); err != nil {
		return err
	}
	defer r.s.end()

	i, ok := r.s.st.project(projectID)
	if !ok {
		return notFound("project")
	}
	r.s.st.projects = append(r.s.st.projects[:i], r.s.st.projects[i+1:]...)

	issues := r.s.st.issues[:0]
	for _, issue := range r.s.st.issues {
		if issue.ProjectID != projectID {
			issues = append(issues, issue)
		}
	}
	r.s.st.issues = issues

	shares := r.s.st.shares[:0]
	for _, share := range r.s.st.shares {
		if share.ProjectID != projectID {
			shares = append(shares, share)
		}
	}
	r.s.st.shares = shares
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*entity.Project, error) {
	if err := r.s.begin("projects.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.end()

	i, ok := r.s.st.project(projectID)
	if !ok {
		return nil, notFound("project")
	}
	project := r.s.st.projects[i]
	return &project, nil
}

// ListByOwner новые проекты первыми
func (r *ProjectRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Project, error) {
	if err := r.s.begin("projects.ListByOwner"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var projects []entity.Project
	for i := len(r.s.st.projects) - 1; i >= 0; i-- {
		if r.s.st.projects[i].CreatedBy == userID {
			projects = append(projects, r.s.st.projects[i])
		}
	}
	return projects, nil
}

func (r *ProjectRepository) ListVisible(ctx context.Context, userID string) ([]entity.VisibleProject, error) {
	if err := r.s.begin("projects.ListVisible"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var teamIDs []string
	for _, m := range r.s.st.members {
		if m.UserID == userID {
			teamIDs = append(teamIDs, m.TeamID)
		}
	}

	var rows []entity.VisibleProject
	for i := len(r.s.st.projects) - 1; i >= 0; i-- {
		project := r.s.st.projects[i]
		owned := project.CreatedBy == userID
		shared := false
		for _, share := range r.s.st.shares {
			if share.ProjectID != project.ID || !contains(teamIDs, share.TeamID) {
				continue
			}
			shared = true
			rows = append(rows, entity.VisibleProject{
				Project:     project,
				IsOwner:     owned,
				IsShared:    true,
				AccessLevel: share.AccessLevel,
			})
		}
		if owned && !shared {
			rows = append(rows, entity.VisibleProject{Project: project, IsOwner: true})
		}
	}
	return rows, nil
}
