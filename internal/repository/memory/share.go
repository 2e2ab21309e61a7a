package memory

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// ProjectTeamRepository связи проектов с командами
type ProjectTeamRepository struct {
	s *Store
}

func (r *ProjectTeamRepository) Create(ctx context.Context, share *entity.ProjectTeam) (*entity.ProjectTeam, error) {
	if err := r.s.begin("project_teams.Create"); err != nil {
		return nil, err
	}
	defer r.s.end()

	if _, ok := r.s.st.project(share.ProjectID); !ok {
		return nil, violation("project does not exist")
	}
	if _, ok := r.s.st.team(share.TeamID); !ok {
		return nil, violation("team does not exist")
	}
	for _, existing := range r.s.st.shares {
		if existing.ProjectID == share.ProjectID && existing.TeamID == share.TeamID {
			return nil, conflict("project is already shared with the team")
		}
	}

	created := *share
	created.ID = newID()
	created.AddedAt = r.s.Now()
	r.s.st.shares = append(r.s.st.shares, created)
	return &created, nil
}

func (r *ProjectTeamRepository) Delete(ctx context.Context, projectID, teamID string) error {
	if err := r.s.begin("project_teams.Delete"); err != nil {
		return err
	}
	defer r.s.end()

	for i, share := range r.s.st.shares {
		if share.ProjectID == projectID && share.TeamID == teamID {
			r.s.st.shares = append(r.s.st.shares[:i], r.s.st.shares[i+1:]...)
			return nil
		}
	}
	return notFound("project share")
}

func (r *ProjectTeamRepository) DeleteByTeam(ctx context.Context, teamID string) error {
	if err := r.s.begin("project_teams.DeleteByTeam"); err != nil {
		return err
	}
	defer r.s.end()

	shares := r.s.st.shares[:0]
	for _, share := range r.s.st.shares {
		if share.TeamID != teamID {
			shares = append(shares, share)
		}
	}
	r.s.st.shares = shares
	return nil
}

func (r *ProjectTeamRepository) ListByProject(ctx context.Context, projectID string) ([]entity.ProjectTeam, error) {
	if err := r.s.begin("project_teams.ListByProject"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var shares []entity.ProjectTeam
	for _, share := range r.s.st.shares {
		if share.ProjectID == projectID {
			shares = append(shares, share)
		}
	}
	return shares, nil
}

func (r *ProjectTeamRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]entity.ProjectTeam, error) {
	if err := r.s.begin("project_teams.ListByProjects"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var shares []entity.ProjectTeam
	for _, share := range r.s.st.shares {
		if contains(projectIDs, share.ProjectID) {
			shares = append(shares, share)
		}
	}
	return shares, nil
}

func (r *ProjectTeamRepository) ListByTeam(ctx context.Context, teamID string) ([]entity.ProjectShare, error) {
	if err := r.s.begin("project_teams.ListByTeam"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var result []entity.ProjectShare
	for i := len(r.s.st.shares) - 1; i >= 0; i-- {
		share := r.s.st.shares[i]
		if share.TeamID != teamID {
			continue
		}
		item := entity.ProjectShare{TeamID: share.TeamID, AccessLevel: share.AccessLevel}
		if j, ok := r.s.st.project(share.ProjectID); ok {
			project := r.s.st.projects[j]
			item.Project = &project
		}
		result = append(result, item)
	}
	return result, nil
}

func (r *ProjectTeamRepository) ListProjectsByTeams(ctx context.Context, teamIDs []string) ([]entity.ProjectShare, error) {
	if err := r.s.begin("project_teams.ListProjectsByTeams"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var result []entity.ProjectShare
	for i := len(r.s.st.projects) - 1; i >= 0; i-- {
		project := r.s.st.projects[i]
		for _, share := range r.s.st.shares {
			if share.ProjectID != project.ID || !contains(teamIDs, share.TeamID) {
				continue
			}
			p := project
			result = append(result, entity.ProjectShare{
				Project:     &p,
				TeamID:      share.TeamID,
				AccessLevel: share.AccessLevel,
			})
		}
	}
	return result, nil
}
