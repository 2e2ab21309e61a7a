package memory

import (
	"context"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// TeamRepository команды
type TeamRepository struct {
	s *Store
}

func (r *TeamRepository) Create(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	if err := r.s.begin("teams.Create"); err != nil {
		return nil, err
	}
	defer r.s.end()

	now := r.s.Now()
	created := *team
	created.ID = newID()
	created.CreatedAt = now
	created.UpdatedAt = now
	r.s.st.teams = append(r.s.st.teams, created)
	return &created, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*entity.Team, error) {
	if err := r.s.begin("teams.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.end()

	i, ok := r.s.st.team(teamID)
	if !ok {
		return nil, notFound("team")
	}
	team := r.s.st.teams[i]
	return &team, nil
}

func (r *TeamRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Team, error) {
	if err := r.s.begin("teams.ListByOwner"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var teams []entity.Team
	for i := len(r.s.st.teams) - 1; i >= 0; i-- {
		if r.s.st.teams[i].CreatedBy == userID {
			teams = append(teams, r.s.st.teams[i])
		}
	}
	return teams, nil
}

// Delete отказывает, пока на команду ссылаются участники или проекты
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	if err := r.s.begin("teams.Delete"); err != nil {
		return err
	}
	defer r.s.end()

	i, ok := r.s.st.team(teamID)
	if !ok {
		return notFound("team")
	}
	for _, m := range r.s.st.members {
		if m.TeamID == teamID {
			return violation("team is referenced by team_members")
		}
	}
	for _, share := range r.s.st.shares {
		if share.TeamID == teamID {
			return violation("team is referenced by project_teams")
		}
	}
	r.s.st.teams = append(r.s.st.teams[:i], r.s.st.teams[i+1:]...)
	return nil
}

// TeamMemberRepository участники команд
type TeamMemberRepository struct {
	s *Store
}

func (r *TeamMemberRepository) Add(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error) {
	if err := r.s.begin("team_members.Add"); err != nil {
		return nil, err
	}
	defer r.s.end()

	if _, ok := r.s.st.team(member.TeamID); !ok {
		return nil, violation("team does not exist")
	}
	for _, m := range r.s.st.members {
		if m.TeamID == member.TeamID && m.UserID == member.UserID {
			return nil, conflict("user is already a member")
		}
	}

	created := *member
	created.ID = newID()
	created.JoinedAt = r.s.Now()
	created.Email = ""
	r.s.st.members = append(r.s.st.members, created)
	return &created, nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, memberID string) (*entity.TeamMember, error) {
	if err := r.s.begin("team_members.GetByID"); err != nil {
		return nil, err
	}
	defer r.s.end()

	for _, m := range r.s.st.members {
		if m.ID == memberID {
			member := m
			return &member, nil
		}
	}
	return nil, notFound("team member")
}

func (r *TeamMemberRepository) Remove(ctx context.Context, memberID string) error {
	if err := r.s.begin("team_members.Remove"); err != nil {
		return err
	}
	defer r.s.end()

	for i, m := range r.s.st.members {
		if m.ID == memberID {
			r.s.st.members = append(r.s.st.members[:i], r.s.st.members[i+1:]...)
			return nil
		}
	}
	return notFound("team member")
}

func (r *TeamMemberRepository) Exists(ctx context.Context, teamID, userID string) (bool, error) {
	if err := r.s.begin("team_members.Exists"); err != nil {
		return false, err
	}
	defer r.s.end()

	for _, m := range r.s.st.members {
		if m.TeamID == teamID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *TeamMemberRepository) CountOwners(ctx context.Context, teamID string) (int, error) {
	if err := r.s.begin("team_members.CountOwners"); err != nil {
		return 0, err
	}
	defer r.s.end()

	count := 0
	for _, m := range r.s.st.members {
		if m.TeamID == teamID && m.Role == entity.RoleOwner {
			count++
		}
	}
	return count, nil
}

func (r *TeamMemberRepository) ListByTeam(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	if err := r.s.begin("team_members.ListByTeam"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var members []entity.TeamMember
	for _, m := range r.s.st.members {
		if m.TeamID == teamID {
			members = append(members, m)
		}
	}
	return members, nil
}

func (r *TeamMemberRepository) ListByTeamWithProfiles(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	if err := r.s.begin("team_members.ListByTeamWithProfiles"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var members []entity.TeamMember
	for _, m := range r.s.st.members {
		if m.TeamID == teamID {
			m.Email = r.s.st.profileEmail(m.UserID)
			members = append(members, m)
		}
	}
	return members, nil
}

func (r *TeamMemberRepository) ListTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	if err := r.s.begin("team_members.ListTeamIDsByUser"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var ids []string
	for _, m := range r.s.st.members {
		if m.UserID == userID {
			ids = append(ids, m.TeamID)
		}
	}
	return ids, nil
}

func (r *TeamMemberRepository) ListMemberships(ctx context.Context, userID string) ([]entity.Membership, error) {
	if err := r.s.begin("team_members.ListMemberships"); err != nil {
		return nil, err
	}
	defer r.s.end()

	var memberships []entity.Membership
	for _, m := range r.s.st.members {
		if m.UserID != userID {
			continue
		}
		i, ok := r.s.st.team(m.TeamID)
		if !ok {
			continue
		}
		team := r.s.st.teams[i]
		memberships = append(memberships, entity.Membership{Team: &team, Role: m.Role})
	}
	return memberships, nil
}

func (r *TeamMemberRepository) DeleteByTeam(ctx context.Context, teamID string) error {
	if err := r.s.begin("team_members.DeleteByTeam"); err != nil {
		return err
	}
	defer r.s.end()

	members := r.s.st.members[:0]
	for _, m := range r.s.st.members {
		if m.TeamID != teamID {
			members = append(members, m)
		}
	}
	r.s.st.members = members
	return nil
}
