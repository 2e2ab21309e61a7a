package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/events"
)

func TestTeamUseCase_CreateTeam(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")

	team := f.team(t, alice, "  Core  ")
	assert.Equal(t, "Core", team.Name)
	assert.Equal(t, entity.RoleOwner, team.UserRole)
	require.Len(t, team.Members, 1)
	assert.Equal(t, alice.ID, team.Members[0].UserID)
	assert.Equal(t, entity.RoleOwner, team.Members[0].Role)

	owners, err := f.store.Members().CountOwners(f.ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, owners)

	_, ok := f.spaces.Get(alice.ID).Teams.Get(team.ID)
	assert.True(t, ok)

	_, err = f.teams.CreateTeam(f.ctx, alice, " ", nil)
	assert.Equal(t, domainErrors.CodeInvalidInput, codeOf(err))
}

func TestTeamUseCase_CreateTeamIsAtomic(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	f.store.Fail("team_members.Add", errors.New("connection reset"))

	_, err := f.teams.CreateTeam(f.ctx, alice, "Core", nil)
	require.Error(t, err)

	f.store.Fail("team_members.Add", nil)
	owned, err := f.store.Teams().ListByOwner(f.ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
	assert.Zero(t, f.spaces.Get(alice.ID).Teams.Len())
}

func TestTeamUseCase_InviteClampsRole(t *testing.T) {
	f := newFixture(t)
	owner, admin, plain, carol, dave, erin := f.user("owner"), f.user("admin"), f.user("plain"), f.user("carol"), f.user("dave"), f.user("erin")
	team := f.team(t, owner, "Core")

	tests := []struct {
		name      string
		inviter   entity.User
		invitee   entity.User
		requested entity.Role
		want      entity.Role
	}{
		{name: "owner grants admin", inviter: owner, invitee: admin, requested: entity.RoleAdmin, want: entity.RoleAdmin},
		{name: "owner cannot grant owner", inviter: owner, invitee: plain, requested: entity.RoleOwner, want: entity.RoleMember},
		{name: "admin asks for admin", inviter: admin, invitee: carol, requested: entity.RoleAdmin, want: entity.RoleMember},
		{name: "admin asks for owner", inviter: admin, invitee: dave, requested: entity.RoleOwner, want: entity.RoleMember},
		{name: "default role", inviter: owner, invitee: erin, requested: "", want: entity.RoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := f.invite(t, tt.inviter, team.ID, tt.invitee, tt.requested)
			assert.Equal(t, tt.want, member.Role)
			assert.Equal(t, tt.invitee.ID, member.UserID)
			assert.Equal(t, tt.invitee.Email, member.Email)
		})
	}

	assert.Len(t, f.notifier.sent, len(tests))
	assert.Equal(t, "Core", f.notifier.sent[0].TeamName)
	assert.Equal(t, owner.Email, f.notifier.sent[0].InvitedBy)
	assert.Contains(t, f.events.Types(), events.TeamMemberAdded)
}

func TestTeamUseCase_InviteErrors(t *testing.T) {
	f := newFixture(t)
	owner, member, outsider, target := f.user("owner"), f.user("member"), f.user("outsider"), f.user("target")
	team := f.team(t, owner, "Core")
	f.invite(t, owner, team.ID, member, entity.RoleMember)

	_, err := f.teams.InviteMember(f.ctx, owner, team.ID, "nobody@example.com", entity.RoleMember)
	assert.Equal(t, domainErrors.CodeNotFound, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, owner, team.ID, member.Email, entity.RoleMember)
	assert.Equal(t, domainErrors.CodeConflict, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, owner, team.ID, owner.Email, entity.RoleMember)
	assert.Equal(t, domainErrors.CodeConflict, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, member, team.ID, target.Email, entity.RoleMember)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, outsider, team.ID, target.Email, entity.RoleMember)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, owner, team.ID, target.Email, entity.Role("boss"))
	assert.Equal(t, domainErrors.CodeInvalidInput, codeOf(err))

	_, err = f.teams.InviteMember(f.ctx, owner, "missing", target.Email, entity.RoleMember)
	assert.Equal(t, domainErrors.CodeNotFound, codeOf(err))
}

func TestTeamUseCase_InviteSurvivesNotifierFailure(t *testing.T) {
	f := newFixture(t)
	owner, bob := f.user("owner"), f.user("bob")
	team := f.team(t, owner, "Core")
	f.notifier.err = errors.New("mailgun unavailable")

	member, err := f.teams.InviteMember(f.ctx, owner, team.ID, "BOB@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, member.UserID)

	exists, err := f.store.Members().Exists(f.ctx, team.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTeamUseCase_RemoveMember(t *testing.T) {
	f := newFixture(t)
	owner, admin, bob := f.user("owner"), f.user("admin"), f.user("bob")
	team := f.team(t, owner, "Core")
	adminRow := f.invite(t, owner, team.ID, admin, entity.RoleAdmin)
	bobRow := f.invite(t, owner, team.ID, bob, entity.RoleMember)
	creatorRow := team.Members[0]

	err := f.teams.RemoveMember(f.ctx, admin, team.ID, bobRow.ID)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	err = f.teams.RemoveMember(f.ctx, owner, team.ID, creatorRow.ID)
	assert.Equal(t, domainErrors.CodeLastOwner, codeOf(err))
	assert.ErrorIs(t, err, domainErrors.ErrLastOwner)

	err = f.teams.RemoveMember(f.ctx, owner, team.ID, "missing")
	assert.Equal(t, domainErrors.CodeNotFound, codeOf(err))

	require.NoError(t, f.teams.RemoveMember(f.ctx, owner, team.ID, bobRow.ID))
	require.NoError(t, f.teams.RemoveMember(f.ctx, owner, team.ID, adminRow.ID))

	members, err := f.store.Members().ListByTeam(f.ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, owner.ID, members[0].UserID)

	cached, ok := f.spaces.Get(owner.ID).Teams.Get(team.ID)
	require.True(t, ok)
	assert.Len(t, cached.Members, 1)
	assert.Contains(t, f.events.Types(), events.TeamMemberRemoved)
}

func TestTeamUseCase_RemoveMemberRollsBackCachedTeam(t *testing.T) {
	f := newFixture(t)
	owner, bob := f.user("owner"), f.user("bob")
	team := f.team(t, owner, "Core")
	bobRow := f.invite(t, owner, team.ID, bob, entity.RoleMember)

	f.store.Fail("team_members.Remove", errors.New("connection reset"))
	err := f.teams.RemoveMember(f.ctx, owner, team.ID, bobRow.ID)
	require.Error(t, err)

	cached, ok := f.spaces.Get(owner.ID).Teams.Get(team.ID)
	require.True(t, ok)
	require.Len(t, cached.Members, 2)
	assert.NotContains(t, f.events.Types(), events.TeamMemberRemoved)

	f.store.Fail("team_members.Remove", nil)
	require.NoError(t, f.teams.RemoveMember(f.ctx, owner, team.ID, bobRow.ID))

	cached, _ = f.spaces.Get(owner.ID).Teams.Get(team.ID)
	require.Len(t, cached.Members, 1)
	assert.Equal(t, owner.ID, cached.Members[0].UserID)
}

func TestTeamUseCase_RemoveSecondOwner(t *testing.T) {
	f := newFixture(t)
	owner, coOwner := f.user("owner"), f.user("co-owner")
	team := f.team(t, owner, "Core")

	row, err := f.store.Members().Add(f.ctx, &entity.TeamMember{TeamID: team.ID, UserID: coOwner.ID, Role: entity.RoleOwner})
	require.NoError(t, err)

	require.NoError(t, f.teams.RemoveMember(f.ctx, owner, team.ID, row.ID))

	owners, err := f.store.Members().CountOwners(f.ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, owners)
}

func TestTeamUseCase_DeleteTeamOrder(t *testing.T) {
	f := newFixture(t)
	owner, bob := f.user("owner"), f.user("bob")
	team := f.team(t, owner, "Core")
	f.invite(t, owner, team.ID, bob, entity.RoleMember)
	project := f.project(t, owner, "Alpha")
	f.share(t, owner, project.ID, team.ID, entity.AccessEdit)

	require.NoError(t, f.teams.DeleteTeam(f.ctx, owner, team.ID))

	var order []string
	for _, call := range f.store.Calls() {
		switch call {
		case "team_members.DeleteByTeam", "project_teams.DeleteByTeam", "teams.Delete":
			order = append(order, call)
		}
	}
	assert.Equal(t, []string{"team_members.DeleteByTeam", "project_teams.DeleteByTeam", "teams.Delete"}, order)

	_, err := f.store.Teams().GetByID(f.ctx, team.ID)
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)
	_, ok := f.spaces.Get(owner.ID).Teams.Get(team.ID)
	assert.False(t, ok)

	// проект остается у владельца
	projects, err := f.projects.ListProjects(f.ctx, owner)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)

	bobProjects, err := f.projects.ListProjects(f.ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobProjects)
	assert.Contains(t, f.events.Types(), events.TeamDeleted)
}

func TestTeamUseCase_DeleteTeamRollsBack(t *testing.T) {
	f := newFixture(t)
	owner, bob := f.user("owner"), f.user("bob")
	team := f.team(t, owner, "Core")
	f.invite(t, owner, team.ID, bob, entity.RoleMember)
	project := f.project(t, owner, "Alpha")
	f.share(t, owner, project.ID, team.ID, entity.AccessView)

	f.store.Fail("teams.Delete", errors.New("connection reset"))
	err := f.teams.DeleteTeam(f.ctx, owner, team.ID)
	require.Error(t, err)
	f.store.Fail("teams.Delete", nil)

	members, err := f.store.Members().ListByTeam(f.ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	shares, err := f.store.ProjectTeams().ListByTeam(f.ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 1)

	_, ok := f.spaces.Get(owner.ID).Teams.Get(team.ID)
	assert.True(t, ok)
	assert.NotContains(t, f.events.Types(), events.TeamDeleted)
}

func TestTeamUseCase_DeleteTeamOwnerOnly(t *testing.T) {
	f := newFixture(t)
	owner, admin := f.user("owner"), f.user("admin")
	team := f.team(t, owner, "Core")
	f.invite(t, owner, team.ID, admin, entity.RoleAdmin)

	err := f.teams.DeleteTeam(f.ctx, admin, team.ID)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	err = f.teams.DeleteTeam(f.ctx, owner, "missing")
	assert.Equal(t, domainErrors.CodeNotFound, codeOf(err))
}

func TestTeamUseCase_ListTeams(t *testing.T) {
	f := newFixture(t)
	alice, bob := f.user("alice"), f.user("bob")

	own := f.team(t, alice, "Own")
	other := f.team(t, bob, "Other")
	f.invite(t, bob, other.ID, alice, entity.RoleAdmin)

	teams, err := f.teams.ListTeams(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, own.ID, teams[0].ID)
	assert.Equal(t, entity.RoleOwner, teams[0].UserRole)
	assert.Equal(t, other.ID, teams[1].ID)
	assert.Equal(t, entity.RoleAdmin, teams[1].UserRole)
	require.Len(t, teams[1].Members, 2)
	assert.Equal(t, bob.Email, teams[1].Members[0].Email)

	assert.Equal(t, 2, f.spaces.Get(alice.ID).Teams.Len())
}

func TestTeamUseCase_ListTeamsMemberFallback(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	team := f.team(t, alice, "Own")

	f.store.Fail("team_members.ListByTeamWithProfiles", domainErrors.ErrQueryUnsupported)
	teams, err := f.teams.ListTeams(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Len(t, teams[0].Members, 1)
	assert.Empty(t, teams[0].Members[0].Email)

	f.store.Fail("team_members.ListByTeam", errors.New("timeout"))
	teams, err = f.teams.ListTeams(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, team.ID, teams[0].ID)
	assert.Empty(t, teams[0].Members)
	assert.Equal(t, entity.RoleOwner, teams[0].UserRole)
}

func TestTeamUseCase_ListTeamsDegraded(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	f.team(t, alice, "Own")

	f.store.Fail("team_members.ListMemberships", errors.New("connection refused"))
	teams, err := f.teams.ListTeams(f.ctx, alice)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
	assert.Equal(t, domainErrors.CodeDataLoadFailed, codeOf(err))
	assert.ErrorIs(t, err, domainErrors.ErrDataLoad)
	assert.Zero(t, f.spaces.Get(alice.ID).Teams.Len())
}

func TestTeamUseCase_TeamProjects(t *testing.T) {
	f := newFixture(t)
	owner, admin, member, outsider := f.user("owner"), f.user("admin"), f.user("member"), f.user("outsider")
	team := f.team(t, owner, "Core")
	f.invite(t, owner, team.ID, admin, entity.RoleAdmin)
	f.invite(t, owner, team.ID, member, entity.RoleMember)
	alpha := f.project(t, owner, "Alpha")
	beta := f.project(t, owner, "Beta")
	f.share(t, owner, alpha.ID, team.ID, entity.AccessView)
	f.share(t, owner, beta.ID, team.ID, entity.AccessEdit)

	shares, err := f.teams.ListTeamProjects(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 2)

	_, err = f.teams.ListTeamProjects(f.ctx, outsider, team.ID)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	err = f.teams.RemoveProjectFromTeam(f.ctx, member, team.ID, alpha.ID)
	assert.Equal(t, domainErrors.CodeForbidden, codeOf(err))

	require.NoError(t, f.teams.RemoveProjectFromTeam(f.ctx, admin, team.ID, alpha.ID))
	err = f.teams.RemoveProjectFromTeam(f.ctx, admin, team.ID, alpha.ID)
	assert.Equal(t, domainErrors.CodeNotFound, codeOf(err))

	require.NoError(t, f.projects.DeleteProject(f.ctx, owner, beta.ID))
	shares, err = f.teams.ListTeamProjects(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}
