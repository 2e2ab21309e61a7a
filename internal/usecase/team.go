package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DB3NJ4/StackFlow/internal/access"
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/events"
	"github.com/DB3NJ4/StackFlow/internal/notify"
	"github.com/DB3NJ4/StackFlow/internal/workspace"
)

// memberLoadLimit сколько команд загружают участников одновременно
const memberLoadLimit = 4

// TeamUseCase реализует бизнес-логику для команд
type TeamUseCase struct {
	loader
	spaces   *workspace.Registry
	notifier notify.Notifier
}

// NewTeamUseCase создает новый usecase для команд
func NewTeamUseCase(
	repos Repositories,
	spaces *workspace.Registry,
	notifier notify.Notifier,
	publisher events.Publisher,
	log *zap.Logger,
) *TeamUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(log)
	}
	return &TeamUseCase{
		loader:   newLoader(repos, publisher, log.Named("teams")),
		spaces:   spaces,
		notifier: notifier,
	}
}

// ListTeams возвращает команды пользователя: сначала те, где он участник,
// затем созданные им. Ошибка загрузки участников одной команды не ломает
// список, команда возвращается без участников.
func (uc *TeamUseCase) ListTeams(ctx context.Context, user entity.User) ([]entity.TeamWithMembers, error) {
	if err := requireUser(user); err != nil {
		return []entity.TeamWithMembers{}, err
	}
	ws := uc.spaces.Get(user.ID)

	teams, err := uc.listTeams(ctx, user.ID)
	if err != nil {
		uc.log.Error("failed to list teams", zap.String("user_id", user.ID), zap.Error(err))
		ws.Teams.Replace(nil)
		return []entity.TeamWithMembers{}, domainErrors.NewDomainError(
			domainErrors.CodeDataLoadFailed,
			"failed to load teams",
			fmt.Errorf("%w: %w", domainErrors.ErrDataLoad, err),
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(memberLoadLimit)
	for i := range teams {
		i := i
		g.Go(func() error {
			members, err := uc.loadMembers(gctx, teams[i].ID)
			if err != nil {
				uc.log.Warn("failed to load team members",
					zap.String("team_id", teams[i].ID),
					zap.Error(err),
				)
				members = []entity.TeamMember{}
			}
			teams[i].Members = members
			teams[i].UserRole = access.RoleOf(&teams[i], user.ID)
			return nil
		})
	}
	_ = g.Wait()

	ws.Teams.Replace(teams)
	return teams, nil
}

func (uc *TeamUseCase) listTeams(ctx context.Context, userID string) ([]entity.TeamWithMembers, error) {
	memberships, err := uc.repos.Members.ListMemberships(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	owned, err := uc.repos.Teams.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned teams: %w", err)
	}

	seen := make(map[string]struct{}, len(memberships)+len(owned))
	teams := make([]entity.TeamWithMembers, 0, len(memberships)+len(owned))
	add := func(team entity.Team) {
		if team.ID == "" {
			return
		}
		if _, ok := seen[team.ID]; ok {
			return
		}
		seen[team.ID] = struct{}{}
		teams = append(teams, entity.TeamWithMembers{Team: team})
	}

	for _, m := range memberships {
		if m.Team != nil {
			add(*m.Team)
		}
	}
	for _, team := range owned {
		add(team)
	}
	return teams, nil
}

// CreateTeam создает команду и строку участника-владельца в одной транзакции
func (uc *TeamUseCase) CreateTeam(ctx context.Context, user entity.User, name string, description *string) (*entity.TeamWithMembers, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.InvalidInput("team name is required")
	}

	ws := uc.spaces.Get(user.ID)
	created, err := ws.Teams.Insert(ctx, func(ctx context.Context) (entity.TeamWithMembers, error) {
		var result entity.TeamWithMembers
		err := uc.repos.TxManager.RunInTransaction(ctx, func(ctx context.Context) error {
			team, err := uc.repos.Teams.Create(ctx, &entity.Team{
				Name:        name,
				Description: description,
				CreatedBy:   user.ID,
			})
			if err != nil {
				return fmt.Errorf("failed to create team: %w", err)
			}

			owner, err := uc.repos.Members.Add(ctx, &entity.TeamMember{
				TeamID: team.ID,
				UserID: user.ID,
				Role:   entity.RoleOwner,
			})
			if err != nil {
				return fmt.Errorf("failed to add team owner: %w", err)
			}
			owner.Email = user.Email

			result = entity.TeamWithMembers{
				Team:     *team,
				Members:  []entity.TeamMember{*owner},
				UserRole: entity.RoleOwner,
			}
			return nil
		})
		return result, err
	})
	if err != nil {
		return nil, storeError(err, "failed to create team")
	}

	uc.log.Info("team created", zap.String("team_id", created.ID), zap.String("user_id", user.ID))
	return &created, nil
}

// InviteMember добавляет пользователя в команду по email.
// Роль ограничивается правами пригласившего.
func (uc *TeamUseCase) InviteMember(ctx context.Context, user entity.User, teamID, email string, role entity.Role) (*entity.TeamMember, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainErrors.InvalidInput("email is required")
	}
	if role != "" && !role.IsValid() {
		return nil, domainErrors.InvalidInput("role must be one of owner, admin, member")
	}

	team, err := uc.loadTeam(ctx, user.ID, teamID)
	if err != nil {
		return nil, err
	}
	if !access.CanInviteToTeam(team, user.ID) {
		return nil, domainErrors.Forbidden("only the team owner or an admin can invite members")
	}
	role = access.ClampInviteRole(team, user.ID, role)

	profile, err := uc.repos.Profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.NotFound("no user with this email")
		}
		return nil, storeError(err, "failed to find user")
	}

	if access.IsMember(team, profile.ID) {
		return nil, domainErrors.NewDomainError(domainErrors.CodeConflict, "user is already a member", domainErrors.ErrConflict)
	}
	exists, err := uc.repos.Members.Exists(ctx, teamID, profile.ID)
	if err != nil {
		return nil, storeError(err, "failed to check membership")
	}
	if exists {
		return nil, domainErrors.NewDomainError(domainErrors.CodeConflict, "user is already a member", domainErrors.ErrConflict)
	}

	member, err := uc.repos.Members.Add(ctx, &entity.TeamMember{
		TeamID: teamID,
		UserID: profile.ID,
		Role:   role,
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrConflict) {
			return nil, domainErrors.NewDomainError(domainErrors.CodeConflict, "user is already a member", err)
		}
		return nil, storeError(err, "failed to add member")
	}
	member.Email = profile.Email

	team.Members = append(team.Members, *member)
	uc.spaces.Get(user.ID).Teams.Put(*team)

	err = uc.notifier.SendInvitation(ctx, notify.Invitation{
		TeamID:    teamID,
		TeamName:  team.Name,
		Email:     profile.Email,
		Role:      role,
		InvitedBy: user.Email,
	})
	if err != nil {
		uc.log.Warn("failed to send invitation",
			zap.String("team_id", teamID),
			zap.String("member_id", member.ID),
			zap.Error(err),
		)
	}

	uc.publish(ctx, events.New(events.TeamMemberAdded, teamID, user.ID, map[string]string{
		"user_id": profile.ID,
		"role":    string(role),
	}))
	return member, nil
}

// RemoveMember удаляет участника; доступно только создателю команды.
// Строка создателя и последний владелец не удаляются.
func (uc *TeamUseCase) RemoveMember(ctx context.Context, user entity.User, teamID, memberID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	team, err := uc.loadTeam(ctx, user.ID, teamID)
	if err != nil {
		return err
	}
	if !access.CanManageTeam(team, user.ID) {
		return domainErrors.Forbidden("only the team owner can remove members")
	}

	ws := uc.spaces.Get(user.ID)
	ws.Teams.Put(*team)

	var removed entity.TeamMember
	without := func(t entity.TeamWithMembers) entity.TeamWithMembers {
		members := make([]entity.TeamMember, 0, len(t.Members))
		for _, m := range t.Members {
			if m.ID != memberID {
				members = append(members, m)
			}
		}
		t.Members = members
		return t
	}
	_, err = ws.Teams.Update(ctx, teamID, without, func(ctx context.Context) (*entity.TeamWithMembers, error) {
		return nil, uc.removeMember(ctx, team, memberID, &removed)
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("member not found")
		}
		return storeError(err, "failed to remove member")
	}

	uc.publish(ctx, events.New(events.TeamMemberRemoved, teamID, user.ID, map[string]string{"user_id": removed.UserID}))
	return nil
}

// removeMember проверяет владельцев и удаляет строку участника в транзакции
func (uc *TeamUseCase) removeMember(ctx context.Context, team *entity.TeamWithMembers, memberID string, removed *entity.TeamMember) error {
	teamID := team.ID
	return uc.repos.TxManager.RunInTransaction(ctx, func(ctx context.Context) error {
		member, err := uc.repos.Members.GetByID(ctx, memberID)
		if err != nil {
			return err
		}
		if member.TeamID != teamID {
			return domainErrors.NotFound("member not found")
		}
		if access.IsOwner(team.CreatedBy, member.UserID) {
			return domainErrors.NewDomainError(domainErrors.CodeLastOwner, "the team creator cannot be removed", domainErrors.ErrLastOwner)
		}
		if member.Role == entity.RoleOwner {
			owners, err := uc.repos.Members.CountOwners(ctx, teamID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return domainErrors.NewDomainError(domainErrors.CodeLastOwner, "a team must keep at least one owner", domainErrors.ErrLastOwner)
			}
		}
		if err := uc.repos.Members.Remove(ctx, memberID); err != nil {
			return err
		}
		*removed = *member
		return nil
	})
}

// DeleteTeam удаляет участников, связи с проектами и саму команду в одной
// транзакции. Из состояния команда исчезает только после фиксации.
func (uc *TeamUseCase) DeleteTeam(ctx context.Context, user entity.User, teamID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	team, err := uc.repos.Teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("team not found")
		}
		return storeError(err, "failed to get team")
	}
	if !access.CanManageTeam(&entity.TeamWithMembers{Team: *team}, user.ID) {
		return domainErrors.Forbidden("only the team owner can delete the team")
	}

	ws := uc.spaces.Get(user.ID)
	err = ws.Teams.Remove(ctx, teamID, func(ctx context.Context) error {
		return uc.repos.TxManager.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := uc.repos.Members.DeleteByTeam(ctx, teamID); err != nil {
				return fmt.Errorf("failed to delete team members: %w", err)
			}
			if err := uc.repos.ProjectTeams.DeleteByTeam(ctx, teamID); err != nil {
				return fmt.Errorf("failed to delete team project links: %w", err)
			}
			if err := uc.repos.Teams.Delete(ctx, teamID); err != nil {
				return fmt.Errorf("failed to delete team: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		uc.log.Error("team delete rolled back", zap.String("team_id", teamID), zap.Error(err))
		return storeError(err, "failed to delete team")
	}

	uc.log.Info("team deleted", zap.String("team_id", teamID), zap.String("user_id", user.ID))
	uc.publish(ctx, events.New(events.TeamDeleted, teamID, user.ID, nil))
	return nil
}

// ListTeamProjects возвращает проекты, открытые команде; доступно участникам.
// Связи с уже удаленными проектами пропускаются.
func (uc *TeamUseCase) ListTeamProjects(ctx context.Context, user entity.User, teamID string) ([]entity.ProjectShare, error) {
	if err := requireUser(user); err != nil {
		return nil, err
	}

	team, err := uc.loadTeam(ctx, user.ID, teamID)
	if err != nil {
		return nil, err
	}
	if !access.IsMember(team, user.ID) {
		return nil, domainErrors.Forbidden("only team members can view team projects")
	}

	shares, err := uc.repos.ProjectTeams.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, storeError(err, "failed to load team projects")
	}

	result := make([]entity.ProjectShare, 0, len(shares))
	for _, share := range shares {
		if share.Project == nil || share.Project.ID == "" {
			continue
		}
		result = append(result, share)
	}
	return result, nil
}

// RemoveProjectFromTeam отвязывает проект от команды; доступно owner и admin команды
func (uc *TeamUseCase) RemoveProjectFromTeam(ctx context.Context, user entity.User, teamID, projectID string) error {
	if err := requireUser(user); err != nil {
		return err
	}

	team, err := uc.loadTeam(ctx, user.ID, teamID)
	if err != nil {
		return err
	}
	if !access.CanRemoveProjectFromTeam(team, user.ID) {
		return domainErrors.Forbidden("only the team owner or an admin can remove projects")
	}

	if err := uc.repos.ProjectTeams.Delete(ctx, projectID, teamID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.NotFound("project is not shared with this team")
		}
		return storeError(err, "failed to remove project from team")
	}

	uc.publish(ctx, events.New(events.ProjectUnshared, projectID, user.ID, map[string]string{"team_id": teamID}))
	return nil
}
