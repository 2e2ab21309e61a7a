// Package access содержит проверки прав над уже загруженными сущностями.
// Функции не обращаются к хранилищу и не возвращают ошибок: вызывающий код
// сам решает, как сообщить об отказе.
package access

import "github.com/DB3NJ4/StackFlow/internal/domain/entity"

// IsOwner сообщает, что пользователь создал сущность
func IsOwner(createdBy, userID string) bool {
	return userID != "" && createdBy == userID
}

// RoleOf возвращает роль пользователя в команде.
// Создатель всегда owner, даже без строки в team_members.
// Пустая роль означает, что пользователь не участник.
func RoleOf(team *entity.TeamWithMembers, userID string) entity.Role {
	if team == nil {
		return ""
	}
	if IsOwner(team.CreatedBy, userID) {
		return entity.RoleOwner
	}
	for _, m := range team.Members {
		if m.UserID == userID {
			return m.Role
		}
	}
	return ""
}

// IsMember сообщает, что пользователь состоит в команде (включая создателя)
func IsMember(team *entity.TeamWithMembers, userID string) bool {
	return RoleOf(team, userID) != ""
}

// CanManageTeam удаление команды и участников доступно только создателю
func CanManageTeam(team *entity.TeamWithMembers, userID string) bool {
	return team != nil && IsOwner(team.CreatedBy, userID)
}

// CanInviteToTeam приглашать может создатель или администратор
func CanInviteToTeam(team *entity.TeamWithMembers, userID string) bool {
	if CanManageTeam(team, userID) {
		return true
	}
	return RoleOf(team, userID) == entity.RoleAdmin
}

// ClampInviteRole приводит запрошенную роль к допустимой для пригласившего.
// Администратор назначает только member, роль owner через приглашение не выдается.
func ClampInviteRole(team *entity.TeamWithMembers, inviterID string, requested entity.Role) entity.Role {
	if requested == "" || !requested.IsValid() || requested == entity.RoleOwner {
		requested = entity.RoleMember
	}
	if RoleOf(team, inviterID) != entity.RoleOwner {
		return entity.RoleMember
	}
	return requested
}

// CanRemoveProjectFromTeam отвязать проект от команды может owner или admin команды
func CanRemoveProjectFromTeam(team *entity.TeamWithMembers, userID string) bool {
	role := RoleOf(team, userID)
	return role == entity.RoleOwner || role == entity.RoleAdmin
}

// ProjectAccess вычисляет эффективный уровень доступа пользователя к проекту.
// teamIDs команды пользователя, shares строки project_teams этого проекта.
// Доступ через команду никогда не дает владения.
func ProjectAccess(project *entity.Project, userID string, teamIDs []string, shares []entity.ProjectTeam) entity.AccessLevel {
	if project == nil || userID == "" {
		return entity.AccessNone
	}
	if IsOwner(project.CreatedBy, userID) {
		return entity.AccessOwner
	}

	member := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		member[id] = struct{}{}
	}

	level := entity.AccessNone
	for _, share := range shares {
		if share.ProjectID != project.ID || !share.AccessLevel.IsValid() {
			continue
		}
		if _, ok := member[share.TeamID]; !ok {
			continue
		}
		if share.AccessLevel.Rank() > level.Rank() {
			level = share.AccessLevel
		}
	}
	return level
}

// CanReadProject чтение проекта и его задач
func CanReadProject(level entity.AccessLevel) bool {
	return level.AtLeast(entity.AccessView)
}

// CanManageProject изменение, удаление и шаринг проекта доступны только владельцу
func CanManageProject(level entity.AccessLevel) bool {
	return level == entity.AccessOwner
}

// CanWriteIssues создание задач в проекте
func CanWriteIssues(level entity.AccessLevel) bool {
	return level.AtLeast(entity.AccessEdit)
}

// CanModifyIssue изменение и удаление задачи: уровень edit и выше,
// либо автор задачи, пока у него остается доступ к проекту
func CanModifyIssue(issue *entity.Issue, level entity.AccessLevel, userID string) bool {
	if issue == nil {
		return false
	}
	if CanWriteIssues(level) {
		return true
	}
	return IsOwner(issue.CreatedBy, userID) && CanReadProject(level)
}
