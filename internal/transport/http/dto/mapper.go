package dto

import (
	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// ToUserDTO конвертирует entity.User в UserDTO
func ToUserDTO(user *entity.User) UserDTO {
	return UserDTO{ID: user.ID, Email: user.Email}
}

// ToProjectDTO конвертирует entity.VisibleProject в ProjectDTO
func ToProjectDTO(p *entity.VisibleProject) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		IsOwner:     p.IsOwner,
		IsShared:    p.IsShared,
		AccessLevel: string(p.AccessLevel),
	}
}

func ToProjectDTOs(projects []entity.VisibleProject) []ProjectDTO {
	result := make([]ProjectDTO, 0, len(projects))
	for i := range projects {
		result = append(result, ToProjectDTO(&projects[i]))
	}
	return result
}

// ToProjectTeamDTO конвертирует entity.ProjectTeam в ProjectTeamDTO
func ToProjectTeamDTO(pt *entity.ProjectTeam) ProjectTeamDTO {
	return ProjectTeamDTO{
		ID:          pt.ID,
		ProjectID:   pt.ProjectID,
		TeamID:      pt.TeamID,
		AccessLevel: string(pt.AccessLevel),
		AddedAt:     pt.AddedAt,
		AddedBy:     pt.AddedBy,
	}
}

// ToTeamMemberDTO конвертирует entity.TeamMember в TeamMemberDTO
func ToTeamMemberDTO(m *entity.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:       m.ID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
		Email:    m.Email,
	}
}

// ToTeamDTO конвертирует entity.TeamWithMembers в TeamDTO
func ToTeamDTO(team *entity.TeamWithMembers) TeamDTO {
	members := make([]TeamMemberDTO, 0, len(team.Members))
	for i := range team.Members {
		members = append(members, ToTeamMemberDTO(&team.Members[i]))
	}

	return TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedBy:   team.CreatedBy,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
		Members:     members,
		UserRole:    string(team.UserRole),
	}
}

func ToTeamDTOs(teams []entity.TeamWithMembers) []TeamDTO {
	result := make([]TeamDTO, 0, len(teams))
	for i := range teams {
		result = append(result, ToTeamDTO(&teams[i]))
	}
	return result
}

// ToTeamProjectDTOs пропускает связи без проекта
func ToTeamProjectDTOs(shares []entity.ProjectShare) []TeamProjectDTO {
	result := make([]TeamProjectDTO, 0, len(shares))
	for _, share := range shares {
		if share.Project == nil {
			continue
		}
		result = append(result, TeamProjectDTO{
			ID:          share.Project.ID,
			Name:        share.Project.Name,
			Description: share.Project.Description,
			CreatedBy:   share.Project.CreatedBy,
			CreatedAt:   share.Project.CreatedAt,
			UpdatedAt:   share.Project.UpdatedAt,
			AccessLevel: string(share.AccessLevel),
		})
	}
	return result
}

// ToIssueDTO конвертирует entity.Issue в IssueDTO
func ToIssueDTO(issue *entity.Issue) IssueDTO {
	return IssueDTO{
		ID:          issue.ID,
		Title:       issue.Title,
		Description: issue.Description,
		Status:      string(issue.Status),
		Priority:    string(issue.Priority),
		ProjectID:   issue.ProjectID,
		AssignedTo:  issue.AssignedTo,
		CreatedBy:   issue.CreatedBy,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
	}
}

func ToIssueDTOs(issues []entity.Issue) []IssueDTO {
	result := make([]IssueDTO, 0, len(issues))
	for i := range issues {
		result = append(result, ToIssueDTO(&issues[i]))
	}
	return result
}

// ToIssueStatisticsDTO конвертирует entity.IssueStatistics в IssueStatisticsDTO
func ToIssueStatisticsDTO(stats *entity.IssueStatistics) IssueStatisticsDTO {
	result := IssueStatisticsDTO{
		Total:      stats.Total,
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		ByPriority: make(map[string]int, len(stats.ByPriority)),
	}
	for status, count := range stats.ByStatus {
		result.ByStatus[string(status)] = count
	}
	for priority, count := range stats.ByPriority {
		result.ByPriority[string(priority)] = count
	}
	return result
}

// ToIssuePatch конвертирует запрос в патч; непереданные поля не меняются
func ToIssuePatch(req *UpdateIssueRequest) entity.IssuePatch {
	patch := entity.IssuePatch{
		Title:         req.Title,
		Description:   req.Description,
		AssignedTo:    req.AssignedTo,
		ClearAssignee: req.ClearAssignee,
	}
	if req.Status != nil {
		status := entity.IssueStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := entity.IssuePriority(*req.Priority)
		patch.Priority = &priority
	}
	return patch
}
