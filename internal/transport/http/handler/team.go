package handler

import (
	"net/http"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

// TeamHandler обрабатывает запросы для команд
type TeamHandler struct {
	teamService TeamService
}

// NewTeamHandler создает новый handler для команд
func NewTeamHandler(teamService TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams обрабатывает GET /teams
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeams(r.Context(), user)
	if err != nil {
		detail := errorDetail(err)
		if detail.Code != domainErrors.CodeDataLoadFailed {
			handleUseCaseError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.TeamListResponse{
			Teams: []dto.TeamDTO{},
			Error: &detail,
		})
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamListResponse{Teams: dto.ToTeamDTOs(teams)})
}

// CreateTeam обрабатывает POST /teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTeamRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), user, req.Name, req.Description)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTeamDTO(team))
}

// DeleteTeam обрабатывает DELETE /teams/{id}
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), user, teamID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// InviteMember обрабатывает POST /teams/{id}/members
func (h *TeamHandler) InviteMember(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	member, err := h.teamService.InviteMember(r.Context(), user, teamID, req.Email, entity.Role(req.Role))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToTeamMemberDTO(member))
}

// RemoveMember обрабатывает DELETE /teams/{id}/members/{memberID}
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), user, teamID, memberID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTeamProjects обрабатывает GET /teams/{id}/projects
func (h *TeamHandler) ListTeamProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	shares, err := h.teamService.ListTeamProjects(r.Context(), user, teamID)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamProjectsResponse{Projects: dto.ToTeamProjectDTOs(shares)})
}

// RemoveProjectFromTeam обрабатывает DELETE /teams/{id}/projects/{projectID}
func (h *TeamHandler) RemoveProjectFromTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "projectID")
	if !ok {
		return
	}

	if err := h.teamService.RemoveProjectFromTeam(r.Context(), user, teamID, projectID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
