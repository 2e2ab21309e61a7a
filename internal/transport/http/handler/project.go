package handler

import (
	"net/http"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

// ProjectHandler обрабатывает запросы для проектов
type ProjectHandler struct {
	projectService ProjectService
}

// NewProjectHandler создает новый handler для проектов
func NewProjectHandler(projectService ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects обрабатывает GET /projects.
// Ошибка загрузки не ломает страницу: 200 с пустым списком и описанием ошибки.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), user)
	if err != nil {
		detail := errorDetail(err)
		if detail.Code != domainErrors.CodeDataLoadFailed {
			handleUseCaseError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.ProjectListResponse{
			Projects: []dto.ProjectDTO{},
			Error:    &detail,
		})
		return
	}

	respondJSON(w, http.StatusOK, dto.ProjectListResponse{Projects: dto.ToProjectDTOs(projects)})
}

// CreateProject обрабатывает POST /projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), user, req.Name, req.Description)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToProjectDTO(project))
}

// UpdateProject обрабатывает PATCH /projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(r.Context(), user, projectID, entity.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToProjectDTO(project))
}

// DeleteProject обрабатывает DELETE /projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(r.Context(), user, projectID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ShareWithTeam обрабатывает POST /projects/{id}/teams
func (h *ProjectHandler) ShareWithTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ShareProjectRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	share, err := h.projectService.ShareWithTeam(r.Context(), user, projectID, req.TeamID, entity.AccessLevel(req.AccessLevel))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToProjectTeamDTO(share))
}

// UnshareFromTeam обрабатывает DELETE /projects/{id}/teams/{teamID}
func (h *ProjectHandler) UnshareFromTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	teamID, ok := pathID(w, r, "teamID")
	if !ok {
		return
	}

	if err := h.projectService.UnshareFromTeam(r.Context(), user, projectID, teamID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
