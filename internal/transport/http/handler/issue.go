package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
	"github.com/DB3NJ4/StackFlow/internal/usecase"
)

// IssueHandler обрабатывает запросы для задач
type IssueHandler struct {
	issueService IssueService
}

// NewIssueHandler создает новый handler для задач
func NewIssueHandler(issueService IssueService) *IssueHandler {
	return &IssueHandler{
		issueService: issueService,
	}
}

// ListIssues обрабатывает GET /issues?project_id=
func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	projectID := r.URL.Query().Get("project_id")
	if projectID != "" {
		if _, err := uuid.Parse(projectID); err != nil {
			respondError(w, http.StatusBadRequest, domainErrors.CodeInvalidInput, "project_id must be a valid uuid")
			return
		}
	}

	issues, err := h.issueService.ListIssues(r.Context(), user, projectID)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.IssueListResponse{Issues: dto.ToIssueDTOs(issues)})
}

// RecentIssues обрабатывает GET /issues/recent
func (h *IssueHandler) RecentIssues(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	overview, err := h.issueService.RecentIssues(r.Context(), user)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.RecentIssuesResponse{
		Issues:     dto.ToIssueDTOs(overview.Recent),
		Statistics: dto.ToIssueStatisticsDTO(&overview.Statistics),
	})
}

// CreateIssue обрабатывает POST /issues
func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateIssueRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	issue, err := h.issueService.CreateIssue(r.Context(), user, usecase.CreateIssueInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.IssueStatus(req.Status),
		Priority:    entity.IssuePriority(req.Priority),
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToIssueDTO(issue))
}

// UpdateIssue обрабатывает PATCH /issues/{id}
func (h *IssueHandler) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	issueID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateIssueRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	issue, err := h.issueService.UpdateIssue(r.Context(), user, issueID, dto.ToIssuePatch(&req))
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToIssueDTO(issue))
}

// DeleteIssue обрабатывает DELETE /issues/{id}
func (h *IssueHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	issueID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.issueService.DeleteIssue(r.Context(), user, issueID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
