package handler

import (
	"net/http"

	"github.com/DB3NJ4/StackFlow/internal/transport/http/dto"
)

// StatisticsHandler обрабатывает запросы для статистики
type StatisticsHandler struct {
	statsService StatisticsService
}

// NewStatisticsHandler создает новый handler для статистики
func NewStatisticsHandler(statsService StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
	}
}

// GetStatistics обрабатывает GET /statistics
func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	dashboard, err := h.statsService.GetDashboard(r.Context(), user)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.DashboardResponse{
		OwnedProjects:  dashboard.OwnedProjects,
		SharedProjects: dashboard.SharedProjects,
		Teams:          dashboard.Teams,
		Issues:         dto.ToIssueStatisticsDTO(&dashboard.Issues),
	})
}
