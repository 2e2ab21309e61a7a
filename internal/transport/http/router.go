package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/DB3NJ4/StackFlow/internal/transport/http/handler"
	customMiddleware "github.com/DB3NJ4/StackFlow/internal/transport/http/middleware"
)

// RouterConfig содержит конфигурацию для роутера
type RouterConfig struct {
	HealthHandler     *handler.HealthHandler
	SessionHandler    *handler.SessionHandler
	ProjectHandler    *handler.ProjectHandler
	TeamHandler       *handler.TeamHandler
	IssueHandler      *handler.IssueHandler
	StatisticsHandler *handler.StatisticsHandler
	Authenticator     customMiddleware.Authenticator
	Logger            *zap.Logger
}

// NewRouter создает и настраивает роутер
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", cfg.HealthHandler.Check)

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.Auth(cfg.Authenticator))

		// Session
		r.Get("/me", cfg.SessionHandler.Me)
		r.Post("/auth/signout", cfg.SessionHandler.SignOut)

		// Projects
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", cfg.ProjectHandler.ListProjects)
			r.Post("/", cfg.ProjectHandler.CreateProject)
			r.Patch("/{id}", cfg.ProjectHandler.UpdateProject)
			r.Delete("/{id}", cfg.ProjectHandler.DeleteProject)
			r.Post("/{id}/teams", cfg.ProjectHandler.ShareWithTeam)
			r.Delete("/{id}/teams/{teamID}", cfg.ProjectHandler.UnshareFromTeam)
		})

		// Teams
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", cfg.TeamHandler.ListTeams)
			r.Post("/", cfg.TeamHandler.CreateTeam)
			r.Delete("/{id}", cfg.TeamHandler.DeleteTeam)
			r.Post("/{id}/members", cfg.TeamHandler.InviteMember)
			r.Delete("/{id}/members/{memberID}", cfg.TeamHandler.RemoveMember)
			r.Get("/{id}/projects", cfg.TeamHandler.ListTeamProjects)
			r.Delete("/{id}/projects/{projectID}", cfg.TeamHandler.RemoveProjectFromTeam)
		})

		// Issues
		r.Route("/issues", func(r chi.Router) {
			r.Get("/", cfg.IssueHandler.ListIssues)
			r.Post("/", cfg.IssueHandler.CreateIssue)
			r.Get("/recent", cfg.IssueHandler.RecentIssues)
			r.Patch("/{id}", cfg.IssueHandler.UpdateIssue)
			r.Delete("/{id}", cfg.IssueHandler.DeleteIssue)
		})

		// Statistics
		r.Get("/statistics", cfg.StatisticsHandler.GetStatistics)
	})

	return r
}
