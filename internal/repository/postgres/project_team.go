package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const projectTeamColumns = `pt.id, pt.project_id, pt.team_id, pt.access_level, pt.added_at, pt.added_by`

func scanProjectTeam(row rowScanner) (entity.ProjectTeam, error) {
	var pt entity.ProjectTeam
	err := row.Scan(&pt.ID, &pt.ProjectID, &pt.TeamID, &pt.AccessLevel, &pt.AddedAt, &pt.AddedBy)
	return pt, err
}

// ProjectTeamRepository реализует repository.ProjectTeamRepository для PostgreSQL
type ProjectTeamRepository struct {
	pool *pgxpool.Pool
}

// NewProjectTeamRepository создает новый репозиторий связей проектов с командами
func NewProjectTeamRepository(pool *pgxpool.Pool) *ProjectTeamRepository {
	return &ProjectTeamRepository{pool: pool}
}

// Create открывает проект команде, повтор дает ErrConflict
func (r *ProjectTeamRepository) Create(ctx context.Context, share *entity.ProjectTeam) (*entity.ProjectTeam, error) {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO project_teams AS pt (project_id, team_id, access_level, added_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + projectTeamColumns

	created, err := scanProjectTeam(conn.QueryRow(ctx, query,
		share.ProjectID,
		share.TeamID,
		share.AccessLevel,
		share.AddedBy,
	))
	if err != nil {
		return nil, classify(err, "share project")
	}
	return &created, nil
}

// Delete закрывает проект для команды
func (r *ProjectTeamRepository) Delete(ctx context.Context, projectID, teamID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx,
		`DELETE FROM project_teams WHERE project_id = $1 AND team_id = $2`,
		projectID, teamID,
	)
	if err != nil {
		return classify(err, "unshare project")
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DeleteByTeam удаляет все связи команды
func (r *ProjectTeamRepository) DeleteByTeam(ctx context.Context, teamID string) error {
	conn := getConn(ctx, r.pool)

	if _, err := conn.Exec(ctx, `DELETE FROM project_teams WHERE team_id = $1`, teamID); err != nil {
		return classify(err, "delete team project links")
	}
	return nil
}

// ListByProject возвращает команды, которым открыт проект
func (r *ProjectTeamRepository) ListByProject(ctx context.Context, projectID string) ([]entity.ProjectTeam, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + projectTeamColumns + ` FROM project_teams pt WHERE pt.project_id = $1 ORDER BY pt.added_at`

	rows, err := conn.Query(ctx, query, projectID)
	if err != nil {
		return nil, classify(err, "list project shares")
	}
	return collectProjectTeams(rows)
}

// ListByProjects возвращает связи нескольких проектов
func (r *ProjectTeamRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]entity.ProjectTeam, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + projectTeamColumns + ` FROM project_teams pt WHERE pt.project_id = ANY($1) ORDER BY pt.added_at`

	rows, err := conn.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, classify(err, "list project shares")
	}
	return collectProjectTeams(rows)
}

// ListByTeam возвращает проекты команды; Project равен nil, если проект удален
func (r *ProjectTeamRepository) ListByTeam(ctx context.Context, teamID string) ([]entity.ProjectShare, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT pt.team_id, pt.access_level,
		       p.id, p.name, p.description, p.created_by, p.created_at, p.updated_at
		FROM project_teams pt
		LEFT JOIN projects p ON p.id = pt.project_id
		WHERE pt.team_id = $1
		ORDER BY pt.added_at DESC
	`

	rows, err := conn.Query(ctx, query, teamID)
	if err != nil {
		return nil, classify(err, "list team projects")
	}
	defer rows.Close()

	var result []entity.ProjectShare
	for rows.Next() {
		var (
			share       entity.ProjectShare
			id          *string
			name        *string
			description *string
			createdBy   *string
			createdAt   *time.Time
			updatedAt   *time.Time
		)
		err := rows.Scan(&share.TeamID, &share.AccessLevel,
			&id, &name, &description, &createdBy, &createdAt, &updatedAt)
		if err != nil {
			return nil, classify(err, "scan team project")
		}
		if id != nil {
			share.Project = &entity.Project{
				ID:          *id,
				Name:        deref(name),
				Description: description,
				CreatedBy:   deref(createdBy),
			}
			if createdAt != nil {
				share.Project.CreatedAt = *createdAt
			}
			if updatedAt != nil {
				share.Project.UpdatedAt = *updatedAt
			}
		}
		result = append(result, share)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate team projects")
	}

	return result, nil
}

// ListProjectsByTeams возвращает проекты, открытые перечисленным командам
func (r *ProjectTeamRepository) ListProjectsByTeams(ctx context.Context, teamIDs []string) ([]entity.ProjectShare, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + projectColumns + `, pt.team_id, pt.access_level
		FROM project_teams pt
		JOIN projects p ON p.id = pt.project_id
		WHERE pt.team_id = ANY($1)
		ORDER BY p.created_at DESC, p.id
	`

	rows, err := conn.Query(ctx, query, teamIDs)
	if err != nil {
		return nil, classify(err, "list projects by teams")
	}
	defer rows.Close()

	var result []entity.ProjectShare
	for rows.Next() {
		var share entity.ProjectShare
		project, err := scanProject(rows, &share.TeamID, &share.AccessLevel)
		if err != nil {
			return nil, classify(err, "scan shared project")
		}
		share.Project = &project
		result = append(result, share)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate shared projects")
	}

	return result, nil
}

func collectProjectTeams(rows pgx.Rows) ([]entity.ProjectTeam, error) {
	defer rows.Close()

	var shares []entity.ProjectTeam
	for rows.Next() {
		share, err := scanProjectTeam(rows)
		if err != nil {
			return nil, classify(err, "scan project share")
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate project shares")
	}
	return shares, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
