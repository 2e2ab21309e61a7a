package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const projectColumns = `p.id, p.name, p.description, p.created_by, p.created_at, p.updated_at`

// rowScanner общий интерфейс pgx.Row и pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, extra ...any) (entity.Project, error) {
	var p entity.Project
	dest := append([]any{&p.ID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt}, extra...)
	err := row.Scan(dest...)
	return p, err
}

// ProjectRepository реализует repository.ProjectRepository для PostgreSQL
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository создает новый репозиторий проектов
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Create создает проект, id и время назначает база
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO projects AS p (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING ` + projectColumns

	created, err := scanProject(conn.QueryRow(ctx, query, project.Name, project.Description, project.CreatedBy))
	if err != nil {
		return nil, classify(err, "create project")
	}
	return &created, nil
}

// Update меняет только переданные поля и возвращает каноническую запись
func (r *ProjectRepository) Update(ctx context.Context, projectID string, patch entity.ProjectPatch) (*entity.Project, error) {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE projects AS p
		SET name = COALESCE($2, p.name),
		    description = CASE WHEN $3::boolean THEN $4 ELSE p.description END,
		    updated_at = now()
		WHERE p.id = $1
		RETURNING ` + projectColumns

	updated, err := scanProject(conn.QueryRow(ctx, query,
		projectID,
		patch.Name,
		patch.Description != nil,
		patch.Description,
	))
	if err != nil {
		return nil, classify(err, "update project")
	}
	return &updated, nil
}

// Delete удаляет проект, задачи и связи с командами удаляются каскадно
func (r *ProjectRepository) Delete(ctx context.Context, projectID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM projects WHERE id = $1`, projectID)
	if err != nil {
		return classify(err, "delete project")
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// GetByID возвращает проект по id
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*entity.Project, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	project, err := scanProject(conn.QueryRow(ctx, query, projectID))
	if err != nil {
		return nil, classify(err, "get project")
	}
	return &project, nil
}

// ListByOwner возвращает проекты пользователя, новые первыми
func (r *ProjectRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Project, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC, p.id
	`

	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, classify(err, "list owned projects")
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, classify(err, "scan project")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate projects")
	}

	return projects, nil
}

// ListVisible объединяет собственные проекты и проекты команд пользователя.
// Проект, доступный через несколько команд, встречается несколько раз.
func (r *ProjectRepository) ListVisible(ctx context.Context, userID string) ([]entity.VisibleProject, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + projectColumns + `, p.created_by = $1 AS is_owner, COALESCE(pt.access_level, '')
		FROM projects p
		LEFT JOIN project_teams pt
		       ON pt.project_id = p.id
		      AND pt.team_id IN (SELECT tm.team_id FROM team_members tm WHERE tm.user_id = $1)
		WHERE p.created_by = $1 OR pt.id IS NOT NULL
		ORDER BY p.created_at DESC, p.id
	`

	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, classify(err, "list visible projects")
	}
	defer rows.Close()

	var result []entity.VisibleProject
	for rows.Next() {
		var (
			isOwner bool
			level   entity.AccessLevel
		)
		project, err := scanProject(rows, &isOwner, &level)
		if err != nil {
			return nil, classify(err, "scan visible project")
		}
		result = append(result, entity.VisibleProject{
			Project:     project,
			IsOwner:     isOwner,
			IsShared:    level != entity.AccessNone,
			AccessLevel: level,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate visible projects")
	}

	return result, nil
}
