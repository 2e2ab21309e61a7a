package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const issueColumns = `i.id, i.title, i.description, i.status, i.priority, i.project_id,
	i.assigned_to, i.created_by, i.created_at, i.updated_at`

func scanIssue(row rowScanner) (entity.Issue, error) {
	var i entity.Issue
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Status,
		&i.Priority,
		&i.ProjectID,
		&i.AssignedTo,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// IssueRepository реализует repository.IssueRepository для PostgreSQL
type IssueRepository struct {
	pool *pgxpool.Pool
}

// NewIssueRepository создает новый репозиторий задач
func NewIssueRepository(pool *pgxpool.Pool) *IssueRepository {
	return &IssueRepository{pool: pool}
}

// Create создает задачу
func (r *IssueRepository) Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error) {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO issues AS i (title, description, status, priority, project_id, assigned_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + issueColumns

	created, err := scanIssue(conn.QueryRow(ctx, query,
		issue.Title,
		issue.Description,
		issue.Status,
		issue.Priority,
		issue.ProjectID,
		issue.AssignedTo,
		issue.CreatedBy,
	))
	if err != nil {
		return nil, classify(err, "create issue")
	}
	return &created, nil
}

// Update меняет только поля из патча и updated_at, возвращает каноническую запись
func (r *IssueRepository) Update(ctx context.Context, issueID string, patch entity.IssuePatch) (*entity.Issue, error) {
	conn := getConn(ctx, r.pool)

	query := `
		UPDATE issues AS i
		SET title = COALESCE($2, i.title),
		    description = CASE WHEN $3::boolean THEN $4 ELSE i.description END,
		    status = COALESCE($5, i.status),
		    priority = COALESCE($6, i.priority),
		    assigned_to = CASE
		        WHEN $7::boolean THEN NULL
		        WHEN $8::uuid IS NOT NULL THEN $8::uuid
		        ELSE i.assigned_to
		    END,
		    updated_at = now()
		WHERE i.id = $1
		RETURNING ` + issueColumns

	updated, err := scanIssue(conn.QueryRow(ctx, query,
		issueID,
		patch.Title,
		patch.Description != nil,
		patch.Description,
		patch.Status,
		patch.Priority,
		patch.ClearAssignee,
		patch.AssignedTo,
	))
	if err != nil {
		return nil, classify(err, "update issue")
	}
	return &updated, nil
}

// Delete удаляет задачу
func (r *IssueRepository) Delete(ctx context.Context, issueID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM issues WHERE id = $1`, issueID)
	if err != nil {
		return classify(err, "delete issue")
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// GetByID возвращает задачу по id
func (r *IssueRepository) GetByID(ctx context.Context, issueID string) (*entity.Issue, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + issueColumns + ` FROM issues i WHERE i.id = $1`

	issue, err := scanIssue(conn.QueryRow(ctx, query, issueID))
	if err != nil {
		return nil, classify(err, "get issue")
	}
	return &issue, nil
}

// ListByProjects возвращает задачи проектов, новые первыми
func (r *IssueRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]entity.Issue, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + issueColumns + `
		FROM issues i
		WHERE i.project_id = ANY($1)
		ORDER BY i.created_at DESC, i.id
	`

	rows, err := conn.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, classify(err, "list issues")
	}
	defer rows.Close()

	var issues []entity.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, classify(err, "scan issue")
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate issues")
	}

	return issues, nil
}
