package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const teamColumns = `t.id, t.name, t.description, t.created_by, t.created_at, t.updated_at`

func scanTeam(row rowScanner, extra ...any) (entity.Team, error) {
	var t entity.Team
	dest := append([]any{&t.ID, &t.Name, &t.Description, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt}, extra...)
	err := row.Scan(dest...)
	return t, err
}

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	pool *pgxpool.Pool
}

// NewTeamRepository создает новый репозиторий команд
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO teams AS t (name, description, created_by)
		VALUES ($1, $2, $3)
		RETURNING ` + teamColumns

	created, err := scanTeam(conn.QueryRow(ctx, query, team.Name, team.Description, team.CreatedBy))
	if err != nil {
		return nil, classify(err, "create team")
	}
	return &created, nil
}

// GetByID возвращает команду по id
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + teamColumns + ` FROM teams t WHERE t.id = $1`

	team, err := scanTeam(conn.QueryRow(ctx, query, teamID))
	if err != nil {
		return nil, classify(err, "get team")
	}
	return &team, nil
}

// ListByOwner возвращает команды, созданные пользователем
func (r *TeamRepository) ListByOwner(ctx context.Context, userID string) ([]entity.Team, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		WHERE t.created_by = $1
		ORDER BY t.created_at DESC, t.id
	`

	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, classify(err, "list owned teams")
	}
	defer rows.Close()

	var teams []entity.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, classify(err, "scan team")
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate teams")
	}

	return teams, nil
}

// Delete удаляет команду. Участники и связи с проектами должны быть удалены раньше.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return classify(err, "delete team")
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
