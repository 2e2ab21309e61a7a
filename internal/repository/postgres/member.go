package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
	domainErrors "github.com/DB3NJ4/StackFlow/internal/domain/errors"
)

const memberColumns = `m.id, m.team_id, m.user_id, m.role, m.joined_at`

func scanMember(row rowScanner, extra ...any) (entity.TeamMember, error) {
	var m entity.TeamMember
	dest := append([]any{&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.JoinedAt}, extra...)
	err := row.Scan(dest...)
	return m, err
}

// TeamMemberRepository реализует repository.TeamMemberRepository для PostgreSQL
type TeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewTeamMemberRepository создает новый репозиторий участников команд
func NewTeamMemberRepository(pool *pgxpool.Pool) *TeamMemberRepository {
	return &TeamMemberRepository{pool: pool}
}

// Add добавляет участника, повторное добавление дает ErrConflict
func (r *TeamMemberRepository) Add(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `
		INSERT INTO team_members AS m (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING ` + memberColumns

	created, err := scanMember(conn.QueryRow(ctx, query, member.TeamID, member.UserID, member.Role))
	if err != nil {
		return nil, classify(err, "add team member")
	}
	return &created, nil
}

// GetByID возвращает строку участника
func (r *TeamMemberRepository) GetByID(ctx context.Context, memberID string) (*entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT ` + memberColumns + ` FROM team_members m WHERE m.id = $1`

	member, err := scanMember(conn.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, classify(err, "get team member")
	}
	return &member, nil
}

// Remove удаляет строку участника
func (r *TeamMemberRepository) Remove(ctx context.Context, memberID string) error {
	conn := getConn(ctx, r.pool)

	result, err := conn.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, memberID)
	if err != nil {
		return classify(err, "remove team member")
	}
	if result.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Exists проверяет членство пользователя в команде
func (r *TeamMemberRepository) Exists(ctx context.Context, teamID, userID string) (bool, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`

	var exists bool
	if err := conn.QueryRow(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, classify(err, "check team membership")
	}
	return exists, nil
}

// CountOwners считает строки с ролью owner
func (r *TeamMemberRepository) CountOwners(ctx context.Context, teamID string) (int, error) {
	conn := getConn(ctx, r.pool)

	query := `SELECT COUNT(*) FROM team_members WHERE team_id = $1 AND role = 'owner'`

	var count int
	if err := conn.QueryRow(ctx, query, teamID).Scan(&count); err != nil {
		return 0, classify(err, "count team owners")
	}
	return count, nil
}

// ListByTeam возвращает участников без профилей
func (r *TeamMemberRepository) ListByTeam(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + memberColumns + `
		FROM team_members m
		WHERE m.team_id = $1
		ORDER BY m.joined_at, m.id
	`

	rows, err := conn.Query(ctx, query, teamID)
	if err != nil {
		return nil, classify(err, "list team members")
	}
	return collectMembers(rows)
}

// ListByTeamWithProfiles возвращает участников вместе с email из profiles
func (r *TeamMemberRepository) ListByTeamWithProfiles(ctx context.Context, teamID string) ([]entity.TeamMember, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + memberColumns + `, COALESCE(pr.email, '')
		FROM team_members m
		LEFT JOIN profiles pr ON pr.id = m.user_id
		WHERE m.team_id = $1
		ORDER BY m.joined_at, m.id
	`

	rows, err := conn.Query(ctx, query, teamID)
	if err != nil {
		return nil, classify(err, "list team members with profiles")
	}
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		var email string
		member, err := scanMember(rows, &email)
		if err != nil {
			return nil, classify(err, "scan team member")
		}
		member.Email = email
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate team members")
	}

	return members, nil
}

// ListTeamIDsByUser возвращает id команд, где пользователь состоит
func (r *TeamMemberRepository) ListTeamIDsByUser(ctx context.Context, userID string) ([]string, error) {
	conn := getConn(ctx, r.pool)

	rows, err := conn.Query(ctx, `SELECT team_id FROM team_members WHERE user_id = $1 ORDER BY joined_at`, userID)
	if err != nil {
		return nil, classify(err, "list user teams")
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, classify(err, "scan team ids")
	}
	return ids, nil
}

// ListMemberships возвращает команды пользователя вместе с его ролью
func (r *TeamMemberRepository) ListMemberships(ctx context.Context, userID string) ([]entity.Membership, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT ` + teamColumns + `, m.role
		FROM team_members m
		JOIN teams t ON t.id = m.team_id
		WHERE m.user_id = $1
		ORDER BY m.joined_at, t.id
	`

	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, classify(err, "list memberships")
	}
	defer rows.Close()

	var memberships []entity.Membership
	for rows.Next() {
		var role entity.Role
		team, err := scanTeam(rows, &role)
		if err != nil {
			return nil, classify(err, "scan membership")
		}
		memberships = append(memberships, entity.Membership{Team: &team, Role: role})
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate memberships")
	}

	return memberships, nil
}

// DeleteByTeam удаляет всех участников команды
func (r *TeamMemberRepository) DeleteByTeam(ctx context.Context, teamID string) error {
	conn := getConn(ctx, r.pool)

	if _, err := conn.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return classify(err, "delete team members")
	}
	return nil
}

func collectMembers(rows pgx.Rows) ([]entity.TeamMember, error) {
	defer rows.Close()

	var members []entity.TeamMember
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, classify(err, "scan team member")
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate team members")
	}
	return members, nil
}
