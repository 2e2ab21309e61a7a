package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// ProfileRepository реализует repository.ProfileRepository для PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository создает новый репозиторий профилей
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetByEmail ищет профиль по email без учета регистра
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	conn := getConn(ctx, r.pool)

	query := `
		SELECT id, email, full_name
		FROM profiles
		WHERE lower(email) = lower($1)
	`

	var profile entity.Profile
	err := conn.QueryRow(ctx, query, email).Scan(&profile.ID, &profile.Email, &profile.FullName)
	if err != nil {
		return nil, classify(err, "get profile")
	}
	return &profile, nil
}
