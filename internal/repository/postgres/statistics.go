package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DB3NJ4/StackFlow/internal/domain/entity"
)

// StatisticsRepository реализует repository.StatisticsRepository для PostgreSQL
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository создает новый репозиторий статистики
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

// GetIssueStatistics считает задачи проектов по статусам и приоритетам
func (r *StatisticsRepository) GetIssueStatistics(ctx context.Context, projectIDs []string) (*entity.IssueStatistics, error) {
	stats := entity.NewIssueStatistics(nil)
	if len(projectIDs) == 0 {
		return &stats, nil
	}

	conn := getConn(ctx, r.pool)

	query := `
		SELECT status, priority, COUNT(*)
		FROM issues
		WHERE project_id = ANY($1)
		GROUP BY status, priority
	`

	rows, err := conn.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, classify(err, "get issue statistics")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status   entity.IssueStatus
			priority entity.IssuePriority
			count    int
		)
		if err := rows.Scan(&status, &priority, &count); err != nil {
			return nil, classify(err, "scan issue statistics")
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByPriority[priority] += count
	}

	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate issue statistics")
	}

	return &stats, nil
}
