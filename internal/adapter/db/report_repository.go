package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const countCompletedTasksByRoleQuery = `
SELECT
  u.id AS user_id,
  u.name AS user_name,
  u.email AS user_email,
  COUNT(t.id) AS completed
FROM users u
LEFT JOIN tasks t
  ON t.user_id = u.id
  AND t.status = ?
  AND t.updated_at >= ?
WHERE u.role = ?
GROUP BY u.id, u.name, u.email
ORDER BY u.id
`

type ReportRepository struct {
	db *sqlx.DB
}

type completedTaskCountRow struct {
	UserID    uint64 `db:"user_id"`
	UserName  string `db:"user_name"`
	UserEmail string `db:"user_email"`
	Completed int    `db:"completed"`
}

var _ ports.ReportRepository = (*ReportRepository)(nil)

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CountCompletedTasksByRole returns one row per user of the given role, with
// the number of their tasks completed at or after since. Users without any
// completed task are included with a zero count.
func (r *ReportRepository) CountCompletedTasksByRole(
	ctx context.Context,
	role domain.UserRole,
	since time.Time,
) ([]domain.CompletedTaskCount, error) {
	var rows []completedTaskCountRow
	err := r.db.SelectContext(
		ctx,
		&rows,
		r.db.Rebind(countCompletedTasksByRoleQuery),
		string(domain.TaskStatusCompleted),
		since.UTC(),
		string(role),
	)
	if err != nil {
		return nil, err
	}

	counts := make([]domain.CompletedTaskCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, domain.CompletedTaskCount{
			UserID:    row.UserID,
			UserName:  row.UserName,
			UserEmail: row.UserEmail,
			Completed: row.Completed,
		})
	}

	return counts, nil
}
