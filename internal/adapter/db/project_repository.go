package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const selectProjectsQuery = `
SELECT
  p.id,
  p.name,
  p.description,
  p.created_at,
  p.updated_at,
  p.user_id,
  COALESCE(u.name, '') AS user_name,
  (SELECT COUNT(*) FROM tasks t WHERE t.project_id = p.id) AS task_count
FROM projects p
LEFT JOIN users u ON u.id = p.user_id
`

const listProjectsByOwnerQuery = selectProjectsQuery + `WHERE p.user_id = ? ORDER BY p.id`

const getProjectQuery = selectProjectsQuery + `WHERE p.id = ? AND p.user_id = ?`

const insertProjectQuery = `INSERT INTO projects (name, description, created_at, user_id) VALUES (?, ?, ?, ?)`

const updateProjectQuery = `UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ? AND user_id = ?`

const lockOwnedProjectQuery = `SELECT id FROM projects WHERE id = ? AND user_id = ?`

const deleteProjectHistoriesQuery = `DELETE FROM task_histories WHERE task_id IN (SELECT id FROM tasks WHERE project_id = ?)`

const deleteProjectTasksQuery = `DELETE FROM tasks WHERE project_id = ?`

const deleteProjectQuery = `DELETE FROM projects WHERE id = ?`

const countUnfinishedTasksQuery = `SELECT COUNT(*) FROM tasks WHERE project_id = ? AND status <> ?`

type ProjectRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type projectRow struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
	UserID      uint64         `db:"user_id"`
	UserName    string         `db:"user_name"`
	TaskCount   int            `db:"task_count"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db, dialect: dialectFor(db.DriverName())}
}

func (r *ProjectRepository) ListProjectsByOwner(ctx context.Context, ownerID uint64) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listProjectsByOwnerQuery), ownerID); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	return projects, nil
}

func (r *ProjectRepository) GetProject(ctx context.Context, projectID, ownerID uint64) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(getProjectQuery), projectID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	id, err := r.dialect.insertReturningID(
		ctx,
		r.db,
		insertProjectQuery,
		project.Name,
		nullString(project.Description),
		project.CreatedAt,
		project.OwnerID,
	)
	if err != nil {
		return domain.Project{}, translateError(err)
	}

	return r.GetProject(ctx, id, project.OwnerID)
}

func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	_, err := r.db.ExecContext(
		ctx,
		r.db.Rebind(updateProjectQuery),
		project.Name,
		nullString(project.Description),
		nullTime(project.UpdatedAt),
		project.ID,
		project.OwnerID,
	)
	return err
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, projectID, ownerID uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id uint64
		err := tx.GetContext(ctx, &id, tx.Rebind(lockOwnedProjectQuery+r.dialect.lockSuffix), projectID, ownerID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProjectNotFound
		}
		if err != nil {
			return err
		}

		for _, query := range []string{deleteProjectHistoriesQuery, deleteProjectTasksQuery, deleteProjectQuery} {
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), projectID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ProjectRepository) HasUnfinishedTasks(ctx context.Context, projectID uint64) (bool, error) {
	var count int
	err := r.db.GetContext(
		ctx,
		&count,
		r.db.Rebind(countUnfinishedTasksQuery),
		projectID,
		string(domain.TaskStatusCompleted),
	)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		OwnerID:   row.UserID,
		OwnerName: row.UserName,
		TaskCount: row.TaskCount,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	if row.UpdatedAt.Valid {
		value := row.UpdatedAt.Time
		project.UpdatedAt = &value
	}

	return project
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
