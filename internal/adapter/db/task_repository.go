package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const selectTasksQuery = `
SELECT
  t.id,
  t.title,
  t.description,
  t.status,
  t.priority,
  t.created_at,
  t.updated_at,
  t.due_date,
  t.project_id,
  COALESCE(p.name, '') AS project_name,
  t.user_id,
  COALESCE(u.name, '') AS user_name
FROM tasks t
LEFT JOIN projects p ON p.id = t.project_id
LEFT JOIN users u ON u.id = t.user_id
`

const listProjectTasksQuery = selectTasksQuery + `WHERE t.project_id = ? AND t.user_id = ? ORDER BY t.id`

const getTaskQuery = selectTasksQuery + `WHERE t.id = ? AND t.user_id = ?`

const getTaskByIDQuery = selectTasksQuery + `WHERE t.id = ?`

const listTaskHistoriesQuery = `
SELECT
  h.id,
  h.task_id,
  h.comment,
  h.created_at,
  h.user_id,
  COALESCE(u.name, '') AS user_name
FROM task_histories h
LEFT JOIN users u ON u.id = h.user_id
WHERE h.task_id IN (?)
ORDER BY h.created_at, h.id
`

const countProjectTasksQuery = `SELECT COUNT(*) FROM tasks WHERE project_id = ?`

const lockProjectQuery = `SELECT id FROM projects WHERE id = ?`

const insertTaskQuery = `
INSERT INTO tasks (title, description, status, priority, created_at, due_date, project_id, user_id)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const updateTaskQuery = `UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ? WHERE id = ?`

const insertTaskHistoryQuery = `INSERT INTO task_histories (comment, created_at, task_id, user_id) VALUES (?, ?, ?, ?)`

const lockAssignedTaskQuery = `SELECT id FROM tasks WHERE id = ? AND user_id = ?`

const deleteTaskHistoriesQuery = `DELETE FROM task_histories WHERE task_id = ?`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`

type TaskRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
	DueDate     sql.NullTime   `db:"due_date"`
	ProjectID   uint64         `db:"project_id"`
	ProjectName string         `db:"project_name"`
	UserID      uint64         `db:"user_id"`
	UserName    string         `db:"user_name"`
}

type taskHistoryRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UserID    uint64    `db:"user_id"`
	UserName  string    `db:"user_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, dialect: dialectFor(db.DriverName())}
}

func (r *TaskRepository) ListProjectTasks(ctx context.Context, projectID, assigneeID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(listProjectTasksQuery), projectID, assigneeID); err != nil {
		return nil, err
	}

	return r.withHistory(ctx, rows)
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID, assigneeID uint64) (domain.Task, error) {
	return r.getOne(ctx, getTaskQuery, taskID, assigneeID)
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	return r.getOne(ctx, getTaskByIDQuery, taskID)
}

func (r *TaskRepository) CountProjectTasks(ctx context.Context, projectID uint64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(countProjectTasksQuery), projectID); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateTask locks the project row and recounts its tasks before inserting,
// so concurrent creations cannot push a project past MaxTasksPerProject.
func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task, history domain.TaskHistory) (uint64, error) {
	var taskID uint64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var projectID uint64
		err := tx.GetContext(ctx, &projectID, tx.Rebind(lockProjectQuery+r.dialect.lockSuffix), task.ProjectID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: project %d", domain.ErrInvalidReference, task.ProjectID)
		}
		if err != nil {
			return err
		}

		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind(countProjectTasksQuery), task.ProjectID); err != nil {
			return err
		}
		if count >= domain.MaxTasksPerProject {
			return domain.ErrTaskLimitReached
		}

		taskID, err = r.dialect.insertReturningID(
			ctx,
			tx,
			insertTaskQuery,
			task.Title,
			nullString(task.Description),
			string(task.Status),
			string(task.Priority),
			task.CreatedAt,
			nullTime(task.DueDate),
			task.ProjectID,
			task.AssigneeID,
		)
		if err != nil {
			return translateError(err)
		}

		history.TaskID = taskID
		return insertHistory(ctx, tx, history)
	})
	if err != nil {
		return 0, err
	}

	return taskID, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task, history *domain.TaskHistory) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(
			ctx,
			tx.Rebind(updateTaskQuery),
			task.Title,
			nullString(task.Description),
			string(task.Status),
			nullTime(task.DueDate),
			nullTime(task.UpdatedAt),
			task.ID,
		)
		if err != nil {
			return err
		}

		if history == nil {
			return nil
		}
		return insertHistory(ctx, tx, *history)
	})
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID, assigneeID uint64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id uint64
		err := tx.GetContext(ctx, &id, tx.Rebind(lockAssignedTaskQuery+r.dialect.lockSuffix), taskID, assigneeID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		if err != nil {
			return err
		}

		for _, query := range []string{deleteTaskHistoriesQuery, deleteTaskQuery} {
			if _, err := tx.ExecContext(ctx, tx.Rebind(query), taskID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *TaskRepository) AddHistory(ctx context.Context, history domain.TaskHistory) error {
	return insertHistory(ctx, r.db, history)
}

func (r *TaskRepository) getOne(ctx context.Context, query string, args ...any) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	tasks, err := r.withHistory(ctx, []taskRow{row})
	if err != nil {
		return domain.Task{}, err
	}

	return tasks[0], nil
}

func (r *TaskRepository) withHistory(ctx context.Context, rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	if len(rows) == 0 {
		return tasks, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	query, args, err := sqlx.In(listTaskHistoriesQuery, ids)
	if err != nil {
		return nil, err
	}

	var historyRows []taskHistoryRow
	if err := r.db.SelectContext(ctx, &historyRows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	byTask := make(map[uint64][]domain.TaskHistory, len(rows))
	for _, h := range historyRows {
		byTask[h.TaskID] = append(byTask[h.TaskID], domain.TaskHistory{
			ID:         h.ID,
			TaskID:     h.TaskID,
			Comment:    h.Comment,
			CreatedAt:  h.CreatedAt,
			AuthorID:   h.UserID,
			AuthorName: h.UserName,
		})
	}

	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		task.History = byTask[row.ID]
		if task.History == nil {
			task.History = []domain.TaskHistory{}
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func insertHistory(ctx context.Context, ext sqlx.ExtContext, history domain.TaskHistory) error {
	_, err := ext.ExecContext(
		ctx,
		ext.Rebind(insertTaskHistoryQuery),
		history.Comment,
		history.CreatedAt,
		history.TaskID,
		history.AuthorID,
	)
	return translateError(err)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:           row.ID,
		Title:        row.Title,
		Status:       domain.TaskStatus(row.Status),
		Priority:     domain.TaskPriority(row.Priority),
		CreatedAt:    row.CreatedAt,
		ProjectID:    row.ProjectID,
		ProjectName:  row.ProjectName,
		AssigneeID:   row.UserID,
		AssigneeName: row.UserName,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.UpdatedAt.Valid {
		value := row.UpdatedAt.Time
		task.UpdatedAt = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}
