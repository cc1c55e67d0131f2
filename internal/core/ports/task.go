package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type TaskRepository interface {
	ListProjectTasks(ctx context.Context, projectID, assigneeID uint64) ([]domain.Task, error)
	// GetTask filters by assignee; GetTaskByID does not.
	GetTask(ctx context.Context, taskID, assigneeID uint64) (domain.Task, error)
	GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error)
	CountProjectTasks(ctx context.Context, projectID uint64) (int, error)
	// CreateTask stores the task and its first history entry in one transaction.
	CreateTask(ctx context.Context, task domain.Task, history domain.TaskHistory) (uint64, error)
	// UpdateTask stores the task and, when not nil, a history entry in one transaction.
	UpdateTask(ctx context.Context, task domain.Task, history *domain.TaskHistory) error
	DeleteTask(ctx context.Context, taskID, assigneeID uint64) error
	AddHistory(ctx context.Context, history domain.TaskHistory) error
}

type TaskService interface {
	ListProjectTasks(ctx context.Context, projectID, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID, userID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID, userID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uint64) error
	AddComment(ctx context.Context, taskID uint64, input domain.AddCommentInput) (domain.Task, error)
	CanCreateTask(ctx context.Context, projectID uint64) (bool, error)
}
