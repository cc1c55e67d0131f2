package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, opts ...Option) *TaskService {
	o := buildOptions(opts)
	return &TaskService{taskRepository: taskRepository, now: o.now}
}

func (s *TaskService) ListProjectTasks(ctx context.Context, projectID, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListProjectTasks(ctx, projectID, userID)
}

func (s *TaskService) GetTask(ctx context.Context, taskID, userID uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, taskID, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	allowed, err := s.CanCreateTask(ctx, input.ProjectID)
	if err != nil {
		return domain.Task{}, err
	}
	if !allowed {
		return domain.Task{}, domain.ErrTaskLimitReached
	}

	createdAt := stamp(s.now)
	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
		Priority:    input.Priority,
		CreatedAt:   createdAt,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
	}
	history := domain.TaskHistory{
		Comment:   createdComment(input.Priority),
		CreatedAt: createdAt,
		AuthorID:  input.AssigneeID,
	}

	taskID, err := s.taskRepository.CreateTask(ctx, task, history)
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.GetTaskByID(ctx, taskID)
}

// UpdateTask rejects any priority different from the stored one before
// touching the task, then records one history entry for the changed fields.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	taskID, userID uint64,
	input domain.UpdateTaskInput,
) (domain.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID, userID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Priority != nil && *input.Priority != task.Priority {
		return domain.Task{}, domain.ErrPriorityImmutable
	}

	changes := taskChanges(task, input)

	updatedAt := stamp(s.now)
	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.DueDate = input.DueDate
	task.UpdatedAt = &updatedAt

	var history *domain.TaskHistory
	if len(changes) > 0 {
		history = &domain.TaskHistory{
			TaskID:    task.ID,
			Comment:   "Task updated: " + strings.Join(changes, ", "),
			CreatedAt: updatedAt,
			AuthorID:  userID,
		}
	}

	if err := s.taskRepository.UpdateTask(ctx, task, history); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.GetTask(ctx, taskID, userID)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID uint64) error {
	return s.taskRepository.DeleteTask(ctx, taskID, userID)
}

// AddComment looks the task up by id only: any user may comment on any task.
func (s *TaskService) AddComment(ctx context.Context, taskID uint64, input domain.AddCommentInput) (domain.Task, error) {
	if _, err := s.taskRepository.GetTaskByID(ctx, taskID); err != nil {
		return domain.Task{}, err
	}

	err := s.taskRepository.AddHistory(ctx, domain.TaskHistory{
		TaskID:    taskID,
		Comment:   input.Comment,
		CreatedAt: stamp(s.now),
		AuthorID:  input.AuthorID,
	})
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.GetTaskByID(ctx, taskID)
}

func (s *TaskService) CanCreateTask(ctx context.Context, projectID uint64) (bool, error) {
	count, err := s.taskRepository.CountProjectTasks(ctx, projectID)
	if err != nil {
		return false, err
	}
	return count < domain.MaxTasksPerProject, nil
}

func createdComment(priority domain.TaskPriority) string {
	return fmt.Sprintf("Task created with priority %s", priority)
}

func taskChanges(before domain.Task, input domain.UpdateTaskInput) []string {
	var changes []string
	if before.Title != input.Title {
		changes = append(changes, fmt.Sprintf("Title changed from '%s' to '%s'", before.Title, input.Title))
	}
	if !equalOptional(before.Description, input.Description) {
		changes = append(changes, "Description updated")
	}
	if before.Status != input.Status {
		changes = append(changes, fmt.Sprintf("Status changed from %s to %s", before.Status, input.Status))
	}
	return changes
}

func equalOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

var _ ports.TaskService = (*TaskService)(nil)
