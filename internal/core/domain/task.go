package domain

import "time"

// MaxTasksPerProject is the number of tasks a project can hold.
const MaxTasksPerProject = 20

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID           uint64
	Title        string
	Description  *string
	Status       TaskStatus
	Priority     TaskPriority
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DueDate      *time.Time
	ProjectID    uint64
	ProjectName  string
	AssigneeID   uint64
	AssigneeName string
	History      []TaskHistory
}

// TaskHistory is one entry of the append-only audit trail of a task.
type TaskHistory struct {
	ID         uint64
	TaskID     uint64
	Comment    string
	CreatedAt  time.Time
	AuthorID   uint64
	AuthorName string
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    TaskPriority
	DueDate     *time.Time
	ProjectID   uint64
	AssigneeID  uint64
}

// UpdateTaskInput carries the mutable fields of a task. Priority is only
// present to detect callers trying to change it.
type UpdateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	Priority    *TaskPriority
}

type AddCommentInput struct {
	Comment  string
	AuthorID uint64
}
