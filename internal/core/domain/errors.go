package domain

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserAlreadyExists      = errors.New("user already exists")
	ErrProjectNotFound        = errors.New("project not found")
	ErrProjectHasPendingTasks = errors.New("project has pending tasks")
	ErrTaskNotFound           = errors.New("task not found")
	ErrTaskLimitReached       = errors.New("project reached the maximum number of tasks")
	ErrPriorityImmutable      = errors.New("task priority cannot be changed")
	ErrInvalidReference       = errors.New("referenced entity does not exist")
	ErrNotManager             = errors.New("only managers can access this report")
)
