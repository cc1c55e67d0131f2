package mapper

import (
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:            task.ID,
		Title:         task.Title,
		Status:        string(task.Status),
		Priority:      string(task.Priority),
		CreatedAt:     formatTime(task.CreatedAt),
		ProjectID:     task.ProjectID,
		ProjectName:   task.ProjectName,
		UserID:        task.AssigneeID,
		UserName:      task.AssigneeName,
		TaskHistories: make([]dto.TaskHistoryItem, 0, len(task.History)),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	item.UpdatedAt = formatOptionalTime(task.UpdatedAt)
	item.DueDate = formatOptionalTime(task.DueDate)

	for _, history := range task.History {
		item.TaskHistories = append(item.TaskHistories, dto.TaskHistoryItem{
			ID:        history.ID,
			Comment:   history.Comment,
			CreatedAt: formatTime(history.CreatedAt),
			UserName:  history.AuthorName,
		})
	}

	return item
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func formatOptionalTime(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := formatTime(*value)
	return &formatted
}
