package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		CreatedAt: formatTime(project.CreatedAt),
		UpdatedAt: formatOptionalTime(project.UpdatedAt),
		UserID:    project.OwnerID,
		UserName:  project.OwnerName,
		TaskCount: project.TaskCount,
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	return item
}
