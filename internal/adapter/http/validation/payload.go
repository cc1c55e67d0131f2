package validation

import (
	"errors"
	"strings"
	"time"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

const dateLayout = "2006-01-02"

func BuildCreateProjectInput(req dto.CreateProjectRequest) (domain.CreateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, ErrInvalidPayload
	}

	return domain.CreateProjectInput{
		Name:        name,
		Description: optionalText(req.Description),
		OwnerID:     req.UserID,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest) (domain.UpdateProjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.UpdateProjectInput{}, ErrInvalidPayload
	}

	return domain.UpdateProjectInput{
		Name:        name,
		Description: optionalText(req.Description),
	}, nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	priority := domain.TaskPriority(req.Priority)
	if !priority.Valid() {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	dueDate, err := ParseDueDate(req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: optionalText(req.Description),
		Priority:    priority,
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.UserID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	status := domain.TaskStatus(req.Status)
	if !status.Valid() {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	dueDate, err := ParseDueDate(req.DueDate)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		priority = &value
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: optionalText(req.Description),
		Status:      status,
		DueDate:     dueDate,
		Priority:    priority,
	}, nil
}

func BuildAddCommentInput(req dto.AddCommentRequest) (domain.AddCommentInput, error) {
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return domain.AddCommentInput{}, ErrInvalidPayload
	}

	return domain.AddCommentInput{Comment: comment, AuthorID: req.UserID}, nil
}

// ParseDueDate accepts RFC 3339 timestamps and plain dates. Blank means no due date.
func ParseDueDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	raw := strings.TrimSpace(*value)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", dateLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			utc := parsed.UTC().Truncate(time.Microsecond)
			return &utc, nil
		}
	}

	return nil, ErrInvalidPayload
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
