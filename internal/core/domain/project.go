package domain

import "time"

type Project struct {
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	OwnerID     uint64
	OwnerName   string
	TaskCount   int
}

type CreateProjectInput struct {
	Name        string
	Description *string
	OwnerID     uint64
}

type UpdateProjectInput struct {
	Name        string
	Description *string
}
