package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type ProjectRepository interface {
	ListProjectsByOwner(ctx context.Context, ownerID uint64) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID, ownerID uint64) (domain.Project, error)
	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	// DeleteProject removes the project with its tasks and their history.
	DeleteProject(ctx context.Context, projectID, ownerID uint64) error
	HasUnfinishedTasks(ctx context.Context, projectID uint64) (bool, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID, userID uint64) (domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	UpdateProject(ctx context.Context, projectID, userID uint64, input domain.UpdateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID, userID uint64) error
	CanDeleteProject(ctx context.Context, projectID uint64) (bool, error)
}
