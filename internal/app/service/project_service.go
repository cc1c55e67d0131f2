package service

import (
	"context"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type ProjectService struct {
	projectRepository ports.ProjectRepository
	now               func() time.Time
}

func NewProjectService(projectRepository ports.ProjectRepository, opts ...Option) *ProjectService {
	o := buildOptions(opts)
	return &ProjectService{projectRepository: projectRepository, now: o.now}
}

func (s *ProjectService) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	return s.projectRepository.ListProjectsByOwner(ctx, userID)
}

func (s *ProjectService) GetProject(ctx context.Context, projectID, userID uint64) (domain.Project, error) {
	return s.projectRepository.GetProject(ctx, projectID, userID)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	return s.projectRepository.CreateProject(ctx, domain.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   stamp(s.now),
		OwnerID:     input.OwnerID,
	})
}

func (s *ProjectService) UpdateProject(
	ctx context.Context,
	projectID, userID uint64,
	input domain.UpdateProjectInput,
) (domain.Project, error) {
	project, err := s.projectRepository.GetProject(ctx, projectID, userID)
	if err != nil {
		return domain.Project{}, err
	}

	updatedAt := stamp(s.now)
	project.Name = input.Name
	project.Description = input.Description
	project.UpdatedAt = &updatedAt

	if err := s.projectRepository.UpdateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}

	return s.projectRepository.GetProject(ctx, projectID, userID)
}

// DeleteProject removes the project with its tasks. It does not check for
// pending tasks: callers run CanDeleteProject first.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID uint64) error {
	return s.projectRepository.DeleteProject(ctx, projectID, userID)
}

func (s *ProjectService) CanDeleteProject(ctx context.Context, projectID uint64) (bool, error) {
	unfinished, err := s.projectRepository.HasUnfinishedTasks(ctx, projectID)
	if err != nil {
		return false, err
	}
	return !unfinished, nil
}

var _ ports.ProjectService = (*ProjectService)(nil)
