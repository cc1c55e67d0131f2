package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskmanager/internal/core/domain"
)

type projectRepositoryMock struct {
	mock.Mock
}

func (m *projectRepositoryMock) ListProjectsByOwner(ctx context.Context, ownerID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, ownerID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectRepositoryMock) GetProject(ctx context.Context, projectID, ownerID uint64) (domain.Project, error) {
	args := m.Called(ctx, projectID, ownerID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) UpdateProject(ctx context.Context, project domain.Project) error {
	return m.Called(ctx, project).Error(0)
}

func (m *projectRepositoryMock) DeleteProject(ctx context.Context, projectID, ownerID uint64) error {
	return m.Called(ctx, projectID, ownerID).Error(0)
}

func (m *projectRepositoryMock) HasUnfinishedTasks(ctx context.Context, projectID uint64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListProjectTasks(ctx context.Context, projectID, assigneeID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID, assigneeID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, taskID, assigneeID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, assigneeID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetTaskByID(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CountProjectTasks(ctx context.Context, projectID uint64) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, task domain.Task, history domain.TaskHistory) (uint64, error) {
	args := m.Called(ctx, task, history)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, task domain.Task, history *domain.TaskHistory) error {
	return m.Called(ctx, task, history).Error(0)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID, assigneeID uint64) error {
	return m.Called(ctx, taskID, assigneeID).Error(0)
}

func (m *taskRepositoryMock) AddHistory(ctx context.Context, history domain.TaskHistory) error {
	return m.Called(ctx, history).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type reportRepositoryMock struct {
	mock.Mock
}

func (m *reportRepositoryMock) CountCompletedTasksByRole(
	ctx context.Context,
	role domain.UserRole,
	since time.Time,
) ([]domain.CompletedTaskCount, error) {
	args := m.Called(ctx, role, since)

	var counts []domain.CompletedTaskCount
	if value := args.Get(0); value != nil {
		counts = value.([]domain.CompletedTaskCount)
	}
	return counts, args.Error(1)
}

var fixedNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
