package tests

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"taskmanager/internal/core/domain"
	"taskmanager/pkg/translator"
)

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context, userID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, userID)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, projectID, userID uint64) (domain.Project, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, projectID, userID uint64, input domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, projectID, userID, input)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, projectID, userID uint64) error {
	return m.Called(ctx, projectID, userID).Error(0)
}

func (m *projectServiceMock) CanDeleteProject(ctx context.Context, projectID uint64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListProjectTasks(ctx context.Context, projectID, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, projectID, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID, userID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID, userID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID, userID uint64) error {
	return m.Called(ctx, taskID, userID).Error(0)
}

func (m *taskServiceMock) AddComment(ctx context.Context, taskID uint64, input domain.AddCommentInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CanCreateTask(ctx context.Context, projectID uint64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

type reportServiceMock struct {
	mock.Mock
}

func (m *reportServiceMock) IsManager(ctx context.Context, userID uint64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *reportServiceMock) GetUserTaskReport(ctx context.Context, requestingUserID uint64) ([]domain.UserTaskReport, error) {
	args := m.Called(ctx, requestingUserID)

	var reports []domain.UserTaskReport
	if value := args.Get(0); value != nil {
		reports = value.([]domain.UserTaskReport)
	}
	return reports, args.Error(1)
}

func serve(router *gin.Engine, method, path, body string, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	return rec
}
