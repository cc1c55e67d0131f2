package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/middleware"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/core/domain"
)

// APISuite drives the full router against a migrated database returned by open.
type APISuite struct {
	suite.Suite

	open   func(t *testing.T) *sqlx.DB
	DB     *sqlx.DB
	router *gin.Engine

	manager domain.User
	member  domain.User
}

func (s *APISuite) SetupTest() {
	s.DB = s.open(s.T())

	users := dbadapter.NewUserRepository(s.DB)
	tasks := dbadapter.NewTaskRepository(s.DB)

	router, err := httpadapter.NewRouter(
		httpadapter.RouterConfig{AppName: "taskmanager", AppVersion: "test"},
		zap.NewNop(),
		s.DB,
		httpadapter.Services{
			Project: appservice.NewProjectService(dbadapter.NewProjectRepository(s.DB)),
			Task:    appservice.NewTaskService(tasks),
			Report:  appservice.NewReportService(users, dbadapter.NewReportRepository(s.DB)),
		},
	)
	s.Require().NoError(err)
	s.router = router

	s.manager = s.createUser(users, "Maria", "maria@example.com", domain.UserRoleManager)
	s.member = s.createUser(users, "Joao", "joao@example.com", domain.UserRoleUser)
}

func (s *APISuite) createUser(users *dbadapter.UserRepository, name, email string, role domain.UserRole) domain.User {
	user, err := users.CreateUser(context.Background(), domain.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	})
	s.Require().NoError(err)
	return user
}

func (s *APISuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) decode(rec *httptest.ResponseRecorder, target any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), target), rec.Body.String())
}

func (s *APISuite) createProject(name string, ownerID uint64) dto.ProjectItem {
	rec := s.do(http.MethodPost, "/api/projects", fmt.Sprintf(`{"name":%q,"userId":%d}`, name, ownerID))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var project dto.ProjectItem
	s.decode(rec, &project)
	return project
}

func (s *APISuite) createTask(title string, projectID, userID uint64) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, "/api/tasks", fmt.Sprintf(
		`{"title":%q,"priority":"Medium","dueDate":"2026-12-01","projectId":%d,"userId":%d}`,
		title, projectID, userID,
	))
}

func (s *APISuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NotEmpty(rec.Header().Get(middleware.RequestIDHeader))
}

func (s *APISuite) TestProjectLifecycle() {
	project := s.createProject("Backend", s.member.ID)
	s.Require().Equal("Joao", project.UserName)
	s.Require().Zero(project.TaskCount)

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/projects/user/%d", s.member.ID), "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var projects []dto.ProjectItem
	s.decode(rec, &projects)
	s.Require().Len(projects, 1)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/projects/%d/user/%d", project.ID, s.manager.ID), "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().JSONEq(`"Project not found"`, rec.Body.String())

	rec = s.do(http.MethodPut, fmt.Sprintf("/api/projects/%d/user/%d", project.ID, s.member.ID), `{"name":"Backend v2","description":"api"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	var updated dto.ProjectItem
	s.decode(rec, &updated)
	s.Require().Equal("Backend v2", updated.Name)
	s.Require().NotNil(updated.UpdatedAt)

	rec = s.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d/user/%d", project.ID, s.member.ID), "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/projects/user/%d", s.member.ID), "")
	s.Require().JSONEq(`[]`, rec.Body.String())
}

func (s *APISuite) TestDeleteProjectWithPendingTasks() {
	project := s.createProject("Backend", s.member.ID)
	s.Require().Equal(http.StatusCreated, s.createTask("Build", project.ID, s.member.ID).Code)

	rec := s.do(http.MethodDelete, fmt.Sprintf("/api/projects/%d/user/%d", project.ID, s.member.ID), "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().JSONEq(`"The project cannot be deleted because it has pending tasks"`, rec.Body.String())
}

func (s *APISuite) TestTaskLimitPerProject() {
	project := s.createProject("Backend", s.member.ID)
	for i := 0; i < domain.MaxTasksPerProject; i++ {
		rec := s.createTask(fmt.Sprintf("Task %d", i+1), project.ID, s.member.ID)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := s.createTask("Task 21", project.ID, s.member.ID)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().JSONEq(`"The project has reached the maximum limit of 20 tasks"`, rec.Body.String())

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/projects/%d/user/%d", project.ID, s.member.ID), "")
	var got dto.ProjectItem
	s.decode(rec, &got)
	s.Require().Equal(domain.MaxTasksPerProject, got.TaskCount)
}

func (s *APISuite) TestTaskUpdateHistory() {
	project := s.createProject("Backend", s.member.ID)
	rec := s.createTask("Build API", project.ID, s.member.ID)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var task dto.TaskItem
	s.decode(rec, &task)
	s.Require().Equal("Pending", task.Status)
	s.Require().Len(task.TaskHistories, 1)
	s.Require().Equal("Task created with priority Medium", task.TaskHistories[0].Comment)

	taskPath := fmt.Sprintf("/api/tasks/%d/user/%d", task.ID, s.member.ID)

	rec = s.do(http.MethodPut, taskPath, `{"title":"Build API","status":"InProgress","priority":"High"}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().JSONEq(`"It is not allowed to change the priority of a task after it has been created"`, rec.Body.String())

	rec = s.do(http.MethodPut, taskPath, `{"title":"Build REST API","status":"Completed","priority":"Medium"}`)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &task)
	s.Require().Equal("Completed", task.Status)
	s.Require().Equal("Medium", task.Priority)
	s.Require().Len(task.TaskHistories, 2)
	s.Require().Equal(
		"Task updated: Title changed from 'Build API' to 'Build REST API', Status changed from Pending to Completed",
		task.TaskHistories[1].Comment,
	)

	rec = s.do(http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", task.ID), fmt.Sprintf(`{"comment":"Reviewed","userId":%d}`, s.manager.ID))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &task)
	s.Require().Len(task.TaskHistories, 3)
	s.Require().Equal("Maria", task.TaskHistories[2].UserName)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d/user/%d", task.ID, s.manager.ID), "")
	s.Require().Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, taskPath, "")
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, taskPath, "")
	s.Require().Equal(http.StatusNotFound, rec.Code)
	s.Require().JSONEq(`"Task not found"`, rec.Body.String())
}

func (s *APISuite) TestCreateTaskUnknownReferences() {
	rec := s.createTask("Orphan", 999999, s.member.ID)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().JSONEq(`"The referenced project or user does not exist"`, rec.Body.String())

	project := s.createProject("Backend", s.member.ID)
	rec = s.createTask("Nobody", project.ID, 999999)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *APISuite) TestUserTaskReport() {
	project := s.createProject("Backend", s.member.ID)
	for i := 0; i < 3; i++ {
		rec := s.createTask(fmt.Sprintf("Task %d", i+1), project.ID, s.member.ID)
		s.Require().Equal(http.StatusCreated, rec.Code)
		var task dto.TaskItem
		s.decode(rec, &task)

		if i < 2 {
			rec = s.do(http.MethodPut, fmt.Sprintf("/api/tasks/%d/user/%d", task.ID, s.member.ID), fmt.Sprintf(`{"title":%q,"status":"Completed"}`, task.Title))
			s.Require().Equal(http.StatusOK, rec.Code)
		}
	}

	rec := s.do(http.MethodGet, fmt.Sprintf("/api/reports/user-tasks/%d", s.member.ID), "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Require().JSONEq(`"Only managers can access this report"`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/reports/user-tasks/999999", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/reports/user-tasks/%d", s.manager.ID), "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var report []dto.UserTaskReportItem
	s.decode(rec, &report)
	s.Require().Len(report, 1)
	s.Require().Equal(s.member.ID, report[0].UserID)
	s.Require().Equal(2, report[0].TotalCompletedTasks)
	s.Require().InDelta(2.0/30.0, report[0].AverageCompletedTasks, 1e-9)
}

func (s *APISuite) TestFrontendIsServed() {
	rec := s.do(http.MethodGet, "/", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "<html")
}
