package http

import (
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Project *handlers.ProjectHandler
	Task    *handlers.TaskHandler
	Report  *handlers.ReportHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/projects/user/:userId", h.Project.ListProjects)
		api.GET("/projects/:projectId/user/:userId", h.Project.GetProject)
		api.POST("/projects", h.Project.CreateProject)
		api.PUT("/projects/:projectId/user/:userId", h.Project.UpdateProject)
		api.DELETE("/projects/:projectId/user/:userId", h.Project.DeleteProject)

		api.GET("/tasks/project/:projectId/user/:userId", h.Task.ListProjectTasks)
		api.GET("/tasks/:taskId/user/:userId", h.Task.GetTask)
		api.POST("/tasks", h.Task.CreateTask)
		api.PUT("/tasks/:taskId/user/:userId", h.Task.UpdateTask)
		api.DELETE("/tasks/:taskId/user/:userId", h.Task.DeleteTask)
		api.POST("/tasks/:taskId/comments", h.Task.AddComment)

		api.GET("/reports/user-tasks/:managerUserId", h.Report.GetUserTaskReport)
	}

	registerFrontend(r)
}
