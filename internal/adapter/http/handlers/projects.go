package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err, apierrors.MsgFailListProjects, "failed to list projects", zap.Uint64("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, userID, ok := pathIDs(c, "projectId", "userId")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), projectID, userID)
	if err != nil {
		abortWithError(c, err, apierrors.MsgFailGetProject, "failed to get project", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildCreateProjectInput(req)
	if err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), input)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailCreateProject, "failed to create project", zap.Uint64("user_id", input.OwnerID))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/projects/%d/user/%d", project.ID, project.OwnerID))
	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, userID, ok := pathIDs(c, "projectId", "userId")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload)
		return
	}

	input, err := validation.BuildUpdateProjectInput(req)
	if err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidProjectPayload)
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, userID, input)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailUpdateProject, "failed to update project", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

// DeleteProject refuses projects with unfinished tasks before looking the
// project up, so the pending-tasks answer wins over not found.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, userID, ok := pathIDs(c, "projectId", "userId")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	allowed, err := h.projectService.CanDeleteProject(ctx, projectID)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailDeleteProject, "failed to check project tasks", zap.Uint64("project_id", projectID))
		return
	}
	if !allowed {
		abortWithError(c, domain.ErrProjectHasPendingTasks, apierrors.MsgFailDeleteProject, "project has pending tasks")
		return
	}

	if err := h.projectService.DeleteProject(ctx, projectID, userID); err != nil {
		abortWithFault(c, err, apierrors.MsgFailDeleteProject, "failed to delete project", zap.Uint64("project_id", projectID))
		return
	}

	c.Status(http.StatusNoContent)
}
