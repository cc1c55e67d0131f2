package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/adapter/http/mapper"
	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/ports"
	"taskmanager/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	projectID, userID, ok := pathIDs(c, "projectId", "userId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListProjectTasks(c.Request.Context(), projectID, userID)
	if err != nil {
		abortWithError(c, err, apierrors.MsgFailListTasks, "failed to list project tasks", zap.Uint64("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, userID, ok := pathIDs(c, "taskId", "userId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID, userID)
	if err != nil {
		abortWithError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailCreateTask, "failed to create task", zap.Uint64("project_id", input.ProjectID))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/tasks/%d/user/%d", task.ID, task.AssigneeID))
	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, userID, ok := pathIDs(c, "taskId", "userId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req)
	if err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, userID, input)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, userID, ok := pathIDs(c, "taskId", "userId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, userID); err != nil {
		abortWithFault(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidCommentPayload)
		return
	}

	input, err := validation.BuildAddCommentInput(req)
	if err != nil {
		abort(c, http.StatusBadRequest, apierrors.MsgInvalidCommentPayload)
		return
	}

	task, err := h.taskService.AddComment(c.Request.Context(), taskID, input)
	if err != nil {
		abortWithFault(c, err, apierrors.MsgFailAddComment, "failed to add comment", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
