package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskapi/internal/api"
	"taskapi/internal/middleware"
	"taskapi/internal/model"
	"taskapi/internal/pagination"
	"taskapi/internal/repository"
	"taskapi/internal/service"
)

// TaskHandler bundles task HTTP handlers. All routes operate on the
// authenticated user's tasks and address them by UUID, never surrogate id.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a handler layer for task routes.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation payload.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description" validate:"required"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Labels      []string   `json:"labels"`
}

// UpdateTaskRequest represents a full-field task update. Labels are additive:
// titles listed here gain associations, omitted ones keep theirs.
type UpdateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Description string     `json:"description" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=pending in-progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	Labels      []string   `json:"labels"`
}

// UpdateTaskStatusRequest updates the status field only.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed"`
}

// UpdateTaskPriorityRequest updates the priority field only.
type UpdateTaskPriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=low medium high"`
}

// FullTaskResponse is a task together with its labels.
type FullTaskResponse struct {
	Task   *model.Task   `json:"task"`
	Labels []model.Label `json:"labels"`
}

// ListTasks godoc
// @Summary List the authenticated user's tasks
// @Tags tasks
// @Produce json
// @Param status query string false "Exact status match"
// @Param page query int false "1-based page number"
// @Success 200 {object} api.Response
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	user := middleware.CurrentUser(c)
	filter := repository.TaskFilter{Status: c.QueryParam("status")}
	page := pagination.ParsePage(c.QueryParam("page"))

	tasks, meta, err := h.taskService.ListTasks(c.Request().Context(), user.ID, filter, page, pagination.DefaultPerPage, c.Request().RequestURI)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Paginated(tasks, meta))
}

// CreateTask godoc
// @Summary Create a task with optional labels
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "Task payload"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), user.ID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, api.Data(task))
}

// GetTask godoc
// @Summary Get a task by UUID
// @Tags tasks
// @Produce json
// @Param uuid path string true "Task UUID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	task, err := h.taskService.GetTask(c.Request().Context(), user.ID, c.Param("uuid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(task))
}

// GetTaskFull godoc
// @Summary Get a task with its labels
// @Tags tasks
// @Produce json
// @Param uuid path string true "Task UUID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid}/full [get]
func (h *TaskHandler) GetTaskFull(c echo.Context) error {
	user := middleware.CurrentUser(c)

	task, labels, err := h.taskService.GetTaskWithLabels(c.Request().Context(), user.ID, c.Param("uuid"))
	if err != nil {
		return respondError(c, err)
	}
	if labels == nil {
		labels = []model.Label{}
	}
	return c.JSON(http.StatusOK, api.Data(FullTaskResponse{Task: task, Labels: labels}))
}

// UpdateTask godoc
// @Summary Replace a task's fields and add labels
// @Tags tasks
// @Accept json
// @Produce json
// @Param uuid path string true "Task UUID"
// @Param request body UpdateTaskRequest true "Task payload"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), user.ID, c.Param("uuid"), service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(task))
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Param uuid path string true "Task UUID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if err := h.taskService.DeleteTask(c.Request().Context(), user.ID, c.Param("uuid")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.DataWithMessage(nil, "Task deleted successfully"))
}

// UpdateStatus godoc
// @Summary Update a task's status
// @Tags tasks
// @Accept json
// @Produce json
// @Param uuid path string true "Task UUID"
// @Param request body UpdateTaskStatusRequest true "Status payload"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid}/update_status [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), user.ID, c.Param("uuid"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(task))
}

// UpdatePriority godoc
// @Summary Update a task's priority
// @Tags tasks
// @Accept json
// @Produce json
// @Param uuid path string true "Task UUID"
// @Param request body UpdateTaskPriorityRequest true "Priority payload"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /tasks/{uuid}/update_priority [put]
func (h *TaskHandler) UpdatePriority(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req UpdateTaskPriorityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	task, err := h.taskService.UpdatePriority(c.Request().Context(), user.ID, c.Param("uuid"), req.Priority)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(task))
}
