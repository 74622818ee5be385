package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"taskapi/internal/api"
	"taskapi/internal/config"
	"taskapi/internal/pagination"
	"taskapi/internal/repository"
	"taskapi/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	userService service.UserService
	authService service.AuthService
	taskService service.TaskService
	cfg         *config.Config
}

// NewUserHandler creates a handler layer for user routes.
func NewUserHandler(userService service.UserService, authService service.AuthService, taskService service.TaskService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		taskService: taskService,
		cfg:         cfg,
	}
}

// UpdateUserRequest represents a full-field user update.
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username" validate:"required,min=3"`
	Email    string  `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// ListUsers godoc
// @Summary List users with optional filters
// @Tags users
// @Produce json
// @Param name query string false "Substring match on name"
// @Param username query string false "Substring match on username"
// @Param email query string false "Substring match on email"
// @Param page query int false "1-based page number"
// @Success 200 {object} api.Response
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	filter := repository.UserFilter{
		Name:     c.QueryParam("name"),
		Username: c.QueryParam("username"),
		Email:    c.QueryParam("email"),
	}
	page := pagination.ParsePage(c.QueryParam("page"))

	users, meta, err := h.userService.ListUsers(c.Request().Context(), filter, page, pagination.DefaultPerPage, c.Request().RequestURI)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Paginated(users, meta))
}

// CreateUser godoc
// @Summary Create a user with profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User payload"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, api.Data(user))
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(user))
}

// UpdateUser godoc
// @Summary Replace user fields
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "User payload"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(user))
}

// DeleteUser godoc
// @Summary Delete a user and everything they own
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.DataWithMessage(nil, "User deleted successfully"))
}

// GetUserTasks godoc
// @Summary List a user's tasks
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "1-based page number"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /users/{id}/tasks [get]
func (h *UserHandler) GetUserTasks(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	// 404 before paginating an empty relation of a missing user
	if _, err := h.userService.GetUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	page := pagination.ParsePage(c.QueryParam("page"))
	tasks, meta, err := h.taskService.ListTasks(c.Request().Context(), id, repository.TaskFilter{}, page, h.cfg.TasksPerPage, c.Request().RequestURI)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Paginated(tasks, meta))
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
