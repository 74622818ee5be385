package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskapi/internal/api"
	"taskapi/internal/middleware"
	"taskapi/internal/service"
)

// LabelHandler bundles label HTTP handlers, all scoped to the authenticated
// user.
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a handler layer for label routes.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// LabelRequest represents a label create or update payload.
type LabelRequest struct {
	Title string `json:"title" validate:"required,min=3"`
	Color string `json:"color"`
}

// ListLabels godoc
// @Summary List the authenticated user's labels
// @Tags labels
// @Produce json
// @Success 200 {object} api.Response
// @Security BearerAuth
// @Router /labels [get]
func (h *LabelHandler) ListLabels(c echo.Context) error {
	user := middleware.CurrentUser(c)

	labels, err := h.labelService.ListLabels(c.Request().Context(), user.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(labels))
}

// CreateLabel godoc
// @Summary Create a label
// @Tags labels
// @Accept json
// @Produce json
// @Param request body LabelRequest true "Label payload"
// @Success 201 {object} api.Response
// @Failure 400 {object} api.Response
// @Security BearerAuth
// @Router /labels [post]
func (h *LabelHandler) CreateLabel(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	label, err := h.labelService.CreateLabel(c.Request().Context(), user.ID, req.Title, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, api.Data(label))
}

// GetLabel godoc
// @Summary Get a label by id
// @Tags labels
// @Produce json
// @Param id path int true "Label ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /labels/{id} [get]
func (h *LabelHandler) GetLabel(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	label, err := h.labelService.GetLabel(c.Request().Context(), user.ID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(label))
}

// UpdateLabel godoc
// @Summary Rename a label
// @Tags labels
// @Accept json
// @Produce json
// @Param id path int true "Label ID"
// @Param request body LabelRequest true "Label payload"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /labels/{id} [put]
func (h *LabelHandler) UpdateLabel(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	var req LabelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, api.Error(err.Error()))
	}

	label, err := h.labelService.UpdateLabel(c.Request().Context(), user.ID, id, req.Title, req.Color)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.Data(label))
}

// DeleteLabel godoc
// @Summary Delete a label
// @Tags labels
// @Produce json
// @Param id path int true "Label ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Security BearerAuth
// @Router /labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(c echo.Context) error {
	user := middleware.CurrentUser(c)

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, api.Error("invalid id"))
	}

	if err := h.labelService.DeleteLabel(c.Request().Context(), user.ID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, api.DataWithMessage(nil, "Label deleted successfully"))
}
