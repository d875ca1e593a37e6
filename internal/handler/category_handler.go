package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-admin-api/internal/service"
	"github.com/noah-isme/course-admin-api/pkg/response"
)

type categoryService interface {
	Update(ctx context.Context, id string, req service.UpdateCategoryRequest) error
	Delete(ctx context.Context, id string) error
}

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	service categoryService
}

// NewCategoryHandler constructs a category handler.
func NewCategoryHandler(svc categoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// Update godoc
// @Summary Rename category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param payload body service.UpdateCategoryRequest true "Category payload"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var req service.UpdateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Category updated")
}

// Delete godoc
// @Summary Delete category
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Body
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Category deleted")
}
