package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-admin-api/internal/models"
	"github.com/noah-isme/course-admin-api/internal/service"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
	"github.com/noah-isme/course-admin-api/pkg/response"
)

type userAdminService interface {
	Approve(ctx context.Context, id string) error
	Update(ctx context.Context, id string, req service.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// UserHandler handles the admin user endpoints.
type UserHandler struct {
	service userAdminService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc userAdminService) *UserHandler {
	return &UserHandler{service: svc}
}

// Approve godoc
// @Summary Approve user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Body
// @Failure 500 {object} response.Body
// @Router /api/admin/users/{id} [patch]
func (h *UserHandler) Approve(c *gin.Context) {
	if err := h.service.Approve(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "User approved")
}

// Update godoc
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param payload body service.UpdateUserRequest true "User payload"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /api/admin/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(appErrors.Validation(err, "invalid payload"))
		return
	}
	if _, err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "User updated")
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Body
// @Router /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "User deleted")
}
