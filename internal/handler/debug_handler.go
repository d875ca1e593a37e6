package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-admin-api/internal/service"
	"github.com/noah-isme/course-admin-api/pkg/response"
)

type debugService interface {
	CheckUser(ctx context.Context, q service.CheckUserQuery) (*service.UserInspection, error)
	MigrateCourses(ctx context.Context) error
}

// DebugHandler serves database inspection and the ad hoc course migration.
type DebugHandler struct {
	service debugService
}

// NewDebugHandler constructs the handler.
func NewDebugHandler(svc debugService) *DebugHandler {
	return &DebugHandler{service: svc}
}

// CheckDB godoc
// @Summary Inspect a user and their enrollments
// @Tags Debug
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} response.Body
// @Failure 404 {string} string "User not found"
// @Router /api/debug/check_db [get]
func (h *DebugHandler) CheckDB(c *gin.Context) {
	result, err := h.service.CheckUser(c.Request.Context(), service.CheckUserQuery{Email: c.Query("email")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.Body{"user": result.User, "enrollments": result.Enrollments})
}

// MigrateCourses godoc
// @Summary Add the courses.details column
// @Description Not idempotent: a second run fails because the column exists
// @Tags Debug
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /api/debug/migrate_courses [post]
func (h *DebugHandler) MigrateCourses(c *gin.Context) {
	if err := h.service.MigrateCourses(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}
	response.Text(c, http.StatusOK, "Migration successful: courses.details column added")
}
