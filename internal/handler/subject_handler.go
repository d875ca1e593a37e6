package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-admin-api/internal/models"
	"github.com/noah-isme/course-admin-api/internal/service"
	"github.com/noah-isme/course-admin-api/pkg/response"
)

type subjectService interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	Create(ctx context.Context, req service.CreateSubjectRequest) (*models.Subject, error)
	Update(ctx context.Context, id string, req service.UpdateSubjectRequest) error
	Delete(ctx context.Context, id string) error
}

type subjectExporter interface {
	ExportSubjects(ctx context.Context, filter models.SubjectFilter, format string) (*service.ExportFile, error)
}

// SubjectHandler handles subject endpoints.
type SubjectHandler struct {
	service  subjectService
	exporter subjectExporter
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(svc subjectService, exporter subjectExporter) *SubjectHandler {
	return &SubjectHandler{service: svc, exporter: exporter}
}

// List godoc
// @Summary List subjects
// @Description Newest first, optionally restricted to one course
// @Tags Subjects
// @Produce json
// @Param courseId query string false "Course ID"
// @Success 200 {object} response.Body
// @Router /api/subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.service.List(c.Request.Context(), models.SubjectFilter{CourseID: c.Query("courseId")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.Body{"subjects": subjects})
}

// Create godoc
// @Summary Create subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body service.CreateSubjectRequest true "Subject payload"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /api/subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	var req service.CreateSubjectRequest
	if !bindJSON(c, &req) {
		return
	}
	subject, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, response.Body{"id": subject.ID, "message": "Subject created"})
}

// Update godoc
// @Summary Rename subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id path string true "Subject ID"
// @Param payload body service.UpdateSubjectRequest true "Subject payload"
// @Success 200 {object} response.Body
// @Router /api/subjects/{id} [put]
func (h *SubjectHandler) Update(c *gin.Context) {
	var req service.UpdateSubjectRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Subject updated")
}

// Delete godoc
// @Summary Delete subject
// @Tags Subjects
// @Produce json
// @Param id path string true "Subject ID"
// @Success 200 {object} response.Body
// @Router /api/subjects/{id} [delete]
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Subject deleted")
}

// Export godoc
// @Summary Export subjects
// @Tags Subjects
// @Produce text/csv
// @Produce application/pdf
// @Param courseId query string false "Course ID"
// @Param format query string false "csv or pdf"
// @Success 200 {file} file
// @Router /api/subjects/export [get]
func (h *SubjectHandler) Export(c *gin.Context) {
	file, err := h.exporter.ExportSubjects(c.Request.Context(), models.SubjectFilter{CourseID: c.Query("courseId")}, c.Query("format"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
