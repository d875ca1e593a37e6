package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-admin-api/internal/models"
	"github.com/noah-isme/course-admin-api/pkg/cache"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
	"github.com/noah-isme/course-admin-api/pkg/idgen"
)

// SubjectIDPrefix prefixes generated subject identifiers.
const SubjectIDPrefix = "subj"

type subjectRepository interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// CreateSubjectRequest captures fields for creating subjects.
type CreateSubjectRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// UpdateSubjectRequest renames a subject.
type UpdateSubjectRequest struct {
	Name string `json:"name" validate:"required"`
}

// SubjectService handles subject workflows.
type SubjectService struct {
	repo      subjectRepository
	ids       idgen.Generator
	cache     *CacheService
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewSubjectService creates a new subject service. cache may be nil.
func NewSubjectService(repo subjectRepository, ids idgen.Generator, cacheSvc *CacheService, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *SubjectService {
	if ids == nil {
		ids = idgen.New(SubjectIDPrefix)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, ids: ids, cache: cacheSvc, validator: validate, metrics: metrics, logger: logger}
}

// List returns subjects newest first, restricted to filter.CourseID when set.
func (s *SubjectService) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	key := subjectListKey(filter.CourseID)
	var cached []models.Subject
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var subjects []models.Subject
	err := s.metrics.track("subjects.list", func() error {
		var err error
		subjects, err = s.repo.List(ctx, filter)
		return err
	})
	if err != nil {
		s.logger.Error("list subjects failed", zap.String("course_id", filter.CourseID), zap.Error(err))
		return nil, appErrors.Database(err, "failed to list subjects")
	}
	if subjects == nil {
		subjects = []models.Subject{}
	}

	s.cache.Set(ctx, key, subjects, 0)
	return subjects, nil
}

// Create inserts a subject under a freshly generated id.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "courseId and name are required")
	}

	subject := &models.Subject{
		ID:       s.ids.NewID(),
		CourseID: models.StringPtr(req.CourseID),
		Name:     models.StringPtr(req.Name),
	}
	err := s.metrics.track("subjects.create", func() error { return s.repo.Create(ctx, subject) })
	if err != nil {
		s.logger.Error("create subject failed", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, appErrors.Database(err, "failed to create subject")
	}

	s.invalidate(ctx)
	return subject, nil
}

// Update renames a subject. No existence check is made.
func (s *SubjectService) Update(ctx context.Context, id string, req UpdateSubjectRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Validation(err, "Name is required")
	}
	err := s.metrics.track("subjects.update", func() error { return s.repo.Rename(ctx, id, req.Name) })
	if err != nil {
		s.logger.Error("update subject failed", zap.String("subject_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to update subject")
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a subject.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	err := s.metrics.track("subjects.delete", func() error { return s.repo.Delete(ctx, id) })
	if err != nil {
		s.logger.Error("delete subject failed", zap.String("subject_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to delete subject")
	}
	s.invalidate(ctx)
	return nil
}

func (s *SubjectService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.Key("subjects", "list", "*"))
}

func subjectListKey(courseID string) string {
	if courseID == "" {
		return cache.Key("subjects", "list", "all")
	}
	return cache.Key("subjects", "list", "course", courseID)
}
