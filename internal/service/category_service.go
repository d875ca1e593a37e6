package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

type categoryRepository interface {
	Rename(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryService handles category workflows.
type CategoryService struct {
	repo      categoryRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo categoryRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *CategoryService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Update renames the category. An empty name is rejected before any write.
func (s *CategoryService) Update(ctx context.Context, id string, req UpdateCategoryRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Validation(err, "Name is required")
	}
	err := s.metrics.track("categories.update", func() error { return s.repo.Rename(ctx, &models.Category{ID: id, Name: req.Name}) })
	if err != nil {
		s.logger.Error("update category failed", zap.String("category_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to update category")
	}
	return nil
}

// Delete removes the category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	err := s.metrics.track("categories.delete", func() error { return s.repo.Delete(ctx, id) })
	if err != nil {
		s.logger.Error("delete category failed", zap.String("category_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to delete category")
	}
	return nil
}
