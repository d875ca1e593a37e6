package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

type userRepository interface {
	Approve(ctx context.Context, id string) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// UpdateUserRequest is the full replacement payload for a user. Fields are written as
// given; absent or null fields become NULL. approved takes a boolean or 0/1.
type UpdateUserRequest struct {
	Name     *string     `json:"name"`
	Email    *string     `json:"email"`
	Phone    *string     `json:"phone"`
	Role     *string     `json:"role"`
	Approved models.Flag `json:"approved" swaggertype:"boolean"`
}

// UserService handles user administration.
type UserService struct {
	repo    userRepository
	metrics *MetricsService
	logger  *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(repo userRepository, metrics *MetricsService, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, metrics: metrics, logger: logger}
}

// Approve marks the user approved. No existence check is made.
func (s *UserService) Approve(ctx context.Context, id string) error {
	err := s.metrics.track("users.approve", func() error { return s.repo.Approve(ctx, id) })
	if err != nil {
		s.logger.Error("approve user failed", zap.String("user_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to approve user")
	}
	return nil
}

// Update overwrites name, email, phone, role and approved.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest) (*models.User, error) {
	user := &models.User{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Approved: req.Approved,
	}
	err := s.metrics.track("users.update", func() error { return s.repo.Update(ctx, user) })
	if err != nil {
		s.logger.Error("update user failed", zap.String("user_id", id), zap.Error(err))
		return nil, appErrors.Database(err, "failed to update user")
	}
	return user, nil
}

// Delete removes the user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	err := s.metrics.track("users.delete", func() error { return s.repo.Delete(ctx, id) })
	if err != nil {
		s.logger.Error("delete user failed", zap.String("user_id", id), zap.Error(err))
		return appErrors.Database(err, "failed to delete user")
	}
	return nil
}
