package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

type userLookup interface {
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
}

type enrollmentLookup interface {
	ListByUser(ctx context.Context, userID string) ([]models.EnrollmentDetail, error)
}

type schemaMigrator interface {
	AddCourseDetailsColumn(ctx context.Context) error
}

// CheckUserQuery selects the user to inspect.
type CheckUserQuery struct {
	Email string `form:"email" validate:"required"`
}

// UserInspection is a user row together with its enrollments.
type UserInspection struct {
	User        models.User               `json:"user"`
	Enrollments []models.EnrollmentDetail `json:"enrollments"`
}

// DebugService backs the database inspection and ad hoc migration endpoints.
type DebugService struct {
	users       userLookup
	enrollments enrollmentLookup
	schema      schemaMigrator
	validator   *validator.Validate
	metrics     *MetricsService
	logger      *zap.Logger
}

// NewDebugService constructs the service.
func NewDebugService(users userLookup, enrollments enrollmentLookup, schema schemaMigrator, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *DebugService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DebugService{users: users, enrollments: enrollments, schema: schema, validator: validate, metrics: metrics, logger: logger}
}

// CheckUser looks a user up by email and then loads their enrollments. The two reads
// run one after the other without a transaction.
func (s *DebugService) CheckUser(ctx context.Context, q CheckUserQuery) (*UserInspection, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Validation(err, "email is required")
	}

	var users []models.User
	err := s.metrics.track("debug.user_by_email", func() error {
		var err error
		users, err = s.users.FindByEmail(ctx, q.Email)
		return err
	})
	if err != nil {
		return nil, appErrors.Database(err, "failed to look up user")
	}
	if len(users) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "User not found")
	}

	user := users[0]
	var enrollments []models.EnrollmentDetail
	err = s.metrics.track("debug.enrollments_by_user", func() error {
		var err error
		enrollments, err = s.enrollments.ListByUser(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, appErrors.Database(err, "failed to load enrollments")
	}
	if enrollments == nil {
		enrollments = []models.EnrollmentDetail{}
	}

	return &UserInspection{User: user, Enrollments: enrollments}, nil
}

// MigrateCourses adds courses.details. Running it twice fails the second time because
// the column already exists; the failure is returned as is and never retried.
func (s *DebugService) MigrateCourses(ctx context.Context) error {
	err := s.metrics.track("debug.migrate_courses", func() error { return s.schema.AddCourseDetailsColumn(ctx) })
	if err != nil {
		s.logger.Warn("course migration failed", zap.Error(err))
		return appErrors.Database(err, "Migration failed")
	}
	s.logger.Info("course migration applied", zap.String("column", "courses.details"))
	return nil
}
