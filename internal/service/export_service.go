package service

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
	"github.com/noah-isme/course-admin-api/pkg/export"
)

type subjectLister interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders subject listings as CSV or PDF.
type ExportService struct {
	subjects subjectLister
	now      func() time.Time
}

// NewExportService constructs the export service.
func NewExportService(subjects subjectLister) *ExportService {
	return &ExportService{subjects: subjects, now: time.Now}
}

// ExportSubjects renders the same rows the list endpoint returns.
func (s *ExportService) ExportSubjects(ctx context.Context, filter models.SubjectFilter, rawFormat string) (*ExportFile, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Validation(err, "format must be csv or pdf")
	}

	subjects, err := s.subjects.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{
		Title:   "Subjects",
		Headers: []string{"id", "course_id", "name", "created_at"},
		Rows:    make([][]string, 0, len(subjects)),
	}
	for _, subject := range subjects {
		created := ""
		if subject.CreatedAt != nil {
			created = subject.CreatedAt.UTC().Format(time.RFC3339)
		}
		data.Rows = append(data.Rows, []string{subject.ID, models.StringValue(subject.CourseID), models.StringValue(subject.Name), created})
	}

	content, err := export.Render(format, data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("subjects_%s.%s", s.now().UTC().Format("20060102_150405"), format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
