package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-admin-api/internal/models"
)

// SubjectRepository handles persistence for subjects.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository creates a new repository instance.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// List returns subjects newest first, optionally restricted to one course.
func (r *SubjectRepository) List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error) {
	query := "SELECT id, course_id, name, created_at FROM subjects"
	var args []interface{}
	if filter.CourseID != "" {
		query += " WHERE course_id = ?"
		args = append(args, filter.CourseID)
	}
	query += " ORDER BY created_at DESC"

	subjects := []models.Subject{}
	if err := r.db.SelectContext(ctx, &subjects, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// Create persists a new subject. created_at is filled by the column default.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	const query = `INSERT INTO subjects (id, course_id, name) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), subject.ID, subject.CourseID, subject.Name); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

// Rename sets the subject name.
func (r *SubjectRepository) Rename(ctx context.Context, id, name string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE subjects SET name = ? WHERE id = ?`), name, id); err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	return nil
}

// Delete removes a subject record.
func (r *SubjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM subjects WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}
