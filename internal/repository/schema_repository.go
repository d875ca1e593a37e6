package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SchemaRepository runs one-off schema statements.
type SchemaRepository struct {
	db *sqlx.DB
}

// NewSchemaRepository constructs the repository.
func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// AddCourseDetailsColumn adds courses.details. It fails when the column already exists.
func (r *SchemaRepository) AddCourseDetailsColumn(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `ALTER TABLE courses ADD COLUMN details TEXT`); err != nil {
		return fmt.Errorf("add courses.details: %w", err)
	}
	return nil
}
