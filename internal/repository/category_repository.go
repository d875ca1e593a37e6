package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-admin-api/internal/models"
)

// CategoryRepository handles persistence for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository constructs the repository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Rename writes category.Name to the row identified by category.ID.
func (r *CategoryRepository) Rename(ctx context.Context, category *models.Category) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE categories SET name = ? WHERE id = ?`), category.Name, category.ID); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM categories WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
