package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-admin-api/internal/models"
)

func TestCategoryRepositoryRename(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCategoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE categories SET name = ? WHERE id = ?")).
		WithArgs("Science", "cat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Rename(context.Background(), &models.Category{ID: "cat-1", Name: "Science"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCategoryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = ?")).
		WithArgs("cat-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "cat-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
