package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-admin-api/internal/models"
)

func TestSubjectRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "course_id", "name", "created_at"}).
		AddRow("subj_2", "c2", "Physics", now).
		AddRow("subj_1", "c1", "Math", now.Add(-time.Hour)).
		AddRow("subj_0", nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, name, created_at FROM subjects ORDER BY created_at DESC")).
		WithoutArgs().
		WillReturnRows(rows)

	subjects, err := repo.List(context.Background(), models.SubjectFilter{})
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "subj_2", subjects[0].ID)
	assert.Equal(t, "Physics", models.StringValue(subjects[0].Name))
	assert.Nil(t, subjects[2].CreatedAt)
	assert.Nil(t, subjects[2].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryListByCourse(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, course_id, name, created_at FROM subjects WHERE course_id = ? ORDER BY created_at DESC")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "name", "created_at"}))

	subjects, err := repo.List(context.Background(), models.SubjectFilter{CourseID: "c1"})
	require.NoError(t, err)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subjects (id, course_id, name) VALUES (?, ?, ?)")).
		WithArgs("subj_1_abcde", "c1", "Math").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.Subject{ID: "subj_1_abcde", CourseID: models.StringPtr("c1"), Name: models.StringPtr("Math")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubjectRepositoryRenameAndDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewSubjectRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE subjects SET name = ? WHERE id = ?")).
		WithArgs("Algebra", "subj_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM subjects WHERE id = ?")).
		WithArgs("subj_1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Rename(context.Background(), "subj_1", "Algebra"))
	require.NoError(t, repo.Delete(context.Background(), "subj_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
