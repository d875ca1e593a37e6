package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

type mockCategoryRepo struct {
	renamed map[string]string
	deleted []string
	err     error
}

func (m *mockCategoryRepo) Rename(ctx context.Context, category *models.Category) error {
	if m.err != nil {
		return m.err
	}
	if m.renamed == nil {
		m.renamed = map[string]string{}
	}
	m.renamed[category.ID] = category.Name
	return nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCategoryServiceUpdate(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo, nil, nil, nil)

	require.NoError(t, svc.Update(context.Background(), "cat-1", UpdateCategoryRequest{Name: "Science"}))
	assert.Equal(t, "Science", repo.renamed["cat-1"])
}

func TestCategoryServiceUpdateRequiresName(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo, nil, nil, nil)

	err := svc.Update(context.Background(), "cat-1", UpdateCategoryRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "Name is required", appErr.Message)
	assert.Empty(t, repo.renamed)
}

func TestCategoryServiceDelete(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo, nil, nil, nil)
	require.NoError(t, svc.Delete(context.Background(), "cat-1"))
	assert.Equal(t, []string{"cat-1"}, repo.deleted)

	failing := NewCategoryService(&mockCategoryRepo{err: errors.New("no such table: categories")}, nil, nil, nil)
	err := failing.Delete(context.Background(), "cat-1")
	assert.Equal(t, 500, appErrors.FromError(err).Status)
}
