package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/course-admin-api/internal/models"
	appErrors "github.com/noah-isme/course-admin-api/pkg/errors"
)

type mockUserRepo struct {
	users map[string]*models.User
	err   error
}

func (m *mockUserRepo) Approve(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if user, ok := m.users[id]; ok {
		user.Approved = true
	}
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; ok {
		copy := *user
		m.users[user.ID] = &copy
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.users, id)
	return nil
}

func TestUserServiceApproveLeavesOtherFields(t *testing.T) {
	phone := "0812"
	repo := &mockUserRepo{users: map[string]*models.User{
		"u1": {ID: "u1", Name: models.StringPtr("Ana"), Email: models.StringPtr("ana@example.com"), Phone: &phone, Role: models.StringPtr("student")},
	}}
	svc := NewUserService(repo, NewMetricsService(), zap.NewNop())

	require.NoError(t, svc.Approve(context.Background(), "u1"))
	user := repo.users["u1"]
	assert.True(t, bool(user.Approved))
	assert.Equal(t, "Ana", models.StringValue(user.Name))
	assert.Equal(t, "ana@example.com", models.StringValue(user.Email))
	assert.Equal(t, "student", models.StringValue(user.Role))
}

func TestUserServiceUpdate(t *testing.T) {
	repo := &mockUserRepo{users: map[string]*models.User{"u1": {ID: "u1", Name: models.StringPtr("Old")}}}
	svc := NewUserService(repo, nil, nil)

	user, err := svc.Update(context.Background(), "u1", UpdateUserRequest{Name: models.StringPtr("New"), Email: models.StringPtr("new@example.com"), Role: models.StringPtr("teacher"), Approved: true})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "New", models.StringValue(repo.users["u1"].Name))
	assert.True(t, bool(repo.users["u1"].Approved))
}

func TestUserServiceDeleteMissingSucceeds(t *testing.T) {
	svc := NewUserService(&mockUserRepo{users: map[string]*models.User{}}, nil, nil)
	assert.NoError(t, svc.Delete(context.Background(), "missing"))
}

func TestUserServiceWrapsDatabaseErrors(t *testing.T) {
	svc := NewUserService(&mockUserRepo{err: errors.New("database is locked")}, nil, nil)

	err := svc.Approve(context.Background(), "u1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDatabase.Code, appErr.Code)
	assert.Equal(t, 500, appErr.Status)
	assert.Contains(t, appErr.Error(), "database is locked")
}
