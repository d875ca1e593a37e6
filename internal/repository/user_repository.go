package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-admin-api/internal/models"
)

const userColumns = "id, name, email, phone, role, approved"

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Approve flips the approved flag on.
func (r *UserRepository) Approve(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE users SET approved = 1 WHERE id = ?`), id); err != nil {
		return fmt.Errorf("approve user: %w", err)
	}
	return nil
}

// Update overwrites the editable columns of a user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	const query = `UPDATE users SET name = ?, email = ?, phone = ?, role = ?, approved = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		user.Name, user.Email, user.Phone, user.Role, user.Approved.Int(), user.ID,
	); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user record. Missing ids are not an error.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM users WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// FindByEmail returns the users registered with an email. Email uniqueness is not
// enforced, so more than one row may come back.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	query := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE email = ?")
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, email); err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	return users, nil
}
