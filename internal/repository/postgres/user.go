package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// UserRepository implements repository.UserRepository using PostgreSQL
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user repository.User) (uuid.UUID, error) {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Role == "" {
		user.Role = "member"
	}

	query := `
		INSERT INTO users (id, email, password_hash, name, organization_id, role, created_at)
		VALUES (:id, :email, :password_hash, :name, :organization_id, :role, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return uuid.Nil, err
	}

	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error) {
	var user repository.User
	query := `
		SELECT id, email, password_hash, name, organization_id, role, created_at
		FROM users
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	query := `
		SELECT id, email, password_hash, name, organization_id, role, created_at
		FROM users
		WHERE email = $1
	`

	err := r.db.GetContext(ctx, &user, query, strings.ToLower(strings.TrimSpace(email)))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found: %s", email)
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListByOrganization retrieves the user directory for an organization in
// insertion order. The directory view carries only what assignee resolution
// needs.
func (r *UserRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]repository.OrgUser, error) {
	var users []repository.OrgUser
	query := `
		SELECT id, name, email
		FROM users
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`

	err := r.db.SelectContext(ctx, &users, query, orgID)
	if err != nil {
		return nil, err
	}

	return users, nil
}
