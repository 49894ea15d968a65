package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// OrganizationRepository implements repository.OrganizationRepository using PostgreSQL
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository creates a new PostgreSQL organization repository
func NewOrganizationRepository(db *sqlx.DB) repository.OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org repository.Organization) (uuid.UUID, error) {
	org.ID = uuid.New()
	org.CreatedAt = time.Now()

	query := `
		INSERT INTO organizations (id, name, created_by, created_at)
		VALUES (:id, :name, :created_by, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, org)
	if err != nil {
		return uuid.Nil, err
	}

	return org.ID, nil
}

// Get retrieves an organization by ID
func (r *OrganizationRepository) Get(ctx context.Context, id uuid.UUID) (*repository.Organization, error) {
	var org repository.Organization
	query := `
		SELECT id, name, created_by, created_at
		FROM organizations
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &org, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("organization not found: %s", id)
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// SetCreator records the creating user after signup has inserted both rows
func (r *OrganizationRepository) SetCreator(ctx context.Context, id, userID uuid.UUID) error {
	query := `UPDATE organizations SET created_by = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, userID)
	return err
}
