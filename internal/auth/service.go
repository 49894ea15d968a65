package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// ErrInvalidCredentials is returned on a failed login. Deliberately vague:
// callers never learn whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when signing up with an existing email
var ErrEmailTaken = errors.New("user already exists")

// Service handles signup and login
type Service struct {
	users repository.UserRepository
	orgs  repository.OrganizationRepository
	jwt   *JWTService
}

// NewService creates a new auth service
func NewService(users repository.UserRepository, orgs repository.OrganizationRepository, jwt *JWTService) *Service {
	return &Service{
		users: users,
		orgs:  orgs,
		jwt:   jwt,
	}
}

// SignUp registers a user, optionally creating an organization they become
// admin of, and returns the user with a signed token.
func (s *Service) SignUp(ctx context.Context, email, password, name, organizationName string) (*repository.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, "", errors.New("email is required")
	}

	if existing, _ := s.users.GetByEmail(ctx, email); existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := repository.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         "member",
	}

	var orgID *uuid.UUID
	if organizationName != "" {
		id, err := s.orgs.Create(ctx, repository.Organization{Name: organizationName})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create organization: %w", err)
		}
		orgID = &id
		user.OrganizationID = orgID
		user.Role = "admin"
	}

	userID, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	if orgID != nil {
		if err := s.orgs.SetCreator(ctx, *orgID, userID); err != nil {
			return nil, "", fmt.Errorf("failed to record organization creator: %w", err)
		}
	}

	created, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(created.ID, created.Email, created.OrganizationID)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Login verifies credentials and returns the user with a signed token
func (s *Service) Login(ctx context.Context, email, password string) (*repository.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.OrganizationID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser loads the full user record for an authenticated request
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*repository.User, error) {
	return s.users.GetByID(ctx, userID)
}
