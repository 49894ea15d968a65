package models

import "github.com/google/uuid"

// UserContext carries the authenticated identity through a request.
// Populated by the auth middleware from validated token claims.
type UserContext struct {
	UserID         uuid.UUID
	Email          string
	OrganizationID *uuid.UUID
}
