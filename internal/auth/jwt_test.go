package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "taskloom")
	userID := uuid.New()
	orgID := uuid.New()

	token, err := svc.GenerateToken(userID, "jane@example.com", &orgID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, orgID.String(), claims.OrganizationID)
	assert.Equal(t, "taskloom", claims.Issuer)
}

func TestJWT_NoOrganization(t *testing.T) {
	svc := NewJWTService("test-secret", "taskloom")

	token, err := svc.GenerateToken(uuid.New(), "solo@example.com", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.OrganizationID)
}

func TestJWT_InvalidToken(t *testing.T) {
	svc := NewJWTService("test-secret", "taskloom")

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-one", "taskloom")
	verifier := NewJWTService("secret-two", "taskloom")

	token, err := issuer.GenerateToken(uuid.New(), "jane@example.com", nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
