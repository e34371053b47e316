package auth

import (
	"testing"

	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database/models"
	apperrors "teamflow-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *Service {
	return NewService(&config.Config{JWTSecret: secret, JWTTTLHours: 1})
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "alice",
		Email:     "alice@example.com",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	service := testService("test-secret")
	user := testUser()

	token, err := service.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := testService("secret-a").GenerateToken(testUser())
	require.NoError(t, err)

	_, err = testService("secret-b").ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := testService("test-secret").ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword(hash, "s3cret-password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret-password"))
}
