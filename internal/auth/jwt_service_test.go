package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{ID: 7, Email: "anna@example.com", Role: model.RoleAdmin, IsActive: true}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.True(t, claims.IsActive)
	assert.Empty(t, claims.ID)
}

func TestJWTService_RefreshTokenCarriesJTI(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{ID: 7, Email: "anna@example.com", Role: model.RoleUser, IsActive: true}

	tokenID, token, err := svc.GenerateRefreshToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: 7, Email: "anna@example.com", Role: model.RoleUser, IsActive: true}

	token, err := NewJWTService("secret-a").GenerateAccessToken(user)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExtractTokenIDFailsForAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret")
	user := &model.User{ID: 7, Email: "anna@example.com", Role: model.RoleUser, IsActive: true}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)

	_, err = svc.ExtractTokenID(token)
	assert.Error(t, err)
}
