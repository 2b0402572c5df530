package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

func setupAuthTestDB(t *testing.T) {
	database.DB = setupCatalogDB(t)
	os.Setenv("JWT_SECRET", "test-secret")
}

func TestRegisterUser(t *testing.T) {
	setupAuthTestDB(t)

	// The very first registered user becomes the admin
	first, err := RegisterUser("first@example.com", "password123", "First", "User")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.Equal(t, models.StatusActive, first.Status)
	assert.Equal(t, models.SubscriptionFree, first.Subscription)
	assert.NotEqual(t, "password123", first.Password)

	second, err := RegisterUser("second@example.com", "password123", "Second", "User")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)

	_, err = RegisterUser("first@example.com", "password123", "Dup", "User")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	setupAuthTestDB(t)

	_, err := RegisterUser("login@example.com", "password123", "Log", "In")
	assert.NoError(t, err)

	token, user, err := LoginUser("login@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "login@example.com", user.Email)

	claims, err := utils.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, models.RoleUser, claims["role"])

	_, _, err = LoginUser("login@example.com", "wrongpassword")
	assert.Error(t, err)

	_, _, err = LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
}

func TestLoginSuspendedUser(t *testing.T) {
	setupAuthTestDB(t)

	user, err := RegisterUser("banned@example.com", "password123", "Ban", "Ned")
	assert.NoError(t, err)

	database.DB.Model(user).Updates(map[string]interface{}{
		"status":  models.StatusSuspended,
		"version": user.Version + 1,
	})

	_, _, err = LoginUser("banned@example.com", "password123")
	assert.EqualError(t, err, "account is suspended")
}
